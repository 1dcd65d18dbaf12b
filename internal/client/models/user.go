// Package models defines the records exchanged with the EduShare backend and
// the client-side session.
package models

import "encoding/json"

// Role gates which parts of the client a user can reach.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// User is the profile returned by the backend on login and registration.
// Unknown fields are ignored.
type User struct {
	ID                 int64   `json:"id"`
	Username           string  `json:"username"`
	Email              string  `json:"email,omitempty"`
	Role               Role    `json:"role"`
	PhoneNumber        *string `json:"phone_number,omitempty"`
	Country            *string `json:"country,omitempty"`
	LanguagePreference string  `json:"language_preference,omitempty"`
	IsTeacherVerified  bool    `json:"is_teacher_verified"`
	CreatedAt          string  `json:"created_at,omitempty"`
	UpdatedAt          string  `json:"updated_at,omitempty"`
}

// Session is the client-held pair of bearer token and cached user profile.
//
// UserJSON keeps the user record exactly as the backend sent it, so the
// session store can persist it byte for byte. When it is empty the store
// serializes User instead.
type Session struct {
	Token    string
	User     User
	UserJSON json.RawMessage
}

// HasRole reports whether the session belongs to a user with role r.
// A nil session has no role.
func (s *Session) HasRole(r Role) bool {
	return s != nil && s.Token != "" && s.User.Role == r
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the success body of POST /users/login.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        json.RawMessage `json:"user"`
}

// DefaultLanguagePreference is sent with every registration.
const DefaultLanguagePreference = "en"

// RegisterRequest is the body of POST /users/. Optional fields left empty are
// sent as JSON null.
type RegisterRequest struct {
	Username           string  `json:"username" validate:"required"`
	Email              string  `json:"email" validate:"required"`
	Password           string  `json:"password" validate:"required"`
	Role               Role    `json:"role" validate:"required,oneof=student teacher admin"`
	PhoneNumber        *string `json:"phone_number"`
	Country            *string `json:"country"`
	LanguagePreference string  `json:"language_preference"`
}

// OptionalString maps "" to nil.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
