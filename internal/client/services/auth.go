// Package services contains the application services of the EduShare client.
// This file defines the authentication service: login, registration, logout
// and access to the stored session.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/edushare/internal/client/api"
	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/session"
)

var (
	// ErrLoginRequired is returned by actions that need a session when none is stored.
	ErrLoginRequired = errors.New("login required")
	// ErrForbidden is returned when the session's role may not run an action.
	ErrForbidden = errors.New("action not allowed for this role")
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and persist the returned token and user. A failed
//     login leaves any stored session untouched.
//   - Register: create an account; it does not log in.
//   - Logout: forget the stored session.
//   - Current: the stored session, or nil when logged out.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	req := models.LoginRequest{Username: username, Password: password}
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(resp.User, &user); err != nil {
		return nil, fmt.Errorf("decode login user: %w", err)
	}

	sess := models.Session{Token: resp.AccessToken, User: user, UserJSON: resp.User}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &sess, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	req.LanguagePreference = models.DefaultLanguagePreference
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	return a.client.Register(ctx, req)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	sess, err := a.store.Read(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return nil, nil
	}
	return sess, err
}

// SessionTokens exposes the stored token to the API client. The store is read
// on every request, so login and logout take effect immediately.
func SessionTokens(store session.Store) api.TokenSource {
	return api.TokenFunc(func(ctx context.Context) (string, bool) {
		sess, err := store.Read(ctx)
		if err != nil || sess.Token == "" {
			return "", false
		}
		return sess.Token, true
	})
}
