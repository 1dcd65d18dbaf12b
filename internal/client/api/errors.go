package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable wraps failures where no HTTP response was received.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized is matched by *Error values with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is matched by *Error values with status 404.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx answer from the backend. Error() returns the backend's
// detail message unchanged so it can be shown to the user verbatim.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// maxPlainDetail bounds how much of a non-JSON error body becomes the detail.
const maxPlainDetail = 200

// parseError builds an *Error from a failed response body.
//
// The backend answers {"detail": "..."} for business errors and
// {"detail": [{"loc": [...], "msg": "..."}]} for request validation errors;
// the messages of the latter are joined with "; ".
func parseError(status int, body []byte) *Error {
	e := &Error{Status: status}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		e.Detail = detailText(envelope.Detail)
	}

	if e.Detail == "" {
		text := strings.TrimSpace(string(body))
		if text != "" && len(text) <= maxPlainDetail && !strings.HasPrefix(text, "<") && !strings.HasPrefix(text, "{") {
			e.Detail = text
		}
	}
	if e.Detail == "" {
		e.Detail = http.StatusText(status)
	}
	if e.Detail == "" {
		e.Detail = "request failed"
	}
	return e
}

func detailText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	var obj struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Msg != "" {
			return obj.Msg
		}
		return obj.Message
	}
	return ""
}
