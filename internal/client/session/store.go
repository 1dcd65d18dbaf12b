// Package session persists the client's login state: an opaque bearer token
// and the cached user record. Nothing here validates the token; a stale token
// is only discovered when the backend rejects a request made with it.
package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/edushare/internal/client/models"
)

// Keys of the two persisted values. Both hold strings; KeyUser holds the JSON
// user record.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNoSession is returned by Read when no complete session is stored.
var ErrNoSession = errors.New("no session")

// Store holds at most one session.
type Store interface {
	// Save persists token and user together; readers never see one without the other.
	Save(ctx context.Context, s models.Session) error
	// Read returns the last saved session or ErrNoSession.
	Read(ctx context.Context) (*models.Session, error)
	// Clear removes both values. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
