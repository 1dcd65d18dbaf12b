package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/edushare/internal/client/models"
)

// MemoryStore keeps the session in process memory. It is lost on exit.
type MemoryStore struct {
	mu    sync.Mutex
	token []byte
	user  []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, sess models.Session) error {
	user, err := userRecord(sess)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = []byte(sess.Token)
	m.user = user
	return nil
}

func (m *MemoryStore) Read(_ context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decode(m.token, m.user)
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
	m.user = nil
	return nil
}
