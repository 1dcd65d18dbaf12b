package ui

import (
	"context"
	"errors"
	"sync"
)

// ErrBusy is returned when a submit is attempted while the control is
// disabled.
var ErrBusy = errors.New("submit already in progress")

// SubmitControl models a form's submit button. While an action runs the
// control is disabled and shows busyLabel; it is re-enabled when the action
// returns, whatever the outcome.
type SubmitControl struct {
	mu        sync.Mutex
	label     string
	busyLabel string
	busy      bool
}

func NewSubmitControl(label, busyLabel string) *SubmitControl {
	return &SubmitControl{label: label, busyLabel: busyLabel}
}

// Label is the text the control currently shows.
func (s *SubmitControl) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return s.busyLabel
	}
	return s.label
}

// Disabled reports whether an action is in flight.
func (s *SubmitControl) Disabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Submit runs fn with the control disabled. A Submit while another is in
// flight does not call fn and returns ErrBusy.
func (s *SubmitControl) Submit(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	return fn(ctx)
}
