package ui

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_OneAtATime(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf, 0)

	_, ok := n.Current()
	assert.False(t, ok)

	n.Success("Login successful!")
	n.Error("Upload failed: boom")

	msg, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, Message{Kind: KindError, Text: "Upload failed: boom"}, msg)
	assert.Equal(t, "✔ Login successful!\n✖ Upload failed: boom\n", buf.String())

	n.Dismiss()
	_, ok = n.Current()
	assert.False(t, ok)
}

func TestNotifier_Expires(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf, 10*time.Millisecond)

	n.Info("hello")
	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_StaleExpiryKeepsNewMessage(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf, time.Hour)
	defer n.Dismiss()

	n.Info("first")
	n.Info("second")

	n.expire(1)
	msg, ok := n.Current()
	require.True(t, ok, "expiry of a replaced message must not hide the new one")
	assert.Equal(t, "second", msg.Text)

	n.expire(2)
	_, ok = n.Current()
	assert.False(t, ok)
}

func TestNotifier_SanitizesOutput(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf, 0)

	n.Error("Login failed: \x1b[31mred\x1b[0m")
	assert.Equal(t, "✖ Login failed: \\x1b[31mred\\x1b[0m\n", buf.String())

	msg, _ := n.Current()
	assert.Equal(t, "Login failed: \x1b[31mred\x1b[0m", msg.Text)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"<script>alert(1)</script>", "<script>alert(1)</script>"},
		{"a\tb", "a\tb"},
		{"line1\nline2", "line1 line2"},
		{"bell\a", "bell\\a"},
		{"\x1b]0;title\x07", "\\x1b]0;title\\a"},
		{"\u202eevil", "\\u202eevil"},
		{"ünïcödé", "ünïcödé"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "input %q", tt.in)
	}
}

func TestSubmitControl(t *testing.T) {
	s := NewSubmitControl("Login", "Logging in...")
	assert.Equal(t, "Login", s.Label())
	assert.False(t, s.Disabled())

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- s.Submit(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return errors.New("boom")
		})
	}()

	<-started
	assert.True(t, s.Disabled())
	assert.Equal(t, "Logging in...", s.Label())

	called := false
	err := s.Submit(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrBusy)
	assert.False(t, called)

	close(release)
	assert.EqualError(t, <-done, "boom")
	assert.False(t, s.Disabled())
	assert.Equal(t, "Login", s.Label())
}

func TestSubmitControl_ReenabledAfterPanic(t *testing.T) {
	s := NewSubmitControl("Register", "Registering...")

	assert.Panics(t, func() {
		_ = s.Submit(context.Background(), func(context.Context) error { panic("x") })
	})
	assert.False(t, s.Disabled())
}

func TestOverlays(t *testing.T) {
	var o Overlays
	assert.Equal(t, "", o.Current())

	o.Open(OverlayLogin)
	assert.True(t, o.IsOpen(OverlayLogin))

	o.Open(OverlayRegister)
	assert.False(t, o.IsOpen(OverlayLogin))
	assert.True(t, o.IsOpen(OverlayRegister))

	o.Close()
	assert.Equal(t, "", o.Current())
}
