// Package ui holds the terminal-side presentation state of the client:
// transient notifications, submit controls with a busy label and the
// login/register overlays.
package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Kind is the severity of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

func (k Kind) marker() string {
	switch k {
	case KindSuccess:
		return "✔"
	case KindError:
		return "✖"
	default:
		return "ℹ"
	}
}

// Message is one notification.
type Message struct {
	Kind Kind
	Text string
}

// Notifier shows one message at a time. A new message replaces the current
// one; a message is dismissed automatically after ttl (if ttl > 0).
type Notifier struct {
	mu      sync.Mutex
	w       io.Writer
	ttl     time.Duration
	current *Message
	timer   *time.Timer
	seq     uint64
}

// NewNotifier writes messages to w.
func NewNotifier(w io.Writer, ttl time.Duration) *Notifier {
	return &Notifier{w: w, ttl: ttl}
}

// Show replaces the current message with text and prints it.
func (n *Notifier) Show(kind Kind, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	n.current = &Message{Kind: kind, Text: text}
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	if n.ttl > 0 {
		seq := n.seq
		n.timer = time.AfterFunc(n.ttl, func() { n.expire(seq) })
	}

	fmt.Fprintf(n.w, "%s %s\n", kind.marker(), Sanitize(text))
}

func (n *Notifier) Success(text string) { n.Show(KindSuccess, text) }
func (n *Notifier) Error(text string)   { n.Show(KindError, text) }
func (n *Notifier) Info(text string)    { n.Show(KindInfo, text) }

// Current returns the message on display, if any.
func (n *Notifier) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Message{}, false
	}
	return *n.current, true
}

// Dismiss hides the current message.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// expire clears the message shown as number seq, unless it was replaced.
func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == seq {
		n.current = nil
		n.timer = nil
	}
}
