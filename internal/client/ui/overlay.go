package ui

import "sync"

// Overlay names.
const (
	OverlayLogin    = "login"
	OverlayRegister = "register"
)

// Overlays tracks which modal form is open. At most one is open: opening one
// closes the other, which is how "switch to register" behaves.
type Overlays struct {
	mu   sync.Mutex
	open string
}

func (o *Overlays) Open(name string) {
	o.mu.Lock()
	o.open = name
	o.mu.Unlock()
}

// Close closes whatever overlay is open.
func (o *Overlays) Close() {
	o.mu.Lock()
	o.open = ""
	o.mu.Unlock()
}

// IsOpen reports whether overlay name is the open one.
func (o *Overlays) IsOpen(name string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open == name
}

// Current returns the open overlay or "".
func (o *Overlays) Current() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open
}
