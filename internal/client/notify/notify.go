// Package notify shows short-lived user notifications, the terminal
// counterpart of a toast.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Messages shown to the user.
const (
	MsgInvalidCredentials = "Invalid username or password"
	MsgEntryAdded         = "New entry added!"
	MsgEntryDeleted       = "Entry deleted successfully!"
	MsgEmptyContent       = "Entry content cannot be empty"
	MsgNothingToShare     = "No entries to share"
	MsgShared             = "Diary entries copied to clipboard!"
	MsgShareFailed        = "Failed to copy entries to clipboard"
	MsgLoggedOut          = "Logged out"
)

// Notifier prints a message and keeps it as "current" until timeout passes.
// A new Show replaces the message and restarts the timer.
type Notifier struct {
	w       io.Writer
	timeout time.Duration

	mu      sync.Mutex
	current string
	gen     uint64
	timer   *time.Timer
}

func New(w io.Writer, timeout time.Duration) *Notifier {
	return &Notifier{w: w, timeout: timeout}
}

func (n *Notifier) Show(msg string) {
	fmt.Fprintf(n.w, "» %s\n", msg)

	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = msg
	n.gen++
	gen := n.gen
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.timeout, func() { n.expire(gen) })
}

// expire clears the message only if no Show happened since gen was issued.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.gen == gen {
		n.current = ""
	}
}

// Current returns the pending message, or "" once it has expired.
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
