// Package elevate surfaces the privilege state for destructive runs and
// an unlock affordance. The actual elevation is delegated to the
// system's polkit/sudo helpers; nothing here escalates by itself.
package elevate

import (
	"context"
	"os"
	"os/exec"
	"sync"

	"scour/internal/errors"
	"scour/internal/log"
)

// Status describes the current authorization state.
type Status int

const (
	// StatusAuthorized means destructive runs need no further unlocking
	StatusAuthorized Status = iota
	// StatusLocked means a helper is available but not yet validated
	StatusLocked
	// StatusUnavailable means no elevation helper was found
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusAuthorized:
		return "authorized"
	case StatusLocked:
		return "locked"
	case StatusUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// helpers in preference order, with the arguments that validate
// credentials without running anything.
var helpers = [][]string{
	{"pkexec", "true"},
	{"sudo", "-v"},
}

// Authority tracks whether the user may perform privileged deletions.
type Authority struct {
	mu       sync.Mutex
	helper   []string
	unlocked bool
	euid     int
}

// New detects the available elevation helper.
func New() *Authority {
	a := &Authority{euid: os.Geteuid()}
	for _, h := range helpers {
		if _, err := exec.LookPath(h[0]); err == nil {
			a.helper = h
			break
		}
	}
	return a
}

// Status returns the current authorization state.
func (a *Authority) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.euid == 0 || a.unlocked {
		return StatusAuthorized
	}
	if a.helper == nil {
		return StatusUnavailable
	}
	return StatusLocked
}

// Helper returns the name of the detected elevation helper, empty when
// none was found.
func (a *Authority) Helper() string {
	if a.helper == nil {
		return ""
	}
	return a.helper[0]
}

// Unlock validates credentials through the detected helper. The helper
// drives its own interaction (polkit agent or terminal prompt).
func (a *Authority) Unlock(ctx context.Context) error {
	a.mu.Lock()
	helper := a.helper
	a.mu.Unlock()

	if helper == nil {
		return errors.New("no elevation helper available")
	}

	cmd := exec.CommandContext(ctx, helper[0], helper[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "unlock via %s failed", helper[0])
	}

	a.mu.Lock()
	a.unlocked = true
	a.mu.Unlock()
	log.LogWithFields(log.F("helper", helper[0])).Info("Privileges unlocked")
	return nil
}
