// Package state holds the per-window session state of the capture, style
// and viewer tools. Each window owns exactly one session value; nothing here
// is global.
package state

import (
	"github.com/google/uuid"
)

// LoadErrorText replaces the reference text when a sample cannot be loaded.
const LoadErrorText = "Error loading style"

// newSessionID tags log lines so output from several windows can be told
// apart.
func newSessionID() string {
	return uuid.NewString()[:8]
}
