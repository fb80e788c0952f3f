package ui

import (
	"errors"

	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels a prompt or input ends early.
var ErrAborted = errors.New("input aborted")

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
