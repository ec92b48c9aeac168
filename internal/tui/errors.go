package tui

import (
	"errors"
	"fmt"
)

// Minimum terminal size the display can lay itself out in
const (
	MinWidth  = 97
	MinHeight = 40
)

// FatalKind classifies unrecoverable display errors
type FatalKind int

const (
	// FatalAllocation means the display could not obtain the data it needs
	FatalAllocation FatalKind = iota + 1
	// FatalEnvironment means the terminal cannot host the display
	FatalEnvironment
)

func (k FatalKind) String() string {
	switch k {
	case FatalAllocation:
		return "allocation"
	case FatalEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// FatalError terminates the display. Msg is what the user is shown.
type FatalError struct {
	Kind FatalKind
	Msg  string
	Err  error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err is or wraps a FatalError of the given kind.
// A zero kind matches any FatalError.
func IsFatal(err error, kind FatalKind) bool {
	var fe *FatalError
	if !errors.As(err, &fe) {
		return false
	}
	return kind == 0 || fe.Kind == kind
}

func errScreenTooSmall(width, height int) *FatalError {
	return &FatalError{
		Kind: FatalEnvironment,
		Msg:  fmt.Sprintf("Minimum screen size - %d columns by %d lines", MinWidth, MinHeight),
		Err:  fmt.Errorf("terminal is %dx%d", width, height),
	}
}
