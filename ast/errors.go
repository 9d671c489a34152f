package ast

import (
	"errors"
	"fmt"
)

// ErrMalformedNode is the sentinel for use with errors.Is(); it classifies
// every MalformedNodeError regardless of which kind or slot triggered it.
var ErrMalformedNode = errors.New("malformed node")

// MalformedNodeError reports that a tree does not match the node model's
// registry: an unknown kind, a slot name not declared for the kind, or a
// slot value of the wrong shape. The registry marks no slot as required, so
// an absent slot is never reported.
type MalformedNodeError struct {
	// Path is the location of the malformed node, when known. Construction
	// errors raised from New/NewLeaf leave this empty since no traversal
	// position exists yet; the traversal engine fills it in when it
	// encounters a malformed node mid-walk.
	Path Path
	// Kind is the node's reported kind, if known.
	Kind Kind
	// Reason describes what is wrong.
	Reason string
}

// Error returns a human-readable error message.
func (e *MalformedNodeError) Error() string {
	msg := "malformed node"
	if e.Kind != "" {
		msg += fmt.Sprintf(" (kind %s)", e.Kind)
	}
	if len(e.Path) > 0 {
		msg += " at " + e.Path.String()
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *MalformedNodeError) Is(target error) bool {
	return target == ErrMalformedNode
}
