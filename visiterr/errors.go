// Package visiterr provides structured error types for the gqlvisit engine.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), letting callers distinguish between the fatal error
// categories a traversal can raise and recover (or report) accordingly.
//
// # Error Categories
//
//   - MalformedNodeError: a node's kind is unknown to the registry, or (at
//     node construction) a slot is not declared for its kind or holds a
//     value of the wrong shape. An absent slot is never reported. Detected
//     by the ast package itself (node construction and decoding) as well as
//     by a traversal mid-walk (unknown kind only), so the type lives in ast
//     and is re-exported here for a single import path.
//   - InvalidEditError: a callback returned a value that is neither a Node
//     nor a recognized command sentinel. EnterLeaveFunc's (Command, error)
//     signature makes this unreachable from any real callback — Go's type
//     system already rejects the malformed return this describes — so the
//     type exists only for a complete errors.Is surface, not live detection.
//   - CallbackError: a callback itself returned a non-nil error.
//
// # Usage with errors.Is
//
//	_, err := visitor.Visit(root, v)
//	if errors.Is(err, visiterr.ErrMalformedNode) {
//	    // the input tree itself is structurally invalid
//	}
package visiterr

import (
	"errors"
	"fmt"

	"github.com/lang-tools/gqlvisit/ast"
)

// ErrMalformedNode indicates a node does not match the registry (see
// MalformedNodeError). Re-exported from ast, which is the layer that raises
// it during node construction.
var ErrMalformedNode = ast.ErrMalformedNode

// MalformedNodeError is ast.MalformedNodeError under this package's name,
// so callers working with traversal errors need only import visiterr.
type MalformedNodeError = ast.MalformedNodeError

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidEdit indicates a callback returned a value that is neither
	// a Node nor a recognized command sentinel.
	ErrInvalidEdit = errors.New("invalid edit")

	// ErrCallback indicates a visitor callback returned a non-nil error.
	ErrCallback = errors.New("callback error")
)

// InvalidEditError reports that a callback returned something that is
// neither an ast.Node nor one of the recognized command sentinels. No
// production code path constructs one: EnterLeaveFunc's own signature rules
// out the malformed return this describes at compile time. It is kept for a
// complete errors.Is surface alongside MalformedNodeError and CallbackError.
type InvalidEditError struct {
	// Path is the location at which the invalid edit was returned.
	Path ast.Path
	// Value is the offending value returned by the callback.
	Value any
}

// Error returns a human-readable error message.
func (e *InvalidEditError) Error() string {
	msg := "invalid edit"
	if len(e.Path) > 0 {
		msg += " at " + e.Path.String()
	}
	return fmt.Sprintf("%s: callback returned unrecognized value %#v", msg, e.Value)
}

// Is reports whether target matches this error type.
func (e *InvalidEditError) Is(target error) bool {
	return target == ErrInvalidEdit
}

// CallbackError wraps an error a visitor callback itself returned, adding
// the path at which it occurred.
type CallbackError struct {
	// Path is the location at which the callback failed.
	Path ast.Path
	// Cause is the error the callback returned.
	Cause error
}

// Error returns a human-readable error message.
func (e *CallbackError) Error() string {
	msg := "callback error"
	if len(e.Path) > 0 {
		msg += " at " + e.Path.String()
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *CallbackError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *CallbackError) Is(target error) bool {
	return target == ErrCallback
}
