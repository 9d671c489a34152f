// Package typeinfo composes an externally supplied type-tracker with a user
// visitor so that every user callback observes the tracker's state as of
// the moment just after the tracker processed the current event.
package typeinfo

import (
	"github.com/lang-tools/gqlvisit/ast"
	"github.com/lang-tools/gqlvisit/visitor"
)

// Tracker is the minimal contract a schema-aware type tracker must satisfy
// to be driven by this combinator. Read-only accessors such as GetType are
// deliberately not part of this interface: the engine only needs to keep
// the tracker's internal stack balanced, never to read it back.
type Tracker interface {
	Enter(n ast.Node)
	Leave(n ast.Node)
}

type combined struct {
	tracker Tracker
	user    visitor.Visitor
}

// Visit returns a Visitor that drives tracker in lock-step with user,
// implementing this handshake:
//
// At enter(n): tracker.Enter(n) fires first, then the user's enter
// callback. If the user returns Skip, Delete, or Stop, tracker.Leave(n)
// fires immediately to keep the tracker balanced for a subtree the engine
// will not descend into. If the user returns Replace(n'), the tracker is
// rebalanced onto the replacement: tracker.Leave(n) then tracker.Enter(n').
//
// At leave(n): the user's leave callback fires first, then tracker.Leave(n).
//
// A Stop from the user unwinds without further tracker calls; dropping
// stack balance on Stop is acceptable because the traversal is ending.
func Visit(tracker Tracker, user visitor.Visitor) visitor.Visitor {
	return &combined{tracker: tracker, user: user}
}

// EnterCallback implements visitor.Visitor.
func (c *combined) EnterCallback(kind ast.Kind) visitor.EnterLeaveFunc {
	return func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
		c.tracker.Enter(n)

		fn := c.user.EnterCallback(kind)
		if fn == nil {
			return visitor.Continue, nil
		}
		cmd, err := fn(n, key, parent, path, ancestors)
		if err != nil {
			return visitor.Command{}, err
		}

		switch cmd.Kind() {
		case visitor.CmdSkip, visitor.CmdDelete:
			c.tracker.Leave(n)
		case visitor.CmdStop:
			// Stack balance is dropped deliberately: the traversal ends.
		case visitor.CmdReplace:
			replacement, _ := cmd.Replacement()
			c.tracker.Leave(n)
			c.tracker.Enter(replacement)
		}

		return cmd, nil
	}
}

// LeaveCallback implements visitor.Visitor.
func (c *combined) LeaveCallback(kind ast.Kind) visitor.EnterLeaveFunc {
	return func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
		fn := c.user.LeaveCallback(kind)
		var cmd visitor.Command
		if fn != nil {
			var err error
			cmd, err = fn(n, key, parent, path, ancestors)
			if err != nil {
				return visitor.Command{}, err
			}
		} else {
			cmd = visitor.Continue
		}

		if cmd.Kind() != visitor.CmdStop {
			c.tracker.Leave(n)
		}

		return cmd, nil
	}
}
