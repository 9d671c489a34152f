// Package parallel combines several visitors into one, running each in
// lock-step with independent skip/stop state, as if every sub-visitor were
// being driven by its own traversal over the same tree.
package parallel

import (
	"github.com/lang-tools/gqlvisit/ast"
	"github.com/lang-tools/gqlvisit/visitor"
)

// phase enumerates a sub-visitor's current relationship to the traversal.
type phase int

const (
	active phase = iota
	suspended
	stopped
)

// sub tracks one registered visitor's state across the whole traversal.
type sub struct {
	v     visitor.Visitor
	phase phase
	// suspendDepth is the ancestor-count at which this sub-visitor was
	// suspended; it resumes when the engine reports leave at that same
	// depth, matching the enter(n) that suspended it.
	suspendDepth int
}

// combined is the Visitor the engine actually drives. It keeps no depth
// counter of its own: the engine does not pass a depth argument, so
// dispatch uses len(ancestors) as the depth of each event.
type combined struct {
	subs []*sub
}

// Visit returns a single Visitor that drives every one of visitors in
// registration order at each event, with these rules:
// independent skip-for-subtree, independent stop/retire, first-wins
// delete/replace, and a combined Stop only once every sub-visitor has
// stopped.
func Visit(visitors ...visitor.Visitor) visitor.Visitor {
	subs := make([]*sub, len(visitors))
	for i, v := range visitors {
		subs[i] = &sub{v: v, phase: active}
	}
	return &combined{subs: subs}
}

// EnterCallback implements visitor.Visitor.
func (c *combined) EnterCallback(kind ast.Kind) visitor.EnterLeaveFunc {
	return func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
		return c.dispatch(n, key, parent, path, ancestors, true)
	}
}

// LeaveCallback implements visitor.Visitor.
func (c *combined) LeaveCallback(kind ast.Kind) visitor.EnterLeaveFunc {
	return func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
		return c.dispatch(n, key, parent, path, ancestors, false)
	}
}

// dispatch implements one enter or leave event across every sub-visitor, in
// registration order, applying the combinator's precedence rules.
func (c *combined) dispatch(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node, isEnter bool) (visitor.Command, error) {
	depth := len(ancestors)
	winner := visitor.Continue
	haveWinner := false

	for _, s := range c.subs {
		switch s.phase {
		case stopped:
			continue
		case suspended:
			if isEnter {
				continue
			}
			// A leave at the exact depth that suspended this sub-visitor
			// is the matching leave(n) for the enter(n) that suspended
			// it: resume, but do not dispatch to it for this event.
			if depth == s.suspendDepth {
				s.phase = active
			}
			continue
		}

		kind := n.Kind()
		var fn visitor.EnterLeaveFunc
		if isEnter {
			fn = s.v.EnterCallback(kind)
		} else {
			fn = s.v.LeaveCallback(kind)
		}
		if fn == nil {
			continue
		}

		cmd, err := fn(n, key, parent, path, ancestors)
		if err != nil {
			return visitor.Command{}, err
		}

		switch cmd.Kind() {
		case visitor.CmdSkip:
			if isEnter {
				s.phase = suspended
				s.suspendDepth = depth
			}
		case visitor.CmdStop:
			s.phase = stopped
		case visitor.CmdDelete, visitor.CmdReplace:
			if !haveWinner {
				winner = cmd
				haveWinner = true
			}
			// First-wins: once a delete/replace is chosen, remaining
			// sub-visitors are not consulted for this event.
			return winner, nil
		}
	}

	if haveWinner {
		return winner, nil
	}

	// allStopped reflects every sub-visitor's phase as it stands after this
	// event, so a sub that stops on this exact event (leaving no other
	// active or suspended sub behind) is already accounted for here — the
	// combined Stop fires on this event, not one level deeper.
	allStopped := true
	for _, s := range c.subs {
		if s.phase != stopped {
			allStopped = false
			break
		}
	}
	if allStopped {
		return visitor.Stop, nil
	}
	return visitor.Continue, nil
}
