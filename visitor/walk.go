package visitor

import (
	"sort"

	"github.com/lang-tools/gqlvisit/ast"
	"github.com/lang-tools/gqlvisit/gqllog"
	"github.com/lang-tools/gqlvisit/visiterr"
)

// engine holds the state threaded through one Visit call. It carries no
// state across calls — every call gets its own engine — so Visit is
// re-entrant: a callback may call Visit again on a disjoint subtree.
type engine struct {
	visitor Visitor
	logger  gqllog.Logger
}

// frameResult is what each recursive step of the walk hands back to its
// caller: the materialized node (valid unless deleted or stopped), and the
// two control signals a child's outcome can carry upward.
type frameResult struct {
	node    ast.Node
	deleted bool
	stopped bool
}

// Visit performs one complete depth-first traversal of root, dispatching
// enter/leave events to v in the order fixed by each node kind's declared
// slot layout, and returns the resulting tree. root is never mutated;
// edited output shares every unedited subtree with root.
//
// On Stop, Visit returns (root, nil): per Invariant E, edits below the stop
// point are discarded and the returned tree is exactly the input tree. On a
// fatal error (a malformed node, an invalid edit, or a callback's own
// error), Visit returns (nil, err) — no partial tree is produced.
func Visit(root ast.Node, v Visitor, opts ...Option) (ast.Node, error) {
	e := &engine{visitor: v, logger: gqllog.NopLogger{}}
	for _, opt := range opts {
		opt(e)
	}

	result, err := e.walk(root, ast.Key{}, nil, Path{}, nil)
	if err != nil {
		return nil, err
	}
	if result.stopped {
		return root, nil
	}
	if result.deleted {
		return nil, nil
	}
	return result.node, nil
}

// walk dispatches the enter/leave pair for n and, between them, recurses
// over n's (or its enter-time replacement's) children in slot order.
func (e *engine) walk(n ast.Node, key ast.Key, parent ast.Node, path Path, ancestors []ast.Node) (frameResult, error) {
	kind := n.Kind()
	if !ast.Known(kind) {
		return frameResult{}, &ast.MalformedNodeError{Path: path, Kind: kind, Reason: "unknown kind"}
	}

	cmd, err := e.dispatch(e.visitor.EnterCallback(kind), n, key, parent, path, ancestors, "enter")
	if err != nil {
		return frameResult{}, err
	}

	switch cmd.Kind() {
	case CmdStop:
		return frameResult{stopped: true}, nil
	case CmdSkip:
		return frameResult{node: n}, nil
	case CmdDelete:
		return frameResult{deleted: true}, nil
	}

	working := n
	if replacement, ok := cmd.Replacement(); ok {
		working = replacement
		if !ast.Known(working.Kind()) {
			return frameResult{}, &ast.MalformedNodeError{Path: path, Kind: working.Kind(), Reason: "unknown kind"}
		}
	}

	childAncestors := make([]ast.Node, len(ancestors)+1)
	copy(childAncestors, ancestors)
	childAncestors[len(ancestors)] = working

	// source is the frame's node exactly as it existed before any of its
	// own slots were walked — the same value just recorded as this frame's
	// entry in childAncestors. Every slot reads from and reports source as
	// the parent/ancestor its children see, so a sibling slot's edit (e.g.
	// to "arguments") can never make a later slot's children (e.g. under
	// "selectionSet") observe a parent inconsistent with ancestors' last
	// entry. result accumulates the edits themselves, independently.
	source := working
	result := working
	for _, slot := range source.Slots() {
		switch slot.SlotKind {
		case ast.SlotKindSingle:
			next, stopped, err := e.walkSingleSlot(source, result, slot.Name, path, childAncestors)
			if err != nil {
				return frameResult{}, err
			}
			if stopped {
				return frameResult{stopped: true}, nil
			}
			result = next
		case ast.SlotKindSequence:
			next, stopped, err := e.walkSequenceSlot(source, result, slot.Name, path, childAncestors)
			if err != nil {
				return frameResult{}, err
			}
			if stopped {
				return frameResult{stopped: true}, nil
			}
			result = next
		}
	}

	leaveCmd, err := e.dispatch(e.visitor.LeaveCallback(result.Kind()), result, key, parent, path, ancestors, "leave")
	if err != nil {
		return frameResult{}, err
	}

	switch leaveCmd.Kind() {
	case CmdStop:
		return frameResult{stopped: true}, nil
	case CmdDelete:
		return frameResult{deleted: true}, nil
	case CmdReplace:
		replacement, _ := leaveCmd.Replacement()
		return frameResult{node: replacement}, nil
	default:
		return frameResult{node: result}, nil
	}
}

// walkSingleSlot recurses into a single-child slot, if populated. source is
// read for the slot's current child and reported as the child's parent
// (and thus must equal the ancestors snapshot the caller built); accum is
// the in-progress edited node that any resulting edit is applied to. accum
// and source coincide for the first slot processed and diverge only once
// an earlier slot has been edited.
func (e *engine) walkSingleSlot(source, accum ast.Node, slotName string, path Path, ancestors []ast.Node) (ast.Node, bool, error) {
	childKey := ast.KeyForSlot(slotName)
	child, ok := source.Child(childKey)
	if !ok {
		return accum, false, nil
	}

	childPath := path.WithSuffix(childKey)
	result, err := e.walk(child, childKey, source, childPath, ancestors)
	if err != nil {
		return nil, false, err
	}
	if result.stopped {
		return nil, true, nil
	}
	if result.deleted {
		return accum.WithSlotRemoved(childKey), false, nil
	}
	if result.node != child {
		return accum.WithSlot(childKey, result.node), false, nil
	}
	return accum, false, nil
}

// sequenceEdit records what happened to one original-index element of a
// sequence slot, keyed by its position in the original (pre-edit)
// sequence — so sibling edits address each other's untouched positions
// correctly regardless of order.
type sequenceEdit struct {
	index       int
	deleted     bool
	replacement ast.Node
}

// walkSequenceSlot recurses over every element of a sequence slot, read
// from source (also reported as each child's parent, so it must equal the
// ancestors snapshot the caller built), using the original index space,
// then applies the collected edits to accum: replacements first (they do
// not change length, so original indices stay valid), then deletions in
// descending index order (so removing one element never invalidates a
// not-yet-applied lower index).
func (e *engine) walkSequenceSlot(source, accum ast.Node, slotName string, path Path, ancestors []ast.Node) (ast.Node, bool, error) {
	children := source.Children(slotName)
	var edits []sequenceEdit

	for idx, child := range children {
		childKey := ast.KeyForIndex(slotName, idx)
		childPath := path.WithSuffix(childKey)
		result, err := e.walk(child, childKey, source, childPath, ancestors)
		if err != nil {
			return nil, false, err
		}
		if result.stopped {
			return nil, true, nil
		}
		if result.deleted {
			edits = append(edits, sequenceEdit{index: idx, deleted: true})
		} else if result.node != child {
			edits = append(edits, sequenceEdit{index: idx, replacement: result.node})
		}
	}

	if len(edits) == 0 {
		return accum, false, nil
	}

	for _, ed := range edits {
		if !ed.deleted {
			accum = accum.WithSlot(ast.KeyForIndex(slotName, ed.index), ed.replacement)
		}
	}

	sort.Slice(edits, func(i, j int) bool { return edits[i].index > edits[j].index })
	for _, ed := range edits {
		if ed.deleted {
			accum = accum.WithSlotRemoved(ast.KeyForIndex(slotName, ed.index))
		}
	}

	return accum, false, nil
}

// dispatch invokes fn if non-nil, treating a nil callback as Continue, and
// wraps any error the callback returns as a *visiterr.CallbackError. It
// also emits the diagnostic log lines WithLogger documents.
func (e *engine) dispatch(fn EnterLeaveFunc, n ast.Node, key ast.Key, parent ast.Node, path Path, ancestors []ast.Node, phase string) (Command, error) {
	cmd := Continue
	if fn != nil {
		var err error
		cmd, err = fn(n, key, parent, path, ancestors)
		if err != nil {
			return Command{}, &visiterr.CallbackError{Path: path, Cause: err}
		}
	}

	e.logger.Debug("event", "kind", string(n.Kind()), "phase", phase, "path", path.String())
	if cmd.Kind() != CmdContinue {
		e.logger.Debug("command", "kind", string(n.Kind()), "phase", phase, "path", path.String(), "command", cmd.String())
	}

	return cmd, nil
}
