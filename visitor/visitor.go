package visitor

import "github.com/lang-tools/gqlvisit/ast"

// Path is an ordered sequence of Keys from the document root to the node a
// callback is being invoked for. It is the same addressing scheme ast.Node
// uses for single-level structural edits, accumulated across the whole
// walk.
type Path = ast.Path

// EnterLeaveFunc is the shape of a single enter or leave callback. The
// error return is a traversal-level addition standing in for "a callback
// may itself fail": any non-nil error aborts Visit immediately, wrapped
// with the current path.
type EnterLeaveFunc func(n ast.Node, key ast.Key, parent ast.Node, path Path, ancestors []ast.Node) (Command, error)

// Visitor selects the callback, if any, for a given kind and phase. It is
// the contract the traversal engine, the Parallel Combinator, and the
// Type-Info Combinator all consume.
type Visitor interface {
	// EnterCallback returns the enter callback for kind, or nil.
	EnterCallback(kind ast.Kind) EnterLeaveFunc
	// LeaveCallback returns the leave callback for kind, or nil.
	LeaveCallback(kind ast.Kind) EnterLeaveFunc
}

// KindCallbacks is the enter/leave pair registered for one node kind.
type KindCallbacks struct {
	Enter EnterLeaveFunc
	Leave EnterLeaveFunc
}

// EnterOnly builds a KindCallbacks with only an enter callback — sugar for
// the common case of a visitor that only needs to look at a kind on the
// way in.
func EnterOnly(fn EnterLeaveFunc) KindCallbacks {
	return KindCallbacks{Enter: fn}
}

// KindMap dispatches by exact node kind; a kind absent from the map, or
// present with a nil callback for the requested phase, dispatches nothing.
type KindMap map[ast.Kind]KindCallbacks

// EnterCallback implements Visitor.
func (m KindMap) EnterCallback(kind ast.Kind) EnterLeaveFunc { return m[kind].Enter }

// LeaveCallback implements Visitor.
func (m KindMap) LeaveCallback(kind ast.Kind) EnterLeaveFunc { return m[kind].Leave }

// Wildcard applies its callbacks to every kind.
type Wildcard struct {
	Enter EnterLeaveFunc
	Leave EnterLeaveFunc
}

// EnterCallback implements Visitor.
func (w Wildcard) EnterCallback(ast.Kind) EnterLeaveFunc { return w.Enter }

// LeaveCallback implements Visitor.
func (w Wildcard) LeaveCallback(ast.Kind) EnterLeaveFunc { return w.Leave }

// combinedVisitor tries a KindMap entry first, falling back to a Wildcard.
type combinedVisitor struct {
	kindMap  KindMap
	wildcard Wildcard
}

// Combine builds a Visitor that dispatches the kind-specific callback in
// kindMap when present, falling back to wildcard's callback for kinds (or
// phases) kindMap does not cover.
func Combine(kindMap KindMap, wildcard Wildcard) Visitor {
	return combinedVisitor{kindMap: kindMap, wildcard: wildcard}
}

// EnterCallback implements Visitor.
func (c combinedVisitor) EnterCallback(kind ast.Kind) EnterLeaveFunc {
	if cb, ok := c.kindMap[kind]; ok && cb.Enter != nil {
		return cb.Enter
	}
	return c.wildcard.Enter
}

// LeaveCallback implements Visitor.
func (c combinedVisitor) LeaveCallback(kind ast.Kind) EnterLeaveFunc {
	if cb, ok := c.kindMap[kind]; ok && cb.Leave != nil {
		return cb.Leave
	}
	return c.wildcard.Leave
}
