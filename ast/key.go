package ast

import "strconv"

// Key is the position of a child within its parent: either the parent's
// slot name (for single-child slots) or a slot name plus an integer index
// into that sequence slot. Slot is populated for every non-root position
// (the root is reported with the zero Key); IsIndex selects which of the two
// addressing modes applies.
type Key struct {
	Slot    string
	Index   int
	IsIndex bool
}

// KeyForSlot builds a Key addressing a single-child slot by name.
func KeyForSlot(name string) Key {
	return Key{Slot: name}
}

// KeyForIndex builds a Key addressing one element of a sequence slot by
// the slot's name and the element's position within it.
func KeyForIndex(slot string, index int) Key {
	return Key{Slot: slot, Index: index, IsIndex: true}
}

// String renders a single Key in isolation, e.g. "name" or
// "selections[0]".
func (k Key) String() string {
	if k.IsIndex {
		return k.Slot + "[" + strconv.Itoa(k.Index) + "]"
	}
	return k.Slot
}

// Path is an ordered sequence of Keys from the document root to a node.
// Unlike the flat array graphql-js exposes (which splits a sequence
// descent into two array entries, a slot name then an index), each Key
// here is self-contained: it already carries both the owning slot name
// and, for sequence slots, the index within it. So one traversal level
// contributes exactly one Path entry, not two — the path to a field's
// name four levels deep in "{ a }" has four Keys and renders as
// "definitions[0].selectionSet.selections[0].name".
type Path []Key

// String renders a Path as a dotted, bracketed trail. The root path
// (length zero) renders as "<root>".
func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	out := ""
	for i, k := range p {
		if i > 0 {
			out += "."
		}
		out += k.Slot
		if k.IsIndex {
			out += "[" + strconv.Itoa(k.Index) + "]"
		}
	}
	return out
}

// WithSuffix returns a new Path with key appended, leaving the receiver
// untouched.
func (p Path) WithSuffix(key Key) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = key
	return next
}

// Last returns the final Key on the path and true, or the zero Key and
// false if the path is empty (the root).
func (p Path) Last() (Key, bool) {
	if len(p) == 0 {
		return Key{}, false
	}
	return p[len(p)-1], true
}
