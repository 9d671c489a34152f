package ast

import "fmt"

// Location carries parser-supplied source position. The traversal engine
// never inspects or mutates it; it is pure pass-through cargo attached by
// whatever parser built the tree.
type Location struct {
	Start, End             int
	StartLine, StartColumn int
	EndLine, EndColumn     int
	Source                 string
}

// NoLocation reports the absence of a source position — the nil *Location,
// spelled out so callers don't have to know a bare nil means "no location".
func NoLocation() *Location { return nil }

// leaf carries a leaf node's scalar payload: the literal text of a Name or
// a scalar Value kind (IntValue, StringValue, BooleanValue, ...). Leaf
// kinds have no Slots and are never dispatched into by the traversal
// engine beyond Enter/Leave of the leaf itself.
type leaf struct {
	value string
}

// Node is the shared contract every kind's representation satisfies. A Node
// is immutable from the traversal engine's point of view: every structural
// edit method returns a new Node rather than mutating the receiver.
type Node interface {
	// Kind reports the node's discriminator.
	Kind() Kind
	// Slots returns this kind's fixed, ordered slot layout, sourced from
	// the package registry.
	Slots() []Slot
	// Child returns the single child addressed by key, if key addresses a
	// populated single-child slot.
	Child(key Key) (Node, bool)
	// Children returns the sequence at the named slot, or nil if the slot
	// is absent, empty, or not a sequence slot.
	Children(slot string) []Node
	// WithSlot returns a shallow copy of the node with the child addressed
	// by key substituted by value. Never mutates the receiver.
	WithSlot(key Key, value Node) Node
	// WithSlotRemoved returns a shallow copy with the sequence element
	// addressed by key removed. Never mutates the receiver.
	WithSlotRemoved(key Key) Node
	// Loc returns the node's attached source location, or nil.
	Loc() *Location
	// WithLoc returns a shallow copy with Loc replaced.
	WithLoc(loc *Location) Node
}

// node is the single generic Node implementation backing every registered
// kind. Its shape is driven entirely by the kind's KindDescriptor rather
// than a bespoke Go struct per kind, so adding a kind to the registry never
// requires a matching new type.
type node struct {
	kind   Kind
	single map[string]Node
	seq    map[string][]Node
	leaf   *leaf
	loc    *Location
}

// New constructs a Node of the given kind from a slot map. An unknown kind,
// or a slot name not declared for kind, produces a *MalformedNodeError.
// Single-child slots take a Node value; sequence slots take a []Node
// value. A leaf kind (no declared slots) takes an empty slot map and
// should be built with NewLeaf instead.
func New(kind Kind, slots map[string]any) (Node, error) {
	desc, ok := KindInfo[kind]
	if !ok {
		return nil, &MalformedNodeError{Kind: kind, Reason: "unknown kind"}
	}

	declared := make(map[string]SlotKind, len(desc.Slots))
	for _, s := range desc.Slots {
		declared[s.Name] = s.SlotKind
	}

	n := &node{kind: kind}
	for name, val := range slots {
		sk, ok := declared[name]
		if !ok {
			return nil, &MalformedNodeError{Kind: kind, Reason: fmt.Sprintf("slot %q is not declared for kind %s", name, kind)}
		}
		switch sk {
		case SlotKindSingle:
			if val == nil {
				continue
			}
			child, ok := val.(Node)
			if !ok {
				return nil, &MalformedNodeError{Kind: kind, Reason: fmt.Sprintf("slot %q expects a Node value", name)}
			}
			if n.single == nil {
				n.single = make(map[string]Node)
			}
			n.single[name] = child
		case SlotKindSequence:
			children, ok := val.([]Node)
			if !ok {
				return nil, &MalformedNodeError{Kind: kind, Reason: fmt.Sprintf("slot %q expects a []Node value", name)}
			}
			if n.seq == nil {
				n.seq = make(map[string][]Node)
			}
			n.seq[name] = children
		}
	}
	return n, nil
}

// NewLeaf constructs a leaf Node (a kind with no declared slots, such as
// Name or a scalar value kind) carrying the given literal value.
func NewLeaf(kind Kind, value string) (Node, error) {
	if _, ok := KindInfo[kind]; !ok {
		return nil, &MalformedNodeError{Kind: kind, Reason: "unknown kind"}
	}
	return &node{kind: kind, leaf: &leaf{value: value}}, nil
}

func (n *node) Kind() Kind     { return n.kind }
func (n *node) Slots() []Slot  { return KindInfo[n.kind].Slots }
func (n *node) Loc() *Location { return n.loc }

func (n *node) Child(key Key) (Node, bool) {
	if key.IsIndex {
		return nil, false
	}
	c, ok := n.single[key.Slot]
	return c, ok
}

func (n *node) Children(slot string) []Node {
	return n.seq[slot]
}

func (n *node) WithSlot(key Key, value Node) Node {
	clone := n.shallowCopy()
	if key.IsIndex {
		old := clone.seq[key.Slot]
		next := make([]Node, len(old))
		copy(next, old)
		if key.Index >= 0 && key.Index < len(next) {
			next[key.Index] = value
		}
		if clone.seq == nil {
			clone.seq = make(map[string][]Node)
		}
		clone.seq[key.Slot] = next
		return clone
	}
	next := make(map[string]Node, len(clone.single)+1)
	for k, v := range clone.single {
		next[k] = v
	}
	next[key.Slot] = value
	clone.single = next
	return clone
}

func (n *node) WithSlotRemoved(key Key) Node {
	clone := n.shallowCopy()
	if !key.IsIndex {
		if clone.single != nil {
			next := make(map[string]Node, len(clone.single))
			for k, v := range clone.single {
				if k != key.Slot {
					next[k] = v
				}
			}
			clone.single = next
		}
		return clone
	}
	old := clone.seq[key.Slot]
	if key.Index < 0 || key.Index >= len(old) {
		return clone
	}
	next := make([]Node, 0, len(old)-1)
	next = append(next, old[:key.Index]...)
	next = append(next, old[key.Index+1:]...)
	if clone.seq == nil {
		clone.seq = make(map[string][]Node)
	}
	clone.seq[key.Slot] = next
	return clone
}

func (n *node) WithLoc(loc *Location) Node {
	clone := n.shallowCopy()
	clone.loc = loc
	return clone
}

func (n *node) shallowCopy() *node {
	clone := &node{kind: n.kind, leaf: n.leaf, loc: n.loc}
	if n.single != nil {
		clone.single = make(map[string]Node, len(n.single))
		for k, v := range n.single {
			clone.single[k] = v
		}
	}
	if n.seq != nil {
		clone.seq = make(map[string][]Node, len(n.seq))
		for k, v := range n.seq {
			next := make([]Node, len(v))
			copy(next, v)
			clone.seq[k] = next
		}
	}
	return clone
}

// LeafValue returns the literal text carried by a leaf node, or "" and
// false if n is not a leaf built by NewLeaf.
func LeafValue(n Node) (string, bool) {
	ln, ok := n.(*node)
	if !ok || ln.leaf == nil {
		return "", false
	}
	return ln.leaf.value, true
}
