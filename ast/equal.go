package ast

import "github.com/lang-tools/gqlvisit/internal/equalutil"

// Equal reports whether a and b have the same kind, the same leaf value (if
// any), the same declared slots populated with structurally Equal children,
// and the same source Location. It is a structural comparison, not an
// identity comparison — CloneDeep(n) is always Equal to n despite never
// being the same Node.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if !equalutil.EqualPtr(a.Loc(), b.Loc()) {
		return false
	}

	av, aIsLeaf := LeafValue(a)
	bv, bIsLeaf := LeafValue(b)
	if aIsLeaf != bIsLeaf {
		return false
	}
	if aIsLeaf {
		return av == bv
	}

	for _, slot := range a.Slots() {
		switch slot.SlotKind {
		case SlotKindSingle:
			ac, aok := a.Child(KeyForSlot(slot.Name))
			bc, bok := b.Child(KeyForSlot(slot.Name))
			if aok != bok {
				return false
			}
			if aok && !Equal(ac, bc) {
				return false
			}
		case SlotKindSequence:
			as := a.Children(slot.Name)
			bs := b.Children(slot.Name)
			if len(as) != len(bs) {
				return false
			}
			for i := range as {
				if !Equal(as[i], bs[i]) {
					return false
				}
			}
		}
	}
	return true
}
