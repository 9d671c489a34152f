package ast

import (
	"errors"
	"testing"
)

func TestNewUnknownKind(t *testing.T) {
	_, err := New(Kind("Bogus"), nil)
	if !errors.Is(err, ErrMalformedNode) {
		t.Fatalf("New with unknown kind: err = %v, want ErrMalformedNode", err)
	}
}

func TestNewUndeclaredSlot(t *testing.T) {
	name, _ := NewLeaf(KindName, "id")
	_, err := New(KindName, map[string]any{"bogus": name})
	if err == nil {
		t.Fatal("expected error for undeclared slot on a leaf kind")
	}
	if !errors.Is(err, ErrMalformedNode) {
		t.Errorf("err = %v, want ErrMalformedNode", err)
	}
}

func TestNewFieldRoundTrip(t *testing.T) {
	name, err := NewLeaf(KindName, "id")
	if err != nil {
		t.Fatalf("NewLeaf: %v", err)
	}
	arg, err := New(KindArgument, map[string]any{"name": name})
	if err != nil {
		t.Fatalf("New Argument: %v", err)
	}

	field, err := New(KindField, map[string]any{
		"name":      name,
		"arguments": []Node{arg},
	})
	if err != nil {
		t.Fatalf("New Field: %v", err)
	}

	if field.Kind() != KindField {
		t.Errorf("Kind() = %s, want Field", field.Kind())
	}
	got, ok := field.Child(KeyForSlot("name"))
	if !ok || got != name {
		t.Errorf("Child(name) = %v, %v, want %v, true", got, ok, name)
	}
	args := field.Children("arguments")
	if len(args) != 1 || args[0] != arg {
		t.Errorf("Children(arguments) = %v, want [%v]", args, arg)
	}
	if _, ok := field.Child(KeyForSlot("selectionSet")); ok {
		t.Error("Child(selectionSet) should be absent")
	}
}

func TestWithSlotSingleIsImmutable(t *testing.T) {
	a, _ := NewLeaf(KindName, "a")
	b, _ := NewLeaf(KindName, "b")
	arg, _ := New(KindArgument, map[string]any{"name": a})

	edited := arg.WithSlot(KeyForSlot("name"), b)

	got, _ := arg.Child(KeyForSlot("name"))
	if got != a {
		t.Errorf("original node mutated: Child(name) = %v, want %v", got, a)
	}
	got2, _ := edited.Child(KeyForSlot("name"))
	if got2 != b {
		t.Errorf("edited node: Child(name) = %v, want %v", got2, b)
	}
}

func TestWithSlotSequenceIsImmutable(t *testing.T) {
	a, _ := NewLeaf(KindName, "a")
	b, _ := NewLeaf(KindName, "b")
	c, _ := NewLeaf(KindName, "c")
	set, _ := New(KindSelectionSet, map[string]any{"selections": []Node{a, b}})

	edited := set.WithSlot(KeyForIndex("selections", 1), c)

	orig := set.Children("selections")
	if orig[1] != b {
		t.Errorf("original sequence mutated: %v", orig)
	}
	updated := edited.Children("selections")
	if updated[0] != a || updated[1] != c {
		t.Errorf("edited sequence = %v, want [a c]", updated)
	}
}

func TestWithSlotRemovedSequence(t *testing.T) {
	a, _ := NewLeaf(KindName, "a")
	b, _ := NewLeaf(KindName, "b")
	c, _ := NewLeaf(KindName, "c")
	set, _ := New(KindSelectionSet, map[string]any{"selections": []Node{a, b, c}})

	edited := set.WithSlotRemoved(KeyForIndex("selections", 1))

	if len(set.Children("selections")) != 3 {
		t.Error("original sequence mutated by removal")
	}
	remaining := edited.Children("selections")
	if len(remaining) != 2 || remaining[0] != a || remaining[1] != c {
		t.Errorf("edited sequence = %v, want [a c]", remaining)
	}
}

func TestWithSlotRemovedSingle(t *testing.T) {
	name, _ := NewLeaf(KindName, "x")
	field, _ := New(KindField, map[string]any{"name": name})

	edited := field.WithSlotRemoved(KeyForSlot("name"))

	if _, ok := field.Child(KeyForSlot("name")); !ok {
		t.Error("original node mutated by removal")
	}
	if _, ok := edited.Child(KeyForSlot("name")); ok {
		t.Error("edited node should no longer have a name child")
	}
}

func TestLeafValue(t *testing.T) {
	n, _ := NewLeaf(KindIntValue, "42")
	v, ok := LeafValue(n)
	if !ok || v != "42" {
		t.Errorf("LeafValue = %q, %v, want 42, true", v, ok)
	}

	nonLeaf, _ := New(KindSelectionSet, nil)
	if _, ok := LeafValue(nonLeaf); ok {
		t.Error("LeafValue on a non-leaf node should report false")
	}
}

func TestWithLocDoesNotAffectOriginal(t *testing.T) {
	n, _ := NewLeaf(KindName, "x")
	if n.Loc() != nil {
		t.Fatal("fresh node should have no location")
	}
	loc := &Location{Start: 0, End: 1}
	located := n.WithLoc(loc)
	if n.Loc() != nil {
		t.Error("WithLoc mutated the original node")
	}
	if located.Loc() != loc {
		t.Error("WithLoc did not attach the location")
	}
}
