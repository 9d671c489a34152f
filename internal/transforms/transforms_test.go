package transforms

import (
	"testing"

	"github.com/lang-tools/gqlvisit/ast"
	"github.com/lang-tools/gqlvisit/visitor"
)

func fieldWithName(t *testing.T, name string) ast.Node {
	t.Helper()
	nameNode, err := ast.NewLeaf(ast.KindName, name)
	if err != nil {
		t.Fatalf("NewLeaf: %v", err)
	}
	f, err := ast.New(ast.KindField, map[string]any{"name": nameNode})
	if err != nil {
		t.Fatalf("New(Field): %v", err)
	}
	return f
}

func selectionSet(t *testing.T, fields ...ast.Node) ast.Node {
	t.Helper()
	n, err := ast.New(ast.KindSelectionSet, map[string]any{"selections": fields})
	if err != nil {
		t.Fatalf("New(SelectionSet): %v", err)
	}
	return n
}

func TestBuildUnknownTransform(t *testing.T) {
	if _, err := Build("does-not-exist", nil); err == nil {
		t.Fatal("expected an error for an unknown transform")
	}
}

func TestUppercaseNames(t *testing.T) {
	tree := selectionSet(t, fieldWithName(t, "name"))

	v, err := Build("uppercase-names", nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	edited, err := visitor.Visit(tree, v)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}

	field := edited.Children("selections")[0]
	nameNode, _ := field.Child(ast.KeyForSlot("name"))
	value, _ := ast.LeafValue(nameNode)
	if value != "NAME" {
		t.Errorf("name = %q, want NAME", value)
	}
}

func TestInsertTypename(t *testing.T) {
	tree := selectionSet(t, fieldWithName(t, "pets"))

	v, err := Build("insert-typename", nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	edited, err := visitor.Visit(tree, v)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}

	field := edited.Children("selections")[0]
	set, ok := field.Child(ast.KeyForSlot("selectionSet"))
	if !ok {
		t.Fatal("pets did not gain a selection set")
	}
	inner := set.Children("selections")
	if len(inner) != 1 {
		t.Fatalf("inserted selection set has %d selections, want 1", len(inner))
	}
	nameNode, _ := inner[0].Child(ast.KeyForSlot("name"))
	value, _ := ast.LeafValue(nameNode)
	if value != "__typename" {
		t.Errorf("inserted field name = %q, want __typename", value)
	}
}

func TestDeleteFieldRequiresArg(t *testing.T) {
	if _, err := Build("delete-field", nil); err == nil {
		t.Fatal("expected an error when name arg is missing")
	}
}

func TestDeleteField(t *testing.T) {
	tree := selectionSet(t, fieldWithName(t, "a"), fieldWithName(t, "b"))

	v, err := Build("delete-field", map[string]string{"name": "a"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	edited, err := visitor.Visit(tree, v)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	remaining := edited.Children("selections")
	if len(remaining) != 1 {
		t.Fatalf("remaining selections = %d, want 1", len(remaining))
	}
	nameNode, _ := remaining[0].Child(ast.KeyForSlot("name"))
	value, _ := ast.LeafValue(nameNode)
	if value != "b" {
		t.Errorf("remaining field = %q, want b", value)
	}
}

func TestRenameField(t *testing.T) {
	tree := selectionSet(t, fieldWithName(t, "old"))

	v, err := Build("rename-field", map[string]string{"from": "old", "to": "new"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	edited, err := visitor.Visit(tree, v)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	nameNode, _ := edited.Children("selections")[0].Child(ast.KeyForSlot("name"))
	value, _ := ast.LeafValue(nameNode)
	if value != "new" {
		t.Errorf("renamed field = %q, want new", value)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %v", names)
			break
		}
	}
}
