package visitor

import (
	"testing"

	"github.com/lang-tools/gqlvisit/ast"
)

// field builds a Field node named name, with an optional nested selection
// set built from children.
func field(t *testing.T, name string, children ...ast.Node) ast.Node {
	t.Helper()
	nameNode, err := ast.NewLeaf(ast.KindName, name)
	if err != nil {
		t.Fatalf("NewLeaf(Name): %v", err)
	}
	slots := map[string]any{"name": nameNode}
	if len(children) > 0 {
		set, err := ast.New(ast.KindSelectionSet, map[string]any{"selections": children})
		if err != nil {
			t.Fatalf("New(SelectionSet): %v", err)
		}
		slots["selectionSet"] = set
	}
	f, err := ast.New(ast.KindField, slots)
	if err != nil {
		t.Fatalf("New(Field): %v", err)
	}
	return f
}

// document builds a Document with a single anonymous query operation whose
// selection set is fields.
func document(t *testing.T, fields ...ast.Node) ast.Node {
	t.Helper()
	set, err := ast.New(ast.KindSelectionSet, map[string]any{"selections": fields})
	if err != nil {
		t.Fatalf("New(SelectionSet): %v", err)
	}
	op, err := ast.New(ast.KindOperationDefinition, map[string]any{"selectionSet": set})
	if err != nil {
		t.Fatalf("New(OperationDefinition): %v", err)
	}
	doc, err := ast.New(ast.KindDocument, map[string]any{"definitions": []ast.Node{op}})
	if err != nil {
		t.Fatalf("New(Document): %v", err)
	}
	return doc
}

// fieldNames returns the Name leaf values of a SelectionSet's top-level
// Field selections, for asserting shape after edits.
func fieldNames(t *testing.T, selectionSet ast.Node) []string {
	t.Helper()
	var names []string
	for _, sel := range selectionSet.Children("selections") {
		nameNode, ok := sel.Child(ast.KeyForSlot("name"))
		if !ok {
			t.Fatalf("selection %v has no name", sel)
		}
		v, ok := ast.LeafValue(nameNode)
		if !ok {
			t.Fatalf("name node %v is not a leaf", nameNode)
		}
		names = append(names, v)
	}
	return names
}

func documentSelectionSet(doc ast.Node) ast.Node {
	op := doc.Children("definitions")[0]
	set, _ := op.Child(ast.KeyForSlot("selectionSet"))
	return set
}
