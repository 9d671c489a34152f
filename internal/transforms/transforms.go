// Package transforms holds a small registry of named, built-in visitors
// that cmd/gqlvisit and internal/mcpserver can run by name over a supplied
// document, so neither has to embed transform logic directly.
package transforms

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lang-tools/gqlvisit/ast"
	"github.com/lang-tools/gqlvisit/visitor"
)

// Builder constructs a Visitor from a set of string arguments. Arguments
// unrecognized by a given transform are ignored; missing required
// arguments are a fatal error.
type Builder func(args map[string]string) (visitor.Visitor, error)

// registry maps a transform name to its Builder. Populated in init so
// Names and Build never race with registration.
var registry = map[string]Builder{
	"uppercase-names": buildUppercaseNames,
	"insert-typename": buildInsertTypename,
	"delete-field":    buildDeleteField,
	"rename-field":    buildRenameField,
}

// Names returns every registered transform name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up name and constructs its Visitor with args.
func Build(name string, args map[string]string) (visitor.Visitor, error) {
	builder, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform %q; known: %s", name, strings.Join(Names(), ", "))
	}
	return builder(args)
}

// requireArg fetches a required key from args or reports which transform
// needs it.
func requireArg(transform string, args map[string]string, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == "" {
		return "", fmt.Errorf("transform %q requires -arg %s=<value>", transform, key)
	}
	return v, nil
}

// buildUppercaseNames returns a visitor that replaces every Name leaf's
// value with its upper-cased form.
func buildUppercaseNames(map[string]string) (visitor.Visitor, error) {
	return visitor.KindMap{
		ast.KindName: {
			Enter: func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
				value, ok := ast.LeafValue(n)
				if !ok {
					return visitor.Continue, nil
				}
				upper := strings.ToUpper(value)
				if upper == value {
					return visitor.Continue, nil
				}
				replacement, err := ast.NewLeaf(ast.KindName, upper)
				if err != nil {
					return visitor.Command{}, err
				}
				return visitor.Replace(replacement), nil
			},
		},
	}, nil
}

// buildInsertTypename returns a visitor that gives every selectionless
// Field a freshly inserted selection set containing a single __typename
// field. It has no notion of composite vs. scalar types — this module
// does not implement a type system — so it applies to every Field that
// currently lacks a selection set, except a Field named __typename (such as
// the one it inserts, which the traversal then walks into).
func buildInsertTypename(map[string]string) (visitor.Visitor, error) {
	return visitor.KindMap{
		ast.KindField: {
			Enter: func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
				if _, ok := n.Child(ast.KeyForSlot("selectionSet")); ok {
					return visitor.Continue, nil
				}
				if nameNode, ok := n.Child(ast.KeyForSlot("name")); ok {
					if name, _ := ast.LeafValue(nameNode); name == "__typename" {
						return visitor.Continue, nil
					}
				}
				typenameName, err := ast.NewLeaf(ast.KindName, "__typename")
				if err != nil {
					return visitor.Command{}, err
				}
				typenameField, err := ast.New(ast.KindField, map[string]any{"name": typenameName})
				if err != nil {
					return visitor.Command{}, err
				}
				selectionSet, err := ast.New(ast.KindSelectionSet, map[string]any{
					"selections": []ast.Node{typenameField},
				})
				if err != nil {
					return visitor.Command{}, err
				}
				replacement := n.WithSlot(ast.KeyForSlot("selectionSet"), selectionSet)
				return visitor.Replace(replacement), nil
			},
		},
	}, nil
}

// buildDeleteField returns a visitor that deletes every Field node whose
// name slot matches args["name"].
func buildDeleteField(args map[string]string) (visitor.Visitor, error) {
	target, err := requireArg("delete-field", args, "name")
	if err != nil {
		return nil, err
	}
	return visitor.KindMap{
		ast.KindField: {
			Enter: func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
				nameNode, ok := n.Child(ast.KeyForSlot("name"))
				if !ok {
					return visitor.Continue, nil
				}
				value, _ := ast.LeafValue(nameNode)
				if value == target {
					return visitor.Delete, nil
				}
				return visitor.Continue, nil
			},
		},
	}, nil
}

// buildRenameField returns a visitor that renames every Field node whose
// name slot matches args["from"] to args["to"].
func buildRenameField(args map[string]string) (visitor.Visitor, error) {
	from, err := requireArg("rename-field", args, "from")
	if err != nil {
		return nil, err
	}
	to, err := requireArg("rename-field", args, "to")
	if err != nil {
		return nil, err
	}
	return visitor.KindMap{
		ast.KindName: {
			Enter: func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
				if parent == nil || parent.Kind() != ast.KindField || key.Slot != "name" {
					return visitor.Continue, nil
				}
				value, ok := ast.LeafValue(n)
				if !ok || value != from {
					return visitor.Continue, nil
				}
				replacement, err := ast.NewLeaf(ast.KindName, to)
				if err != nil {
					return visitor.Command{}, err
				}
				return visitor.Replace(replacement), nil
			},
		},
	}, nil
}
