// Package gqlvisit is the module root for a depth-first traversal engine
// over a GraphQL-like document tree.
//
// gqlvisit offers a single-callback visit API with copy-on-write structural
// edits, built from four core packages:
//
//   - ast: the node model — a compile-time registry of node kinds and their
//     slots, a single generic Node implementation, and JSON/YAML codecs.
//   - visitor: the Traversal Engine — visit(root, visitor) performs one
//     depth-first pass, dispatching enter/leave events and interpreting the
//     Continue/Skip/Stop/Delete/Replace commands callbacks return.
//   - parallel: combines several visitors into one, running each with
//     independent skip/stop state as if it had its own traversal.
//   - typeinfo: composes an externally supplied type-tracker with a user
//     visitor so every callback observes the tracker's state as of just
//     after the tracker processed the current event.
//
// # Quick Start
//
// Parse or otherwise construct a document tree, then visit it:
//
//	root, err := ast.UnmarshalJSON(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	edited, err := visitor.Visit(root, visitor.KindMap{
//		ast.KindField: visitor.EnterOnly(func(n ast.Node, key ast.Key, parent ast.Node, path visitor.Path, ancestors []ast.Node) (visitor.Command, error) {
//			nameNode, _ := n.Child(ast.KeyForSlot("name"))
//			if name, _ := ast.LeafValue(nameNode); name == "secret" {
//				return visitor.Delete, nil
//			}
//			return visitor.Continue, nil
//		}),
//	})
//
// # Non-goals
//
// The engine does not parse text into a tree, print a tree back to text, or
// validate a tree against a schema — those are external collaborators. It
// does not run traversals concurrently across goroutines, persist trees, or
// support incremental re-traversal after a targeted edit.
//
// # Command-Line Interface and MCP Server
//
// In addition to the library packages, gqlvisit provides a command-line
// interface and an MCP server exposing the same operations as tools:
//
//	gqlvisit describe                 list every node kind and its slots
//	gqlvisit visit [flags] <file>     run a named transform over a document
//	gqlvisit serve                    run the MCP server over stdio
//
// Install the CLI:
//
//	go install github.com/lang-tools/gqlvisit/cmd/gqlvisit@latest
package gqlvisit
