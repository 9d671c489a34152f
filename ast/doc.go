// Package ast defines the node model a traversal walks: a closed set of
// GraphQL-like document kinds, each with a fixed, registry-declared slot
// layout, plus the Key/Path addressing scheme the traversal engine and its
// combinators use to report position and perform copy-on-write edits.
//
// Nodes are immutable from a caller's point of view. WithSlot and
// WithSlotRemoved never modify their receiver; they return a shallow copy
// with one slot changed, leaving every other slot — including nested
// children — shared with the original. CloneDeep exists for the rarer case
// where a caller needs a subtree to stop sharing structure with its source.
//
// The package also owns the one order-preserving encoding this module
// ships with two codecs over: JSON (codec.go) and, built from the same
// canonical shape, YAML via go.yaml.in/yaml/v4. Both are a concrete stand-in
// for the external parser/printer boundary, not part of the traversal
// engine's own contract.
package ast
