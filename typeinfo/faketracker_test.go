package typeinfo

import "github.com/lang-tools/gqlvisit/ast"

// faketracker is a minimal, non-schema-aware stand-in for a real GraphQL
// type tracker: it just records the sequence of Enter/Leave calls it
// receives, keyed by node kind, so a test can assert the tracker stayed
// balanced and observed the events in the expected order.
type faketracker struct {
	trace []string
	depth int
}

func (f *faketracker) Enter(n ast.Node) {
	f.trace = append(f.trace, "enter:"+string(n.Kind()))
	f.depth++
}

func (f *faketracker) Leave(n ast.Node) {
	f.depth--
	f.trace = append(f.trace, "leave:"+string(n.Kind()))
}
