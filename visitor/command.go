package visitor

import "github.com/lang-tools/gqlvisit/ast"

// CommandKind discriminates the five outcomes a callback may signal.
type CommandKind int

const (
	// CmdContinue proceeds normally: descend into the node's children (if
	// returned at enter) or hand the node to its parent unchanged (if
	// returned at leave).
	CmdContinue CommandKind = iota
	// CmdSkip, returned at enter, suppresses descent into the node's
	// children and the node's own leave event. Returned at leave, it has
	// no effect.
	CmdSkip
	// CmdStop aborts the whole traversal immediately. No further leave
	// events fire, including for enclosing ancestors.
	CmdStop
	// CmdDelete removes the node from its parent.
	CmdDelete
	// CmdReplace substitutes a new node for this one.
	CmdReplace
)

// Command is the sum type a callback returns: exactly one of Continue,
// Skip, Stop, Delete, or Replace(node).
type Command struct {
	k    CommandKind
	node ast.Node
}

// Kind reports which outcome this Command represents.
func (c Command) Kind() CommandKind { return c.k }

// Replacement returns the replacement node and true if this is a
// Replace(node') command; otherwise it returns nil, false.
func (c Command) Replacement() (ast.Node, bool) {
	if c.k == CmdReplace {
		return c.node, true
	}
	return nil, false
}

// String names the command, for diagnostic logging.
func (c Command) String() string {
	switch c.k {
	case CmdSkip:
		return "Skip"
	case CmdStop:
		return "Stop"
	case CmdDelete:
		return "Delete"
	case CmdReplace:
		return "Replace"
	default:
		return "Continue"
	}
}

// Continue signals no change: proceed normally.
var Continue = Command{k: CmdContinue}

// Skip signals "do not descend; suppress this node's leave".
var Skip = Command{k: CmdSkip}

// Stop signals "abort the whole traversal immediately".
var Stop = Command{k: CmdStop}

// Delete signals "remove this node from its parent".
var Delete = Command{k: CmdDelete}

// Replace signals "substitute n for this node".
func Replace(n ast.Node) Command {
	return Command{k: CmdReplace, node: n}
}
