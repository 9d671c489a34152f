// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the gqlvisit traversal engine as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `gqlvisit MCP server — runs named built-in traversal transforms over a JSON or YAML encoded document tree and describes the engine's node-kind registry.

Configuration: defaults are configurable via GQLVISIT_* environment variables set in your MCP client config.

Key settings:
- GQLVISIT_TRACE_LIMIT (default: 500) — maximum number of trace lines visit_document returns
- GQLVISIT_MAX_INLINE_SIZE (default: 1MiB) — maximum size of inline document content`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "gqlvisit", Version: "0.1.0"},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "visit_document",
		Description: "Run a named built-in transform (see describe_node_kinds for the node kinds a transform may touch) over a document tree, supplied as a file path or inline JSON/YAML content. Returns the edited tree and, optionally, an enter/leave trace of the traversal.",
	}, handleVisitDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "describe_node_kinds",
		Description: "List every node kind the engine recognizes along with its declared slots, for orienting a transform or inspecting a document's shape.",
	}, handleDescribeNodeKinds)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// parseTransformArgs parses "key=value" pairs into a map and reports the
// first malformed entry.
func parseTransformArgs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	args := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid arg %q; expected key=value", pair)
		}
		args[k] = v
	}
	return args, nil
}

// truncate caps a slice to at most n elements, reporting how many were
// dropped.
func truncate[T any](items []T, n int) ([]T, int) {
	if n <= 0 || len(items) <= n {
		return items, 0
	}
	return items[:n], len(items) - n
}
