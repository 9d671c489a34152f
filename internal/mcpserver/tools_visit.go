package mcpserver

import (
	"context"

	"github.com/lang-tools/gqlvisit/ast"
	"github.com/lang-tools/gqlvisit/internal/transforms"
	"github.com/lang-tools/gqlvisit/visitor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type visitDocumentInput struct {
	Document  docInput `json:"document"        jsonschema:"The tree to visit"`
	Transform string   `json:"transform"        jsonschema:"Name of a registered built-in transform; see describe_node_kinds for available kinds"`
	Args      []string `json:"args,omitempty"   jsonschema:"key=value arguments passed to the transform, e.g. name=id for delete-field"`
	Trace     bool     `json:"trace,omitempty"  jsonschema:"Include an enter/leave event trace in the response"`
}

type visitTraceEvent struct {
	Phase string `json:"phase"`
	Kind  string `json:"kind"`
	Path  string `json:"path"`
}

type visitDocumentOutput struct {
	Format         string            `json:"format"`
	Document       string            `json:"document"`
	Trace          []visitTraceEvent `json:"trace,omitempty"`
	TraceTruncated int               `json:"trace_truncated,omitempty"`
}

func handleVisitDocument(_ context.Context, _ *mcp.CallToolRequest, input visitDocumentInput) (*mcp.CallToolResult, visitDocumentOutput, error) {
	root, err := input.Document.resolve()
	if err != nil {
		return errResult(err), visitDocumentOutput{}, nil
	}

	args, err := parseTransformArgs(input.Args)
	if err != nil {
		return errResult(err), visitDocumentOutput{}, nil
	}

	v, err := transforms.Build(input.Transform, args)
	if err != nil {
		return errResult(err), visitDocumentOutput{}, nil
	}

	var opts []visitor.Option
	var trace []visitTraceEvent
	if input.Trace {
		opts = append(opts, visitor.WithLogger(&traceLogger{events: &trace}))
	}

	edited, err := visitor.Visit(root, v, opts...)
	if err != nil {
		return errResult(err), visitDocumentOutput{}, nil
	}

	data, err := ast.MarshalJSON(edited)
	if err != nil {
		return errResult(err), visitDocumentOutput{}, nil
	}

	output := visitDocumentOutput{Format: "json", Document: string(data)}
	if input.Trace {
		page, dropped := truncate(trace, cfg.TraceLimit)
		output.Trace = page
		output.TraceTruncated = dropped
	}
	return nil, output, nil
}
