package mcpserver

import (
	"context"
	"sort"

	"github.com/lang-tools/gqlvisit/ast"
	"github.com/lang-tools/gqlvisit/internal/names"
	"github.com/lang-tools/gqlvisit/internal/transforms"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type describeNodeKindsInput struct{}

type slotDescription struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type nodeKindDescription struct {
	Kind        string            `json:"kind"`
	DisplayName string            `json:"display_name"`
	Slots       []slotDescription `json:"slots,omitempty"`
}

type describeNodeKindsOutput struct {
	Kinds      []nodeKindDescription `json:"kinds"`
	Transforms []string              `json:"transforms"`
}

func handleDescribeNodeKinds(_ context.Context, _ *mcp.CallToolRequest, _ describeNodeKindsInput) (*mcp.CallToolResult, describeNodeKindsOutput, error) {
	kinds := make([]string, 0, len(ast.KindInfo))
	for k := range ast.KindInfo {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	output := describeNodeKindsOutput{
		Kinds:      make([]nodeKindDescription, 0, len(kinds)),
		Transforms: transforms.Names(),
	}
	for _, k := range kinds {
		desc := ast.KindInfo[ast.Kind(k)]
		entry := nodeKindDescription{
			Kind:        k,
			DisplayName: names.Spaced(k),
		}
		for _, slot := range desc.Slots {
			slotKind := "single"
			if slot.SlotKind == ast.SlotKindSequence {
				slotKind = "sequence"
			}
			entry.Slots = append(entry.Slots, slotDescription{Name: slot.Name, Kind: slotKind})
		}
		output.Kinds = append(output.Kinds, entry)
	}

	return nil, output, nil
}
