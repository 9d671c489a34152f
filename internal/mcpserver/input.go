package mcpserver

import (
	"fmt"
	"os"
	"strings"

	"github.com/lang-tools/gqlvisit/ast"
)

// docInput represents the two ways a document tree can be provided to a
// tool. Exactly one of File or Content must be set. Unlike the teacher's
// specInput, there is no URL variant and no cache: this module has no
// network collaborator and traversal is cheap enough that every call just
// re-decodes its input.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML document file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
	Format  string `json:"format,omitempty"  jsonschema:"Content encoding: json or yaml; inferred from the file extension when file is set, defaults to json for inline content"`
}

// resolve decodes the document tree from whichever input was provided.
func (d docInput) resolve() (ast.Node, error) {
	count := 0
	if d.File != "" {
		count++
	}
	if d.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	format := strings.ToLower(d.Format)
	var raw []byte
	if d.File != "" {
		data, err := os.ReadFile(d.File)
		if err != nil {
			return nil, err
		}
		raw = data
		if format == "" {
			if strings.HasSuffix(d.File, ".yaml") || strings.HasSuffix(d.File, ".yml") {
				format = "yaml"
			} else {
				format = "json"
			}
		}
	} else {
		if int64(len(d.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set GQLVISIT_MAX_INLINE_SIZE to increase",
				len(d.Content), cfg.MaxInlineSize)
		}
		raw = []byte(d.Content)
		if format == "" {
			format = "json"
		}
	}

	switch format {
	case "json":
		return ast.UnmarshalJSON(raw)
	case "yaml":
		return ast.UnmarshalYAML(raw)
	default:
		return nil, fmt.Errorf("unsupported format %q; expected json or yaml", format)
	}
}
