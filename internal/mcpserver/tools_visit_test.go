package mcpserver

import (
	"context"
	"strings"
	"testing"
)

const sampleDocJSON = `{"kind":"SelectionSet","selections":[{"kind":"Field","name":{"kind":"Name","value":"a"}},{"kind":"Field","name":{"kind":"Name","value":"b"}}]}`

func TestHandleVisitDocumentDeletesField(t *testing.T) {
	input := visitDocumentInput{
		Document:  docInput{Content: sampleDocJSON},
		Transform: "delete-field",
		Args:      []string{"name=a"},
	}

	result, output, err := handleVisitDocument(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("handleVisitDocument: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if strings.Contains(output.Document, `"value":"a"`) {
		t.Errorf("edited document still contains deleted field a: %s", output.Document)
	}
	if !strings.Contains(output.Document, `"value":"b"`) {
		t.Errorf("edited document lost field b: %s", output.Document)
	}
}

func TestHandleVisitDocumentUnknownTransform(t *testing.T) {
	input := visitDocumentInput{
		Document:  docInput{Content: sampleDocJSON},
		Transform: "nope",
	}
	result, _, err := handleVisitDocument(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("handleVisitDocument: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected an error result for an unknown transform")
	}
}

func TestHandleVisitDocumentTrace(t *testing.T) {
	input := visitDocumentInput{
		Document:  docInput{Content: sampleDocJSON},
		Transform: "uppercase-names",
		Trace:     true,
	}
	_, output, err := handleVisitDocument(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("handleVisitDocument: %v", err)
	}
	if len(output.Trace) == 0 {
		t.Fatal("expected a non-empty trace")
	}
	if output.Trace[0].Phase != "enter" {
		t.Errorf("first trace event phase = %q, want enter", output.Trace[0].Phase)
	}
}

func TestHandleVisitDocumentBothInputsRejected(t *testing.T) {
	input := visitDocumentInput{
		Document:  docInput{Content: sampleDocJSON, File: "x.json"},
		Transform: "uppercase-names",
	}
	result, _, err := handleVisitDocument(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("handleVisitDocument: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected an error result when both file and content are set")
	}
}
