package ast

import (
	"strings"
	"testing"
)

func buildSampleField(t *testing.T) Node {
	t.Helper()
	name, err := NewLeaf(KindName, "hero")
	if err != nil {
		t.Fatalf("NewLeaf: %v", err)
	}
	field, err := New(KindField, map[string]any{"name": name})
	if err != nil {
		t.Fatalf("New Field: %v", err)
	}
	return field
}

func TestMarshalJSONKeyOrder(t *testing.T) {
	field := buildSampleField(t)
	data, err := MarshalJSON(field)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	s := string(data)
	kindPos := strings.Index(s, `"kind"`)
	namePos := strings.Index(s, `"name"`)
	if kindPos == -1 || namePos == -1 || kindPos > namePos {
		t.Errorf("expected \"kind\" before \"name\", got %s", s)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	field := buildSampleField(t)
	data, err := MarshalJSON(field)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	decoded, err := UnmarshalJSON(data)
	if err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if decoded.Kind() != KindField {
		t.Fatalf("decoded.Kind() = %s, want Field", decoded.Kind())
	}
	name, ok := decoded.Child(KeyForSlot("name"))
	if !ok {
		t.Fatal("decoded field has no name child")
	}
	v, ok := LeafValue(name)
	if !ok || v != "hero" {
		t.Errorf("decoded name leaf = %q, %v, want hero, true", v, ok)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	field := buildSampleField(t)
	data, err := MarshalYAML(field)
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}
	decoded, err := UnmarshalYAML(data)
	if err != nil {
		t.Fatalf("UnmarshalYAML: %v", err)
	}
	if decoded.Kind() != KindField {
		t.Fatalf("decoded.Kind() = %s, want Field", decoded.Kind())
	}
}

func TestUnmarshalJSONUnknownKind(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{"kind":"Bogus"}`))
	if err == nil {
		t.Fatal("expected error decoding unknown kind")
	}
}

func TestUnmarshalJSONMissingKind(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{}`))
	if err == nil {
		t.Fatal("expected error decoding object with no \"kind\" field")
	}
}
