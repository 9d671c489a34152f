package ast

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// wireKind, wireValue and wireLoc are the JSON/YAML field names used besides
// the declared slots: every encoded node carries "kind", a leaf also carries
// "value", and "loc" is read when decoding but never written by MarshalJSON.
const (
	wireKind  = "kind"
	wireValue = "value"
	wireLoc   = "loc"
)

// MarshalJSON encodes a node tree as JSON with keys in a fixed, canonical
// order: "kind" first, then each declared slot in the registry's visit
// order. Unlike a plain json.Marshal of a map, this ordering is stable
// across encodes of the same kind, which keeps diffs of re-serialized
// trees minimal — the concern the teacher's ordered-marshal machinery
// solves for dynamically-shaped documents, solved here structurally since
// every kind's layout is fixed by the registry rather than recovered from
// a source document.
func MarshalJSON(n Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := marshalNodeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalNodeJSON(buf *bytes.Buffer, n Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	kind := n.Kind()
	buf.WriteByte('{')
	if err := writeJSONField(buf, wireKind, string(kind), true); err != nil {
		return err
	}

	if v, ok := LeafValue(n); ok {
		if err := writeJSONField(buf, wireValue, v, false); err != nil {
			return err
		}
	}

	for _, slot := range n.Slots() {
		switch slot.SlotKind {
		case SlotKindSingle:
			child, ok := n.Child(KeyForSlot(slot.Name))
			if !ok {
				continue
			}
			buf.WriteByte(',')
			if err := writeJSONKey(buf, slot.Name); err != nil {
				return err
			}
			if err := marshalNodeJSON(buf, child); err != nil {
				return err
			}
		case SlotKindSequence:
			children := n.Children(slot.Name)
			buf.WriteByte(',')
			if err := writeJSONKey(buf, slot.Name); err != nil {
				return err
			}
			buf.WriteByte('[')
			for i, child := range children {
				if i > 0 {
					buf.WriteByte(',')
				}
				if err := marshalNodeJSON(buf, child); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
		}
	}

	buf.WriteByte('}')
	return nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	data, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(data)
	buf.WriteByte(':')
	return nil
}

func writeJSONField(buf *bytes.Buffer, key, value string, first bool) error {
	if !first {
		buf.WriteByte(',')
	}
	if err := writeJSONKey(buf, key); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// UnmarshalJSON decodes a node tree previously produced by MarshalJSON (or
// any JSON object carrying a "kind" field plus that kind's declared
// slots).
func UnmarshalJSON(data []byte) (Node, error) {
	var raw json.RawMessage = data
	return unmarshalNodeJSON(raw)
}

func unmarshalNodeJSON(raw json.RawMessage) (Node, error) {
	trimmed := bytes.TrimSpace(raw)
	if string(trimmed) == "null" {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("ast: decode node: %w", err)
	}

	kindRaw, ok := fields[wireKind]
	if !ok {
		return nil, &MalformedNodeError{Reason: "missing \"kind\" field"}
	}
	var kind Kind
	if err := json.Unmarshal(kindRaw, &kind); err != nil {
		return nil, fmt.Errorf("ast: decode kind: %w", err)
	}

	desc, ok := KindInfo[kind]
	if !ok {
		return nil, &MalformedNodeError{Kind: kind, Reason: "unknown kind"}
	}

	var result Node
	if len(desc.Slots) == 0 {
		value := ""
		if valueRaw, ok := fields[wireValue]; ok {
			if err := json.Unmarshal(valueRaw, &value); err != nil {
				return nil, fmt.Errorf("ast: decode leaf value: %w", err)
			}
		}
		leafNode, err := NewLeaf(kind, value)
		if err != nil {
			return nil, err
		}
		result = leafNode
	} else {
		slots := make(map[string]any, len(desc.Slots))
		for _, slot := range desc.Slots {
			raw, ok := fields[slot.Name]
			if !ok {
				continue
			}
			switch slot.SlotKind {
			case SlotKindSingle:
				child, err := unmarshalNodeJSON(raw)
				if err != nil {
					return nil, err
				}
				if child != nil {
					slots[slot.Name] = child
				}
			case SlotKindSequence:
				var items []json.RawMessage
				if err := json.Unmarshal(raw, &items); err != nil {
					return nil, fmt.Errorf("ast: decode slot %q: %w", slot.Name, err)
				}
				children := make([]Node, 0, len(items))
				for _, item := range items {
					child, err := unmarshalNodeJSON(item)
					if err != nil {
						return nil, err
					}
					children = append(children, child)
				}
				slots[slot.Name] = children
			}
		}
		built, err := New(kind, slots)
		if err != nil {
			return nil, err
		}
		result = built
	}

	if locRaw, ok := fields[wireLoc]; ok && string(bytes.TrimSpace(locRaw)) != "null" {
		var loc Location
		if err := json.Unmarshal(locRaw, &loc); err != nil {
			return nil, fmt.Errorf("ast: decode loc: %w", err)
		}
		result = result.WithLoc(&loc)
	}

	return result, nil
}

// MarshalYAML encodes a node tree to YAML using go.yaml.in/yaml/v4,
// round-tripping through the same canonical JSON shape so the two codecs
// never drift apart.
func MarshalYAML(n Node) ([]byte, error) {
	data, err := MarshalJSON(n)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

// UnmarshalYAML decodes a node tree from YAML by converting it to the
// canonical JSON shape UnmarshalJSON expects.
func UnmarshalYAML(data []byte) (Node, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("ast: decode yaml: %w", err)
	}
	jsonData, err := json.Marshal(generic)
	if err != nil {
		return nil, err
	}
	return UnmarshalJSON(jsonData)
}
