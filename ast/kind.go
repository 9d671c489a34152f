package ast

// Kind discriminates the closed set of node kinds this package models. It is
// a plain string so that diagnostics, logs, and the JSON codec never need a
// separate lookup table to print one.
type Kind string

// Executable document kinds.
const (
	KindDocument            Kind = "Document"
	KindOperationDefinition Kind = "OperationDefinition"
	KindVariableDefinition  Kind = "VariableDefinition"
	KindSelectionSet        Kind = "SelectionSet"
	KindField               Kind = "Field"
	KindArgument            Kind = "Argument"
	KindFragmentSpread      Kind = "FragmentSpread"
	KindInlineFragment      Kind = "InlineFragment"
	KindFragmentDefinition  Kind = "FragmentDefinition"
	KindVariable            Kind = "Variable"
	KindDirective           Kind = "Directive"
	KindName                Kind = "Name"
)

// Type reference kinds.
const (
	KindNamedType   Kind = "NamedType"
	KindListType    Kind = "ListType"
	KindNonNullType Kind = "NonNullType"
)

// Value kinds.
const (
	KindIntValue     Kind = "IntValue"
	KindFloatValue   Kind = "FloatValue"
	KindStringValue  Kind = "StringValue"
	KindBooleanValue Kind = "BooleanValue"
	KindNullValue    Kind = "NullValue"
	KindEnumValue    Kind = "EnumValue"
	KindListValue    Kind = "ListValue"
	KindObjectValue  Kind = "ObjectValue"
	KindObjectField  Kind = "ObjectField"
)

// Schema-definition kinds, recovered from the full GraphQL language grammar.
const (
	KindSchemaDefinition           Kind = "SchemaDefinition"
	KindOperationTypeDefinition    Kind = "OperationTypeDefinition"
	KindScalarTypeDefinition       Kind = "ScalarTypeDefinition"
	KindObjectTypeDefinition       Kind = "ObjectTypeDefinition"
	KindFieldDefinition            Kind = "FieldDefinition"
	KindInputValueDefinition       Kind = "InputValueDefinition"
	KindInterfaceTypeDefinition    Kind = "InterfaceTypeDefinition"
	KindUnionTypeDefinition        Kind = "UnionTypeDefinition"
	KindEnumTypeDefinition         Kind = "EnumTypeDefinition"
	KindEnumValueDefinition        Kind = "EnumValueDefinition"
	KindInputObjectTypeDefinition  Kind = "InputObjectTypeDefinition"
	KindDirectiveDefinition        Kind = "DirectiveDefinition"
)

// SlotKind tags whether a slot holds a single child node or a sequence of
// them. The traversal engine dispatches Enter/Leave differently for each.
type SlotKind int

const (
	// SlotKindSingle is a slot holding at most one child Node.
	SlotKindSingle SlotKind = iota
	// SlotKindSequence is a slot holding an ordered list of child Nodes.
	SlotKindSequence
)

// Slot describes one child-bearing position in a node kind's layout.
type Slot struct {
	// Name is the slot's identifier, used as a Key's Slot field and as the
	// JSON/YAML object key for this child.
	Name string
	// SlotKind says whether Name holds one child or a sequence.
	SlotKind SlotKind
}

// KindDescriptor lists a kind's slots in fixed visit order.
type KindDescriptor struct {
	Kind  Kind
	Slots []Slot
}

func single(name string) Slot   { return Slot{Name: name, SlotKind: SlotKindSingle} }
func sequence(name string) Slot { return Slot{Name: name, SlotKind: SlotKindSequence} }

// KindInfo is the package-level registry of every known kind's slot layout,
// built once at init() from literal table data — never via reflection.
var KindInfo map[Kind]KindDescriptor

func init() {
	descriptors := []KindDescriptor{
		{KindDocument, []Slot{sequence("definitions")}},
		{KindOperationDefinition, []Slot{
			single("name"), sequence("variableDefinitions"), sequence("directives"), single("selectionSet"),
		}},
		{KindVariableDefinition, []Slot{single("variable"), single("type"), single("defaultValue"), sequence("directives")}},
		{KindSelectionSet, []Slot{sequence("selections")}},
		{KindField, []Slot{single("alias"), single("name"), sequence("arguments"), sequence("directives"), single("selectionSet")}},
		{KindArgument, []Slot{single("name"), single("value")}},
		{KindFragmentSpread, []Slot{single("name"), sequence("directives")}},
		{KindInlineFragment, []Slot{single("typeCondition"), sequence("directives"), single("selectionSet")}},
		{KindFragmentDefinition, []Slot{single("name"), single("typeCondition"), sequence("directives"), single("selectionSet")}},
		{KindVariable, []Slot{single("name")}},
		{KindDirective, []Slot{single("name"), sequence("arguments")}},
		{KindName, nil},

		{KindNamedType, []Slot{single("name")}},
		{KindListType, []Slot{single("type")}},
		{KindNonNullType, []Slot{single("type")}},

		{KindIntValue, nil},
		{KindFloatValue, nil},
		{KindStringValue, nil},
		{KindBooleanValue, nil},
		{KindNullValue, nil},
		{KindEnumValue, nil},
		{KindListValue, []Slot{sequence("values")}},
		{KindObjectValue, []Slot{sequence("fields")}},
		{KindObjectField, []Slot{single("name"), single("value")}},

		{KindSchemaDefinition, []Slot{sequence("directives"), sequence("operationTypes")}},
		{KindOperationTypeDefinition, []Slot{single("type")}},
		{KindScalarTypeDefinition, []Slot{single("name"), sequence("directives")}},
		{KindObjectTypeDefinition, []Slot{single("name"), sequence("interfaces"), sequence("directives"), sequence("fields")}},
		{KindFieldDefinition, []Slot{single("name"), sequence("arguments"), single("type"), sequence("directives")}},
		{KindInputValueDefinition, []Slot{single("name"), single("type"), single("defaultValue"), sequence("directives")}},
		{KindInterfaceTypeDefinition, []Slot{single("name"), sequence("interfaces"), sequence("directives"), sequence("fields")}},
		{KindUnionTypeDefinition, []Slot{single("name"), sequence("directives"), sequence("types")}},
		{KindEnumTypeDefinition, []Slot{single("name"), sequence("directives"), sequence("values")}},
		{KindEnumValueDefinition, []Slot{single("name"), sequence("directives")}},
		{KindInputObjectTypeDefinition, []Slot{single("name"), sequence("directives"), sequence("fields")}},
		{KindDirectiveDefinition, []Slot{single("name"), sequence("arguments"), sequence("locations")}},
	}

	KindInfo = make(map[Kind]KindDescriptor, len(descriptors))
	for _, d := range descriptors {
		KindInfo[d.Kind] = d
	}
}

// Known reports whether kind is registered.
func Known(kind Kind) bool {
	_, ok := KindInfo[kind]
	return ok
}
