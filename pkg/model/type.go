package model

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind is the mapped field type of a schema node.
type Kind int

// Type is a mapped field type. Elem is set for Array kinds.
type Type struct {
	Kind Kind
	Elem *Type
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	String Kind = iota
	Integer
	Number
	Boolean
	Array
	Object
	Null
	Any
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Array:
		return "array"
	case Object:
		return "object"
	case Null:
		return "null"
	case Any:
		return "any"
	}
	return "string"
}

func (t Type) String() string {
	if t.Kind == Array && t.Elem != nil {
		return "array of " + t.Elem.String()
	}
	return t.Kind.String()
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// TypeOf maps a JSON-Schema-like node to a field type. The mapping is total:
// a node which is not a mapping, has no recognizable type, or declares an
// unrecognized type is treated as string-typed, and union nodes (anyOf or
// oneOf) are unconstrained.
func TypeOf(node any) Type {
	schema, ok := node.(map[string]any)
	if !ok {
		return Type{Kind: String}
	}

	// Union nodes are unconstrained
	if _, exists := schema["anyOf"]; exists {
		return Type{Kind: Any}
	}
	if _, exists := schema["oneOf"]; exists {
		return Type{Kind: Any}
	}

	name, _ := schema["type"].(string)
	switch name {
	case "integer":
		return Type{Kind: Integer}
	case "number":
		return Type{Kind: Number}
	case "boolean":
		return Type{Kind: Boolean}
	case "object":
		return Type{Kind: Object}
	case "null":
		return Type{Kind: Null}
	case "array":
		elem := elemTypeOf(schema["items"])
		return Type{Kind: Array, Elem: &elem}
	default:
		return Type{Kind: String}
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// elemTypeOf maps the items node of an array schema. Missing items default
// to string-typed elements; items which are not a mapping are unconstrained.
func elemTypeOf(items any) Type {
	if items == nil {
		return Type{Kind: String}
	}
	if _, ok := items.(map[string]any); !ok {
		return Type{Kind: Any}
	}
	return TypeOf(items)
}
