package ai

// Schema describes the exact JSON shape a generation response must match.
// It is the subset of JSON Schema both backends understand: object/array
// nesting, field types, per-field descriptions, and required-ness. Types use
// lowercase JSON Schema names; the Gemini client converts them to the
// uppercase enum its API expects.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Schema type names.
const (
	TypeObject = "object"
	TypeArray  = "array"
	TypeString = "string"
)

// String returns a string schema with a description.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// StringArray returns an array-of-strings schema with a description.
func StringArray(description string) *Schema {
	return &Schema{Type: TypeArray, Description: description, Items: &Schema{Type: TypeString}}
}

// Array returns an array schema over the given item schema.
func Array(description string, items *Schema) *Schema {
	return &Schema{Type: TypeArray, Description: description, Items: items}
}

// Object returns an object schema requiring every listed property.
func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: properties, Required: required}
}
