package schema

import "strings"

// FieldType is the declared type of an entity field.
type FieldType uint8

// List of field types.
const (
	TypeString FieldType = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeDateTime
)

var typeNames = [...]string{
	TypeString:   "string",
	TypeInteger:  "int",
	TypeFloat:    "float",
	TypeBoolean:  "bool",
	TypeDateTime: "datetime",
}

// String returns the canonical spelling of the type.
func (t FieldType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[TypeString]
}

// Numeric reports if the type holds a number.
func (t FieldType) Numeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// ParseFieldType maps a declared type string to its FieldType.
// Matching is case-insensitive and unknown strings fall back to TypeString.
func ParseFieldType(s string) FieldType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer":
		return TypeInteger
	case "float", "double":
		return TypeFloat
	case "bool", "boolean":
		return TypeBoolean
	case "datetime", "date":
		return TypeDateTime
	default:
		return TypeString
	}
}

// FieldSpec describes one field of an entity.
type FieldSpec struct {
	// Name of the field. Used as the column name, the form key and the JSON key.
	Name string
	// Type of the field.
	Type FieldType
	// Declared holds the type string as declared by the user (e.g. "text").
	// Empty means the canonical spelling of Type.
	Declared string
	// Sensitive fields are excluded from serialized output.
	Sensitive bool
}

// Field returns a FieldSpec from a name and a declared type string.
func Field(name, declared string) FieldSpec {
	return FieldSpec{
		Name:     name,
		Type:     ParseFieldType(declared),
		Declared: strings.TrimSpace(declared),
	}
}

// DeclaredType returns the declared type string of the field.
func (f FieldSpec) DeclaredType() string {
	if f.Declared != "" {
		return f.Declared
	}
	return f.Type.String()
}

// IsText reports if the field was declared as long text.
func (f FieldSpec) IsText() bool {
	return f.Type == TypeString && strings.EqualFold(f.Declared, "text")
}
