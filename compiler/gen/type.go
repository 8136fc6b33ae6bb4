package gen

import (
	"errors"
	"slices"
	"strings"

	"github.com/syssam/mvcgen/schema"
)

// The following types and their exported methods are used by the
// dialect to generate the artifacts.
type (
	// Graph holds the entities of one project and the resolved
	// configuration of the run.
	Graph struct {
		*Config
		// Project is the name of the generated project.
		Project string
		// Nodes are the user declared entities, in declaration order.
		Nodes []*Type
		// User is the fixed authentication entity. Nil unless the
		// authentication feature is enabled.
		User *Type
		// Variant selects the controller bodies of the run.
		Variant Variant
	}

	// Type represents one entity of the graph.
	Type struct {
		*Config
		// Name holds the entity name as declared.
		Name string
		// Names are the identifiers derived from Name.
		Names Names
		// Fields holds the entity fields in declaration order.
		Fields []*Field
		// Builtin marks a type added by a feature, not declared by the user.
		Builtin bool
	}

	// Field holds the information of an entity field.
	Field struct {
		// Name of the field. It is the column, form and JSON key.
		Name string
		// Type holds the resolved field type.
		Type schema.FieldType
		// Declared is the type string given by the user.
		Declared string
		// Sensitive fields are left out of serializers and responses.
		Sensitive bool
		// Unique fields get a UNIQUE column constraint.
		Unique bool
		// Names are the identifiers derived from Name.
		Names FieldNames
	}
)

// NewGraph creates a Graph for the given project. Features requested by the
// project flags are added to a copy of the configuration.
func NewGraph(c *Config, spec schema.ProjectSpec) (*Graph, error) {
	if c == nil {
		c = DefaultConfig()
	}
	if err := spec.Validate(); err != nil {
		se := NewSchemaError("", "", "invalid project", err)
		var specErr *schema.SpecError
		if errors.As(err, &specErr) {
			se.Entity, se.Field = specErr.Entity, specErr.Field
		}
		return nil, se
	}
	cfg := *c
	cfg.Features = slices.Clone(c.Features)
	c = &cfg
	if spec.WithPresentationViews && !c.HasFeature(FeaturePresentation.Name) {
		c.Features = append(c.Features, FeaturePresentation)
	}
	if spec.WithAuthentication && !c.HasFeature(FeatureAuth.Name) {
		c.Features = append(c.Features, FeatureAuth)
	}
	g := &Graph{
		Config:  c,
		Project: spec.ProjectName,
		Nodes:   make([]*Type, 0, len(spec.Entities)),
		Variant: VariantOf(c.HasFeature(FeaturePresentation.Name)),
	}
	for _, e := range spec.Entities {
		g.Nodes = append(g.Nodes, NewType(c, e))
	}
	if c.HasFeature(FeatureAuth.Name) {
		g.User = NewType(c, UserSchema)
		g.User.Builtin = true
		if email, ok := g.User.Field("email"); ok {
			email.Unique = true
		}
	}
	return g, nil
}

// NewType creates a Type from an entity description. A field declared
// twice keeps its first position and takes the later declaration. A field
// named "id", in any case, is the generated identifier and is skipped.
func NewType(c *Config, e schema.EntitySpec) *Type {
	t := &Type{
		Config: c,
		Name:   e.Name,
		Names:  Derive(e.Name),
		Fields: make([]*Field, 0, len(e.Fields)),
	}
	seen := make(map[string]int, len(e.Fields))
	for _, f := range e.Fields {
		if strings.EqualFold(f.Name, "id") {
			continue
		}
		if i, ok := seen[f.Name]; ok {
			t.Fields[i] = NewField(f)
			continue
		}
		seen[f.Name] = len(t.Fields)
		t.Fields = append(t.Fields, NewField(f))
	}
	return t
}

// NewField creates a Field from a field description.
func NewField(f schema.FieldSpec) *Field {
	return &Field{
		Name:      f.Name,
		Type:      f.Type,
		Declared:  f.DeclaredType(),
		Sensitive: f.Sensitive,
		Names:     DeriveField(f.Name),
	}
}

// FeatureEnabled reports if the given feature is enabled for the graph.
func (g *Graph) FeatureEnabled(name string) bool {
	return g.Config != nil && g.Config.HasFeature(name)
}

// Types returns every entity of the graph, the authentication entity last.
func (g *Graph) Types() []*Type {
	if g.User == nil {
		return g.Nodes
	}
	return append(slices.Clip(g.Nodes), g.User)
}

// Label returns the human readable name of the type.
func (t *Type) Label() string { return Label(t.Name) }

// Receiver returns the receiver name of the type methods.
func (t *Type) Receiver() string { return t.Names.Receiver }

// Table returns the database table of the type.
func (t *Type) Table() string { return t.Names.Table }

// Columns returns the columns written by insert and update, in
// declaration order. The identifier is not included.
func (t *Type) Columns() []string {
	columns := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		columns[i] = f.Names.Column
	}
	return columns
}

// Serialized returns the fields included in serialized output.
func (t *Type) Serialized() []*Field {
	fields := make([]*Field, 0, len(t.Fields))
	for _, f := range t.Fields {
		if !f.Sensitive {
			fields = append(fields, f)
		}
	}
	return fields
}

// Field returns the last field with the given name.
func (t *Type) Field(name string) (*Field, bool) {
	for i := len(t.Fields) - 1; i >= 0; i-- {
		if t.Fields[i].Name == name {
			return t.Fields[i], true
		}
	}
	return nil, false
}

// HasTime reports if any field is stored as time.Time.
func (t *Type) HasTime() bool {
	return slices.ContainsFunc(t.Fields, func(f *Field) bool { return f.Type == schema.TypeDateTime })
}

// Spec returns the schema description of the field.
func (f *Field) Spec() schema.FieldSpec {
	return schema.FieldSpec{Name: f.Name, Type: f.Type, Declared: f.Declared, Sensitive: f.Sensitive}
}

// Storage returns the Go type holding the field value.
func (f *Field) Storage() Storage { return StorageOf(f.Type) }

// Rules returns the validation rules of the field.
func (f *Field) Rules() []Rule { return Rules(f.Spec()) }

// Input returns the HTML form control of the field.
func (f *Field) Input() string { return InputOf(f.Spec()) }

// Label returns the human readable name of the field.
func (f *Field) Label() string { return Label(f.Name) }

// UserSchema is the fixed entity stored by the authentication feature.
var UserSchema = schema.EntitySpec{
	Name: "User",
	Fields: []schema.FieldSpec{
		{Name: "email", Type: schema.TypeString},
		{Name: "password", Type: schema.TypeString, Sensitive: true},
		{Name: "name", Type: schema.TypeString},
		{Name: "createdAt", Type: schema.TypeDateTime},
	},
}
