package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSpec indicates a project description that cannot be generated.
var ErrInvalidSpec = errors.New("mvcgen: invalid project spec")

// EntitySpec describes one data entity.
type EntitySpec struct {
	// Name of the entity, PascalCase expected (e.g. "Post").
	Name string
	// Fields in declaration order.
	Fields []FieldSpec
}

// Field returns the last field with the given name. A later duplicate
// shadows an earlier one, as it does in the generated accessors.
func (e EntitySpec) Field(name string) (FieldSpec, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Name == name {
			return e.Fields[i], true
		}
	}
	return FieldSpec{}, false
}

// ProjectSpec is the complete input of one generation run.
type ProjectSpec struct {
	ProjectName           string
	Entities              []EntitySpec
	WithPresentationViews bool
	WithAuthentication    bool
}

// SpecError describes a problem in a ProjectSpec.
type SpecError struct {
	Entity  string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	var b strings.Builder
	b.WriteString("mvcgen: spec error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches ErrInvalidSpec.
func (e *SpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// Validate checks the preconditions the generator relies on: a project name,
// and non-empty entity and field names. Duplicate names are accepted.
func (p ProjectSpec) Validate() error {
	if strings.TrimSpace(p.ProjectName) == "" {
		return &SpecError{Message: "project name is required"}
	}
	if strings.ContainsAny(p.ProjectName, `/\`) {
		return &SpecError{Message: fmt.Sprintf("project name %q must not contain path separators", p.ProjectName)}
	}
	for i, e := range p.Entities {
		if strings.TrimSpace(e.Name) == "" {
			return &SpecError{Message: fmt.Sprintf("entity #%d has no name", i+1)}
		}
		for j, f := range e.Fields {
			if strings.TrimSpace(f.Name) == "" {
				return &SpecError{Entity: e.Name, Message: fmt.Sprintf("field #%d has no name", j+1)}
			}
		}
	}
	return nil
}
