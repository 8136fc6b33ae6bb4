package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the YAML form of a ProjectSpec.
type document struct {
	Project  string `yaml:"project"`
	Views    bool   `yaml:"views"`
	Auth     bool   `yaml:"auth"`
	Entities []struct {
		Name   string `yaml:"name"`
		Fields []struct {
			Name string `yaml:"name"`
			Type string `yaml:"type"`
		} `yaml:"fields"`
	} `yaml:"entities"`
}

// Parse decodes a YAML project description.
func Parse(data []byte) (*ProjectSpec, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse project spec: %w", err)
	}
	spec := &ProjectSpec{
		ProjectName:           doc.Project,
		WithPresentationViews: doc.Views,
		WithAuthentication:    doc.Auth,
		Entities:              make([]EntitySpec, 0, len(doc.Entities)),
	}
	for _, e := range doc.Entities {
		entity := EntitySpec{Name: e.Name, Fields: make([]FieldSpec, 0, len(e.Fields))}
		for _, f := range e.Fields {
			entity.Fields = append(entity.Fields, Field(f.Name, f.Type))
		}
		spec.Entities = append(spec.Entities, entity)
	}
	return spec, nil
}

// LoadFile reads and decodes the YAML project description at path.
func LoadFile(path string) (*ProjectSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project spec: %w", err)
	}
	return Parse(data)
}
