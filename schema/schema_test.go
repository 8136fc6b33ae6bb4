package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/mvcgen/schema"
)

func TestParseFieldType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want schema.FieldType
	}{
		{"string", schema.TypeString},
		{"text", schema.TypeString},
		{"int", schema.TypeInteger},
		{"Integer", schema.TypeInteger},
		{"float", schema.TypeFloat},
		{"DOUBLE", schema.TypeFloat},
		{"bool", schema.TypeBoolean},
		{"boolean", schema.TypeBoolean},
		{"datetime", schema.TypeDateTime},
		{"date", schema.TypeDateTime},
		{" int ", schema.TypeInteger},
		{"uuid", schema.TypeString},
		{"", schema.TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.ParseFieldType(tt.in))
		})
	}
}

func TestFieldSpec(t *testing.T) {
	t.Parallel()

	t.Run("keeps declared spelling", func(t *testing.T) {
		f := schema.Field("bio", "text")
		assert.Equal(t, schema.TypeString, f.Type)
		assert.Equal(t, "text", f.DeclaredType())
		assert.True(t, f.IsText())
	})

	t.Run("falls back to canonical spelling", func(t *testing.T) {
		f := schema.FieldSpec{Name: "views", Type: schema.TypeInteger}
		assert.Equal(t, "int", f.DeclaredType())
		assert.False(t, f.IsText())
	})

	t.Run("unknown type keeps declared spelling", func(t *testing.T) {
		f := schema.Field("token", "uuid")
		assert.Equal(t, schema.TypeString, f.Type)
		assert.Equal(t, "uuid", f.DeclaredType())
	})
}

func TestEntitySpecFieldShadowing(t *testing.T) {
	t.Parallel()

	e := schema.EntitySpec{
		Name: "Post",
		Fields: []schema.FieldSpec{
			schema.Field("title", "string"),
			schema.Field("title", "int"),
		},
	}
	f, ok := e.Field("title")
	require.True(t, ok)
	assert.Equal(t, schema.TypeInteger, f.Type)

	_, ok = e.Field("missing")
	assert.False(t, ok)
}

func TestProjectSpecValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		spec := schema.ProjectSpec{
			ProjectName: "blog",
			Entities: []schema.EntitySpec{
				{Name: "Post", Fields: []schema.FieldSpec{schema.Field("title", "string")}},
				{Name: "Post"},
			},
		}
		assert.NoError(t, spec.Validate())
	})

	t.Run("missing project name", func(t *testing.T) {
		err := schema.ProjectSpec{}.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, schema.ErrInvalidSpec))
	})

	t.Run("path separator in project name", func(t *testing.T) {
		err := schema.ProjectSpec{ProjectName: "../escape"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "path separators")
	})

	t.Run("empty entity name", func(t *testing.T) {
		err := schema.ProjectSpec{ProjectName: "blog", Entities: []schema.EntitySpec{{}}}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entity #1 has no name")
	})

	t.Run("empty field name", func(t *testing.T) {
		err := schema.ProjectSpec{
			ProjectName: "blog",
			Entities:    []schema.EntitySpec{{Name: "Post", Fields: []schema.FieldSpec{{}}}},
		}.Validate()
		require.Error(t, err)
		var specErr *schema.SpecError
		require.ErrorAs(t, err, &specErr)
		assert.Equal(t, "Post", specErr.Entity)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
project: blog
views: true
auth: true
entities:
  - name: Post
    fields:
      - {name: title, type: string}
      - {name: views, type: int}
      - {name: score, type: unknown}
  - name: Tag
`)
	spec, err := schema.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "blog", spec.ProjectName)
	assert.True(t, spec.WithPresentationViews)
	assert.True(t, spec.WithAuthentication)
	require.Len(t, spec.Entities, 2)

	post := spec.Entities[0]
	assert.Equal(t, "Post", post.Name)
	require.Len(t, post.Fields, 3)
	assert.Equal(t, "title", post.Fields[0].Name)
	assert.Equal(t, schema.TypeInteger, post.Fields[1].Type)
	assert.Equal(t, schema.TypeString, post.Fields[2].Type)
	assert.Equal(t, "unknown", post.Fields[2].DeclaredType())

	assert.Empty(t, spec.Entities[1].Fields)
}

func TestParseInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := schema.Parse([]byte("project: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse project spec")
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: shop\n"), 0o644))

	spec, err := schema.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "shop", spec.ProjectName)

	_, err = schema.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
