package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/mvcgen/compiler/gen"
	"github.com/syssam/mvcgen/schema"
)

const testModule = "github.com/acme/blog"

func blogSpec(views, auth bool) schema.ProjectSpec {
	return schema.ProjectSpec{
		ProjectName:           "blog",
		WithPresentationViews: views,
		WithAuthentication:    auth,
		Entities: []schema.EntitySpec{
			{Name: "Post", Fields: []schema.FieldSpec{
				schema.Field("title", "string"),
				schema.Field("body", "text"),
				schema.Field("views", "int"),
				schema.Field("published", "bool"),
			}},
			{Name: "Comment", Fields: []schema.FieldSpec{
				schema.Field("author_email", "string"),
				schema.Field("postedAt", "datetime"),
			}},
		},
	}
}

// newHelper returns a generator over spec. It serves as the dialect helper.
func newHelper(t *testing.T, spec schema.ProjectSpec, opts ...gen.Option) *gen.Generator {
	t.Helper()
	base := []gen.Option{gen.WithTarget(t.TempDir()), gen.WithModule(testModule)}
	cfg, err := gen.NewConfig(append(base, opts...)...)
	require.NoError(t, err)
	g, err := gen.NewGraph(cfg, spec)
	require.NoError(t, err)
	return gen.NewGenerator(g)
}

// between returns the part of s from the first from up to the next to.
func between(t *testing.T, s, from, to string) string {
	t.Helper()
	i := strings.Index(s, from)
	require.GreaterOrEqual(t, i, 0, "missing %q", from)
	rest := s[i:]
	if j := strings.Index(rest[len(from):], to); j >= 0 {
		return rest[:len(from)+j]
	}
	return rest
}

// inOrder reports whether every part appears in s after the previous one.
func inOrder(s string, parts ...string) bool {
	pos := 0
	for _, p := range parts {
		i := strings.Index(s[pos:], p)
		if i < 0 {
			return false
		}
		pos += i + len(p)
	}
	return true
}
