package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/mvcgen"
	"github.com/syssam/mvcgen/internal/wizard"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const blogYAML = `project: blog
views: true
entities:
  - name: Post
    fields:
      - {name: title, type: string}
      - {name: body, type: text}
  - name: Comment
    fields:
      - {name: author, type: string}
`

type answers struct {
	inputs   []string
	confirms []bool
}

func (a *answers) Input(_, placeholder string, validate func(string) error) (string, error) {
	v := a.inputs[0]
	a.inputs = a.inputs[1:]
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	if v == "" {
		return placeholder, nil
	}
	return v, nil
}

func (a *answers) Confirm(string) (bool, error) {
	v := a.confirms[0]
	a.confirms = a.confirms[1:]
	return v, nil
}

func run(t *testing.T, p wizard.Prompter, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(func(bool) (wizard.Prompter, error) {
		if p == nil {
			return nil, wizard.ErrNotInteractive
		}
		return p, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeSpec(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "blog.yaml")
	require.NoError(t, os.WriteFile(p, []byte(blogYAML), 0o644))
	return p
}

func TestGenerateCmd(t *testing.T) {
	target := t.TempDir()
	out, err := run(t, nil, "generate", writeSpec(t), "--target", target, "--driver", "sqlite")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Project structure created")
	assert.Contains(t, out, "✓ Entity Post generated (model, repository, controller)")
	assert.Contains(t, out, "✓ Layout generated")
	assert.Contains(t, out, "✓ View for Comment generated")
	assert.Contains(t, out, "✓ Routes generated")
	assert.Contains(t, out, "- Post (2 fields)")
	assert.Contains(t, out, "Views: Yes")
	assert.Contains(t, out, "Authentication: No")
	assert.Contains(t, out, filepath.Join("config", "schema.sql"))
	assert.NotContains(t, out, "level=DEBUG")

	env, err := os.ReadFile(filepath.Join(target, "blog", "config", "database.env"))
	require.NoError(t, err)
	assert.Contains(t, string(env), "DB_DRIVER=sqlite")
	assert.FileExists(t, filepath.Join(target, "blog", "src", "View", "post_index.html"))
}

func TestGenerateCmdVerbose(t *testing.T) {
	out, err := run(t, nil, "generate", writeSpec(t), "--target", t.TempDir(), "--verbose", "--without", "sql/schema")
	require.NoError(t, err)
	assert.Contains(t, out, "artifact written")
	assert.Contains(t, out, "path=src/Entity/post.go")
	assert.Contains(t, out, "Create the database and its tables")
}

func TestGenerateCmdDryRun(t *testing.T) {
	target := t.TempDir()
	out, err := run(t, nil, "generate", writeSpec(t), "--target", target, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "static   go.mod")
	assert.Contains(t, out, "entity   src/Controller/comment_controller.go")
	assert.Contains(t, out, "routes   config/routes.go")
	assert.NoDirExists(t, filepath.Join(target, "blog"))
}

func TestGenerateCmdExisting(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(target, "blog"), 0o755))
	_, err := run(t, nil, "generate", writeSpec(t), "--target", target)
	require.Error(t, err)
	assert.True(t, mvcgen.IsTargetExists(err))
	assert.Equal(t, "directory "+filepath.Join(target, "blog")+" already exists", mvcgen.Message(err))
}

func TestGenerateCmdBadFlags(t *testing.T) {
	_, err := run(t, nil, "generate", writeSpec(t), "--driver", "oracle")
	assert.ErrorIs(t, err, mvcgen.ErrInvalidConfig)

	_, err = run(t, nil, "generate", writeSpec(t), "--feature", "graphql")
	assert.ErrorIs(t, err, mvcgen.ErrInvalidConfig)

	_, err = run(t, nil, "generate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInitCmd(t *testing.T) {
	target := t.TempDir()
	p := &answers{
		inputs:   []string{"shop", "1", "product", "name", "", "price", "float", ""},
		confirms: []bool{false, true},
	}
	out, err := run(t, p, "init", "--target", target, "--module", "example.com/shop")
	require.NoError(t, err)

	assert.Contains(t, out, "--- Entity #1 ---")
	assert.Contains(t, out, "✓ Field 'price' (float) added")
	assert.Contains(t, out, "Authentication: Yes")
	assert.Contains(t, out, "✓ Authentication generated")
	assert.Contains(t, out, "Project generated in "+filepath.Join(target, "shop"))

	mod, err := os.ReadFile(filepath.Join(target, "shop", "go.mod"))
	require.NoError(t, err)
	assert.Contains(t, string(mod), "module example.com/shop")
	assert.FileExists(t, filepath.Join(target, "shop", "src", "Entity", "product.go"))
	assert.FileExists(t, filepath.Join(target, "shop", "src", "Controller", "auth_controller.go"))
	assert.DirExists(t, filepath.Join(target, "shop", "src", "View"))
}

func TestInitCmdNotInteractive(t *testing.T) {
	_, err := run(t, nil, "init", "--target", t.TempDir())
	assert.ErrorIs(t, err, wizard.ErrNotInteractive)
}

func TestRoutesCmd(t *testing.T) {
	out, err := run(t, nil, "routes", writeSpec(t))
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 15)
	assert.Equal(t, "GET     /                        PostController.Index", string(lines[0]))
	assert.Contains(t, string(lines[14]), "DELETE  /comments/{id}")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "mvcgen "+mvcgen.Version+"\n", out)
}
