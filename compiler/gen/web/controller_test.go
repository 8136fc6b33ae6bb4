package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenControllerAPI(t *testing.T) {
	h := newHelper(t, blogSpec(false, false))
	src := genController(h, h.Graph().Nodes[0]).GoString()

	assert.Contains(t, src, "package controller")
	assert.Contains(t, src, "type PostController struct {")
	assert.Contains(t, src, "func NewPostController(repo *repository.PostRepository, views *core.Views, gate core.Gate) *PostController {")
	for _, action := range []string{"Index", "Create", "Store", "Show", "Edit", "Update", "Delete"} {
		assert.Contains(t, src, "func (c *PostController) "+action+"(w http.ResponseWriter, r *http.Request, args []string) {")
	}

	t.Run("list always answers JSON", func(t *testing.T) {
		index := between(t, src, "func (c *PostController) Index(", "\n}\n")
		assert.NotContains(t, index, "IsAsync")
		assert.NotContains(t, index, "Render")
		assert.Contains(t, index, "c.repo.FindAll(r.Context())")
		assert.Contains(t, index, "core.JSON(w, http.StatusOK, out)")
		assert.NotContains(t, src, "core.IsAsync")
	})

	t.Run("writes are not gated", func(t *testing.T) {
		assert.NotContains(t, src, "c.gate.Allow")
	})

	t.Run("store validates before it writes", func(t *testing.T) {
		store := between(t, src, "func (c *PostController) Store(", "\n}\n")
		assert.True(t, inOrder(store, "core.Form(r)", "validatePost(form)", "core.Errors(w, errs)", "Hydrate(data)", "c.repo.Save(", "http.StatusCreated"))
		assert.Contains(t, store, `delete(data, "id")`)
		assert.Contains(t, store, `"Post created successfully"`)
	})

	t.Run("update and delete answer 200", func(t *testing.T) {
		update := between(t, src, "func (c *PostController) Update(", "\n}\n")
		assert.True(t, inOrder(update, "c.load(", "validatePost(form)", "e.Hydrate(data)", "c.repo.Save(", "http.StatusOK"))
		assert.Contains(t, update, `"Post updated successfully"`)

		del := between(t, src, "func (c *PostController) Delete(", "\n}\n")
		assert.True(t, inOrder(del, "c.load(", "c.repo.Delete(", "http.StatusOK"))
		assert.Contains(t, del, `"Post deleted successfully"`)
	})

	t.Run("missing records answer 404", func(t *testing.T) {
		fail := between(t, src, "func (c *PostController) fail(", "\n}\n")
		assert.True(t, inOrder(fail, "errors.Is(err, core.ErrNotFound)", "http.StatusNotFound", `"Post not found"`))
		assert.Contains(t, fail, "http.StatusInternalServerError")
		assert.Contains(t, src, "core.ParseID(args)")
	})

	t.Run("create form echoes the declared types", func(t *testing.T) {
		create := between(t, src, "func (c *PostController) Create(", "\n}\n")
		assert.True(t, inOrder(create, `"fields"`, `"title"`, `"string"`, `"body"`, `"text"`, `"views"`, `"int"`, `"published"`, `"bool"`))
	})
}

func TestGenControllerHybrid(t *testing.T) {
	h := newHelper(t, blogSpec(true, false))
	src := genController(h, h.Graph().Nodes[0]).GoString()

	index := between(t, src, "func (c *PostController) Index(", "\n}\n")
	assert.Contains(t, index, "if !core.IsAsync(r) {")
	assert.Contains(t, index, `c.views.Render(w, "post_index.html"`)
	assert.Contains(t, index, `"Post Management"`)
	assert.True(t, inOrder(index, "core.IsAsync(r)", "return", "c.repo.FindAll("), "the page branch returns before the JSON branch")

	show := between(t, src, "func (c *PostController) Show(", "\n}\n")
	assert.Contains(t, show, "!core.IsAsync(r)")
	assert.Contains(t, show, `"404 - Post not found"`)

	assert.Equal(t, 3, strings.Count(src, "if !c.gate.Allow(w, r) {"))
	for _, action := range []string{"Store", "Update", "Delete"} {
		body := between(t, src, "func (c *PostController) "+action+"(", "\n}\n")
		assert.True(t, strings.HasPrefix(strings.TrimSpace(body[strings.Index(body, "{")+1:]), "if !c.gate.Allow(w, r) {"), action)
	}
}

func TestGenValidate(t *testing.T) {
	h := newHelper(t, blogSpec(false, false))

	post := genController(h, h.Graph().Nodes[0]).GoString()
	validate := between(t, post, "func validatePost(", "\n}\n")
	assert.Contains(t, validate, `if v := form.Get("title"); !core.IsPresent(v) {`)
	assert.Contains(t, validate, `} else if !core.MaxLength(v, 255) {`)
	assert.Contains(t, validate, `} else if !core.IsNumeric(v) {`)
	assert.Contains(t, validate, `"Field 'title' is required"`)
	assert.Contains(t, validate, `"Field 'views' must be a number"`)
	assert.True(t, inOrder(validate, `"title"`, `"body"`, `"views"`, `"published"`))

	comment := genController(h, h.Graph().Nodes[1]).GoString()
	validate = between(t, comment, "func validateComment(", "\n}\n")
	assert.Contains(t, validate, `} else if !core.IsEmail(v) {`)
	assert.Contains(t, validate, `"Field 'author_email' must be a valid email"`)
	assert.NotContains(t, validate, "MaxLength")
}
