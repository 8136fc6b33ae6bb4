package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenEntity(t *testing.T) {
	h := newHelper(t, blogSpec(false, false))
	post := h.Graph().Nodes[0]
	src := genEntity(h, post).GoString()

	assert.Contains(t, src, "package entity")
	assert.Contains(t, src, "// Code generated by mvcgen. DO NOT EDIT.")
	assert.Contains(t, src, "type Post struct {")
	assert.Contains(t, src, "func NewPost() *Post {")
	assert.Contains(t, src, "func (p *Post) GetID() (int64, bool) {")
	assert.Contains(t, src, "func (p *Post) SetID(id int64) *Post {")
	assert.Contains(t, src, "func (p *Post) SetTitle(value string) *Post {")
	assert.Contains(t, src, "func (p *Post) GetBody() string {")
	assert.Contains(t, src, "func (p *Post) GetViews() int64 {")
	assert.Contains(t, src, "func (p *Post) GetPublished() bool {")
	assert.Contains(t, src, "var postSetters = map[string]func(*Post, any) error{")
	assert.Contains(t, src, "func (p *Post) Hydrate(data map[string]any) (*Post, error) {")
	assert.Contains(t, src, "func (p *Post) Extract() core.Record {")
	assert.Contains(t, src, `"github.com/acme/blog/src/Core"`)
	assert.NotContains(t, src, "HashPassword")

	t.Run("one accessor pair per field in declaration order", func(t *testing.T) {
		assert.Equal(t, 5, strings.Count(src, "func (p *Post) Get"))
		assert.Equal(t, 5, strings.Count(src, "func (p *Post) Set"))
		assert.True(t, inOrder(src, "GetTitle()", "GetBody()", "GetViews()", "GetPublished()"))
	})

	t.Run("setters convert with the storage converter", func(t *testing.T) {
		setters := between(t, src, "var postSetters", "\n}\n")
		assert.Contains(t, setters, "core.ToInt64(raw)")
		assert.Contains(t, setters, "core.ToString(raw)")
		assert.Contains(t, setters, "core.ToBool(raw)")
		assert.Contains(t, setters, "m.SetID(value)")
		assert.Contains(t, setters, "m.SetViews(value)")
	})

	t.Run("extract lists the id only when set", func(t *testing.T) {
		extract := between(t, src, "func (p *Post) Extract()", "\n}\n")
		assert.Contains(t, extract, "if p.id != nil {")
		assert.True(t, inOrder(extract, `"id"`, `"title"`, `"body"`, `"views"`, `"published"`))
	})
}

func TestGenEntityDateTime(t *testing.T) {
	h := newHelper(t, blogSpec(false, false))
	src := genEntity(h, h.Graph().Nodes[1]).GoString()

	assert.Contains(t, src, "func (c *Comment) GetPostedAt() time.Time {")
	assert.Contains(t, src, "func (c *Comment) GetAuthorEmail() string {")
	assert.Contains(t, src, "core.ToTime(raw)")
	assert.Contains(t, src, `"postedAt"`)
	assert.Contains(t, src, `"author_email"`)
}

func TestGenEntityUser(t *testing.T) {
	h := newHelper(t, blogSpec(false, true))
	user := h.Graph().User
	require.NotNil(t, user)
	src := genEntity(h, user).GoString()

	assert.Contains(t, src, "func (u *User) HashPassword() error {")
	assert.Contains(t, src, "core.IsPasswordHash(u.password)")
	assert.Contains(t, src, "func (u *User) VerifyPassword(plain string) bool {")
	assert.Contains(t, src, "core.VerifyPassword(u.password, plain)")

	extract := between(t, src, "func (u *User) Extract()", "func (u *User) HashPassword")
	assert.NotContains(t, extract, `"password"`)
	assert.Contains(t, extract, `"email"`)
	assert.Contains(t, extract, `"name"`)
}

func TestGenEntityWithoutFields(t *testing.T) {
	spec := blogSpec(false, false)
	spec.Entities = append(spec.Entities, spec.Entities[0])
	spec.Entities[2].Name = "Tag"
	spec.Entities[2].Fields = nil
	h := newHelper(t, spec)
	src := genEntity(h, h.Graph().Nodes[2]).GoString()

	assert.Contains(t, src, "type Tag struct {")
	assert.Contains(t, src, "return out\n")
	assert.Equal(t, 1, strings.Count(src, "func (t *Tag) Get"))
}
