package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/mvcgen/schema"
)

func TestGenRoutes(t *testing.T) {
	h := newHelper(t, blogSpec(false, false))
	src := genRoutes(h).GoString()

	assert.Contains(t, src, "package config")
	assert.Contains(t, src, "func Routes(db *core.Database, sessions *core.SessionStore, views *core.Views) *core.Router {")
	assert.Contains(t, src, "gate := core.AllowAll()")
	assert.Contains(t, src, "postController := controller.NewPostController(repository.NewPostRepository(db), views, gate)")
	assert.NotContains(t, src, "authController")

	assert.True(t, inOrder(src,
		`router.Get("/", "PostController", "Index", postController.Index)`,
		`router.Get("/posts", "PostController", "Index", postController.Index)`,
		`router.Get("/posts/{id}", "PostController", "Show", postController.Show)`,
		`router.Get("/posts/create", "PostController", "Create", postController.Create)`,
		`router.Post("/posts", "PostController", "Store", postController.Store)`,
		`router.Get("/posts/{id}/edit", "PostController", "Edit", postController.Edit)`,
		`router.Put("/posts/{id}", "PostController", "Update", postController.Update)`,
		`router.Delete("/posts/{id}", "PostController", "Delete", postController.Delete)`,
		`router.Get("/comments", "CommentController", "Index", commentController.Index)`,
	))
	assert.Equal(t, 15, strings.Count(src, "router.Get(")+strings.Count(src, "router.Post(")+
		strings.Count(src, "router.Put(")+strings.Count(src, "router.Delete("))
}

func TestGenRoutesAuth(t *testing.T) {
	h := newHelper(t, blogSpec(true, true))
	src := genRoutes(h).GoString()

	assert.Contains(t, src, `gate := core.NewSessionGate(sessions, "/login")`)
	assert.Contains(t, src, "authController := controller.NewAuthController(repository.NewUserRepository(db), sessions, views, gate)")
	assert.NotContains(t, src, "userController")
	assert.True(t, inOrder(src,
		`router.Get("/", "PostController", "Index", postController.Index)`,
		`router.Get("/login", "AuthController", "Login", authController.Login)`,
		`router.Post("/login", "AuthController", "Login", authController.Login)`,
		`router.Get("/register", "AuthController", "Register", authController.Register)`,
		`router.Post("/register", "AuthController", "Register", authController.Register)`,
		`router.Get("/logout", "AuthController", "Logout", authController.Logout)`,
		`router.Get("/auth/check", "AuthController", "Check", authController.Check)`,
		`router.Get("/posts", "PostController", "Index", postController.Index)`,
	))
}

func TestGenRoutesEmpty(t *testing.T) {
	h := newHelper(t, schema.ProjectSpec{ProjectName: "blog"})
	src := genRoutes(h).GoString()

	assert.Contains(t, src, "router := core.NewRouter()")
	assert.NotContains(t, src, "gate")
	assert.NotContains(t, src, "router.Get(")
}

func TestControllerVar(t *testing.T) {
	assert.Equal(t, "postController", controllerVar("PostController"))
	assert.Equal(t, "authController", controllerVar("AuthController"))
	assert.Equal(t, "Get", registerMethod("GET"))
	assert.Equal(t, "Put", registerMethod("PUT"))
	assert.Equal(t, "Delete", registerMethod("DELETE"))
	assert.Equal(t, "Post", registerMethod("POST"))
}
