package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenAuthControllerHybrid(t *testing.T) {
	h := newHelper(t, blogSpec(true, true))
	f := genAuthController(h)
	require.NotNil(t, f)
	src := f.GoString()

	assert.Contains(t, src, "type AuthController struct {")
	assert.Contains(t, src, "func NewAuthController(users *repository.UserRepository, sessions *core.SessionStore, views *core.Views, gate *core.SessionGate) *AuthController {")
	for _, action := range []string{"Login", "Register", "Logout", "Check"} {
		assert.Contains(t, src, "func (c *AuthController) "+action+"(w http.ResponseWriter, r *http.Request, args []string) {")
	}

	t.Run("login verifies the hash", func(t *testing.T) {
		login := between(t, src, "func (c *AuthController) Login(", "\n}\n")
		assert.True(t, inOrder(login, "c.gate.RequireGuest(w, r)", "r.Method == http.MethodGet", `"auth_login.html"`))
		assert.Contains(t, login, "c.users.FindByEmail(r.Context(), email)")
		assert.Contains(t, login, "core.RejectPassword(password)")
		assert.Contains(t, login, "!user.VerifyPassword(password)")
		assert.Contains(t, login, `"Invalid credentials"`)
		assert.Contains(t, login, `"redirect"`)
		assert.NotContains(t, login, "== password")
	})

	t.Run("password is never serialized", func(t *testing.T) {
		assert.NotContains(t, src, "GetPassword")
		profile := between(t, src, "func profile(", "\n}\n")
		assert.True(t, inOrder(profile, `"id"`, `"name"`, "user.GetName()", `"email"`, "user.GetEmail()"))
	})

	t.Run("register checks the confirmation", func(t *testing.T) {
		register := between(t, src, "func (c *AuthController) Register(", "\n}\n")
		assert.True(t, inOrder(register,
			`"Name is required"`,
			`"Valid email is required"`,
			`"Password must be at least 8 characters"`,
			`"Passwords do not match"`,
			`c.users.EmailExists(`,
			`"Email already exists"`,
			"c.users.Save(",
			"c.signIn(w, r, user)",
			"http.StatusCreated",
		))
		assert.Contains(t, register, "SetPassword(password)")
		assert.Contains(t, register, "SetCreatedAt(time.Now())")
		assert.Contains(t, register, "core.IsUniqueViolation(err)")
	})

	t.Run("logout redirects to the login page", func(t *testing.T) {
		logout := between(t, src, "func (c *AuthController) Logout(", "\n}\n")
		assert.Contains(t, logout, "c.sessions.Destroy(w, r)")
		assert.Contains(t, logout, `core.Redirect(w, r, "/login")`)
	})

	t.Run("check reads the session", func(t *testing.T) {
		check := between(t, src, "func (c *AuthController) Check(", "\n}\n")
		assert.Contains(t, check, "c.sessions.Lookup(r)")
		assert.Contains(t, check, "session.Get(core.SessionUser)")
		assert.Contains(t, check, `"authenticated"`)
	})
}

func TestGenAuthControllerAPI(t *testing.T) {
	h := newHelper(t, blogSpec(false, true))
	src := genAuthController(h).GoString()

	assert.NotContains(t, src, "RequireGuest")
	assert.NotContains(t, src, "c.views.Render")
	assert.NotContains(t, src, "Passwords do not match")
	assert.NotContains(t, src, "core.Redirect")
	assert.NotContains(t, src, "GetPassword")

	login := between(t, src, "func (c *AuthController) Login(", "\n}\n")
	assert.Contains(t, login, "!user.VerifyPassword(password)")
	assert.Contains(t, login, "c.signIn(w, r, user)")
	assert.Contains(t, login, `"user"`)

	register := between(t, src, "func (c *AuthController) Register(", "\n}\n")
	assert.Contains(t, register, "profile(user)")
	assert.NotContains(t, register, "c.signIn(")

	logout := between(t, src, "func (c *AuthController) Logout(", "\n}\n")
	assert.Contains(t, logout, `"Logout successful"`)
}

func TestGenAuthControllerDisabled(t *testing.T) {
	h := newHelper(t, blogSpec(true, false))
	assert.Nil(t, genAuthController(h))

	views, err := genAuthViews(h)
	require.NoError(t, err)
	assert.Nil(t, views)
}
