package web

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/mvcgen/compiler/gen"
)

// Views rendered by the authentication controller.
const (
	viewLogin    = "auth_login.html"
	viewRegister = "auth_register.html"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// authController holds the state of the authentication controller emitter.
type authController struct {
	h    gen.GeneratorHelper
	user *gen.Type
	f    *jen.File
}

// genAuthController generates src/Controller/auth_controller.go. It
// returns nil when the graph has no authentication entity.
func genAuthController(h gen.GeneratorHelper) *jen.File {
	u := h.Graph().User
	if u == nil {
		return nil
	}
	c := &authController{h: h, user: u, f: newFile(h, pkgController)}
	c.genStruct()
	c.genLogin()
	c.genRegister()
	c.genLogout()
	c.genCheck()
	c.genSignIn()
	c.genProfile()
	c.genFail()
	return c.f
}

func (c *authController) hybrid() bool { return c.h.Variant().Hybrid() }

func (c *authController) method(name string) *jen.Statement {
	return c.f.Func().Params(jen.Id("c").Op("*").Id(gen.AuthController)).Id(name).Params(handlerParams()...)
}

// accessor returns the getter or setter name of a user field.
func (c *authController) accessor(field string, setter bool) string {
	fd, ok := c.user.Field(field)
	switch {
	case !ok:
		return ""
	case setter:
		return fd.Names.Setter
	default:
		return fd.Names.Getter
	}
}

func (c *authController) genStruct() {
	h := c.h
	users := jen.Op("*").Qual(h.RepositoryPkg(), c.user.Names.Repository)
	c.f.Comment("AuthController handles login, registration and logout.")
	c.f.Type().Id(gen.AuthController).Struct(
		jen.Id("users").Add(users.Clone()),
		jen.Id("sessions").Op("*").Add(core(h, "SessionStore")),
		jen.Id("views").Op("*").Add(core(h, "Views")),
		jen.Id("gate").Op("*").Add(core(h, "SessionGate")),
	)

	c.f.Comment("NewAuthController returns an authentication controller.")
	c.f.Func().Id("New"+gen.AuthController).Params(
		jen.Id("users").Add(users.Clone()),
		jen.Id("sessions").Op("*").Add(core(h, "SessionStore")),
		jen.Id("views").Op("*").Add(core(h, "Views")),
		jen.Id("gate").Op("*").Add(core(h, "SessionGate")),
	).Op("*").Id(gen.AuthController).Block(
		jen.Return(jen.Op("&").Id(gen.AuthController).Values(jen.Dict{
			jen.Id("users"):    jen.Id("users"),
			jen.Id("sessions"): jen.Id("sessions"),
			jen.Id("views"):    jen.Id("views"),
			jen.Id("gate"):     jen.Id("gate"),
		})),
	)
}

// page emits the guest check and the GET branch of a form page. In the
// API variant GET answers the expected form fields.
func (c *authController) page(g *jen.Group, view, title string, fields ...string) {
	h := c.h
	if c.hybrid() {
		g.If(jen.Op("!").Id("c").Dot("gate").Dot("RequireGuest").Call(jen.Id("w"), jen.Id("r"))).Block(jen.Return())
		g.If(jen.Id("r").Dot("Method").Op("==").Qual("net/http", "MethodGet")).Block(
			jen.If(jen.Err().Op(":=").Id("c").Dot("views").Dot("Render").Call(
				jen.Id("w"),
				jen.Lit(view),
				jen.Map(jen.String()).Any().Values(jen.Dict{jen.Lit("Title"): jen.Lit(title)}),
			), jen.Err().Op("!=").Nil()).Block(
				jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			),
			jen.Return(),
		)
		return
	}
	pairs := make([]jen.Code, 0, 2*len(fields))
	for _, f := range fields {
		pairs = append(pairs, jen.Lit(f), jen.Lit("string"))
	}
	g.If(jen.Id("r").Dot("Method").Op("==").Qual("net/http", "MethodGet")).Block(
		core(h, "JSON").Call(jen.Id("w"), status("StatusOK"), record(h, jen.Lit("fields"), record(h, pairs...))),
		jen.Return(),
	)
}

// parseForm emits the form parsing shared by the POST branches.
func (c *authController) parseForm(g *jen.Group) {
	g.List(jen.Id("form"), jen.Err()).Op(":=").Add(core(c.h, "Form")).Call(jen.Id("r"))
	g.If(jen.Err().Op("!=").Nil()).Block(
		core(c.h, "Error").Call(jen.Id("w"), status("StatusBadRequest"), jen.Lit("Invalid form data")),
		jen.Return(),
	)
}

func appendErr(msg string) *jen.Statement {
	return jen.Id("errs").Op("=").Append(jen.Id("errs"), jen.Lit(msg))
}

// genLogin generates Login. Unknown e-mails still run a bcrypt comparison
// so that both failures take the same time.
func (c *authController) genLogin() {
	h := c.h
	c.f.Comment("Login authenticates a user with e-mail and password.")
	c.method(gen.ActionLogin).BlockFunc(func(g *jen.Group) {
		c.page(g, viewLogin, "Login", "email", "password")
		c.parseForm(g)
		g.Id("email").Op(":=").Qual("strings", "TrimSpace").Call(jen.Id("form").Dot("Get").Call(jen.Lit("email")))
		g.Id("password").Op(":=").Id("form").Dot("Get").Call(jen.Lit("password"))
		g.Var().Id("errs").Index().String()
		g.If(jen.Id("email").Op("==").Lit("")).Block(appendErr("Email is required"))
		g.If(jen.Id("password").Op("==").Lit("")).Block(appendErr("Password is required"))
		g.If(jen.Len(jen.Id("errs")).Op(">").Lit(0)).Block(
			core(h, "Errors").Call(jen.Id("w"), jen.Id("errs")),
			jen.Return(),
		)
		g.List(jen.Id("user"), jen.Err()).Op(":=").Id("c").Dot("users").Dot("FindByEmail").Call(jen.Id("r").Dot("Context").Call(), jen.Id("email"))
		g.Switch().Block(
			jen.Case(jen.Qual("errors", "Is").Call(jen.Err(), core(h, "ErrNotFound"))).Block(
				core(h, "RejectPassword").Call(jen.Id("password")),
				core(h, "Error").Call(jen.Id("w"), status("StatusUnauthorized"), jen.Lit("Invalid credentials")),
				jen.Return(),
			),
			jen.Case(jen.Err().Op("!=").Nil()).Block(
				jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
				jen.Return(),
			),
			jen.Case(jen.Op("!").Id("user").Dot("VerifyPassword").Call(jen.Id("password"))).Block(
				core(h, "Error").Call(jen.Id("w"), status("StatusUnauthorized"), jen.Lit("Invalid credentials")),
				jen.Return(),
			),
		)
		if c.hybrid() {
			g.Id("c").Dot("signIn").Call(jen.Id("w"), jen.Id("r"), jen.Id("user"))
			g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusOK"), record(h,
				jen.Lit("success"), jen.True(),
				jen.Lit("message"), jen.Lit("Login successful"),
				jen.Lit("redirect"), jen.Lit("/"),
			))
			return
		}
		g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusOK"), record(h,
			jen.Lit("success"), jen.True(),
			jen.Lit("message"), jen.Lit("Login successful"),
			jen.Lit("user"), jen.Id("c").Dot("signIn").Call(jen.Id("w"), jen.Id("r"), jen.Id("user")),
		))
	})
}

// genRegister generates Register. The password is hashed by the
// repository when the user is saved.
func (c *authController) genRegister() {
	h := c.h
	fields := []string{"name", "email", "password"}
	if c.hybrid() {
		fields = append(fields, "confirm_password")
	}
	c.f.Comment("Register creates a user account.")
	c.method(gen.ActionRegister).BlockFunc(func(g *jen.Group) {
		c.page(g, viewRegister, "Register", fields...)
		c.parseForm(g)
		g.Id("name").Op(":=").Qual("strings", "TrimSpace").Call(jen.Id("form").Dot("Get").Call(jen.Lit("name")))
		g.Id("email").Op(":=").Qual("strings", "TrimSpace").Call(jen.Id("form").Dot("Get").Call(jen.Lit("email")))
		g.Id("password").Op(":=").Id("form").Dot("Get").Call(jen.Lit("password"))
		g.Var().Id("errs").Index().String()
		g.If(jen.Op("!").Add(core(h, "IsPresent")).Call(jen.Id("name"))).Block(appendErr("Name is required"))
		g.If(jen.Op("!").Add(core(h, "IsEmail")).Call(jen.Id("email"))).Block(appendErr("Valid email is required"))
		g.If(jen.Op("!").Add(core(h, "MinLength")).Call(jen.Id("password"), jen.Lit(MinPasswordLength))).Block(
			appendErr(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)),
		)
		if c.hybrid() {
			g.If(jen.Id("password").Op("!=").Id("form").Dot("Get").Call(jen.Lit("confirm_password"))).Block(appendErr("Passwords do not match"))
		}
		g.If(jen.Len(jen.Id("errs")).Op("==").Lit(0)).Block(
			jen.List(jen.Id("exists"), jen.Err()).Op(":=").Id("c").Dot("users").Dot("EmailExists").Call(jen.Id("r").Dot("Context").Call(), jen.Id("email")),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
				jen.Return(),
			),
			jen.If(jen.Id("exists")).Block(appendErr("Email already exists")),
		)
		g.If(jen.Len(jen.Id("errs")).Op(">").Lit(0)).Block(
			core(h, "Errors").Call(jen.Id("w"), jen.Id("errs")),
			jen.Return(),
		)

		g.Id("user").Op(":=").Add(entity(h, "New"+c.user.Name)).Call().
			Dot(c.accessor("name", true)).Call(jen.Id("name")).
			Dot(c.accessor("email", true)).Call(jen.Id("email")).
			Dot(c.accessor("password", true)).Call(jen.Id("password")).
			Dot(c.accessor("createdAt", true)).Call(jen.Qual("time", "Now").Call())
		g.If(jen.Err().Op(":=").Id("c").Dot("users").Dot("Save").Call(jen.Id("r").Dot("Context").Call(), jen.Id("user")), jen.Err().Op("!=").Nil()).Block(
			jen.If(core(h, "IsUniqueViolation").Call(jen.Err())).Block(
				core(h, "Errors").Call(jen.Id("w"), jen.Index().String().Values(jen.Lit("Email already exists"))),
				jen.Return(),
			),
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		)
		if c.hybrid() {
			g.Id("c").Dot("signIn").Call(jen.Id("w"), jen.Id("r"), jen.Id("user"))
			g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusCreated"), record(h,
				jen.Lit("success"), jen.True(),
				jen.Lit("message"), jen.Lit("Registration successful"),
				jen.Lit("redirect"), jen.Lit("/"),
			))
			return
		}
		g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusCreated"), record(h,
			jen.Lit("success"), jen.True(),
			jen.Lit("message"), jen.Lit("Registration successful"),
			jen.Lit("user"), jen.Id("profile").Call(jen.Id("user")),
		))
	})
}

func (c *authController) genLogout() {
	h := c.h
	c.f.Comment("Logout destroys the session.")
	c.method(gen.ActionLogout).BlockFunc(func(g *jen.Group) {
		g.Id("c").Dot("sessions").Dot("Destroy").Call(jen.Id("w"), jen.Id("r"))
		if c.hybrid() {
			g.Add(core(h, "Redirect")).Call(jen.Id("w"), jen.Id("r"), jen.Lit("/login"))
			return
		}
		g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusOK"), record(h,
			jen.Lit("success"), jen.True(),
			jen.Lit("message"), jen.Lit("Logout successful"),
		))
	})
}

func (c *authController) genCheck() {
	h := c.h
	c.f.Comment("Check reports whether the request belongs to a logged in user.")
	c.method(gen.ActionCheck).Block(
		jen.List(jen.Id("session"), jen.Id("ok")).Op(":=").Id("c").Dot("sessions").Dot("Lookup").Call(jen.Id("r")),
		jen.If(jen.Op("!").Id("ok").Op("||").Op("!").Id("session").Dot("IsAuthenticated").Call()).Block(
			core(h, "JSON").Call(jen.Id("w"), status("StatusOK"), record(h,
				jen.Lit("authenticated"), jen.False(),
				jen.Lit("user"), jen.Nil(),
			)),
			jen.Return(),
		),
		jen.List(jen.Id("user"), jen.Id("_")).Op(":=").Id("session").Dot("Get").Call(core(h, "SessionUser")),
		core(h, "JSON").Call(jen.Id("w"), status("StatusOK"), record(h,
			jen.Lit("authenticated"), jen.True(),
			jen.Lit("user"), jen.Id("user"),
		)),
	)
}

// genSignIn generates the helper storing the user in a new session.
func (c *authController) genSignIn() {
	h := c.h
	c.f.Comment("signIn stores user in the session and returns its public profile.")
	c.f.Func().Params(jen.Id("c").Op("*").Id(gen.AuthController)).Id("signIn").Params(
		jen.Id("w").Qual("net/http", "ResponseWriter"),
		jen.Id("r").Op("*").Qual("net/http", "Request"),
		jen.Id("user").Op("*").Add(entity(h, c.user.Name)),
	).Add(core(h, "Record")).Block(
		jen.Id("p").Op(":=").Id("profile").Call(jen.Id("user")),
		jen.Id("session").Op(":=").Id("c").Dot("sessions").Dot("Start").Call(jen.Id("w"), jen.Id("r")),
		jen.List(jen.Id("id"), jen.Id("_")).Op(":=").Id("user").Dot("GetID").Call(),
		jen.Id("session").Dot("Set").Call(core(h, "SessionUserID"), jen.Id("id")),
		jen.Id("session").Dot("Set").Call(core(h, "SessionUser"), jen.Id("p")),
		jen.Return(jen.Id("p")),
	)
}

// genProfile generates the serializer of the public user fields.
func (c *authController) genProfile() {
	h := c.h
	c.f.Comment("profile returns the public fields of user. The password is never included.")
	c.f.Func().Id("profile").Params(jen.Id("user").Op("*").Add(entity(h, c.user.Name))).Add(core(h, "Record")).Block(
		jen.List(jen.Id("id"), jen.Id("_")).Op(":=").Id("user").Dot("GetID").Call(),
		jen.Return(record(h,
			jen.Lit("id"), jen.Id("id"),
			jen.Lit("name"), jen.Id("user").Dot(c.accessor("name", false)).Call(),
			jen.Lit("email"), jen.Id("user").Dot(c.accessor("email", false)).Call(),
		)),
	)
}

func (c *authController) genFail() {
	h := c.h
	c.f.Func().Params(jen.Id("c").Op("*").Id(gen.AuthController)).Id("fail").Params(
		jen.Id("w").Qual("net/http", "ResponseWriter"),
		jen.Id("r").Op("*").Qual("net/http", "Request"),
		jen.Err().Error(),
	).Block(
		jen.Qual("log/slog", "ErrorContext").Call(
			jen.Id("r").Dot("Context").Call(),
			jen.Lit("auth request failed"),
			jen.Lit("path"), jen.Id("r").Dot("URL").Dot("Path"),
			jen.Lit("error"), jen.Err(),
		),
		core(h, "Error").Call(jen.Id("w"), status("StatusInternalServerError"), jen.Lit("Internal server error")),
	)
}
