package web

import (
	"net/http"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/mvcgen/compiler/gen"
)

// LoginPath is where the session gate sends anonymous browsers.
const LoginPath = "/login"

// genRoutes generates config/routes.go. It walks gen.RouteTable so the
// emitted registrations follow the table order exactly.
func genRoutes(h gen.GeneratorHelper) *jen.File {
	g := h.Graph()
	f := newFile(h, pkgConfig)
	f.Comment("Routes returns the router of the application. Routes are matched in")
	f.Comment("registration order, the first match wins.")
	f.Func().Id("Routes").Params(
		jen.Id("db").Op("*").Add(core(h, "Database")),
		jen.Id("sessions").Op("*").Add(core(h, "SessionStore")),
		jen.Id("views").Op("*").Add(core(h, "Views")),
	).Op("*").Add(core(h, "Router")).BlockFunc(func(body *jen.Group) {
		body.Id("router").Op(":=").Add(core(h, "NewRouter")).Call()
		if len(g.Nodes) == 0 && g.User == nil {
			body.Return(jen.Id("router"))
			return
		}
		if g.User != nil {
			body.Id("gate").Op(":=").Add(core(h, "NewSessionGate")).Call(jen.Id("sessions"), jen.Lit(LoginPath))
		} else {
			body.Id("gate").Op(":=").Add(core(h, "AllowAll")).Call()
		}
		for _, t := range g.Nodes {
			body.Id(controllerVar(t.Names.Controller)).Op(":=").Qual(h.ControllerPkg(), "New"+t.Names.Controller).Call(
				jen.Qual(h.RepositoryPkg(), "New"+t.Names.Repository).Call(jen.Id("db")),
				jen.Id("views"),
				jen.Id("gate"),
			)
		}
		if u := g.User; u != nil {
			body.Id(controllerVar(gen.AuthController)).Op(":=").Qual(h.ControllerPkg(), "New"+gen.AuthController).Call(
				jen.Qual(h.RepositoryPkg(), "New"+u.Names.Repository).Call(jen.Id("db")),
				jen.Id("sessions"),
				jen.Id("views"),
				jen.Id("gate"),
			)
		}
		body.Line()
		for _, r := range gen.RouteTable(g) {
			body.Id("router").Dot(registerMethod(r.Method)).Call(
				jen.Lit(r.Path),
				jen.Lit(r.Controller),
				jen.Lit(r.Action),
				jen.Id(controllerVar(r.Controller)).Dot(r.Action),
			)
		}
		body.Return(jen.Id("router"))
	})
	return f
}

// controllerVar returns the local variable holding a controller
// (e.g. "postController").
func controllerVar(controller string) string {
	return strings.ToLower(controller[:1]) + controller[1:]
}

// registerMethod returns the core.Router method registering an HTTP method.
func registerMethod(method string) string {
	switch method {
	case http.MethodPost:
		return "Post"
	case http.MethodPut:
		return "Put"
	case http.MethodDelete:
		return "Delete"
	default:
		return "Get"
	}
}
