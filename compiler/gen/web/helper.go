package web

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/mvcgen/compiler/gen"
)

// Package names of the generated project.
const (
	pkgCore       = "core"
	pkgEntity     = "entity"
	pkgRepository = "repository"
	pkgController = "controller"
	pkgConfig     = "config"
)

// newFile creates a file in pkg with the project packages registered
// under their package names, since their directories are capitalized.
func newFile(h gen.GeneratorHelper, pkg string) *jen.File {
	f := h.NewFile(pkg)
	f.ImportName(h.CorePkg(), pkgCore)
	f.ImportName(h.EntityPkg(), pkgEntity)
	f.ImportName(h.RepositoryPkg(), pkgRepository)
	f.ImportName(h.ControllerPkg(), pkgController)
	return f
}

// core returns a qualified identifier of the runtime package.
func core(h gen.GeneratorHelper, name string) *jen.Statement {
	return jen.Qual(h.CorePkg(), name)
}

// entity returns a qualified identifier of the entity package.
func entity(h gen.GeneratorHelper, name string) *jen.Statement {
	return jen.Qual(h.EntityPkg(), name)
}

// handlerParams returns the parameters shared by every route handler.
func handlerParams() []jen.Code {
	return []jen.Code{
		jen.Id("w").Qual("net/http", "ResponseWriter"),
		jen.Id("r").Op("*").Qual("net/http", "Request"),
		jen.Id("args").Index().String(),
	}
}

// status returns a net/http status constant.
func status(name string) *jen.Statement {
	return jen.Qual("net/http", name)
}

// record builds a core.Record literal from ordered key/value pairs.
func record(h gen.GeneratorHelper, pairs ...jen.Code) *jen.Statement {
	return core(h, "Record").ValuesFunc(func(g *jen.Group) {
		for i := 0; i+1 < len(pairs); i += 2 {
			g.Values(jen.Dict{
				jen.Id("Key"):   pairs[i],
				jen.Id("Value"): pairs[i+1],
			})
		}
	})
}

// ident quotes a table or column name. core.Database rewrites the quotes
// for PostgreSQL.
func ident(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// placeholders returns n comma separated ? placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// quoteAll quotes every column.
func quoteAll(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = ident(c)
	}
	return out
}

// ifErrReturn returns `if err != nil { return results... }`.
func ifErrReturn(results ...jen.Code) *jen.Statement {
	return jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(results...))
}

// isUser reports if t is the authentication entity.
func isUser(h gen.GeneratorHelper, t *gen.Type) bool {
	u := h.Graph().User
	return u != nil && t == u
}
