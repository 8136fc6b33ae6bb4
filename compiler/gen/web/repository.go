package web

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/mvcgen/compiler/gen"
)

// Statements of a repository, built from the declared columns.
type statements struct {
	SelectAll  string
	SelectByID string
	Insert     string
	Update     string
	Delete     string
	Count      string
}

// repositorySQL returns the statements of a type. Columns are listed in
// declaration order; the identifier is never written.
func repositorySQL(t *gen.Type) statements {
	table := ident(t.Table())
	columns := quoteAll(t.Columns())
	assignments := make([]string, len(columns))
	for i, c := range columns {
		assignments[i] = c + " = ?"
	}
	s := statements{
		SelectAll:  fmt.Sprintf("SELECT * FROM %s ORDER BY %s", table, ident("id")),
		SelectByID: fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", table, ident("id")),
		Delete:     fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, ident("id")),
		Count:      fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	}
	if len(columns) > 0 {
		s.Insert = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders(len(columns)))
		s.Update = fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(assignments, ", "), ident("id"))
	}
	return s
}

// genRepository generates the data access file (src/Repository/{entity}_repository.go).
func genRepository(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := newFile(h, pkgRepository)
	sql := repositorySQL(t)
	repo := t.Names.Repository
	model := entity(h, t.Name)
	recv := jen.Id("r").Op("*").Id(repo)
	ctx := jen.Id("ctx").Qual("context", "Context")

	f.Commentf("%s stores %s records in the %s table.", repo, t.Name, t.Table())
	f.Type().Id(repo).Struct(
		jen.Id("db").Op("*").Add(core(h, "Database")),
	)

	f.Commentf("New%s returns a repository backed by db.", repo)
	f.Func().Id("New"+repo).Params(jen.Id("db").Op("*").Add(core(h, "Database"))).Op("*").Id(repo).Block(
		jen.Return(jen.Op("&").Id(repo).Values(jen.Dict{jen.Id("db"): jen.Id("db")})),
	)

	f.Comment("FindAll returns every record ordered by id.")
	f.Func().Params(recv.Clone()).Id("FindAll").Params(ctx.Clone()).Params(jen.Index().Op("*").Add(model.Clone()), jen.Error()).Block(
		jen.List(jen.Id("rows"), jen.Err()).Op(":=").Id("r").Dot("db").Dot("FetchAll").Call(jen.Id("ctx"), jen.Lit(sql.SelectAll)),
		ifErrReturn(jen.Nil(), jen.Err()),
		jen.Id("out").Op(":=").Make(jen.Index().Op("*").Add(model.Clone()), jen.Lit(0), jen.Len(jen.Id("rows"))),
		jen.For(jen.List(jen.Id("_"), jen.Id("row")).Op(":=").Range().Id("rows")).Block(
			jen.List(jen.Id("e"), jen.Err()).Op(":=").Add(entity(h, "New"+t.Name)).Call().Dot("Hydrate").Call(jen.Id("row")),
			ifErrReturn(jen.Nil(), jen.Err()),
			jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("e")),
		),
		jen.Return(jen.Id("out"), jen.Nil()),
	)

	f.Comment("FindByID returns the record with the given id, or core.ErrNotFound.")
	f.Func().Params(recv.Clone()).Id("FindByID").Params(ctx.Clone(), jen.Id("id").Int64()).Params(jen.Op("*").Add(model.Clone()), jen.Error()).Block(
		jen.List(jen.Id("row"), jen.Err()).Op(":=").Id("r").Dot("db").Dot("FetchOne").Call(jen.Id("ctx"), jen.Lit(sql.SelectByID), jen.Id("id")),
		ifErrReturn(jen.Nil(), jen.Err()),
		jen.Return(entity(h, "New"+t.Name).Call().Dot("Hydrate").Call(jen.Id("row"))),
	)

	genRepositorySave(h, f, t, sql)

	f.Comment("Delete removes the record with the given id.")
	f.Func().Params(recv.Clone()).Id("Delete").Params(ctx.Clone(), jen.Id("id").Int64()).Error().Block(
		jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("r").Dot("db").Dot("Exec").Call(jen.Id("ctx"), jen.Lit(sql.Delete), jen.Id("id")),
		jen.Return(jen.Err()),
	)

	f.Comment("Count returns the number of records.")
	f.Func().Params(recv.Clone()).Id("Count").Params(ctx.Clone()).Params(jen.Int64(), jen.Error()).Block(
		jen.Return(jen.Id("r").Dot("db").Dot("Scalar").Call(jen.Id("ctx"), jen.Lit(sql.Count))),
	)

	if isUser(h, t) {
		genUserLookups(h, f, t)
	}
	return f
}

// genRepositorySave generates Save. The branch is taken on the presence
// of the identifier only.
func genRepositorySave(h gen.GeneratorHelper, f *jen.File, t *gen.Type, sql statements) {
	model := entity(h, t.Name)
	values := func(g *jen.Group) {
		g.Id("ctx")
		g.Lit(sql.Insert)
		for _, fd := range t.Fields {
			g.Id("e").Dot(fd.Names.Getter).Call()
		}
	}
	f.Comment("Save inserts e when it has no identifier and writes the new")
	f.Comment("identifier back. Otherwise every column is updated.")
	f.Func().Params(jen.Id("r").Op("*").Id(t.Names.Repository)).Id("Save").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("e").Op("*").Add(model),
	).Error().BlockFunc(func(g *jen.Group) {
		if isUser(h, t) {
			g.If(jen.Err().Op(":=").Id("e").Dot("HashPassword").Call(), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Err()),
			)
		}
		if len(t.Fields) == 0 {
			g.If(jen.List(jen.Id("_"), jen.Id("ok")).Op(":=").Id("e").Dot("GetID").Call(), jen.Id("ok")).Block(
				jen.Return(jen.Nil()),
			)
			g.List(jen.Id("id"), jen.Err()).Op(":=").Id("r").Dot("db").Dot("InsertDefault").Call(jen.Id("ctx"), jen.Lit(t.Table()))
			g.Add(ifErrReturn(jen.Err()))
			g.Id("e").Dot("SetID").Call(jen.Id("id"))
			g.Return(jen.Nil())
			return
		}
		g.List(jen.Id("id"), jen.Id("ok")).Op(":=").Id("e").Dot("GetID").Call()
		g.If(jen.Op("!").Id("ok")).Block(
			jen.List(jen.Id("newID"), jen.Err()).Op(":=").Id("r").Dot("db").Dot("Insert").CallFunc(values),
			ifErrReturn(jen.Err()),
			jen.Id("e").Dot("SetID").Call(jen.Id("newID")),
			jen.Return(jen.Nil()),
		)
		g.List(jen.Id("_"), jen.Err()).Op(":=").Id("r").Dot("db").Dot("Exec").CallFunc(func(g *jen.Group) {
			g.Id("ctx")
			g.Lit(sql.Update)
			for _, fd := range t.Fields {
				g.Id("e").Dot(fd.Names.Getter).Call()
			}
			g.Id("id")
		})
		g.Return(jen.Err())
	})
}

// genUserLookups generates the e-mail lookups of the authentication entity.
func genUserLookups(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	email, ok := t.Field("email")
	if !ok {
		return
	}
	table := ident(t.Table())
	column := ident(email.Names.Column)
	recv := jen.Id("r").Op("*").Id(t.Names.Repository)

	f.Comment("FindByEmail returns the user with the given e-mail, or core.ErrNotFound.")
	f.Func().Params(recv.Clone()).Id("FindByEmail").Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("email").String()).Params(jen.Op("*").Add(entity(h, t.Name)), jen.Error()).Block(
		jen.List(jen.Id("row"), jen.Err()).Op(":=").Id("r").Dot("db").Dot("FetchOne").Call(
			jen.Id("ctx"),
			jen.Lit(fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", table, column)),
			jen.Id("email"),
		),
		ifErrReturn(jen.Nil(), jen.Err()),
		jen.Return(entity(h, "New"+t.Name).Call().Dot("Hydrate").Call(jen.Id("row"))),
	)

	f.Comment("EmailExists reports whether a user is registered with the given e-mail.")
	f.Func().Params(recv.Clone()).Id("EmailExists").Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("email").String()).Params(jen.Bool(), jen.Error()).Block(
		jen.List(jen.Id("n"), jen.Err()).Op(":=").Id("r").Dot("db").Dot("Scalar").Call(
			jen.Id("ctx"),
			jen.Lit(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", table, column)),
			jen.Id("email"),
		),
		ifErrReturn(jen.False(), jen.Err()),
		jen.Return(jen.Id("n").Op(">").Lit(0), jen.Nil()),
	)
}
