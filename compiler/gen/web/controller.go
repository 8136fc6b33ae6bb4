package web

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/mvcgen/compiler/gen"
)

// controller holds the identifiers shared by the generated handler methods.
type controller struct {
	h     gen.GeneratorHelper
	t     *gen.Type
	f     *jen.File
	model *jen.Statement
}

// genController generates the handler file (src/Controller/{entity}_controller.go).
// The action bodies are selected by the variant of the run.
func genController(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	c := &controller{h: h, t: t, f: newFile(h, pkgController), model: entity(h, t.Name)}
	c.genStruct()
	c.genValidate()
	c.genIndex()
	c.genCreate()
	c.genStore()
	c.genShow()
	c.genEdit()
	c.genUpdate()
	c.genDelete()
	c.genLoad()
	c.genFail()
	return c.f
}

func (c *controller) hybrid() bool { return c.h.Variant().Hybrid() }

// method starts a handler method declaration.
func (c *controller) method(name string) *jen.Statement {
	return c.f.Func().Params(jen.Id("c").Op("*").Id(c.t.Names.Controller)).Id(name).Params(handlerParams()...)
}

// gate returns the access check of the mutating actions. It is only
// emitted in the hybrid variant.
func (c *controller) gate(g *jen.Group) {
	if c.hybrid() {
		g.If(jen.Op("!").Id("c").Dot("gate").Dot("Allow").Call(jen.Id("w"), jen.Id("r"))).Block(jen.Return())
	}
}

func (c *controller) message(action string) string {
	return fmt.Sprintf("%s %s successfully", c.t.Name, action)
}

func (c *controller) notFound() string {
	return c.t.Name + " not found"
}

func (c *controller) genStruct() {
	h, n := c.h, c.t.Names
	c.f.Commentf("%s handles the %s resource routes.", n.Controller, n.Path())
	c.f.Type().Id(n.Controller).Struct(
		jen.Id("repo").Op("*").Qual(h.RepositoryPkg(), n.Repository),
		jen.Id("views").Op("*").Add(core(h, "Views")),
		jen.Id("gate").Add(core(h, "Gate")),
	)

	c.f.Commentf("New%s returns a controller using repo for storage, views for", n.Controller)
	c.f.Comment("pages and gate for the mutating actions.")
	c.f.Func().Id("New"+n.Controller).Params(
		jen.Id("repo").Op("*").Qual(h.RepositoryPkg(), n.Repository),
		jen.Id("views").Op("*").Add(core(h, "Views")),
		jen.Id("gate").Add(core(h, "Gate")),
	).Op("*").Id(n.Controller).Block(
		jen.Return(jen.Op("&").Id(n.Controller).Values(jen.Dict{
			jen.Id("repo"):  jen.Id("repo"),
			jen.Id("views"): jen.Id("views"),
			jen.Id("gate"):  jen.Id("gate"),
		})),
	)
}

// validateFunc returns the name of the generated form validator.
func validateFunc(t *gen.Type) string {
	return "validate" + t.Name
}

// genValidate generates the form validator. Each field reports its first
// failing rule only.
func (c *controller) genValidate() {
	c.f.Commentf("%s checks a submitted form and returns the violations in field order.", validateFunc(c.t))
	c.f.Func().Id(validateFunc(c.t)).Params(jen.Id("form").Qual("net/url", "Values")).Index().String().BlockFunc(func(g *jen.Group) {
		g.Var().Id("errs").Index().String()
		for _, fd := range c.t.Fields {
			g.Add(ruleChain(c.h, fd))
		}
		g.Return(jen.Id("errs"))
	})
}

// ruleChain returns the if / else if chain evaluating the rules of a field.
func ruleChain(h gen.GeneratorHelper, fd *gen.Field) *jen.Statement {
	var stmt *jen.Statement
	for i, rule := range fd.Rules() {
		args := []jen.Code{jen.Id("v")}
		if rule.Kind == gen.RuleMaxLength {
			args = append(args, jen.Lit(rule.Limit))
		}
		cond := jen.Op("!").Add(core(h, rule.Validator())).Call(args...)
		body := jen.Block(jen.Id("errs").Op("=").Append(jen.Id("errs"), jen.Lit(rule.Message)))
		if i == 0 {
			stmt = jen.If(jen.Id("v").Op(":=").Id("form").Dot("Get").Call(jen.Lit(fd.Names.Key)), cond).Add(body)
			continue
		}
		stmt.Else().If(cond).Add(body)
	}
	return stmt
}

func (c *controller) genIndex() {
	h := c.h
	c.f.Commentf("Index lists every %s.", c.t.Names.Lower)
	if c.hybrid() {
		c.f.Comment("Browser navigation gets the listing page, script requests get JSON.")
	}
	c.method(gen.ActionIndex).BlockFunc(func(g *jen.Group) {
		if c.hybrid() {
			g.If(jen.Op("!").Add(core(h, "IsAsync")).Call(jen.Id("r"))).Block(
				jen.If(jen.Err().Op(":=").Id("c").Dot("views").Dot("Render").Call(
					jen.Id("w"),
					jen.Lit(c.t.Names.ViewFile),
					jen.Map(jen.String()).Any().Values(jen.Dict{jen.Lit("Title"): jen.Lit(c.t.Name + " Management")}),
				), jen.Err().Op("!=").Nil()).Block(
					jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
				),
				jen.Return(),
			)
		}
		g.List(jen.Id("items"), jen.Err()).Op(":=").Id("c").Dot("repo").Dot("FindAll").Call(jen.Id("r").Dot("Context").Call())
		g.If(jen.Err().Op("!=").Nil()).Block(
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		)
		g.Id("out").Op(":=").Make(jen.Index().Add(core(h, "Record")), jen.Lit(0), jen.Len(jen.Id("items")))
		g.For(jen.List(jen.Id("_"), jen.Id("item")).Op(":=").Range().Id("items")).Block(
			jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("item").Dot("Extract").Call()),
		)
		g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusOK"), jen.Id("out"))
	})
}

func (c *controller) genCreate() {
	h := c.h
	pairs := make([]jen.Code, 0, 2*len(c.t.Fields))
	for _, fd := range c.t.Fields {
		pairs = append(pairs, jen.Lit(fd.Names.Key), jen.Lit(fd.Declared))
	}
	c.f.Comment("Create returns the fields expected by Store with their declared types.")
	c.method(gen.ActionCreate).Block(
		core(h, "JSON").Call(jen.Id("w"), status("StatusOK"), record(h,
			jen.Lit("fields"), record(h, pairs...),
		)),
	)
}

// submitted parses and validates the form, then returns the values to
// hydrate. The identifier is never taken from the form.
func (c *controller) submitted(g *jen.Group) {
	h := c.h
	g.List(jen.Id("form"), jen.Err()).Op(":=").Add(core(h, "Form")).Call(jen.Id("r"))
	g.If(jen.Err().Op("!=").Nil()).Block(
		core(h, "Error").Call(jen.Id("w"), status("StatusBadRequest"), jen.Lit("Invalid form data")),
		jen.Return(),
	)
	g.If(jen.Id("errs").Op(":=").Id(validateFunc(c.t)).Call(jen.Id("form")), jen.Len(jen.Id("errs")).Op(">").Lit(0)).Block(
		core(h, "Errors").Call(jen.Id("w"), jen.Id("errs")),
		jen.Return(),
	)
	g.Id("data").Op(":=").Add(core(h, "FormMap")).Call(jen.Id("form"))
	g.Delete(jen.Id("data"), jen.Lit("id"))
}

func (c *controller) genStore() {
	h := c.h
	c.f.Commentf("Store validates the form and creates a %s.", c.t.Names.Lower)
	c.method(gen.ActionStore).BlockFunc(func(g *jen.Group) {
		c.gate(g)
		c.submitted(g)
		g.List(jen.Id("e"), jen.Err()).Op(":=").Add(entity(h, "New"+c.t.Name)).Call().Dot("Hydrate").Call(jen.Id("data"))
		g.If(jen.Err().Op("!=").Nil()).Block(
			core(h, "Error").Call(jen.Id("w"), status("StatusBadRequest"), jen.Err().Dot("Error").Call()),
			jen.Return(),
		)
		g.If(jen.Err().Op(":=").Id("c").Dot("repo").Dot("Save").Call(jen.Id("r").Dot("Context").Call(), jen.Id("e")), jen.Err().Op("!=").Nil()).Block(
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		)
		g.List(jen.Id("id"), jen.Id("_")).Op(":=").Id("e").Dot("GetID").Call()
		g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusCreated"), record(h,
			jen.Lit("success"), jen.True(),
			jen.Lit("id"), jen.Id("id"),
			jen.Lit("message"), jen.Lit(c.message("created")),
		))
	})
}

func (c *controller) genShow() {
	h := c.h
	c.f.Commentf("Show returns one %s.", c.t.Names.Lower)
	c.method(gen.ActionShow).BlockFunc(func(g *jen.Group) {
		g.List(jen.Id("e"), jen.Err()).Op(":=").Id("c").Dot("load").Call(jen.Id("r").Dot("Context").Call(), jen.Id("args"))
		if c.hybrid() {
			g.If(
				jen.Qual("errors", "Is").Call(jen.Err(), core(h, "ErrNotFound")).Op("&&").Op("!").Add(core(h, "IsAsync")).Call(jen.Id("r")),
			).Block(
				core(h, "Text").Call(jen.Id("w"), status("StatusNotFound"), jen.Lit("404 - "+c.notFound())),
				jen.Return(),
			)
		}
		g.If(jen.Err().Op("!=").Nil()).Block(
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		)
		g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusOK"), jen.Id("e").Dot("Extract").Call())
	})
}

func (c *controller) genEdit() {
	h := c.h
	c.f.Commentf("Edit returns the current values of a %s for the edit form.", c.t.Names.Lower)
	c.method(gen.ActionEdit).Block(
		jen.List(jen.Id("e"), jen.Err()).Op(":=").Id("c").Dot("load").Call(jen.Id("r").Dot("Context").Call(), jen.Id("args")),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		),
		core(h, "JSON").Call(jen.Id("w"), status("StatusOK"), jen.Id("e").Dot("Extract").Call()),
	)
}

func (c *controller) genUpdate() {
	h := c.h
	c.f.Commentf("Update validates the form and rewrites every field of a %s.", c.t.Names.Lower)
	c.method(gen.ActionUpdate).BlockFunc(func(g *jen.Group) {
		c.gate(g)
		g.List(jen.Id("e"), jen.Err()).Op(":=").Id("c").Dot("load").Call(jen.Id("r").Dot("Context").Call(), jen.Id("args"))
		g.If(jen.Err().Op("!=").Nil()).Block(
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		)
		c.submitted(g)
		g.If(jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("e").Dot("Hydrate").Call(jen.Id("data")), jen.Err().Op("!=").Nil()).Block(
			core(h, "Error").Call(jen.Id("w"), status("StatusBadRequest"), jen.Err().Dot("Error").Call()),
			jen.Return(),
		)
		g.If(jen.Err().Op(":=").Id("c").Dot("repo").Dot("Save").Call(jen.Id("r").Dot("Context").Call(), jen.Id("e")), jen.Err().Op("!=").Nil()).Block(
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		)
		g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusOK"), record(h,
			jen.Lit("success"), jen.True(),
			jen.Lit("message"), jen.Lit(c.message("updated")),
		))
	})
}

func (c *controller) genDelete() {
	h := c.h
	c.f.Commentf("Delete removes a %s.", c.t.Names.Lower)
	c.method(gen.ActionDelete).BlockFunc(func(g *jen.Group) {
		c.gate(g)
		g.List(jen.Id("e"), jen.Err()).Op(":=").Id("c").Dot("load").Call(jen.Id("r").Dot("Context").Call(), jen.Id("args"))
		g.If(jen.Err().Op("!=").Nil()).Block(
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		)
		g.List(jen.Id("id"), jen.Id("_")).Op(":=").Id("e").Dot("GetID").Call()
		g.If(jen.Err().Op(":=").Id("c").Dot("repo").Dot("Delete").Call(jen.Id("r").Dot("Context").Call(), jen.Id("id")), jen.Err().Op("!=").Nil()).Block(
			jen.Id("c").Dot("fail").Call(jen.Id("w"), jen.Id("r"), jen.Err()),
			jen.Return(),
		)
		g.Add(core(h, "JSON")).Call(jen.Id("w"), status("StatusOK"), record(h,
			jen.Lit("success"), jen.True(),
			jen.Lit("message"), jen.Lit(c.message("deleted")),
		))
	})
}

// genLoad generates the lookup of the record addressed by the route.
func (c *controller) genLoad() {
	h := c.h
	c.f.Comment("load returns the record addressed by the {id} argument.")
	c.f.Func().Params(jen.Id("c").Op("*").Id(c.t.Names.Controller)).Id("load").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("args").Index().String(),
	).Params(jen.Op("*").Add(c.model.Clone()), jen.Error()).Block(
		jen.List(jen.Id("id"), jen.Id("ok")).Op(":=").Add(core(h, "ParseID")).Call(jen.Id("args")),
		jen.If(jen.Op("!").Id("ok")).Block(jen.Return(jen.Nil(), core(h, "ErrNotFound"))),
		jen.Return(jen.Id("c").Dot("repo").Dot("FindByID").Call(jen.Id("ctx"), jen.Id("id"))),
	)
}

// genFail generates the error responder. Missing records answer 404,
// anything else is logged and answers 500 without details.
func (c *controller) genFail() {
	h := c.h
	c.f.Comment("fail writes the error response of err.")
	c.f.Func().Params(jen.Id("c").Op("*").Id(c.t.Names.Controller)).Id("fail").Params(
		jen.Id("w").Qual("net/http", "ResponseWriter"),
		jen.Id("r").Op("*").Qual("net/http", "Request"),
		jen.Err().Error(),
	).Block(
		jen.If(jen.Qual("errors", "Is").Call(jen.Err(), core(h, "ErrNotFound"))).Block(
			core(h, "Error").Call(jen.Id("w"), status("StatusNotFound"), jen.Lit(c.notFound())),
			jen.Return(),
		),
		jen.Qual("log/slog", "ErrorContext").Call(
			jen.Id("r").Dot("Context").Call(),
			jen.Lit(c.t.Names.Lower+" request failed"),
			jen.Lit("method"), jen.Id("r").Dot("Method"),
			jen.Lit("path"), jen.Id("r").Dot("URL").Dot("Path"),
			jen.Lit("error"), jen.Err(),
		),
		core(h, "Error").Call(jen.Id("w"), status("StatusInternalServerError"), jen.Lit("Internal server error")),
	)
}
