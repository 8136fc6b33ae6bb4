package web

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/mvcgen/compiler/gen"
)

// genEntity generates the model file (src/Entity/{entity}.go).
func genEntity(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := newFile(h, pkgEntity)
	genEntityStruct(h, f, t)
	genEntityID(f, t)
	for _, fd := range t.Fields {
		genEntityAccessors(h, f, t, fd)
	}
	genEntitySetters(h, f, t)
	genEntityHydrate(f, t)
	genEntityExtract(h, f, t)
	if isUser(h, t) {
		genUserPassword(h, f, t)
	}
	return f
}

// genEntityStruct generates the struct and its constructor.
func genEntityStruct(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Commentf("%s is the model of the %s table.", t.Name, t.Table())
	f.Type().Id(t.Name).StructFunc(func(group *jen.Group) {
		group.Id("id").Op("*").Int64()
		for _, fd := range t.Fields {
			group.Id(fd.Names.Struct).Add(h.GoType(fd))
		}
	})

	f.Commentf("New%s returns an empty %s without identifier.", t.Name, t.Name)
	f.Func().Id("New" + t.Name).Params().Op("*").Id(t.Name).Block(
		jen.Return(jen.Op("&").Id(t.Name).Values()),
	)
}

// genEntityID generates the identifier accessors.
func genEntityID(f *jen.File, t *gen.Type) {
	rv := t.Receiver()
	f.Comment("GetID returns the identifier and whether it is set.")
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id("GetID").Params().Params(jen.Int64(), jen.Bool()).Block(
		jen.If(jen.Id(rv).Dot("id").Op("==").Nil()).Block(
			jen.Return(jen.Lit(0), jen.False()),
		),
		jen.Return(jen.Op("*").Id(rv).Dot("id"), jen.True()),
	)

	f.Comment("SetID sets the identifier.")
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id("SetID").Params(jen.Id("id").Int64()).Op("*").Id(t.Name).Block(
		jen.Id(rv).Dot("id").Op("=").Op("&").Id("id"),
		jen.Return(jen.Id(rv)),
	)
}

// genEntityAccessors generates the getter and the fluent setter of a field.
func genEntityAccessors(h gen.GeneratorHelper, f *jen.File, t *gen.Type, fd *gen.Field) {
	rv := t.Receiver()
	f.Commentf("%s returns the value of the %q field.", fd.Names.Getter, fd.Name)
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id(fd.Names.Getter).Params().Add(h.GoType(fd)).Block(
		jen.Return(jen.Id(rv).Dot(fd.Names.Struct)),
	)

	f.Commentf("%s sets the value of the %q field.", fd.Names.Setter, fd.Name)
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id(fd.Names.Setter).Params(jen.Id("value").Add(h.GoType(fd))).Op("*").Id(t.Name).Block(
		jen.Id(rv).Dot(fd.Names.Struct).Op("=").Id("value"),
		jen.Return(jen.Id(rv)),
	)
}

// setterTable returns the name of the generated setter table.
func setterTable(t *gen.Type) string {
	return t.Names.Lower + "Setters"
}

// genEntitySetters generates the static table used by Hydrate. Each entry
// converts the raw value and calls the setter of its key.
func genEntitySetters(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	setter := func(converter, method string) jen.Code {
		return jen.Func().Params(jen.Id("m").Op("*").Id(t.Name), jen.Id("raw").Any()).Error().Block(
			jen.List(jen.Id("value"), jen.Err()).Op(":=").Add(core(h, converter)).Call(jen.Id("raw")),
			ifErrReturn(jen.Err()),
			jen.Id("m").Dot(method).Call(jen.Id("value")),
			jen.Return(jen.Nil()),
		)
	}
	f.Commentf("%s maps keys to the conversions used by Hydrate.", setterTable(t))
	f.Var().Id(setterTable(t)).Op("=").Map(jen.String()).Func().Params(jen.Op("*").Id(t.Name), jen.Any()).Error().Values(jen.DictFunc(func(d jen.Dict) {
		d[jen.Lit("id")] = setter("ToInt64", "SetID")
		for _, fd := range t.Fields {
			d[jen.Lit(fd.Names.Key)] = setter(fd.Storage().Converter, fd.Names.Setter)
		}
	}))
}

// genEntityHydrate generates Hydrate.
func genEntityHydrate(f *jen.File, t *gen.Type) {
	rv := t.Receiver()
	f.Comment("Hydrate sets the fields present in data. Keys without a setter are ignored.")
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id("Hydrate").Params(jen.Id("data").Map(jen.String()).Any()).Params(jen.Op("*").Id(t.Name), jen.Error()).Block(
		jen.For(jen.List(jen.Id("key"), jen.Id("value")).Op(":=").Range().Id("data")).Block(
			jen.List(jen.Id("set"), jen.Id("ok")).Op(":=").Id(setterTable(t)).Index(jen.Id("key")),
			jen.If(jen.Op("!").Id("ok")).Block(jen.Continue()),
			jen.If(jen.Err().Op(":=").Id("set").Call(jen.Id(rv), jen.Id("value")), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit(t.Names.Lower+": field %q: %w"), jen.Id("key"), jen.Err())),
			),
		),
		jen.Return(jen.Id(rv), jen.Nil()),
	)
}

// genEntityExtract generates the serializer. The identifier comes first
// when set, then every non-sensitive field in declaration order.
func genEntityExtract(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	rv := t.Receiver()
	f.Comment("Extract returns the serialized form of the record.")
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id("Extract").Params().Add(core(h, "Record")).BlockFunc(func(g *jen.Group) {
		g.Id("out").Op(":=").Make(core(h, "Record"), jen.Lit(0), jen.Lit(len(t.Fields)+1))
		g.If(jen.Id(rv).Dot("id").Op("!=").Nil()).Block(
			jen.Id("out").Op("=").Append(jen.Id("out"), core(h, "Pair").Values(jen.Dict{
				jen.Id("Key"):   jen.Lit("id"),
				jen.Id("Value"): jen.Op("*").Id(rv).Dot("id"),
			})),
		)
		if fields := t.Serialized(); len(fields) > 0 {
			g.Return(jen.Append(jen.Id("out"), jen.ListFunc(func(l *jen.Group) {
				for _, fd := range fields {
					l.Add(core(h, "Pair").Values(jen.Dict{
						jen.Id("Key"):   jen.Lit(fd.Names.Key),
						jen.Id("Value"): jen.Id(rv).Dot(fd.Names.Struct),
					}))
				}
			})))
			return
		}
		g.Return(jen.Id("out"))
	})
}

// genUserPassword generates the password helpers of the authentication entity.
func genUserPassword(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	pw, ok := t.Field("password")
	if !ok {
		return
	}
	rv := t.Receiver()
	field := jen.Id(rv).Dot(pw.Names.Struct)

	f.Comment("HashPassword replaces a plain password with its bcrypt hash.")
	f.Comment("A password that is already hashed is kept.")
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id("HashPassword").Params().Error().Block(
		jen.If(core(h, "IsPasswordHash").Call(field.Clone())).Block(jen.Return(jen.Nil())),
		jen.List(jen.Id("hash"), jen.Err()).Op(":=").Add(core(h, "HashPassword")).Call(field.Clone()),
		ifErrReturn(jen.Err()),
		field.Clone().Op("=").Id("hash"),
		jen.Return(jen.Nil()),
	)

	f.Comment("VerifyPassword reports whether plain matches the stored hash.")
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id("VerifyPassword").Params(jen.Id("plain").String()).Bool().Block(
		jen.Return(core(h, "VerifyPassword").Call(field.Clone(), jen.Id("plain"))),
	)
}
