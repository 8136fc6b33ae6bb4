package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names holds every identifier and path derived from an entity name.
type Names struct {
	// Class is the entity name as declared (e.g. "Post").
	Class string
	// Lower is the lowercase name (e.g. "post").
	Lower string
	// PluralLower is Lower with a trailing "s" (e.g. "posts").
	PluralLower string
	// Table is the database table name.
	Table string
	// RouteSegment is the first path segment of the resource routes.
	RouteSegment string
	// Controller is the handler type name (e.g. "PostController").
	Controller string
	// Repository is the repository type name (e.g. "PostRepository").
	Repository string
	// Receiver is the method receiver used in generated code.
	Receiver string
	// ViewFile is the presentation template file name (e.g. "post_index.html").
	ViewFile string
}

// Derive computes the Names of an entity. The plural is always Lower+"s",
// no inflection rules are applied. An empty name is not supported.
func Derive(name string) Names {
	lower := strings.ToLower(name)
	plural := lower + "s"
	return Names{
		Class:        name,
		Lower:        lower,
		PluralLower:  plural,
		Table:        plural,
		RouteSegment: plural,
		Controller:   name + "Controller",
		Repository:   name + "Repository",
		Receiver:     receiver(name),
		ViewFile:     lower + "_index.html",
	}
}

// Path returns the collection route of the entity (e.g. "/posts").
func (n Names) Path() string { return "/" + n.RouteSegment }

// MemberPath returns the route of one record (e.g. "/posts/{id}").
func (n Names) MemberPath() string { return n.Path() + "/{id}" }

// FieldNames holds the identifiers derived from a field name.
type FieldNames struct {
	// Struct is the unexported struct field holding the value.
	Struct string
	// Pascal is the exported form of the name (e.g. "CreatedAt").
	Pascal string
	// Getter is the accessor name (e.g. "GetTitle").
	Getter string
	// Setter is the mutator name (e.g. "SetTitle").
	Setter string
	// Column is the database column.
	Column string
	// Key is the form and JSON key.
	Key string
}

// DeriveField computes the FieldNames of a field.
func DeriveField(name string) FieldNames {
	p := pascal(name)
	return FieldNames{
		Struct: structField(name),
		Pascal: p,
		Getter: "Get" + p,
		Setter: "Set" + p,
		Column: name,
		Key:    name,
	}
}

// pascal converts a field name to PascalCase. Words split on "_", "-",
// spaces or a case change are capitalized and joined.
func pascal(name string) string {
	s := inflect.Camelize(strings.NewReplacer("-", "_", " ", "_").Replace(name))
	if s == "" {
		return s
	}
	s = titleCase(s)
	if !isIdent(s) {
		var b strings.Builder
		for _, r := range s {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
				b.WriteRune(r)
			}
		}
		s = b.String()
		if s == "" || unicode.IsDigit(rune(s[0])) {
			s = "F" + s
		}
	}
	return s
}

// receiver returns a short method receiver for a type name.
func receiver(name string) string {
	if name == "" {
		return "_x"
	}
	r := strings.ToLower(name[:1])
	if token.Lookup(r).IsKeyword() || !isIdent(r) {
		return "_" + r
	}
	return r
}

// structField returns the unexported struct field for a field name. Go
// keywords, names colliding with the identifier field and exported-looking
// names get a "_" prefix.
func structField(name string) string {
	s := lowerFirst(pascal(name))
	if _, ok := privateField[s]; ok || token.Lookup(s).IsKeyword() {
		return "_" + s
	}
	return s
}

// titleCase capitalizes the first letter of a string.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func isIdent(s string) bool {
	for i, r := range s {
		if !unicode.IsLetter(r) && r != '_' && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}

var labelCaser = cases.Title(language.English)

// Label returns the human readable column label of a field name
// (e.g. "created_at" becomes "Created At").
func Label(name string) string {
	words := strings.FieldsFunc(inflect.Underscore(name), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	return labelCaser.String(strings.Join(words, " "))
}

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{})
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}

// private fields used by the generated models.
var privateField = names(
	"id",
)
