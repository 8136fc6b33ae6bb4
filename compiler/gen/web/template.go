package web

import (
	"embed"
	"go/token"
	"strconv"
	"strings"
	"text/template"
)

// templateFS holds the view and static file templates. They use [[ ]]
// delimiters so that the {{ }} actions of the generated html/template
// views pass through unchanged.
//
//go:embed templates
var templateFS embed.FS

// templates is the parsed template set, keyed by file name.
var templates = template.Must(template.New("web").
	Delims("[[", "]]").
	Funcs(template.FuncMap{
		"jsprop":  jsProp,
		"comment": comment,
	}).
	ParseFS(templateFS, "templates/view/*.tmpl", "templates/static/*.tmpl"))

// jsProp returns the JavaScript property access of key: ".title" for
// identifiers, ["created-at"] otherwise.
func jsProp(key string) string {
	if token.IsIdentifier(key) {
		return "." + key
	}
	return "[" + strconv.Quote(key) + "]"
}

// comment turns text into // line comments.
func comment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+l, " ")
	}
	return strings.Join(lines, "\n")
}
