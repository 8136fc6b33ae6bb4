package web

import (
	"github.com/syssam/mvcgen/compiler/gen"
)

// viewField is the template data of one field of a listing page.
type viewField struct {
	Key   string
	Label string
	Input string
}

// viewData is the template data of a listing page.
type viewData struct {
	Label  string
	Lower  string
	Path   string
	Fields []viewField
}

// layoutData is the template data of the shared layout.
type layoutData struct {
	Project string
	Types   []viewData
	Auth    bool
}

func newViewData(t *gen.Type) viewData {
	d := viewData{
		Label:  t.Label(),
		Lower:  t.Names.Lower,
		Path:   t.Names.Path(),
		Fields: make([]viewField, 0, len(t.Fields)),
	}
	for _, f := range t.Serialized() {
		d.Fields = append(d.Fields, viewField{Key: f.Names.Key, Label: f.Label(), Input: f.Input()})
	}
	return d
}

// genView renders the listing page of t. Columns follow the field order
// of the model, which is also the key order of the JSON list payload.
func genView(_ gen.GeneratorHelper, t *gen.Type) ([]byte, error) {
	return gen.Execute(templates, "index.html.tmpl", newViewData(t))
}

// genLayout renders src/View/layout.html with one navigation link per entity.
func genLayout(h gen.GeneratorHelper) ([]byte, error) {
	g := h.Graph()
	d := layoutData{Project: g.Project, Auth: g.User != nil}
	for _, t := range g.Nodes {
		d.Types = append(d.Types, newViewData(t))
	}
	return gen.Execute(templates, "layout.html.tmpl", d)
}

// genAuthViews renders the login and registration pages.
func genAuthViews(h gen.GeneratorHelper) (map[string][]byte, error) {
	if h.Graph().User == nil {
		return nil, nil
	}
	login, err := gen.Execute(templates, "auth_login.html.tmpl", nil)
	if err != nil {
		return nil, err
	}
	register, err := gen.Execute(templates, "auth_register.html.tmpl", struct{ MinPassword int }{MinPasswordLength})
	if err != nil {
		return nil, err
	}
	return map[string][]byte{
		viewLogin:    login,
		viewRegister: register,
	}, nil
}
