package gen

import "net/http"

// Actions of the resource controllers.
const (
	ActionIndex  = "Index"
	ActionCreate = "Create"
	ActionStore  = "Store"
	ActionShow   = "Show"
	ActionEdit   = "Edit"
	ActionUpdate = "Update"
	ActionDelete = "Delete"
)

// Actions of the authentication controller.
const (
	AuthController = "AuthController"
	ActionLogin    = "Login"
	ActionRegister = "Register"
	ActionLogout   = "Logout"
	ActionCheck    = "Check"
)

// Route is one entry of the generated route table.
type Route struct {
	Method     string
	Path       string
	Controller string
	Action     string
	// Type is the entity served by the route. Nil for authentication routes.
	Type *Type
}

// Resource returns the seven resource routes of an entity in registration order.
// The create-form route comes after the member route: {id} only matches
// digits, so /<plural>/create never reaches Show.
func Resource(t *Type) []Route {
	n := t.Names
	return []Route{
		{Method: http.MethodGet, Path: n.Path(), Controller: n.Controller, Action: ActionIndex, Type: t},
		{Method: http.MethodGet, Path: n.MemberPath(), Controller: n.Controller, Action: ActionShow, Type: t},
		{Method: http.MethodGet, Path: n.Path() + "/create", Controller: n.Controller, Action: ActionCreate, Type: t},
		{Method: http.MethodPost, Path: n.Path(), Controller: n.Controller, Action: ActionStore, Type: t},
		{Method: http.MethodGet, Path: n.MemberPath() + "/edit", Controller: n.Controller, Action: ActionEdit, Type: t},
		{Method: http.MethodPut, Path: n.MemberPath(), Controller: n.Controller, Action: ActionUpdate, Type: t},
		{Method: http.MethodDelete, Path: n.MemberPath(), Controller: n.Controller, Action: ActionDelete, Type: t},
	}
}

// AuthRoutes returns the six authentication routes.
func AuthRoutes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/login", Controller: AuthController, Action: ActionLogin},
		{Method: http.MethodPost, Path: "/login", Controller: AuthController, Action: ActionLogin},
		{Method: http.MethodGet, Path: "/register", Controller: AuthController, Action: ActionRegister},
		{Method: http.MethodPost, Path: "/register", Controller: AuthController, Action: ActionRegister},
		{Method: http.MethodGet, Path: "/logout", Controller: AuthController, Action: ActionLogout},
		{Method: http.MethodGet, Path: "/auth/check", Controller: AuthController, Action: ActionCheck},
	}
}

// RouteTable returns the complete route table of the graph in registration
// order: the default route to the first entity listing, the authentication
// routes when enabled, then the resource routes of every entity.
func RouteTable(g *Graph) []Route {
	var routes []Route
	if len(g.Nodes) > 0 {
		first := g.Nodes[0]
		routes = append(routes, Route{
			Method:     http.MethodGet,
			Path:       "/",
			Controller: first.Names.Controller,
			Action:     ActionIndex,
			Type:       first,
		})
	}
	if g.User != nil {
		routes = append(routes, AuthRoutes()...)
	}
	for _, t := range g.Nodes {
		routes = append(routes, Resource(t)...)
	}
	return routes
}
