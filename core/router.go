package core

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
)

// HandlerFunc handles a matched request. args holds the captured
// path parameters in pattern order.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, args []string)

// Route is one entry of the route table.
type Route struct {
	Method     string
	Path       string
	Controller string
	Action     string

	handler HandlerFunc
	pattern *regexp.Regexp
}

// Router dispatches requests to the first registered route whose method
// and path pattern match. It implements http.Handler.
type Router struct {
	base   string
	routes []*Route
	logger *slog.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithBasePath prefixes every registered path with base.
func WithBasePath(base string) RouterOption {
	return func(r *Router) {
		r.base = strings.TrimRight(base, "/")
	}
}

// WithRouterLogger sets the logger used for dispatch failures.
func WithRouterLogger(l *slog.Logger) RouterOption {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRouter returns an empty Router.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get registers a GET route.
func (r *Router) Get(path, controller, action string, h HandlerFunc) {
	r.Handle(http.MethodGet, path, controller, action, h)
}

// Post registers a POST route.
func (r *Router) Post(path, controller, action string, h HandlerFunc) {
	r.Handle(http.MethodPost, path, controller, action, h)
}

// Put registers a PUT route.
func (r *Router) Put(path, controller, action string, h HandlerFunc) {
	r.Handle(http.MethodPut, path, controller, action, h)
}

// Delete registers a DELETE route.
func (r *Router) Delete(path, controller, action string, h HandlerFunc) {
	r.Handle(http.MethodDelete, path, controller, action, h)
}

// Handle registers a route for method. Routes are matched in registration order.
func (r *Router) Handle(method, path, controller, action string, h HandlerFunc) {
	full := r.base + path
	r.routes = append(r.routes, &Route{
		Method:     strings.ToUpper(method),
		Path:       full,
		Controller: controller,
		Action:     action,
		handler:    h,
		pattern:    compilePattern(full),
	})
}

// Routes returns a copy of the route table in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	for i, rt := range r.routes {
		out[i] = *rt
	}
	return out
}

// Match returns the first route for method and path along with the
// captured parameters.
func (r *Router) Match(method, path string) (*Route, []string, bool) {
	method = strings.ToUpper(method)
	for _, rt := range r.routes {
		if rt.Method != method {
			continue
		}
		m := rt.pattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		return rt, m[1:], true
	}
	return nil, nil, false
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	method := EffectiveMethod(req)
	rt, args, ok := r.Match(method, req.URL.Path)
	if !ok {
		JSON(w, http.StatusNotFound, Record{}.Set("error", "Route not found"))
		return
	}
	if rt.handler == nil {
		r.logger.Error("route has no handler", "controller", rt.Controller, "action", rt.Action)
		JSON(w, http.StatusInternalServerError, Record{}.Set("error", "Method not found"))
		return
	}
	rt.handler(w, req, args)
}

var paramRE = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// compilePattern turns a path such as /posts/{id}/edit into an anchored
// regular expression. {id} only matches digits, any other parameter
// matches a single path segment.
func compilePattern(path string) *regexp.Regexp {
	var (
		b    strings.Builder
		last int
	)
	b.WriteByte('^')
	for _, loc := range paramRE.FindAllStringSubmatchIndex(path, -1) {
		b.WriteString(regexp.QuoteMeta(path[last:loc[0]]))
		if path[loc[2]:loc[3]] == "id" {
			b.WriteString(`([0-9]+)`)
		} else {
			b.WriteString(`([^/]+)`)
		}
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(path[last:]))
	b.WriteByte('$')
	return regexp.MustCompile(b.String())
}
