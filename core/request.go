package core

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// MethodOverrideField is the form field that tunnels PUT and DELETE through POST.
const MethodOverrideField = "_method"

// EffectiveMethod returns the request method, honoring a PUT or DELETE
// override in the _method form field of a POST request.
func EffectiveMethod(r *http.Request) string {
	if r.Method != http.MethodPost {
		return r.Method
	}
	switch m := strings.ToUpper(r.PostFormValue(MethodOverrideField)); m {
	case http.MethodPut, http.MethodDelete:
		return m
	}
	return r.Method
}

// IsAsync reports whether the request was issued by client script.
func IsAsync(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

// Form parses the request form and returns the posted values.
func Form(r *http.Request) (url.Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

// FormMap flattens form values to their first value, for Hydrate.
func FormMap(form url.Values) map[string]any {
	out := make(map[string]any, len(form))
	for k, v := range form {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// ParseID converts a captured {id} parameter.
func ParseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
