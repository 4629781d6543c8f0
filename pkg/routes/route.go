package routes

import "net/http"

// Route binds an HTTP method and path pattern to a handler.
// Pattern follows net/http.ServeMux syntax without the method prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Key returns the method-qualified ServeMux pattern for the route.
func (r Route) Key(prefix string) string {
	return r.Method + " " + prefix + r.Pattern
}
