package middleware

import (
	"net/http"
	"time"
)

// UnmatchedRoute labels requests that no registered pattern matched.
const UnmatchedRoute = "unmatched"

// Recorder receives one observation per completed request.
type Recorder interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Metrics returns middleware that reports each request to rec. The route is
// the ServeMux pattern that matched the request, which keeps label values
// bounded to the registered routes. It must wrap the mux directly, or sit
// behind middleware that forwards the same *http.Request.
func Metrics(rec Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := newStatusRecorder(w)

			next.ServeHTTP(sr, r)

			route := r.Pattern
			if route == "" {
				route = UnmatchedRoute
			}
			rec.ObserveRequest(r.Method, route, sr.status, time.Since(start))
		})
	}
}
