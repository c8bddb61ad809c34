package middleware

import (
	"net/http"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// untraced paths are polled by probes and scrapers
var untraced = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// TracingMiddleware opens an OpenCensus server span per request, named after
// the route. Incoming trace headers are linked, not trusted as parents.
func TracingMiddleware(next http.Handler) http.Handler {
	return &ochttp.Handler{
		Handler:          annotateSpan(next),
		IsPublicEndpoint: true,
		FormatSpanName: func(r *http.Request) string {
			return r.Method + " " + r.URL.Path
		},
		IsHealthEndpoint: func(r *http.Request) bool {
			return untraced[r.URL.Path]
		},
	}
}

// annotateSpan adds the request details ochttp leaves out
func annotateSpan(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if span := trace.FromContext(r.Context()); span != nil {
			attrs := []trace.Attribute{
				trace.StringAttribute("http.route", r.URL.Path),
			}
			if r.URL.RawQuery != "" {
				attrs = append(attrs, trace.StringAttribute("http.query", r.URL.RawQuery))
			}
			if id := r.Header.Get("X-Request-ID"); id != "" {
				attrs = append(attrs, trace.StringAttribute("http.request_id", id))
			}
			if r.Header.Get("Upgrade") == "websocket" {
				attrs = append(attrs, trace.BoolAttribute("http.websocket", true))
			}
			span.AddAttributes(attrs...)
		}
		next.ServeHTTP(w, r)
	})
}
