// Package serve turns page producers into instrumented http.Handlers.
//
// Pages wraps a per-request page builder:
//
//	h := serve.Pages(func(r *http.Request) (page.Page, error) {
//		return page.Page{Title: "Home", Body: home(r)}, nil
//	}, serve.WithMetrics(), serve.WithTracing())
//
// The handler streams the document with head-first flushing and, when
// enabled, records Prometheus metrics (render counts, duration, bytes)
// and an OpenTelemetry span per render.
package serve
