package serve

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/seam-dev/seam/pkg/page"
)

// PageFunc builds the page for one request.
type PageFunc func(r *http.Request) (page.Page, error)

// Option configures the page handler.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	metrics *metrics
	tracing *traceConfig
}

// WithLogger sets the logger used for render failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Pages returns an http.Handler that builds and streams a page per
// request. Builder errors produce a 500; render errors after the first
// byte can only be logged, since the status line is already on the wire.
func Pages(fn PageFunc, opts ...Option) http.Handler {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, span := cfg.startSpan(r)
		defer endSpan(span)

		p, err := fn(r.WithContext(ctx))
		if err != nil {
			cfg.logger.Error("page build failed",
				"path", r.URL.Path,
				"error", err)
			cfg.recordError(r.URL.Path)
			spanError(span, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			cfg.record(r.URL.Path, http.StatusInternalServerError, 0, time.Since(start))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		cw := &countingWriter{ResponseWriter: w}
		if err := page.NewStreamingRenderer(cw).RenderPage(p); err != nil {
			cfg.logger.Error("page render failed",
				"path", r.URL.Path,
				"bytes", cw.bytes,
				"error", err)
			cfg.recordError(r.URL.Path)
			spanError(span, err)
			cfg.record(r.URL.Path, cw.status(), cw.bytes, time.Since(start))
			return
		}

		spanOK(span, cw.bytes)
		cfg.record(r.URL.Path, cw.status(), cw.bytes, time.Since(start))
	})
}

// countingWriter tracks status and bytes written to the response.
type countingWriter struct {
	http.ResponseWriter
	wroteHeader int
	bytes       int
}

func (w *countingWriter) WriteHeader(code int) {
	if w.wroteHeader == 0 {
		w.wroteHeader = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *countingWriter) Write(p []byte) (int, error) {
	if w.wroteHeader == 0 {
		w.wroteHeader = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *countingWriter) status() int {
	if w.wroteHeader == 0 {
		return http.StatusOK
	}
	return w.wroteHeader
}

// Flush implements http.Flusher so head-first streaming survives the wrap.
func (w *countingWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
