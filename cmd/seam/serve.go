package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/seam-dev/seam/pkg/page"
	"github.com/seam-dev/seam/pkg/serve"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		metrics bool
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo gallery server",
		Long: `Start an HTTP server rendering the element-builder demo gallery.

The gallery page exercises the producer tiers: escaped text, raw and
sanitized markup, closure producers and boxed values. With --metrics a
Prometheus endpoint is mounted at /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			opts := []serve.Option{serve.WithLogger(logger)}
			if metrics {
				opts = append(opts, serve.WithMetrics())
			}
			if tracing {
				opts = append(opts, serve.WithTracing())
			}

			r := chi.NewRouter()
			r.Use(chimw.RequestID)
			r.Use(chimw.Recoverer)

			r.Handle("/", serve.Pages(galleryPage, opts...))
			if metrics {
				r.Handle("/metrics", promhttp.Handler())
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}

			logger.Info("demo server listening",
				"addr", addr,
				"metrics", metrics,
				"tracing", tracing)
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics at /metrics")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Emit an OpenTelemetry span per render")

	return cmd
}

// galleryPage builds the demo page for one request.
func galleryPage(r *http.Request) (page.Page, error) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "world"
	}

	return page.Page{
		Title:  "Seam demo gallery",
		Styles: []string{galleryCSS},
		Body:   gallery(name),
	}, nil
}
