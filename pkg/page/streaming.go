package page

import (
	"fmt"
	"io"
	"net/http"

	"github.com/seam-dev/seam/pkg/render"
)

// StreamingRenderer writes pages with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w,
// typically an http.ResponseWriter. If the writer implements
// http.Flusher, content will be flushed after each section for faster
// TTFB.
func NewStreamingRenderer(w io.Writer) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		flusher: flusher,
		w:       w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
// The head section is flushed immediately for faster first paint.
func (s *StreamingRenderer) RenderPage(p Page) error {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(s.w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, `<html lang="%s">`+"\n", render.EscapeAttr(lang)); err != nil {
		return err
	}

	if err := p.renderHead(s.w); err != nil {
		return err
	}

	// Flush head immediately for faster first paint
	s.flush()

	if _, err := io.WriteString(s.w, "<body>\n"); err != nil {
		return err
	}

	if p.Body != nil {
		if err := render.Write(s.w, p.Body); err != nil {
			return err
		}
	}

	// Flush body content
	s.flush()

	if _, err := io.WriteString(s.w, "\n</body>\n</html>\n"); err != nil {
		return err
	}

	s.flush()

	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with optional flushing capability.
// This is useful for testing streaming behavior without using http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
