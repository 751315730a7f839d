// Package page assembles complete HTML documents around a body producer.
//
// A Page carries document metadata (title, meta, link and script tags,
// styles) plus a render.OnceRenderer for the body. Render writes the
// DOCTYPE, head and body in one pass:
//
//	p := page.Page{
//		Title: "Gallery",
//		Body:  el.Main(el.H1(el.Text("Gallery"))),
//	}
//	err := p.Render(w)
//
// For HTTP responses, StreamingRenderer flushes the head before the body
// is produced, cutting time-to-first-byte on slow bodies.
package page
