package main

import (
	"strconv"
	"time"

	"github.com/seam-dev/seam/el"
	"github.com/seam-dev/seam/pkg/render"
)

const galleryCSS = `body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
section { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin: 1rem 0; }`

// gallery builds the demo body: one section per producer kind.
func gallery(name string) render.OnceRenderer {
	clock := render.NewFunc(32, func(s render.Sink) error {
		return s.WriteText(time.Now().Format(time.RFC1123))
	})

	visits := 0
	counter := render.NewMutFunc(8, func(s render.Sink) error {
		visits++
		return s.WriteText(strconv.Itoa(visits))
	})

	return el.Main(
		el.H1(el.Text("Seam demo gallery")),
		el.P(el.Text("Hello, "), el.Strong(el.Text(name)), el.Text("!")),

		el.Section(
			el.H2(el.Text("Escaped text")),
			el.P(el.Text("<script> tags render inert: "), el.Code("<script>alert(1)</script>")),
		),

		el.Section(
			el.H2(el.Text("Raw and sanitized markup")),
			el.P(el.Raw("<em>trusted raw markup</em>")),
			el.P(render.Sanitized(`<b>user markup</b><script>alert('xss')</script>`)),
		),

		el.Section(
			el.H2(el.Text("Closure producers")),
			el.P(el.Text("Rendered at: "), render.Ref(clock)),
			el.P(el.Text("Same producer again: "), render.Ref(clock)),
			el.P(el.Text("Mutating producer: "), render.Mut(counter), render.Mut(counter)),
		),

		el.Section(
			el.H2(el.Text("Boxed producers")),
			el.Ul(boxedItems()),
		),
	)
}

// boxedItems stores heterogeneous producers behind erasure handles.
func boxedItems() []render.OnceRenderer {
	return []render.OnceRenderer{
		el.Li(render.BoxOnce(el.Text("once-boxed text"))),
		el.Li(render.BoxMut(render.Text("mut-boxed text"))),
		el.Li(render.Box(render.Raw("<i>read-boxed raw</i>"))),
	}
}
