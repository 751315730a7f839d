// Package el is the typed element builder that feeds the render core.
//
// Each constructor assembles a producer for one piece of markup:
//
//	card := el.Div(el.Class("card"),
//		el.H1(el.Text("Title")),
//		el.P(el.Text("Content"), el.A(el.Href("/more"), el.Text("more"))),
//	)
//	out, err := render.String(card)
//
// Arguments to an element constructor may be attributes, strings (escaped
// as text), producers from package render, slices of either, or nil.
// Text content is escaped by default; use el.Raw for trusted markup.
//
// The builder computes an expected output size for every element at
// construction time and exposes it through SizeHint, so a whole tree can
// be rendered into a single preallocated buffer.
package el
