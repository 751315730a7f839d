package el

import (
	"fmt"

	"github.com/seam-dev/seam/pkg/render"
)

// Element is a producer for a single HTML element: opening tag,
// attributes, children, closing tag. Children may be consume-once
// producers, so an Element is itself consume-once.
type Element struct {
	tag      string
	attrs    []Attr
	children []render.OnceRenderer
}

// El builds an element with the given tag. Hyphenated and custom tag
// names are allowed. Arguments are sorted by type:
//
//   - Attr / []Attr: attributes
//   - string: escaped text content
//   - render.OnceRenderer / []render.OnceRenderer: child producers
//   - nil: skipped
//
// Anything else is formatted with fmt.Sprint and added as escaped text,
// which covers numbers and other primitives.
func El(tag string, args ...any) *Element {
	e := &Element{tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if !v.IsEmpty() {
				e.attrs = append(e.attrs, v)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					e.attrs = append(e.attrs, a)
				}
			}
		case string:
			e.children = append(e.children, render.Text(v))
		case render.OnceRenderer:
			e.children = append(e.children, v)
		case []render.OnceRenderer:
			for _, c := range v {
				if c != nil {
					e.children = append(e.children, c)
				}
			}
		default:
			e.children = append(e.children, render.Text(fmt.Sprint(v)))
		}
	}
	return e
}

// RenderOnce implements render.OnceRenderer. Void elements render with no
// closing tag; any children handed to a void element are dropped.
func (e *Element) RenderOnce(s render.Sink) error {
	if err := s.WriteRaw("<" + e.tag); err != nil {
		return err
	}
	for _, a := range e.attrs {
		if err := a.write(s); err != nil {
			return err
		}
	}
	if err := s.WriteRaw(">"); err != nil {
		return err
	}
	if IsVoidElement(e.tag) {
		return nil
	}
	for _, c := range e.children {
		if err := c.RenderOnce(s); err != nil {
			return err
		}
	}
	return s.WriteRaw("</" + e.tag + ">")
}

// SizeHint estimates the rendered size: the static markup plus the
// children's own hints.
func (e *Element) SizeHint() int {
	// "<tag>" + "</tag>"
	n := 2*len(e.tag) + 5
	for _, a := range e.attrs {
		n += a.sizeHint()
	}
	for _, c := range e.children {
		n += c.SizeHint()
	}
	return n
}

// Fragment groups children without a wrapper element. It accepts the same
// argument types as El, minus attributes.
func Fragment(args ...any) render.OnceRenderer {
	var children []render.OnceRenderer
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case string:
			children = append(children, render.Text(v))
		case render.OnceRenderer:
			children = append(children, v)
		case []render.OnceRenderer:
			for _, c := range v {
				if c != nil {
					children = append(children, c)
				}
			}
		default:
			children = append(children, render.Text(fmt.Sprint(v)))
		}
	}
	return render.Seq(children...)
}

// Text creates an escaped text producer.
func Text(content string) render.Text {
	return render.Text(content)
}

// Textf creates a formatted escaped text producer.
func Textf(format string, args ...any) render.Text {
	return render.Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped producer.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) render.Raw {
	return render.Raw(html)
}
