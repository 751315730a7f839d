package render

// Seq renders each producer in order, left to right, with no separator.
// Every element is consumed; the sequence itself is consume-once. The
// size hint is the sum of the element hints.
func Seq(rs ...OnceRenderer) OnceRenderer {
	return seq(rs)
}

type seq []OnceRenderer

func (q seq) RenderOnce(s Sink) error {
	for _, r := range q {
		if r == nil {
			continue
		}
		if err := r.RenderOnce(s); err != nil {
			return err
		}
	}
	return nil
}

func (q seq) SizeHint() int {
	n := 0
	for _, r := range q {
		if r != nil {
			n += r.SizeHint()
		}
	}
	return n
}

// If returns r when condition is true, an empty producer otherwise.
func If(condition bool, r OnceRenderer) OnceRenderer {
	if condition {
		return Maybe(r)
	}
	return Empty()
}

// IfElse returns ifTrue when condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse OnceRenderer) OnceRenderer {
	if condition {
		return Maybe(ifTrue)
	}
	return Maybe(ifFalse)
}

// Maybe turns a possibly-nil producer into a total one: nil renders as
// zero bytes.
func Maybe(r OnceRenderer) OnceRenderer {
	if r == nil {
		return Empty()
	}
	return r
}

// Empty returns a producer that writes nothing. It satisfies all three
// tiers.
func Empty() Renderer {
	return empty{}
}

type empty struct{}

func (empty) Render(Sink) error     { return nil }
func (empty) RenderMut(Sink) error  { return nil }
func (empty) RenderOnce(Sink) error { return nil }
func (empty) SizeHint() int         { return 0 }
