package render

// OnceRenderer is the weakest capability tier: a producer that can be
// rendered exactly once. Rendering consumes the producer; it must not be
// used again afterward.
//
// OnceRenderer is the tier the rest of the system actually drives.
// Stronger producers reach call sites that expect it through the Mut and
// Ref adapters, which hand out fresh single-use views.
type OnceRenderer interface {
	// RenderOnce writes the producer's full representation into s.
	// The producer is consumed by the call.
	RenderOnce(s Sink) error

	// SizeHint returns a rough estimate of how many bytes the producer
	// will write. It is purely advisory: callers may use it to
	// preallocate, and a wrong value never changes the rendered output.
	SizeHint() int
}

// MutRenderer is a producer that can be rendered any number of times
// through exclusive access. Rendering may mutate internal state but does
// not consume the producer.
type MutRenderer interface {
	OnceRenderer

	// RenderMut writes the producer's representation into s.
	RenderMut(s Sink) error
}

// Renderer is the strongest tier: a producer that can be rendered any
// number of times through shared access, with no side effects on the
// producer itself.
type Renderer interface {
	MutRenderer

	// Render writes the producer's representation into s.
	Render(s Sink) error
}

// Mut adapts a repeatable producer into a single-use view. The returned
// OnceRenderer performs exactly one RenderMut call against r and forwards
// the size hint. r itself is not consumed, so each call site can take its
// own view of the same producer.
func Mut(r MutRenderer) OnceRenderer {
	return mutRef{r}
}

type mutRef struct {
	r MutRenderer
}

func (m mutRef) RenderOnce(s Sink) error { return m.r.RenderMut(s) }
func (m mutRef) SizeHint() int           { return m.r.SizeHint() }

// Ref adapts a read-repeatable producer into a single-use view. The
// returned OnceRenderer performs exactly one Render call against r and
// forwards the size hint. r is untouched and may be shared across any
// number of such views.
func Ref(r Renderer) OnceRenderer {
	return readRef{r}
}

type readRef struct {
	r Renderer
}

func (v readRef) RenderOnce(s Sink) error { return v.r.Render(s) }
func (v readRef) SizeHint() int           { return v.r.SizeHint() }
