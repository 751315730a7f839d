package render

// Erasure handles for producers whose concrete type is chosen at runtime
// or stored homogeneously. Go interface values already give us heap
// indirection and dynamic dispatch, so the handles forward to the inner
// operation directly: no buffering, no transformation. Each handle owns
// its boxed producer.

// OnceBox is an owned handle over a consume-once producer. It satisfies
// OnceRenderer only; after its single render call the handle is spent.
type OnceBox struct {
	inner OnceRenderer
}

// BoxOnce boxes a consume-once producer.
func BoxOnce(r OnceRenderer) *OnceBox {
	return &OnceBox{inner: r}
}

// RenderOnce implements OnceRenderer.
func (b *OnceBox) RenderOnce(s Sink) error { return b.inner.RenderOnce(s) }

// SizeHint implements OnceRenderer.
func (b *OnceBox) SizeHint() int { return b.inner.SizeHint() }

// MutBox is an owned handle over a mutate-repeatable producer. It can be
// rendered repeatedly through RenderMut before an eventual consuming use;
// its RenderOnce performs exactly one RenderMut on the boxed producer.
type MutBox struct {
	inner MutRenderer
}

// BoxMut boxes a mutate-repeatable producer.
func BoxMut(r MutRenderer) *MutBox {
	return &MutBox{inner: r}
}

// RenderOnce implements OnceRenderer.
func (b *MutBox) RenderOnce(s Sink) error { return b.inner.RenderMut(s) }

// RenderMut implements MutRenderer.
func (b *MutBox) RenderMut(s Sink) error { return b.inner.RenderMut(s) }

// SizeHint implements OnceRenderer.
func (b *MutBox) SizeHint() int { return b.inner.SizeHint() }

// RenderBox is an owned handle over a read-repeatable producer. It
// satisfies all three tiers; every call forwards to the inner Render.
type RenderBox struct {
	inner Renderer
}

// Box boxes a read-repeatable producer.
func Box(r Renderer) *RenderBox {
	return &RenderBox{inner: r}
}

// RenderOnce implements OnceRenderer.
func (b *RenderBox) RenderOnce(s Sink) error { return b.inner.Render(s) }

// RenderMut implements MutRenderer.
func (b *RenderBox) RenderMut(s Sink) error { return b.inner.Render(s) }

// Render implements Renderer.
func (b *RenderBox) Render(s Sink) error { return b.inner.Render(s) }

// SizeHint implements OnceRenderer.
func (b *RenderBox) SizeHint() int { return b.inner.SizeHint() }
