package render

import "fmt"

// Closure-based producers. Each pairs a function taking the sink with a
// fixed size estimate computed by whoever builds the markup. The type
// chosen declares the function's call-multiplicity: OnceFunc may be
// called exactly once, MutFunc repeatedly with internal state change,
// Func repeatedly without one. The capability tier follows directly.

// Func is a producer built from a function that may be called any number
// of times without changing state. It satisfies all three tiers.
type Func struct {
	fn           func(s Sink) error
	expectedSize int
}

// NewFunc creates a read-repeatable closure producer. expectedSize is the
// advisory output estimate returned by SizeHint, never recomputed.
func NewFunc(expectedSize int, fn func(s Sink) error) *Func {
	return &Func{fn: fn, expectedSize: expectedSize}
}

// Render implements Renderer.
func (f *Func) Render(s Sink) error { return f.fn(s) }

// RenderMut implements MutRenderer.
func (f *Func) RenderMut(s Sink) error { return f.fn(s) }

// RenderOnce implements OnceRenderer.
func (f *Func) RenderOnce(s Sink) error { return f.fn(s) }

// SizeHint returns the expected size declared at construction.
func (f *Func) SizeHint() int { return f.expectedSize }

// Format implements fmt.Formatter. The producer renders straight into the
// formatter's writer with no intermediate buffer, so a read-tier Func can
// be handed to fmt.Fprintf and friends like any displayable value.
// fmt.State gives us no way to surface a sink error; in practice
// formatter writes do not fail.
func (f *Func) Format(state fmt.State, verb rune) {
	_ = f.Render(NewWriterSink(state))
}

// String implements fmt.Stringer by rendering into a fresh Buffer.
func (f *Func) String() string {
	out, err := String(f)
	if err != nil {
		return ""
	}
	return out
}

// MutFunc is a producer built from a function that may be called
// repeatedly but mutates captured state. It satisfies OnceRenderer and
// MutRenderer.
type MutFunc struct {
	fn           func(s Sink) error
	expectedSize int
}

// NewMutFunc creates a mutate-repeatable closure producer.
func NewMutFunc(expectedSize int, fn func(s Sink) error) *MutFunc {
	return &MutFunc{fn: fn, expectedSize: expectedSize}
}

// RenderMut implements MutRenderer.
func (f *MutFunc) RenderMut(s Sink) error { return f.fn(s) }

// RenderOnce implements OnceRenderer.
func (f *MutFunc) RenderOnce(s Sink) error { return f.fn(s) }

// SizeHint returns the expected size declared at construction.
func (f *MutFunc) SizeHint() int { return f.expectedSize }

// OnceFunc is a producer built from a function that must be called at
// most once. It satisfies OnceRenderer only.
type OnceFunc struct {
	fn           func(s Sink) error
	expectedSize int
}

// NewOnceFunc creates a single-use closure producer.
func NewOnceFunc(expectedSize int, fn func(s Sink) error) *OnceFunc {
	return &OnceFunc{fn: fn, expectedSize: expectedSize}
}

// RenderOnce implements OnceRenderer.
func (f *OnceFunc) RenderOnce(s Sink) error { return f.fn(s) }

// SizeHint returns the expected size declared at construction.
func (f *OnceFunc) SizeHint() int { return f.expectedSize }

// NewBoxedFunc creates a single-use closure producer already behind an
// erasure handle, for call sites that store producers homogeneously.
func NewBoxedFunc(expectedSize int, fn func(s Sink) error) *OnceBox {
	return BoxOnce(NewOnceFunc(expectedSize, fn))
}
