package render

import (
	"io"
	"strings"
)

// Sink is the incremental text-accumulation destination producers write
// into. It is the only thing the capability tiers depend on: an escaping
// append and a verbatim append. A sink is owned by whichever call chain
// is currently rendering and is mutated in strict sequence, never
// concurrently.
type Sink interface {
	// WriteText appends text with HTML special characters escaped.
	WriteText(text string) error

	// WriteRaw appends text unchanged.
	WriteRaw(text string) error
}

// Buffer is an in-memory Sink backed by a strings.Builder. The zero value
// is ready to use. Buffer writes never fail.
type Buffer struct {
	b strings.Builder
}

// WriteText implements Sink.
func (b *Buffer) WriteText(text string) error {
	b.b.WriteString(EscapeText(text))
	return nil
}

// WriteRaw implements Sink.
func (b *Buffer) WriteRaw(text string) error {
	b.b.WriteString(text)
	return nil
}

// Grow preallocates capacity for at least n more bytes. Size hints feed
// straight into this; a wrong hint wastes or saves an allocation and
// nothing else.
func (b *Buffer) Grow(n int) {
	if n > 0 {
		b.b.Grow(n)
	}
}

// String returns the accumulated output.
func (b *Buffer) String() string { return b.b.String() }

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int { return b.b.Len() }

// Reset clears the buffer for reuse.
func (b *Buffer) Reset() { b.b.Reset() }

// NewWriterSink returns a Sink that appends to w. Write errors from w
// propagate unchanged up through the render call chain; the core attempts
// no recovery or retry of its own.
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) WriteText(text string) error {
	_, err := io.WriteString(s.w, EscapeText(text))
	return err
}

func (s writerSink) WriteRaw(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}
