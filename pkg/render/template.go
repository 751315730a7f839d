package render

import "io"

// String renders a producer to completion and returns the accumulated
// output. The backing buffer is pre-grown by the producer's size hint.
// The producer is consumed; wrap repeatable producers in Mut or Ref to
// keep them.
func String(r OnceRenderer) (string, error) {
	var b Buffer
	b.Grow(r.SizeHint())
	if err := r.RenderOnce(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write renders a producer straight into w. Any write error from w is
// returned unchanged.
func Write(w io.Writer, r OnceRenderer) error {
	return r.RenderOnce(NewWriterSink(w))
}
