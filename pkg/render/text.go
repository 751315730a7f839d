package render

// Text is the default terminal content type: a string rendered with HTML
// escaping at every tier. Plain text is always escaped unless explicitly
// wrapped in Raw.
type Text string

// Render implements Renderer.
func (t Text) Render(s Sink) error { return s.WriteText(string(t)) }

// RenderMut implements MutRenderer.
func (t Text) RenderMut(s Sink) error { return s.WriteText(string(t)) }

// RenderOnce implements OnceRenderer.
func (t Text) RenderOnce(s Sink) error { return s.WriteText(string(t)) }

// SizeHint returns the exact payload length.
func (t Text) SizeHint() int { return len(t) }

// Raw marks content that is written verbatim, bypassing escaping, at
// every tier. Use it only for trusted or pre-rendered markup; untrusted
// input goes through Sanitized instead.
type Raw string

// Render implements Renderer.
func (r Raw) Render(s Sink) error { return s.WriteRaw(string(r)) }

// RenderMut implements MutRenderer.
func (r Raw) RenderMut(s Sink) error { return s.WriteRaw(string(r)) }

// RenderOnce implements OnceRenderer.
func (r Raw) RenderOnce(s Sink) error { return s.WriteRaw(string(r)) }

// SizeHint returns the exact payload length.
func (r Raw) SizeHint() int { return len(r) }
