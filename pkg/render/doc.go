// Package render provides the producer/sink core for incremental HTML
// generation.
//
// A producer is any value that can write its representation into a Sink.
// Producers come in three capability tiers, each a strict superset of the
// previous:
//
//   - OnceRenderer: can be rendered exactly once, consuming the producer
//   - MutRenderer: can be rendered repeatedly through exclusive access
//   - Renderer: can be rendered repeatedly through shared access
//
// Anything satisfying a stronger tier behaves correctly when used as a
// weaker one. The Mut and Ref adapters make that explicit: they wrap a
// repeatable producer in a fresh single-use view, so the same sub-producer
// can be "consumed" independently at many call sites while the original
// stays untouched.
//
// # Leaf Producers
//
// Plain text is escaped by default:
//
//	render.Text("a < b")    // writes "a &lt; b"
//	render.Raw("<b>hi</b>") // writes "<b>hi</b>" verbatim
//
// Raw bypasses escaping and should only carry trusted or pre-rendered
// markup. For untrusted markup, Sanitized runs the payload through a
// bluemonday policy first.
//
// # Closure Producers
//
// Func, MutFunc and OnceFunc wrap a function together with an advisory
// size estimate. The type chosen declares how often the function may be
// called: OnceFunc exactly once, MutFunc repeatedly with internal state
// change, Func repeatedly without one. The element builder in package el
// constructs these for every piece of markup it emits.
//
// # Sinks
//
// A Sink is an append-only text destination with an escaping write and a
// raw write. Buffer accumulates in memory and never fails; NewWriterSink
// adapts any io.Writer and propagates its errors unchanged through the
// render call chain.
//
// # Finalization
//
// String renders a producer into a fresh Buffer pre-grown by its size
// hint and returns the accumulated output:
//
//	out, err := render.String(el.Div(el.Class("card"), el.Text("hello")))
//
// Size hints are purely advisory. They affect preallocation only, never
// the rendered bytes.
package render
