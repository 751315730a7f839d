package render

import "errors"

// countingProducer renders a fixed payload and counts calls per tier.
type countingProducer struct {
	payload   string
	onceCalls int
	mutCalls  int
	readCalls int
}

func (c *countingProducer) Render(s Sink) error {
	c.readCalls++
	return s.WriteText(c.payload)
}

func (c *countingProducer) RenderMut(s Sink) error {
	c.mutCalls++
	return s.WriteText(c.payload)
}

func (c *countingProducer) RenderOnce(s Sink) error {
	c.onceCalls++
	return s.WriteText(c.payload)
}

func (c *countingProducer) SizeHint() int { return len(c.payload) }

// failWriter fails every write with a fixed error.
type failWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) { return 0, errWriteFailed }
