package obs

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Tracer groups the spans of a single connection under one short id, so the
// events of concurrent connections can be told apart at the sink.
type Tracer struct {
	sink   Sink
	labels []Label
}

// NewTracer mints a connection id and returns a tracer bound to the sink.
// Extra labels are attached to every event the tracer emits.
func NewTracer(sink Sink, labels ...Label) Tracer {
	id, err := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz0123456789", 10)
	if err != nil {
		// out of entropy. The id is purely cosmetic, so don't insist
		id = "untraced"
	}

	return Tracer{
		sink:   sink,
		labels: append([]Label{{Key: "conn", Value: id}}, labels...),
	}
}

// Span emits the begin event and returns the closure finishing it. The
// closure reports the outcome and must be called exactly once.
func (t Tracer) Span(name string) func(err error) {
	t.sink.Begin(name, t.labels...)
	start := time.Now()

	return func(err error) {
		t.sink.End(name, time.Since(start), err, t.labels...)
	}
}
