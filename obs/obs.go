// Package obs carries the span events the server internals emit around each
// connection phase. It is deliberately tiny: a Sink interface, labels, and
// two stock implementations. Serving is not observable unless a sink is
// plugged in, and the default NopSink keeps the hot path free of any I/O.
package obs

import (
	"log"
	"time"
)

// Label is a key/value pair attached to span events.
type Label struct {
	Key   string
	Value string
}

// Sink receives begin/end events of the phases a connection goes through.
// Implementations must tolerate being called from many goroutines at once.
type Sink interface {
	Begin(span string, labels ...Label)
	End(span string, took time.Duration, err error, labels ...Label)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Begin(string, ...Label)                     {}
func (NopSink) End(string, time.Duration, error, ...Label) {}

// LogSink adapts the standard library logger. Zero value logs via the
// default logger.
type LogSink struct {
	L *log.Logger
}

func (s LogSink) Begin(span string, labels ...Label) {
	s.printf("begin %s%s", span, render(labels))
}

func (s LogSink) End(span string, took time.Duration, err error, labels ...Label) {
	if err != nil {
		s.printf("end %s took=%s err=%q%s", span, took, err, render(labels))
		return
	}

	s.printf("end %s took=%s%s", span, took, render(labels))
}

func (s LogSink) printf(format string, args ...any) {
	if s.L == nil {
		log.Printf(format, args...)
		return
	}

	s.L.Printf(format, args...)
}

func render(labels []Label) string {
	var out string
	for _, label := range labels {
		out += " " + label.Key + "=" + label.Value
	}

	return out
}
