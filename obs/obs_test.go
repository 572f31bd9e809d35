package obs

import (
	"bytes"
	"errors"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	begins []string
	ends   []string
	errs   []error
	labels [][]Label
}

func (r *recordingSink) Begin(span string, labels ...Label) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.begins = append(r.begins, span)
	r.labels = append(r.labels, labels)
}

func (r *recordingSink) End(span string, took time.Duration, err error, labels ...Label) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ends = append(r.ends, span)
	r.errs = append(r.errs, err)
}

func TestTracer(t *testing.T) {
	t.Run("begin and end arrive in order", func(t *testing.T) {
		sink := new(recordingSink)
		tracer := NewTracer(sink, Label{Key: "addr", Value: "localhost:8080"})

		end := tracer.Span("parse")
		end(nil)
		end = tracer.Span("handle")
		end(errors.New("boom"))

		require.Equal(t, []string{"parse", "handle"}, sink.begins)
		require.Equal(t, []string{"parse", "handle"}, sink.ends)
		require.NoError(t, sink.errs[0])
		require.EqualError(t, sink.errs[1], "boom")
	})

	t.Run("events carry the connection id", func(t *testing.T) {
		sink := new(recordingSink)
		tracer := NewTracer(sink)
		tracer.Span("read")(nil)

		require.Len(t, sink.labels, 1)
		require.Equal(t, "conn", sink.labels[0][0].Key)
		require.NotEmpty(t, sink.labels[0][0].Value)
	})

	t.Run("tracers mint distinct ids", func(t *testing.T) {
		sink := new(recordingSink)
		NewTracer(sink).Span("a")(nil)
		NewTracer(sink).Span("b")(nil)

		require.NotEqual(t, sink.labels[0][0].Value, sink.labels[1][0].Value)
	})
}

func TestLogSink(t *testing.T) {
	var buff bytes.Buffer
	sink := LogSink{L: log.New(&buff, "", 0)}

	sink.Begin("read", Label{Key: "conn", Value: "abc"})
	sink.End("read", time.Millisecond, nil, Label{Key: "conn", Value: "abc"})
	sink.End("write", time.Millisecond, errors.New("broken pipe"))

	out := buff.String()
	require.Contains(t, out, "begin read conn=abc")
	require.Contains(t, out, "end read took=1ms conn=abc")
	require.Contains(t, out, `err="broken pipe"`)
}

func TestNopSink(t *testing.T) {
	// nothing to assert, the point is that it doesn't blow up
	NopSink{}.Begin("x")
	NopSink{}.End("x", 0, nil)
	NewTracer(NopSink{}).Span("x")(nil)
}
