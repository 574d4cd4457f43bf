package interpreter

import (
	"fmt"
	"io"
)

// Sink receives the human-readable status messages a Robot emits.
type Sink interface {
	Emit(msg string)
}

// SinkFunc adapts an ordinary function to Sink.
type SinkFunc func(msg string)

func (f SinkFunc) Emit(msg string) { f(msg) }

// Discard drops every message.
var Discard Sink = SinkFunc(func(string) {})

// WriterSink prints one message per line to w. Write errors are ignored;
// output is fire-and-forget.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(msg string) {
		fmt.Fprintln(w, msg)
	})
}

// Recorder keeps every message it receives, in order.
type Recorder struct {
	Messages []string
}

func (r *Recorder) Emit(msg string) {
	r.Messages = append(r.Messages, msg)
}
