// Package report carries human readable output to wherever it is displayed.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Sink receives formatted messages for display
type Sink interface {
	Report(msg string)
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Sink that writes each message to w on its own line
func NewWriter(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Report(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(s.w, msg)
}

type discard struct{}

func (discard) Report(string) {}

// Discard is a Sink that drops everything
var Discard Sink = discard{}

// Recorder keeps every message it receives. It is meant for tests.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Report implements Sink
func (r *Recorder) Report(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns the recorded messages in order
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
