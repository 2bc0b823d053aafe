// Package eventlog provides the sinks that durably record chamber events.
// Sinks serialize their own writes so concurrent visitors never interleave
// log lines, and a failing sink never blocks or aborts the scheduler.
package eventlog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tmarchal/chamber/pkg/chamber"
)

// LineSink writes each event message as one plain text line to every
// writer, in emission order. Write failures are reported through the
// logger and otherwise swallowed; the event is still considered recorded.
type LineSink struct {
	mu  sync.Mutex
	out []io.Writer
	log zerolog.Logger
}

// NewLineSink creates a sink over the given writers.
func NewLineSink(log zerolog.Logger, out ...io.Writer) *LineSink {
	return &LineSink{out: out, log: log}
}

// Record implements chamber.Sink.
func (s *LineSink) Record(ev chamber.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.out {
		if _, err := io.WriteString(w, ev.Message+"\n"); err != nil {
			s.log.Error().Err(err).Str("event", string(ev.Type)).Msg("failed to write event log line")
		}
	}
}

// FileSink appends event lines to a log file, optionally echoing each line
// to another writer (typically stdout).
type FileSink struct {
	*LineSink
	file *os.File
}

// NewFileSink creates the log file, truncating any previous run.
func NewFileSink(path string, echo io.Writer, log zerolog.Logger) (*FileSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create event log file: %w", err)
	}
	out := []io.Writer{file}
	if echo != nil {
		out = append(out, echo)
	}
	return &FileSink{LineSink: NewLineSink(log, out...), file: file}, nil
}

// Close closes the underlying log file.
func (s *FileSink) Close() error {
	return s.file.Close()
}

// Collector stores events in memory for charting and assertions.
type Collector struct {
	mu     sync.Mutex
	events []chamber.Event
}

// Record implements chamber.Sink.
func (c *Collector) Record(ev chamber.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

// Events returns a copy of the recorded events in emission order.
func (c *Collector) Events() []chamber.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]chamber.Event, len(c.events))
	copy(out, c.events)
	return out
}

type multi []chamber.Sink

// Multi fans one event stream out to several sinks.
func Multi(sinks ...chamber.Sink) chamber.Sink {
	return multi(sinks)
}

// Record implements chamber.Sink.
func (m multi) Record(ev chamber.Event) {
	for _, s := range m {
		if s != nil {
			s.Record(ev)
		}
	}
}
