// internal/sched/journal.go

package sched

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

// Journal is the event sink shared by the dispatch loop and the I/O
// watcher. It serializes writes under its own lock so concurrent
// emitters never interleave mid-line; callers do not need to hold the
// scheduler lock to emit.
type Journal struct {
	mu      sync.Mutex
	out     io.Writer
	history []Event

	// CSV mirroring
	csvFile   *os.File
	csvWriter *csv.Writer

	// span mirroring
	spans *spanRecorder
}

// NewJournal writes the human-readable journal to out. A nil out keeps
// only the in-memory history.
func NewJournal(out io.Writer) *Journal {
	if out == nil {
		out = io.Discard
	}
	return &Journal{out: out}
}

// EnableCSV opens the given file path for CSV mirroring of events.
// Must be called before the simulation starts.
func (j *Journal) EnableCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"clock_ms", "pid", "event", "priority", "remaining_ms", "burst_ms", "io_ms"})
	w.Flush()
	j.csvFile = f
	j.csvWriter = w
	return nil
}

// EnableTracing mirrors the event stream into OpenTelemetry spans, one
// per process lifecycle, parented to whatever span ctx carries. Must be
// called before the simulation starts.
func (j *Journal) EnableTracing(ctx context.Context) {
	j.spans = newSpanRecorder(ctx)
}

// Emit appends one event to every configured sink.
func (j *Journal) Emit(ev Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	fmt.Fprintf(j.out, "[Clock: %d] %s\n", ev.Clock, ev.Message())
	j.history = append(j.history, ev)

	if j.csvWriter != nil {
		j.csvWriter.Write([]string{
			strconv.FormatInt(ev.Clock, 10),
			strconv.Itoa(ev.PID),
			ev.Kind.String(),
			strconv.Itoa(ev.Priority),
			strconv.FormatInt(ev.Remaining, 10),
			strconv.FormatInt(ev.Burst, 10),
			strconv.FormatInt(ev.IOTime, 10),
		})
		j.csvWriter.Flush()
	}

	if j.spans != nil {
		j.spans.observe(ev)
	}
}

// History returns a copy of everything emitted so far.
func (j *Journal) History() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, len(j.history))
	copy(out, j.history)
	return out
}

// Close flushes and releases the CSV sink and ends any span left open.
// The journal itself stays usable for History.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.spans != nil {
		j.spans.finish()
	}
	if j.csvFile == nil {
		return nil
	}
	j.csvWriter.Flush()
	err := j.csvFile.Close()
	j.csvFile = nil
	j.csvWriter = nil
	return err
}
