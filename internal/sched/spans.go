// internal/sched/spans.go

package sched

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/korhansevinc/process-scheduler/internal/tracing"
)

// spanRecorder turns the event stream into OpenTelemetry spans: one span
// per process, opened at arrival and ended at termination, with every
// transition in between attached as a span event stamped with the
// simulated clock.
type spanRecorder struct {
	ctx  context.Context
	open map[int]trace.Span // keyed by PID
}

func newSpanRecorder(ctx context.Context) *spanRecorder {
	return &spanRecorder{ctx: ctx, open: make(map[int]trace.Span)}
}

func (r *spanRecorder) observe(ev Event) {
	span, ok := r.open[ev.PID]
	if !ok {
		if ev.Kind != EventArrived {
			return
		}
		_, span = tracing.StartSpan(r.ctx, fmt.Sprintf("process %d", ev.PID))
		span.SetAttributes(attribute.Int("pid", ev.PID))
		r.open[ev.PID] = span
	}

	attrs := []attribute.KeyValue{attribute.Int64("clock_ms", ev.Clock)}
	switch ev.Kind {
	case EventDispatched:
		attrs = append(attrs,
			attribute.Int("priority", ev.Priority),
			attribute.Int64("remaining_ms", ev.Remaining),
			attribute.Int64("burst_ms", ev.Burst),
		)
	case EventBlocked:
		attrs = append(attrs, attribute.Int64("io_ms", ev.IOTime))
	}
	span.AddEvent(ev.Kind.String(), trace.WithAttributes(attrs...))

	if ev.Kind == EventTerminated {
		span.End()
		delete(r.open, ev.PID)
	}
}

// finish ends spans still open, which only happens when a run is
// cancelled before every process terminated.
func (r *spanRecorder) finish() {
	for pid, span := range r.open {
		span.End()
		delete(r.open, pid)
	}
}
