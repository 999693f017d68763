// internal/sched/event.go

package sched

import "fmt"

// EventKind represents the type of scheduling event.
type EventKind int

const (
	EventArrived EventKind = iota
	EventReady
	EventDispatched
	EventBlocked
	EventIOFinished
	EventTerminated
)

func (k EventKind) String() string {
	switch k {
	case EventArrived:
		return "Arrived"
	case EventReady:
		return "Ready"
	case EventDispatched:
		return "Dispatched"
	case EventBlocked:
		return "Blocked"
	case EventIOFinished:
		return "IOFinished"
	case EventTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Event is one timestamped entry of the simulation journal. Clock is the
// simulated time the transition happened at, not wall time. Priority,
// Remaining and Burst are only set on dispatch events, IOTime only on
// blocked events.
type Event struct {
	Clock     int64
	PID       int
	Kind      EventKind
	Priority  int
	Remaining int64
	Burst     int64
	IOTime    int64
}

// Message renders the body of the human-readable journal line.
func (e Event) Message() string {
	switch e.Kind {
	case EventArrived:
		return fmt.Sprintf("PID %d arrived", e.PID)
	case EventReady:
		return fmt.Sprintf("PID %d moved to READY queue", e.PID)
	case EventDispatched:
		return fmt.Sprintf("Scheduler dispatched PID %d (Pr: %d, Rm: %d) for %d ms burst",
			e.PID, e.Priority, e.Remaining, e.Burst)
	case EventBlocked:
		return fmt.Sprintf("PID %d blocked for I/O for %d ms", e.PID, e.IOTime)
	case EventIOFinished:
		return fmt.Sprintf("PID %d finished I/O", e.PID)
	case EventTerminated:
		return fmt.Sprintf("PID %d TERMINATED", e.PID)
	default:
		return fmt.Sprintf("PID %d in unknown state", e.PID)
	}
}
