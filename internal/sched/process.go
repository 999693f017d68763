package sched

// Priority bounds accepted from the input batch. 0 is the most urgent
// level; aging can only move a process toward 0, never past it.
const (
	MinPriority = 0
	MaxPriority = 10
)

// ProcessState tracks where a process sits in its lifecycle.
type ProcessState int

const (
	StateNew ProcessState = iota
	StateReady
	StateRunning
	StateWaiting
	StateTerminated
)

func (ps ProcessState) String() string {
	switch ps {
	case StateNew:
		return "NEW"
	case StateReady:
		return "READY"
	case StateRunning:
		return "RUNNING"
	case StateWaiting:
		return "WAITING"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// ProcessSpec is one validated record of the input batch, in input-file
// field order. All times are simulated milliseconds.
type ProcessSpec struct {
	PID      int
	Arrival  int64 // clock at which the process becomes schedulable
	TotalCPU int64 // total CPU demand over its whole lifetime
	Interval int64 // CPU it consumes between two I/O requests
	IOTime   int64 // length of one I/O request; 0 means the process never blocks
	Priority int   // base priority, MinPriority..MaxPriority
}

// Process is the live record the scheduler mutates while the spec above
// stays untouched.
type Process struct {
	ProcessSpec

	CurPriority  int   // aged priority; starts at ProcessSpec.Priority
	Remaining    int64 // CPU still owed; TotalCPU at admission, 0 at termination
	ReadyWait    int64 // ready-queue residency since the last insert or aging credit
	IOCompleteAt int64 // clock at which the pending I/O finishes; valid while Waiting
	State        ProcessState
	admitted     bool

	seq uint64 // ready-queue insertion stamp, managed by readyQueue
}

// newProcess builds the runtime record for one spec. Validation happens
// at parse time, so nothing is clamped here.
func newProcess(spec ProcessSpec) *Process {
	return &Process{
		ProcessSpec: spec,
		CurPriority: spec.Priority,
		Remaining:   spec.TotalCPU,
		State:       StateNew,
	}
}
