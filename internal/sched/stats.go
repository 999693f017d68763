// internal/sched/stats.go

package sched

// ProcessStats is the per-process accounting the dispatch loop keeps as
// bursts retire.
type ProcessStats struct {
	PID         int
	Arrival     int64
	TotalCPU    int64
	Bursts      int   // dispatches granted
	Consumed    int64 // CPU ms actually charged; equals TotalCPU once terminated
	CompletedAt int64 // clock of termination; 0 while still live
}

// Turnaround is the simulated span from arrival to termination.
func (ps ProcessStats) Turnaround() int64 {
	return ps.CompletedAt - ps.Arrival
}

// Stats summarizes one run, processes in batch order.
type Stats struct {
	Processes     []ProcessStats
	TotalBursts   int
	TotalConsumed int64
	FinalClock    int64
}
