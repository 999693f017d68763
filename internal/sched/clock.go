// internal/sched/clock.go

package sched

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Clock is the shared simulated-time counter, in milliseconds. The
// dispatch loop is the only writer; the I/O watcher reads it
// concurrently, so access goes through an atomic.
type Clock struct {
	ms atomic.Int64
}

// Now returns the current simulated time.
func (c *Clock) Now() int64 {
	return c.ms.Load()
}

// Advance moves the simulation one millisecond forward and returns the
// new time.
func (c *Clock) Advance() int64 {
	return c.ms.Add(1)
}

// pacer throttles a simulation loop. The real-time pacer keeps one
// iteration per wall-clock tick; the no-op pacer lets the loop spin as
// fast as the host allows, which batch runs and tests use.
type pacer interface {
	Wait()
	Stop()
}

func newPacer(tickMS int) pacer {
	if tickMS <= 0 {
		return nopPacer{}
	}
	return &tickPacer{ticker: time.NewTicker(time.Duration(tickMS) * time.Millisecond)}
}

// tickPacer waits on a real ticker so one simulated millisecond takes
// roughly tick_ms of wall time.
type tickPacer struct {
	ticker *time.Ticker
}

func (p *tickPacer) Wait() { <-p.ticker.C }
func (p *tickPacer) Stop() { p.ticker.Stop() }

// nopPacer only yields the processor so the peer goroutine keeps making
// progress while the loop spins.
type nopPacer struct{}

func (nopPacer) Wait() { runtime.Gosched() }
func (nopPacer) Stop() {}
