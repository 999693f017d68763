// internal/sched/scheduler.go

package sched

import (
	"context"
	"log/slog"
	"sync"
)

// Scheduler runs a non-preemptive priority scheduling simulation over a
// fixed batch of processes. The dispatch loop owns the clock: every
// iteration is one simulated millisecond in which it admits arrivals,
// ages the ready queue, retires a finished burst and hands the CPU to
// the best-ranked waiter. A second goroutine, the I/O watcher, returns
// blocked processes whose I/O deadline has passed (see iowatcher.go).
type Scheduler struct {
	// scheduler state, all guarded by mu
	mu      sync.Mutex
	ready   *readyQueue
	waiting *waitQueue
	procs   []*Process            // batch order
	stats   map[int]*ProcessStats // cumulative accounting per PID

	running      *Process
	runningBurst int64 // burst length fixed at dispatch, charged at retirement
	runningUntil int64 // clock at which the current burst retires
	lastAging    int64 // clock of the last aging check
	terminated   int

	// clock and journal synchronize on their own
	clock   Clock
	journal *Journal

	cfg  Config
	log  *slog.Logger
	done chan struct{} // closed when the dispatch loop exits
	wg   sync.WaitGroup
}

// Option adjusts a Scheduler at construction time.
type Option func(*Scheduler)

// WithLogger routes the scheduler's diagnostics through log. The event
// journal is unaffected; this only covers debug output.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scheduler) { s.log = log }
}

// New creates a Scheduler for one batch of process specs. The journal
// receives every event of the run; pass NewJournal(nil) to keep the
// history without printing.
func New(cfg Config, specs []ProcessSpec, journal *Journal, opts ...Option) *Scheduler {
	s := &Scheduler{
		ready:   newReadyQueue(cfg.AgingEveryMS, cfg.AgingStep),
		waiting: newWaitQueue(),
		stats:   make(map[int]*ProcessStats),
		cfg:     cfg,
		journal: journal,
		log:     slog.Default(),
		done:    make(chan struct{}),
	}
	for _, spec := range specs {
		s.procs = append(s.procs, newProcess(spec))
		s.stats[spec.PID] = &ProcessStats{PID: spec.PID, Arrival: spec.Arrival, TotalCPU: spec.TotalCPU}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the simulation until every process has terminated. It
// blocks until both the dispatch loop and the I/O watcher have stopped,
// and returns the context error if the run was cancelled early. A
// Scheduler runs once; it is not restartable.
func (s *Scheduler) Run(ctx context.Context) error {
	s.wg.Add(1)
	go s.watchIO()

	err := s.loop(ctx)
	close(s.done)
	s.wg.Wait()
	return err
}

// loop is the dispatch loop; one iteration is one simulated millisecond.
func (s *Scheduler) loop(ctx context.Context) error {
	pace := newPacer(s.cfg.TickMS)
	defer pace.Stop()

	for {
		// 1) check shutdown
		if err := ctx.Err(); err != nil {
			return err
		}

		// 2) advance the shared clock; the first iteration runs at 1
		now := s.clock.Advance()

		// 3) state transitions, all under one lock and in fixed order
		s.mu.Lock()
		s.admitArrivals(now)
		s.applyAging(now)
		s.retireBurst(now)
		s.dispatch(now)
		finished := s.terminated == len(s.procs) && s.running == nil
		s.mu.Unlock()

		// 4) done once the whole batch has terminated
		if finished {
			return nil
		}

		// 5) pace the next iteration
		pace.Wait()
	}
}

// admitArrivals moves every not-yet-admitted process whose arrival time
// has come into the ready queue, in batch order.
func (s *Scheduler) admitArrivals(now int64) {
	for _, p := range s.procs {
		if p.admitted || p.Arrival > now {
			continue
		}
		p.admitted = true
		s.journal.Emit(Event{Clock: now, PID: p.PID, Kind: EventArrived})
		p.State = StateReady
		s.ready.insert(p)
		s.journal.Emit(Event{Clock: now, PID: p.PID, Kind: EventReady})
	}
}

// applyAging charges the time since the last check to every ready
// process and re-ranks the queue.
func (s *Scheduler) applyAging(now int64) {
	if now <= s.lastAging {
		return
	}
	s.ready.age(now - s.lastAging)
	s.lastAging = now
}

// retireBurst settles the running process once its burst has run out.
// Three exits: terminate when no CPU is owed, requeue directly when the
// process performs no I/O, otherwise block until the watcher brings it
// back.
func (s *Scheduler) retireBurst(now int64) {
	p := s.running
	if p == nil || now < s.runningUntil {
		return
	}

	burst := s.runningBurst
	p.Remaining -= burst
	st := s.stats[p.PID]
	st.Consumed += burst

	s.running = nil
	s.runningBurst = 0

	if p.Remaining <= 0 {
		p.State = StateTerminated
		st.CompletedAt = now
		s.terminated++
		s.journal.Emit(Event{Clock: now, PID: p.PID, Kind: EventTerminated})
		return
	}

	if p.IOTime <= 0 {
		// nothing to wait for; straight back to the ready queue
		p.State = StateReady
		s.ready.insert(p)
		s.journal.Emit(Event{Clock: now, PID: p.PID, Kind: EventReady})
		return
	}

	p.State = StateWaiting
	p.IOCompleteAt = now + p.IOTime
	s.journal.Emit(Event{Clock: now, PID: p.PID, Kind: EventBlocked, IOTime: p.IOTime})
	s.waiting.push(p)
}

// dispatch hands the CPU to the front of the ready queue when it is
// idle. The burst length is fixed here and never recomputed;
// non-preemption means the process runs exactly this long.
func (s *Scheduler) dispatch(now int64) {
	if s.running != nil || s.ready.size() == 0 {
		return
	}

	p, _ := s.ready.popFront()
	p.State = StateRunning

	burst := p.Interval
	if burst > p.Remaining {
		burst = p.Remaining
	}
	s.running = p
	s.runningBurst = burst
	s.runningUntil = now + burst
	s.stats[p.PID].Bursts++

	s.journal.Emit(Event{
		Clock:     now,
		PID:       p.PID,
		Kind:      EventDispatched,
		Priority:  p.CurPriority,
		Remaining: p.Remaining,
		Burst:     burst,
	})
	s.log.Debug("dispatched",
		slog.Int("pid", p.PID),
		slog.Int("priority", p.CurPriority),
		slog.Int64("burst_ms", burst),
		slog.Int64("clock_ms", now),
	)
}

// Stats reports the accounting of the run so far, processes in batch
// order. Call it after Run for final numbers.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Stats{FinalClock: s.clock.Now()}
	for _, p := range s.procs {
		st := *s.stats[p.PID]
		out.Processes = append(out.Processes, st)
		out.TotalBursts += st.Bursts
		out.TotalConsumed += st.Consumed
	}
	return out
}
