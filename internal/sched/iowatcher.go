// internal/sched/iowatcher.go

package sched

import "log/slog"

// watchIO is the I/O completion watcher. It runs beside the dispatch
// loop for the whole simulation, polling the waiting queue against the
// shared clock roughly once per tick, and moves every process whose I/O
// deadline has passed back into the ready queue. The ready queue is the
// only way back to the CPU: the watcher never dispatches.
func (s *Scheduler) watchIO() {
	defer s.wg.Done()

	pace := newPacer(s.cfg.TickMS)
	defer pace.Stop()

	for {
		select {
		case <-s.done:
			return
		default:
		}
		pace.Wait()

		now := s.clock.Now()
		s.mu.Lock()
		ripe := s.waiting.collectRipe(now)
		for _, p := range ripe {
			p.State = StateReady
			s.journal.Emit(Event{Clock: now, PID: p.PID, Kind: EventIOFinished})
			s.ready.insert(p)
			s.journal.Emit(Event{Clock: now, PID: p.PID, Kind: EventReady})
		}
		s.mu.Unlock()

		if len(ripe) > 0 {
			s.log.Debug("io completed",
				slog.Int("moved", len(ripe)),
				slog.Int64("clock_ms", now),
			)
		}
	}
}
