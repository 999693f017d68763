// internal/sched/aging.go

package sched

// age charges elapsed milliseconds of ready residency to every queued
// process and applies the aging policy: each full quantum waited earns
// agingStep priority levels, floored at MinPriority, with the leftover
// residency carried forward. Priorities feed the stored ranks, so the
// tree is rebuilt afterwards; draining front-to-back keeps queue order
// for exact rank ties.
func (q *readyQueue) age(elapsed int64) {
	if elapsed <= 0 || q.rbt.Size() == 0 {
		return
	}

	members := q.snapshot()
	for _, p := range members {
		p.ReadyWait += elapsed
		if p.ReadyWait < q.agingQuantum {
			continue
		}
		credits := int(p.ReadyWait / q.agingQuantum)
		p.ReadyWait %= q.agingQuantum
		p.CurPriority -= credits * q.agingStep
		if p.CurPriority < MinPriority {
			p.CurPriority = MinPriority
		}
	}

	// Rebuild with put, not insert: residency must survive a re-sort or
	// the credit counter restarts every check and aging never fires for
	// a busy queue.
	q.rbt.Clear()
	for _, p := range members {
		q.put(p)
	}
}
