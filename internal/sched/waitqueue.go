// internal/sched/waitqueue.go

package sched

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// waitQueue holds processes blocked on I/O in the order they blocked.
// Like the ready queue it relies on the scheduler lock for safety.
type waitQueue struct {
	q *linkedlistqueue.Queue
}

func newWaitQueue() *waitQueue {
	return &waitQueue{q: linkedlistqueue.New()}
}

func (w *waitQueue) push(p *Process) {
	w.q.Enqueue(p)
}

func (w *waitQueue) size() int {
	return w.q.Size()
}

// collectRipe removes and returns, in queue order, every member whose
// I/O completes at or before now. Members still waiting keep their
// relative order.
func (w *waitQueue) collectRipe(now int64) []*Process {
	var ripe []*Process
	for n := w.q.Size(); n > 0; n-- {
		v, _ := w.q.Dequeue()
		p := v.(*Process)
		if p.IOCompleteAt <= now {
			ripe = append(ripe, p)
		} else {
			w.q.Enqueue(p)
		}
	}
	return ripe
}

// snapshot returns the members in queue order.
func (w *waitQueue) snapshot() []*Process {
	vals := w.q.Values()
	out := make([]*Process, len(vals))
	for i, v := range vals {
		out[i] = v.(*Process)
	}
	return out
}
