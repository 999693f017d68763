// internal/sched/readyqueue.go

package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// rankKey orders the ready queue: lower priority number first, shortest
// remaining CPU next, and the insertion stamp last so exact ties keep
// queue order.
type rankKey struct {
	priority  int
	remaining int64
	seq       uint64
}

// rankCompare implements the comparator for red-black tree ordering.
func rankCompare(a, b any) int {
	ka, kb := a.(rankKey), b.(rankKey)
	switch {
	case ka.priority < kb.priority:
		return -1
	case ka.priority > kb.priority:
		return 1
	case ka.remaining < kb.remaining:
		return -1
	case ka.remaining > kb.remaining:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// readyQueue holds runnable processes ranked by the priority-SRTF
// policy. It is not safe for concurrent use; callers hold the scheduler
// lock.
type readyQueue struct {
	rbt *redblacktree.Tree
	seq uint64 // monotonically increasing insertion stamp

	agingQuantum int64 // ready residency that earns one aging credit
	agingStep    int   // priority levels gained per credit
}

func newReadyQueue(agingQuantum int64, agingStep int) *readyQueue {
	return &readyQueue{
		rbt:          redblacktree.NewWith(rankCompare),
		agingQuantum: agingQuantum,
		agingStep:    agingStep,
	}
}

// insert ranks p into the queue and restarts its residency timer. Use
// this for every entry from outside the queue: admission, I/O return,
// and the no-I/O requeue after a burst.
func (q *readyQueue) insert(p *Process) {
	p.ReadyWait = 0
	q.put(p)
}

// put ranks p without touching the residency timer; the aging rebuild
// uses it so waiting credit survives a re-sort.
func (q *readyQueue) put(p *Process) {
	q.seq++
	p.seq = q.seq
	q.rbt.Put(rankKey{priority: p.CurPriority, remaining: p.Remaining, seq: p.seq}, p)
}

// popFront removes and returns the best-ranked process.
func (q *readyQueue) popFront() (*Process, bool) {
	node := q.rbt.Left()
	if node == nil {
		return nil, false
	}
	p := node.Value.(*Process)
	q.rbt.Remove(node.Key)
	return p, true
}

// remove drops p from wherever it sits. Removing a process that is not
// queued is a no-op.
func (q *readyQueue) remove(p *Process) {
	q.rbt.Remove(rankKey{priority: p.CurPriority, remaining: p.Remaining, seq: p.seq})
}

func (q *readyQueue) size() int {
	return q.rbt.Size()
}

// snapshot returns the members in queue order.
func (q *readyQueue) snapshot() []*Process {
	out := make([]*Process, 0, q.rbt.Size())
	it := q.rbt.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Process))
	}
	return out
}
