// Package agenda is the max-priority queue of chart items driving the
// parser's best-first search (spec §4.4).
package agenda

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/pcfgo/chart"
)

// descendingByKey orders entries so that the greatest key is dequeued
// first — gods' priorityqueue is a min-heap by comparator convention,
// mirroring the stateComparator idiom used for CFSM states in the
// teacher's table generator, so the sense of the comparison is
// inverted here to get max-priority behaviour.
func descendingByKey(a, b interface{}) int {
	ea, eb := a.(entry), b.(entry)
	switch {
	case ea.key > eb.key:
		return -1
	case ea.key < eb.key:
		return 1
	default:
		return 0
	}
}

type entry struct {
	cons chart.Consequence
	key  float64
	hash string
}

// cellKey identifies a chart cell independent of weight, for
// deduplication purposes.
type cellKey struct {
	Sym   int32
	Start uint64
	End   uint64
}

func hashCell(c chart.Consequence) string {
	h, err := structhash.Hash(cellKey{Sym: c.Sym, Start: c.Span.From(), End: c.Span.To()}, 1)
	if err != nil {
		// structhash only fails on unhashable types; cellKey is a plain
		// comparable struct, so this cannot happen in practice.
		panic(err)
	}
	return h
}

// Agenda is a key-ordered queue of chart items (spec §4.4). Pushing
// multiple items for the same (sym, start, end) cell retains only the
// greatest-weight one; Pop skips entries that have since been
// superseded by a heavier push for the same cell, or that the caller's
// viability predicate rejects (typically: already committed).
type Agenda struct {
	q           *priorityqueue.Queue
	bestPending map[string]chart.Consequence
}

// New creates an empty Agenda.
func New() *Agenda {
	return &Agenda{
		q:           priorityqueue.NewWith(utils.Comparator(descendingByKey)),
		bestPending: make(map[string]chart.Consequence),
	}
}

// Push admits cons into the agenda with priority key. If a
// higher-or-equal weight item is already pending for cons's cell, this
// push is a no-op; otherwise it supersedes any lighter pending item for
// that cell.
func (a *Agenda) Push(cons chart.Consequence, key float64) {
	hash := hashCell(cons)
	if existing, ok := a.bestPending[hash]; ok && existing.Weight >= cons.Weight {
		return
	}
	a.bestPending[hash] = cons
	a.q.Enqueue(entry{cons: cons, key: key, hash: hash})
}

// Pop returns the not-yet-committed item of maximum key, or false if
// the agenda is exhausted. viable is consulted for every candidate
// popped off the underlying heap (typically: "is this cell still
// uncommitted?"); candidates it rejects, and candidates superseded by a
// later heavier Push for the same cell, are discarded silently.
func (a *Agenda) Pop(viable func(chart.Consequence) bool) (chart.Consequence, bool) {
	for {
		v, ok := a.q.Dequeue()
		if !ok {
			return chart.Consequence{}, false
		}
		e := v.(entry)
		current, exists := a.bestPending[e.hash]
		if !exists || current.Weight != e.cons.Weight {
			continue // superseded by a heavier push for this cell
		}
		if !viable(e.cons) {
			continue
		}
		delete(a.bestPending, e.hash)
		return e.cons, true
	}
}

// Empty reports whether the agenda currently holds no candidates. It is
// a snapshot: all pending entries may still be stale.
func (a *Agenda) Empty() bool {
	return a.q.Empty()
}
