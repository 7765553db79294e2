package chart

import "github.com/npillmayer/pcfgo"

// EndsAtIter walks committed cells for a fixed symbol and a fixed end
// position, varying the start position. It borrows its WeightMap
// read-only and carries no shared mutable state with other iterators.
type EndsAtIter struct {
	m     *WeightMap
	sym   int32
	end   uint64
	start uint64
}

// EndsAt returns an iterator over every committed (sym, [start,end))
// cell for the given end position k, used by the parser's step 2d
// binary-rhs-on-the-right expansion.
func EndsAt(m *WeightMap, sym int32, k uint64) *EndsAtIter {
	return &EndsAtIter{m: m, sym: sym, end: k, start: 0}
}

// Next returns the next committed Consequence, or false when exhausted.
func (it *EndsAtIter) Next() (Consequence, bool) {
	for it.start < it.end {
		start := it.start
		it.start++
		if it.m.IsSet(it.sym, start, it.end) {
			return Consequence{
				Sym:    it.sym,
				Span:   pcfgo.NewSpan(start, it.end),
				Weight: it.m.Get(it.sym, start, it.end),
			}, true
		}
	}
	return Consequence{}, false
}

// StartsAtIter walks committed cells for a fixed symbol and a fixed
// start position, varying the end position.
type StartsAtIter struct {
	m     *WeightMap
	sym   int32
	start uint64
	end   uint64
}

// StartsAt returns an iterator over every committed (sym, [start,end))
// cell for the given start position k, used by the parser's step 2d
// binary-rhs-on-the-left expansion.
func StartsAt(m *WeightMap, sym int32, k uint64) *StartsAtIter {
	return &StartsAtIter{m: m, sym: sym, start: k, end: k + 1}
}

// Next returns the next committed Consequence, or false when exhausted.
func (it *StartsAtIter) Next() (Consequence, bool) {
	for it.end <= it.m.Len() {
		end := it.end
		it.end++
		if it.m.IsSet(it.sym, it.start, end) {
			return Consequence{
				Sym:    it.sym,
				Span:   pcfgo.NewSpan(it.start, end),
				Weight: it.m.Get(it.sym, it.start, end),
			}, true
		}
	}
	return Consequence{}, false
}
