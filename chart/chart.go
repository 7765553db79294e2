// Package chart is the triangular weight map: packed dense storage for
// the best-known weight of every (symbol, span) cell discovered while
// parsing one sentence.
package chart

import "github.com/npillmayer/pcfgo"

// Consequence is a committed chart item: a symbol spanning a range of
// token positions, with its best-known weight.
type Consequence struct {
	Sym    int32
	Span   pcfgo.Span
	Weight float64
}

// triangle computes T(k) = k(k+1)/2, the count of (start,end) pairs for
// a sentence of length k with start < end.
func triangle(k uint64) uint64 {
	return k * (k + 1) / 2
}

// WeightMap is the packed dense storage of spec §3/§4.3: a flat array
// of length nSymbols*T(n), where n is the sentence length, plus a
// companion bit map distinguishing "never committed" from a weight of
// zero. A WeightMap is built fresh per sentence and discarded after
// reconstruction.
type WeightMap struct {
	n       uint64
	weights []float64
	isSet   []bool
}

// NewWeightMap allocates a WeightMap for a sentence of length n and a
// symbol space of nSymbols distinct ids.
func NewWeightMap(nSymbols int32, n uint64) *WeightMap {
	size := uint64(nSymbols) * triangle(n)
	return &WeightMap{
		n:       n,
		weights: make([]float64, size),
		isSet:   make([]bool, size),
	}
}

// index implements the triangular scheme of spec §3:
// base(sym) + T(n-start-1) + (n-end), base(sym) = sym * T(n).
// 0 ≤ start < end ≤ n is a precondition; callers (chart's own Set/Get/
// IsSet and the parser) are expected to uphold it.
func (m *WeightMap) index(sym int32, start, end uint64) uint64 {
	base := uint64(sym) * triangle(m.n)
	return base + triangle(m.n-start-1) + (m.n - end)
}

// Set commits weight for (sym, [start,end)) and marks the cell as set.
// Per spec invariant 3, once set a cell is never overwritten by a
// second call — callers (the parser) must only Set a cell once.
func (m *WeightMap) Set(sym int32, start, end uint64, weight float64) {
	idx := m.index(sym, start, end)
	m.weights[idx] = weight
	m.isSet[idx] = true
}

// IsSet reports whether (sym, [start,end)) has been committed.
func (m *WeightMap) IsSet(sym int32, start, end uint64) bool {
	return m.isSet[m.index(sym, start, end)]
}

// Get returns the committed weight for (sym, [start,end)), or 0.0 if
// the cell has not been set.
func (m *WeightMap) Get(sym int32, start, end uint64) float64 {
	idx := m.index(sym, start, end)
	if !m.isSet[idx] {
		return 0
	}
	return m.weights[idx]
}

// Len returns the sentence length this map was allocated for.
func (m *WeightMap) Len() uint64 {
	return m.n
}
