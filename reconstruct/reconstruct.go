// Package reconstruct backtracks a completed weight map to a
// best-weighted derivation tree (spec §4.7). It consults only the
// weight map, the grammar store and the interner; it never re-derives
// weights, only re-discovers which rule produced an already-committed
// one via bit-exact floating point equality (spec §9).
package reconstruct

import (
	"fmt"

	"github.com/npillmayer/pcfgo/chart"
	"github.com/npillmayer/pcfgo/grammar"
	"github.com/npillmayer/pcfgo/tree"
)

// Builder backtracks one sentence's completed WeightMap against its
// Grammar.
type Builder struct {
	g  *grammar.Grammar
	wm *chart.WeightMap
}

// New builds a reconstruction Builder for a grammar and the weight map
// produced by parsing one sentence against it.
func New(g *grammar.Grammar, wm *chart.WeightMap) *Builder {
	return &Builder{g: g, wm: wm}
}

// termQueue is the sentence's terminal ids, consumed left to right by
// the unary-terminal branch of build.
type termQueue struct {
	ids []int32
	pos int
}

func (q *termQueue) pop() int32 {
	id := q.ids[q.pos]
	q.pos++
	return id
}

// Reconstruct builds the best-weighted derivation tree rooted at start
// spanning the whole of sentence. The caller must already know the
// goal cell committed (e.g. parser.Parse returned ok == true);
// Reconstruct does not itself check for noparse.
func (b *Builder) Reconstruct(start int32, sentence []int32) (*tree.Tree, error) {
	q := &termQueue{ids: sentence}
	n := uint64(len(sentence))
	t, err := b.build(start, 0, n, q)
	if err != nil {
		return nil, err
	}
	if q.pos != len(sentence) {
		return nil, fmt.Errorf("reconstruct: derivation consumed %d of %d terminals", q.pos, len(sentence))
	}
	return t, nil
}

// build implements spec §4.7's procedure: it finds, among productions
// for sym, the rule whose weight multiplies out (bit-exact) to the
// committed weight of (sym, [start,end)), and recurses across however
// many children that rule has.
func (b *Builder) build(sym int32, start, end uint64, q *termQueue) (*tree.Tree, error) {
	wLhs := b.wm.Get(sym, start, end)
	label := b.g.Symbols.Get(sym)

	for _, r := range b.g.Productions(sym) {
		switch {
		case r.Rhs.IsUnary() && b.g.IsTerminal(r.Rhs.Left):
			if r.Weight != wLhs {
				continue
			}
			leaf := tree.NewLeaf(b.g.Symbols.Get(q.pop()))
			return tree.NewNode(label, leaf), nil

		case r.Rhs.IsUnary():
			childWeight := b.wm.Get(r.Rhs.Left, start, end)
			if childWeight*r.Weight != wLhs {
				continue
			}
			child, err := b.build(r.Rhs.Left, start, end, q)
			if err != nil {
				return nil, err
			}
			return tree.NewNode(label, child), nil

		case r.Rhs.IsBinary():
			for p := start + 1; p < end; p++ {
				lw := b.wm.Get(r.Rhs.Left, start, p)
				rw := b.wm.Get(r.Rhs.Right, p, end)
				if lw*rw*r.Weight != wLhs {
					continue
				}
				left, err := b.build(r.Rhs.Left, start, p, q)
				if err != nil {
					return nil, err
				}
				right, err := b.build(r.Rhs.Right, p, end, q)
				if err != nil {
					return nil, err
				}
				return tree.NewNode(label, left, right), nil
			}
		}
	}
	return nil, fmt.Errorf("reconstruct: no derivation found for %s at [%d,%d)", label, start, end)
}
