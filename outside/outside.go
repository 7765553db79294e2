// Package outside computes the Viterbi inside and outside fixed points
// over a grammar, serving as the A* admissible heuristic for the chart
// parser (spec §4.6). A Table is built once per grammar and reused
// across every sentence parsed with it.
package outside

import "github.com/npillmayer/pcfgo/grammar"

// Table holds the converged inside and outside scores for every
// non-terminal of a grammar, indexed by interned symbol id.
type Table struct {
	inside  map[int32]float64
	outside map[int32]float64
}

func insideOf(t *Table, g *grammar.Grammar, sym int32) float64 {
	if g.IsTerminal(sym) {
		return 1
	}
	return t.inside[sym]
}

// Compute runs the inside fixed point, then the outside fixed point
// seeded at start, and returns the converged Table.
func Compute(g *grammar.Grammar, start int32) *Table {
	t := &Table{
		inside:  make(map[int32]float64),
		outside: make(map[int32]float64),
	}
	t.computeInside(g)
	t.computeOutside(g, start)
	return t
}

// computeInside implements spec §4.6's inside fixed point: seed each
// non-terminal with the best weight of any lexicon rule rewriting it to
// a bare terminal, then relax with unary/binary rule compositions until
// a full sweep leaves every value unchanged.
func (t *Table) computeInside(g *grammar.Grammar) {
	lhs := g.LhsSymbols()
	for _, a := range lhs {
		best := 0.0
		for _, r := range g.Productions(a) {
			if r.Rhs.IsUnary() && g.IsTerminal(r.Rhs.Left) && r.Weight > best {
				best = r.Weight
			}
		}
		t.inside[a] = best
	}

	for {
		changed := false
		for _, a := range lhs {
			for _, r := range g.Productions(a) {
				var candidate float64
				switch {
				case r.Rhs.IsUnary() && !g.IsTerminal(r.Rhs.Left):
					candidate = r.Weight * t.inside[r.Rhs.Left]
				case r.Rhs.IsBinary():
					candidate = r.Weight * insideOf(t, g, r.Rhs.Left) * insideOf(t, g, r.Rhs.Right)
				default:
					continue // unary-terminal rules already folded into the seed
				}
				if candidate > t.inside[a] {
					t.inside[a] = candidate
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
}

// computeOutside implements spec §4.6's outside fixed point: start is
// seeded at 1, every other non-terminal at 0, then relaxed by scanning
// every rule that mentions a symbol on its right-hand side.
func (t *Table) computeOutside(g *grammar.Grammar, start int32) {
	t.outside[start] = 1

	lhs := g.LhsSymbols()
	for {
		changed := false
		for _, p := range lhs {
			outP := t.outside[p]
			for _, r := range g.Productions(p) {
				if r.Rhs.IsUnary() {
					child := r.Rhs.Left
					if g.IsTerminal(child) {
						continue
					}
					if candidate := outP * r.Weight; candidate > t.outside[child] {
						t.outside[child] = candidate
						changed = true
					}
					continue
				}
				left, right := r.Rhs.Left, r.Rhs.Right
				if !g.IsTerminal(left) {
					if candidate := outP * r.Weight * insideOf(t, g, right); candidate > t.outside[left] {
						t.outside[left] = candidate
						changed = true
					}
				}
				if !g.IsTerminal(right) {
					if candidate := outP * r.Weight * insideOf(t, g, left); candidate > t.outside[right] {
						t.outside[right] = candidate
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}
}

// Inside returns the converged inside score for sym, or 0 if sym has no
// productions (terminals included, and every symbol of a Table loaded
// with ReadFrom).
func (t *Table) Inside(sym int32) float64 {
	return t.inside[sym]
}

// Outside returns the converged outside score for sym, defaulting to 0
// for any symbol the fixed point never raised above its initial value.
func (t *Table) Outside(sym int32) float64 {
	return t.outside[sym]
}
