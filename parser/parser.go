// Package parser is the weighted deductive chart parser (spec §4.5):
// an agenda-driven best-first search that builds a weight map for one
// sentence, seeding from the lexicon and closing over unary and binary
// rules until the goal cell commits or the agenda drains.
package parser

import (
	"github.com/npillmayer/pcfgo"
	"github.com/npillmayer/pcfgo/agenda"
	"github.com/npillmayer/pcfgo/chart"
	"github.com/npillmayer/pcfgo/grammar"
	"github.com/npillmayer/pcfgo/outside"
)

// Parser holds the immutable, grammar-wide state shared by every
// sentence it parses: the rule store, the starting non-terminal, and
// an optional A* outside heuristic.
type Parser struct {
	g       *grammar.Grammar
	start   int32
	outside *outside.Table
}

// New builds a Parser for g, rooted at start. out may be nil, in which
// case the agenda orders purely by item weight (spec §4.4).
func New(g *grammar.Grammar, start int32, out *outside.Table) *Parser {
	g.EnsureSymbol(start)
	return &Parser{g: g, start: start, outside: out}
}

// key computes the agenda priority for committing sym with weight w:
// w, or w·outside(sym) when a heuristic table is present. Every push
// site must route through this function (spec's "heuristic discipline",
// §4.6) so the ordering stays admissible.
func (p *Parser) key(sym int32, w float64) float64 {
	if p.outside == nil {
		return w
	}
	return w * p.outside.Outside(sym)
}

// Parse runs the deductive closure over sentence (a sequence of
// interned terminal ids) and returns the resulting weight map together
// with whether the goal cell — the starting symbol spanning the whole
// sentence — was committed.
func (p *Parser) Parse(sentence []int32) (*chart.WeightMap, bool) {
	n := uint64(len(sentence))
	wm := chart.NewWeightMap(int32(p.g.Symbols.Len()), n)
	ag := agenda.New()

	for i, word := range sentence {
		for _, r := range p.g.Appearances(word) {
			if r.Rhs.IsUnary() && r.Rhs.Left == word {
				from := uint64(i)
				ag.Push(newConsequence(r.Lhs, from, from+1, r.Weight), p.key(r.Lhs, r.Weight))
			}
		}
	}

	goal := false
	viable := func(c chart.Consequence) bool {
		return !wm.IsSet(c.Sym, c.Span.From(), c.Span.To())
	}
	for {
		c, ok := ag.Pop(viable)
		if !ok {
			break
		}
		wm.Set(c.Sym, c.Span.From(), c.Span.To(), c.Weight)

		if c.Sym == p.start && c.Span.From() == 0 && c.Span.To() == n {
			goal = true
			break
		}

		i, j := c.Span.From(), c.Span.To()
		for _, r := range p.g.Appearances(c.Sym) {
			if r.Rhs.IsUnary() && r.Rhs.Left == c.Sym {
				w := c.Weight * r.Weight
				ag.Push(newConsequence(r.Lhs, i, j, w), p.key(r.Lhs, w))
				continue
			}
			if !r.Rhs.IsBinary() {
				continue
			}
			if r.Rhs.Left == c.Sym {
				// A_parent -> A B: find committed B starting where A ends.
				it := chart.StartsAt(wm, r.Rhs.Right, j)
				for {
					sib, ok := it.Next()
					if !ok {
						break
					}
					w := c.Weight * sib.Weight * r.Weight
					ag.Push(newConsequence(r.Lhs, i, sib.Span.To(), w), p.key(r.Lhs, w))
				}
			}
			if r.Rhs.Right == c.Sym {
				// A_parent -> B A: find committed B ending where A begins.
				it := chart.EndsAt(wm, r.Rhs.Left, i)
				for {
					sib, ok := it.Next()
					if !ok {
						break
					}
					w := sib.Weight * c.Weight * r.Weight
					ag.Push(newConsequence(r.Lhs, sib.Span.From(), j, w), p.key(r.Lhs, w))
				}
			}
		}
	}
	return wm, goal
}

func newConsequence(sym int32, from, to uint64, weight float64) chart.Consequence {
	return chart.Consequence{Sym: sym, Span: pcfgo.NewSpan(from, to), Weight: weight}
}
