// Package grammar is the rule store: for each left-hand non-terminal, its
// rule bodies (unary or binary) with weights; for each right-hand symbol,
// the set of rules in which it appears.
package grammar

import "github.com/npillmayer/pcfgo/symtab"

// Rhs is the right-hand side of a rule, either a single symbol (unary —
// a chain production or a pre-terminal lexicon entry) or a pair of
// symbols (binary).
type Rhs struct {
	Left  int32
	Right int32
	Arity int8 // 1 for unary, 2 for binary
}

// Unary builds a one-symbol Rhs.
func Unary(sym int32) Rhs {
	return Rhs{Left: sym, Arity: 1}
}

// Binary builds a two-symbol Rhs.
func Binary(left, right int32) Rhs {
	return Rhs{Left: left, Right: right, Arity: 2}
}

// IsUnary reports whether r has exactly one symbol.
func (r Rhs) IsUnary() bool { return r.Arity == 1 }

// IsBinary reports whether r has exactly two symbols.
func (r Rhs) IsBinary() bool { return r.Arity == 2 }

// Rule is `lhs -> rhs` with a weight. The store treats two rules as the
// same production iff they share lhs and rhs (see sameProduction), so
// Weight is ignored for that test; Go's == on Rule also compares Weight.
type Rule struct {
	Lhs    int32
	Rhs    Rhs
	Weight float64
}

// sameProduction reports whether a and b have the same lhs and rhs,
// ignoring weight.
func sameProduction(a, b Rule) bool {
	return a.Lhs == b.Lhs && a.Rhs == b.Rhs
}

// Grammar is the rule store described in spec §3/§4.2: a productions
// index keyed by lhs, and an appearances index keyed by any rhs symbol.
// A Grammar is built once at startup and is read-only during parsing.
type Grammar struct {
	Symbols     *symtab.Table
	productions map[int32][]Rule
	appearances map[int32][]Rule
	terminals   map[int32]bool
	lhsOrder    []int32
}

// New creates an empty Grammar backed by tab.
func New(tab *symtab.Table) *Grammar {
	return &Grammar{
		Symbols:     tab,
		productions: make(map[int32][]Rule),
		appearances: make(map[int32][]Rule),
		terminals:   make(map[int32]bool),
	}
}

// IsTerminal reports whether sym was interned as a lexicon terminal
// (the TERMINAL field of a lexicon line, §6.2). A symbol never seen in
// a lexicon line is treated as a non-terminal.
func (g *Grammar) IsTerminal(sym int32) bool {
	return g.terminals[sym]
}

// LhsSymbols returns every left-hand symbol that has at least one
// production, in first-seen order.
func (g *Grammar) LhsSymbols() []int32 {
	return g.lhsOrder
}

// Productions returns the rule bodies for lhs, in first-seen order. The
// returned slice must not be mutated by the caller.
func (g *Grammar) Productions(lhs int32) []Rule {
	return g.productions[lhs]
}

// Appearances returns every rule in which sym occurs on the right-hand
// side, in first-seen order. The returned slice must not be mutated by
// the caller.
func (g *Grammar) Appearances(sym int32) []Rule {
	return g.appearances[sym]
}

// EnsureSymbol guarantees that sym has an (possibly empty) appearances
// entry, so that the parser's lookup never faults on a symbol that
// happens not to appear on any rhs (invariant 2 of spec §3 — typically
// invoked for the starting non-terminal).
func (g *Grammar) EnsureSymbol(sym int32) {
	if _, ok := g.appearances[sym]; !ok {
		g.appearances[sym] = []Rule{}
	}
}

// addRule inserts r into productions[r.Lhs], replacing any prior rule
// with the same lhs/rhs (last writer wins within a file, per spec
// §4.2), and records r against appearances for every rhs symbol.
func (g *Grammar) addRule(r Rule) {
	prods, seen := g.productions[r.Lhs]
	if !seen {
		g.lhsOrder = append(g.lhsOrder, r.Lhs)
	}
	replaced := false
	for i, existing := range prods {
		if sameProduction(existing, r) {
			prods[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		prods = append(prods, r)
	}
	g.productions[r.Lhs] = prods

	g.addAppearance(r.Rhs.Left, r)
	if r.Rhs.IsBinary() {
		g.addAppearance(r.Rhs.Right, r)
	}
}

// addAppearance records r against appearances[sym], replacing any
// existing entry for the same lhs/rhs so that last-writer-wins reuse
// is reflected symmetrically in both indexes.
func (g *Grammar) addAppearance(sym int32, r Rule) {
	apps := g.appearances[sym]
	for i, existing := range apps {
		if sameProduction(existing, r) {
			apps[i] = r
			g.appearances[sym] = apps
			return
		}
	}
	g.appearances[sym] = append(apps, r)
}
