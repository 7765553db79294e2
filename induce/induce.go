// Package induce performs relative-frequency PCFG induction from gold
// parse trees (spec §4.8, supplemented in full-spec §4): it counts rule
// and lexicon occurrences and emits rules-, lexicon-, and words-files
// whose weights are each production's share of its left-hand symbol's
// total occurrence count.
package induce

import (
	"fmt"
	"io"

	"github.com/npillmayer/pcfgo/pcfgerr"
	"github.com/npillmayer/pcfgo/tree"
)

// ruleKey identifies a syntactic rule body, ignoring weight — mirroring
// grammar.Rule's equality (lhs + rhs only).
type ruleKey struct {
	Lhs   string
	Rhs1  string
	Rhs2  string
	Arity int
}

// lexKey identifies a lexicon entry.
type lexKey struct {
	Lhs, Terminal string
}

// Inducer accumulates occurrence counts across any number of gold
// trees (via Add), then emits relative frequencies. Expects trees
// already binarised: an internal node with more than two children is
// an UnbinarisedRuleError.
type Inducer struct {
	ruleCounts map[ruleKey]uint64
	ruleOrder  []ruleKey
	lexCounts  map[lexKey]uint64
	lexOrder   []lexKey
	lhsTotal   map[string]uint64
	words      map[string]bool
	wordOrder  []string
}

// New creates an empty Inducer.
func New() *Inducer {
	return &Inducer{
		ruleCounts: make(map[ruleKey]uint64),
		lexCounts:  make(map[lexKey]uint64),
		lhsTotal:   make(map[string]uint64),
		words:      make(map[string]bool),
	}
}

// Add walks t and accumulates its rule and lexicon occurrences.
func (in *Inducer) Add(t *tree.Tree) error {
	return in.walk(t)
}

func (in *Inducer) walk(t *tree.Tree) error {
	if t.IsLeaf() {
		return nil
	}
	switch len(t.Children) {
	case 1:
		c := t.Children[0]
		if c.IsLeaf() {
			in.addLex(t.Label, c.Label)
			return nil
		}
		in.addRule(t.Label, c.Label, "", 1)
		return in.walk(c)
	case 2:
		in.addRule(t.Label, t.Children[0].Label, t.Children[1].Label, 2)
		if err := in.walk(t.Children[0]); err != nil {
			return err
		}
		return in.walk(t.Children[1])
	default:
		return &pcfgerr.UnbinarisedRuleError{Path: "<tree>", Arity: len(t.Children)}
	}
}

func (in *Inducer) addRule(lhs, rhs1, rhs2 string, arity int) {
	k := ruleKey{Lhs: lhs, Rhs1: rhs1, Rhs2: rhs2, Arity: arity}
	if in.ruleCounts[k] == 0 {
		in.ruleOrder = append(in.ruleOrder, k)
	}
	in.ruleCounts[k]++
	in.lhsTotal[lhs]++
}

func (in *Inducer) addLex(lhs, terminal string) {
	k := lexKey{Lhs: lhs, Terminal: terminal}
	if in.lexCounts[k] == 0 {
		in.lexOrder = append(in.lexOrder, k)
	}
	in.lexCounts[k]++
	in.lhsTotal[lhs]++

	if !in.words[terminal] {
		in.words[terminal] = true
		in.wordOrder = append(in.wordOrder, terminal)
	}
}

// WriteRules emits one `LHS -> RHS1 [RHS2] WEIGHT` line per distinct
// rule, in first-seen order, with WEIGHT the rule's relative frequency
// under its lhs (spec §6.1).
func (in *Inducer) WriteRules(w io.Writer) error {
	for _, k := range in.ruleOrder {
		weight := float64(in.ruleCounts[k]) / float64(in.lhsTotal[k.Lhs])
		var err error
		if k.Arity == 1 {
			_, err = fmt.Fprintf(w, "%s -> %s %v\n", k.Lhs, k.Rhs1, weight)
		} else {
			_, err = fmt.Fprintf(w, "%s -> %s %s %v\n", k.Lhs, k.Rhs1, k.Rhs2, weight)
		}
		if err != nil {
			return pcfgerr.NewIOError("rules", err)
		}
	}
	return nil
}

// WriteLexicon emits one `LHS TERMINAL WEIGHT` line per distinct
// lexicon entry, in first-seen order (spec §6.2).
func (in *Inducer) WriteLexicon(w io.Writer) error {
	for _, k := range in.lexOrder {
		weight := float64(in.lexCounts[k]) / float64(in.lhsTotal[k.Lhs])
		if _, err := fmt.Fprintf(w, "%s %s %v\n", k.Lhs, k.Terminal, weight); err != nil {
			return pcfgerr.NewIOError("lexicon", err)
		}
	}
	return nil
}

// WriteWords emits one terminal per line, each exactly once, in
// first-seen order (spec §6.3).
func (in *Inducer) WriteWords(w io.Writer) error {
	for _, word := range in.wordOrder {
		if _, err := fmt.Fprintf(w, "%s\n", word); err != nil {
			return pcfgerr.NewIOError("words", err)
		}
	}
	return nil
}
