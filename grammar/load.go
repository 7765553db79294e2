package grammar

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pcfgo/pcfgerr"
)

// LoadRules reads a rules stream (§6.1): one rule per line,
// `LHS -> RHS1 [RHS2] WEIGHT`. Arity must be 1 or 2; anything else is an
// UnbinarisedRuleError. path is used only for diagnostics.
func (g *Grammar) LoadRules(r io.Reader, path string) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Fields(text)
		// LHS -> RHS1 [RHS2] WEIGHT: at least 4 fields (arity 1), at
		// most 5 (arity 2). Classify arity against {1,2} before any
		// other malformed-line check, so a 3-field (arity 0) or
		// 6+-field (arity >= 3) line reports UnbinarisedRuleError
		// rather than the generic MalformedRuleError.
		if len(fields) < 2 || fields[1] != "->" {
			return &pcfgerr.MalformedRuleError{Path: path, Line: line, Remnant: text}
		}
		arity := len(fields) - 3
		if arity != 1 && arity != 2 {
			return &pcfgerr.UnbinarisedRuleError{Path: path, Line: line, Arity: arity}
		}
		weight, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return &pcfgerr.MalformedRuleError{Path: path, Line: line, Remnant: text}
		}
		lhs := g.Symbols.Insert(fields[0])
		var rhs Rhs
		if arity == 1 {
			rhs = Unary(g.Symbols.Insert(fields[2]))
		} else {
			rhs = Binary(g.Symbols.Insert(fields[2]), g.Symbols.Insert(fields[3]))
		}
		g.addRule(Rule{Lhs: lhs, Rhs: rhs, Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return pcfgerr.NewIOError(path, err)
	}
	return nil
}

// LoadLexicon reads a lexicon stream (§6.2): one production per line,
// `LHS TERMINAL WEIGHT`. TERMINAL is interned as an ordinary symbol
// string but always appears as a unary rhs (a pre-terminal rule).
func (g *Grammar) LoadLexicon(r io.Reader, path string) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return &pcfgerr.MalformedLexiconError{Path: path, Line: line, Remnant: text}
		}
		weight, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return &pcfgerr.MalformedLexiconError{Path: path, Line: line, Remnant: text}
		}
		lhs := g.Symbols.Insert(fields[0])
		term := g.Symbols.Insert(fields[1])
		g.terminals[term] = true
		g.addRule(Rule{Lhs: lhs, Rhs: Unary(term), Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return pcfgerr.NewIOError(path, err)
	}
	return nil
}
