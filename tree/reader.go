package tree

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/pcfgo/pcfgerr"
)

// Reader reads one bracketed s-expression tree per line (spec §6.5)
// from an underlying io.Reader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps r as a tree Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the tree parsed from the next non-blank line, or
// io.EOF once the underlying reader is exhausted.
func (rd *Reader) Next() (*Tree, error) {
	for rd.scanner.Scan() {
		rd.line++
		text := strings.TrimSpace(rd.scanner.Text())
		if text == "" {
			continue
		}
		return parseLine(text, rd.line)
	}
	if err := rd.scanner.Err(); err != nil {
		return nil, pcfgerr.NewIOError("tree", err)
	}
	return nil, io.EOF
}

// ParseLine parses a single tree from a bracketed s-expression line.
func ParseLine(line string) (*Tree, error) {
	return parseLine(strings.TrimSpace(line), 0)
}

func parseLine(text string, line int) (*Tree, error) {
	toks := tokenize(text)
	p := &tokenParser{toks: toks, line: line, original: text}
	t, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, &pcfgerr.MalformedTreeError{Line: line, Remnant: text}
	}
	return t, nil
}

// token kinds.
const (
	tokOpen = iota
	tokClose
	tokAtom
)

type token struct {
	kind int
	text string
}

// tokenize splits text into "(", ")" and maximal runs of non-space,
// non-paren characters — the atom alphabet of spec §6.1/§6.5, the same
// maximal-run idiom the teacher's scanner package applies to its own
// category alphabets.
func tokenize(text string) []token {
	var toks []token
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		switch r := runes[i]; {
		case r == ' ' || r == '\t':
			i++
		case r == '(':
			toks = append(toks, token{kind: tokOpen})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokClose})
			i++
		default:
			start := i
			for i < len(runes) && runes[i] != ' ' && runes[i] != '\t' && runes[i] != '(' && runes[i] != ')' {
				i++
			}
			toks = append(toks, token{kind: tokAtom, text: string(runes[start:i])})
		}
	}
	return toks
}

type tokenParser struct {
	toks     []token
	pos      int
	line     int
	original string
}

func (p *tokenParser) fail() error {
	return &pcfgerr.MalformedTreeError{Line: p.line, Remnant: p.original}
}

// parseExpr parses either a parenthesised node `(LABEL child…)` or a
// bare atom leaf.
func (p *tokenParser) parseExpr() (*Tree, error) {
	if p.pos >= len(p.toks) {
		return nil, p.fail()
	}
	tk := p.toks[p.pos]
	if tk.kind == tokAtom {
		p.pos++
		return NewLeaf(tk.text), nil
	}
	if tk.kind != tokOpen {
		return nil, p.fail()
	}
	p.pos++ // consume '('

	if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokAtom {
		return nil, p.fail()
	}
	label := p.toks[p.pos].text
	p.pos++

	var children []*Tree
	for {
		if p.pos >= len(p.toks) {
			return nil, p.fail()
		}
		if p.toks[p.pos].kind == tokClose {
			p.pos++
			break
		}
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &Tree{Label: label, Children: children}, nil
}
