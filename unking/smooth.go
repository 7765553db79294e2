package unking

import (
	"strings"
	"unicode"

	"github.com/npillmayer/pcfgo/tree"
)

// Smooth replaces every leaf in rare with its shape signature (spec
// §6.7), threading sentence-initial status down the leftmost path of
// the tree so only the first leaf overall is treated as
// sentence-initial.
func Smooth(t *tree.Tree, rare map[string]bool) *tree.Tree {
	return smoothTree(t, rare, true)
}

func smoothTree(t *tree.Tree, rare map[string]bool, first bool) *tree.Tree {
	label := t.Label
	if t.IsLeaf() && rare[label] {
		label = smoothWord(label, first)
	}
	var children []*tree.Tree
	for _, c := range t.Children {
		children = append(children, smoothTree(c, rare, first))
		first = false
	}
	return tree.NewNode(label, children...)
}

func hasAny(word string, test func(rune) bool) bool {
	for _, r := range word {
		if test(r) {
			return true
		}
	}
	return false
}

func allRunes(word string, test func(rune) bool) bool {
	for _, r := range word {
		if !test(r) {
			return false
		}
	}
	return true
}

// smoothWord assembles the shape signature of spec §6.7, in order:
// letter class, number class, dash, period, comma, last-letter suffix.
func smoothWord(word string, first bool) string {
	if word == "" {
		return "UNK"
	}
	runes := []rune(word)
	firstChar := runes[0]

	var letter string
	switch {
	case unicode.IsUpper(firstChar) && !hasAny(word, unicode.IsLower):
		letter = "-AC"
	case unicode.IsUpper(firstChar):
		if first {
			letter = "-SC"
		} else {
			letter = "-C"
		}
	case hasAny(word, unicode.IsLower):
		letter = "-L"
	case hasAny(word, unicode.IsLetter):
		letter = "-U"
	default:
		letter = "-S"
	}

	var number string
	switch {
	case allRunes(word, unicode.IsDigit):
		number = "-N"
	case hasAny(word, unicode.IsDigit):
		number = "-n"
	}

	var dash string
	if strings.ContainsRune(word, '-') {
		dash = "-H"
	}

	var period string
	if strings.ContainsRune(word, '.') {
		period = "-P"
	}

	var comma string
	if strings.ContainsRune(word, ',') {
		comma = "-C"
	}

	var lastSuffix string
	last := runes[len(runes)-1]
	if len(runes) > 3 && unicode.IsLetter(last) {
		lastSuffix = "-" + string(unicode.ToLower(last))
	}

	return "UNK" + letter + number + dash + period + comma + lastSuffix
}
