package markov

import (
	"strings"

	"github.com/npillmayer/pcfgo/tree"
)

// Debinarise inverts Binarise for the label format of spec §6.6: it
// strips every `^<…>` and `|<…>` suffix and splices the children of
// any synthetic horizontal-binarisation node back into its parent.
// Only nodes whose label carries a `|<…>` suffix are recognised as
// synthetic: a node binarised with h == 1 has the bare parent label and
// is kept as an ordinary child, so such trees do not round-trip.
func Debinarise(t *tree.Tree) *tree.Tree {
	return debinariseTree(t)
}

// stripLabel removes a trailing `^<…>` suffix, then a trailing
// `|<…>` suffix, returning the bare original label.
func stripLabel(label string) string {
	if i := strings.IndexByte(label, '^'); i >= 0 {
		label = label[:i]
	}
	if i := strings.IndexByte(label, '|'); i >= 0 {
		label = label[:i]
	}
	return label
}

// syntheticBase reports whether label names a horizontal-binarisation
// node (its vertical-stripped form contains '|'), and if so returns the
// parent label it was squashed under.
func syntheticBase(label string) (string, bool) {
	withoutVertical := label
	if i := strings.IndexByte(label, '^'); i >= 0 {
		withoutVertical = label[:i]
	}
	i := strings.IndexByte(withoutVertical, '|')
	if i < 0 {
		return "", false
	}
	return label[:strings.IndexByte(label, '|')], true
}

func debinariseTree(t *tree.Tree) *tree.Tree {
	root := stripLabel(t.Label)
	out := &tree.Tree{Label: root}
	out.Children = spliceChildren(t.Children, root)
	return out
}

// spliceChildren debinarises each of children, but recursively inlines
// (rather than recursing into) any synthetic node whose base label
// equals root — the collapse step of spec §6.6.
func spliceChildren(children []*tree.Tree, root string) []*tree.Tree {
	var out []*tree.Tree
	for _, c := range children {
		if base, ok := syntheticBase(c.Label); ok && base == root {
			out = append(out, spliceChildren(c.Children, root)...)
		} else {
			out = append(out, debinariseTree(c))
		}
	}
	return out
}
