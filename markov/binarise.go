// Package markov implements tree binarisation and its inverse (spec
// §4.8, §6.6): horizontal/vertical Markovization windows (h, v)
// collapse arbitrary branching into at most binary branching, encoding
// the elided context into synthetic node labels.
package markov

import (
	"strings"

	"github.com/npillmayer/pcfgo/tree"
)

// Binarise produces a tree with at most binary branching from t, using
// horizontal window h and vertical window v (spec §6.6). Pre-terminal
// labels are kept verbatim.
func Binarise(t *tree.Tree, h, v int) *tree.Tree {
	return binariseTree(t, h, v, nil, true)
}

// isPreterminal reports whether t has exactly one child and that
// child is a leaf — the pattern `(TAG token)`.
func isPreterminal(t *tree.Tree) bool {
	return len(t.Children) == 1 && t.Children[0].IsLeaf()
}

// binariseTree mirrors the source binariser statement for statement:
// parents accumulates the chain of ancestor labels (oldest first);
// original distinguishes a genuine tree node (which pushes its own
// label onto parents and may add a vertical suffix using the full
// chain) from a synthetic horizontal-binarisation node introduced by
// squashChildren (which must not double-count itself).
func binariseTree(t *tree.Tree, h, v int, parents []string, original bool) *tree.Tree {
	root := t.Label
	if isPreterminal(t) {
		return tree.NewNode(root, tree.NewLeaf(t.Children[0].Label))
	}

	newRoot := root
	if original {
		newRoot += verticalSuffix(parents, v)
	} else {
		newRoot += verticalSuffix(parents[:len(parents)-1], v)
	}

	newParents := append([]string{}, parents...)
	if original {
		newParents = append(newParents, root)
	}

	var children []*tree.Tree
	if len(t.Children) > 2 {
		first := t.Children[0]
		remaining := t.Children[1:]
		children = append(children, binariseTree(first, h, v, newParents, true))
		children = append(children, squashChildren(remaining, h, v, newParents))
	} else {
		for _, c := range t.Children {
			children = append(children, binariseTree(c, h, v, newParents, true))
		}
	}
	return tree.NewNode(newRoot, children...)
}

// squashChildren bundles children (more than a binary node can hold)
// under one synthetic node remembering up to h rightmost sibling
// labels, then re-enters binariseTree to binarise further if more than
// two remain.
func squashChildren(children []*tree.Tree, h, v int, parents []string) *tree.Tree {
	start := len(children) - h
	if start < 0 {
		start = 0
	}
	parentLabel := parents[len(parents)-1]

	siblings := make([]string, 0, len(children)-start)
	for _, c := range children[start:] {
		siblings = append(siblings, c.Label)
	}
	synthetic := parentLabel + "|<" + strings.Join(siblings, ",") + ">"

	label := synthetic
	if h == 1 {
		label = parentLabel
	}
	node := tree.NewNode(label, children...)
	return binariseTree(node, h, v, parents, false)
}

// verticalSuffix renders `^<P1,...,Pv>` for the nearest v entries of
// parents (oldest-first), nearest ancestor first. Returns "" when
// there is no ancestor context to record or v == 1.
func verticalSuffix(parents []string, v int) string {
	if len(parents) == 0 || v == 1 {
		return ""
	}
	start := len(parents) - v
	if start < 0 {
		start = 0
	}
	window := parents[start:]
	rev := make([]string, len(window))
	for i, p := range window {
		rev[len(window)-1-i] = p
	}
	return "^<" + strings.Join(rev, ",") + ">"
}
