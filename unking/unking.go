// Package unking implements rare-word handling (spec §4.8, §6.7):
// literal UNK replacement and shape-based smoothing signatures for
// below-threshold terminals.
package unking

import "github.com/npillmayer/pcfgo/tree"

// CountWords tallies every leaf label across trees, once per
// occurrence (not once per distinct tree) — the basis for threshold
// decisions shared by both Unk and Smooth.
func CountWords(trees []*tree.Tree) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, t := range trees {
		countLeaf(t, counts)
	}
	return counts
}

func countLeaf(t *tree.Tree, counts map[string]uint64) {
	if t.IsLeaf() {
		counts[t.Label]++
		return
	}
	for _, c := range t.Children {
		countLeaf(c, counts)
	}
}

// RareWords returns the set of words whose corpus count is at or below
// threshold.
func RareWords(counts map[string]uint64, threshold uint64) map[string]bool {
	rare := make(map[string]bool)
	for word, count := range counts {
		if count <= threshold {
			rare[word] = true
		}
	}
	return rare
}

// Unk replaces every leaf whose label is in rare with the literal
// string "UNK".
func Unk(t *tree.Tree, rare map[string]bool) *tree.Tree {
	label := t.Label
	if t.IsLeaf() && rare[label] {
		label = "UNK"
	}
	var children []*tree.Tree
	for _, c := range t.Children {
		children = append(children, Unk(c, rare))
	}
	return tree.NewNode(label, children...)
}
