package markov_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pcfgo/markov"
	"github.com/npillmayer/pcfgo/tree"
)

func TestBinariseMatchesWorkedExample(t *testing.T) {
	in, err := tree.ParseLine("(ROOT (FRAG (RB Not) (NP-TMP (DT this) (NN year)) (. .)))")
	require.NoError(t, err)

	got := markov.Binarise(in, 999, 3)
	want := "(ROOT (FRAG^<ROOT> (RB Not) (FRAG|<NP-TMP,.>^<ROOT> (NP-TMP^<FRAG,ROOT> (DT this) (NN year)) (. .))))"
	assert.Equal(t, want, got.String())
}

// S5 — binarise/debinarise round trip.
func TestScenarioS5RoundTrip(t *testing.T) {
	const original = "(ROOT (FRAG (RB Not) (NP-TMP (DT this) (NN year)) (. .)))"
	in, err := tree.ParseLine(original)
	require.NoError(t, err)

	binarised := markov.Binarise(in, 999, 3)
	back := markov.Debinarise(binarised)
	assert.Equal(t, original, back.String())
}

func TestBinariseHorizontalOneKeepsBareParentLabel(t *testing.T) {
	in, err := tree.ParseLine("(ROOT (FRAG (RB Not) (NP-TMP (DT this) (NN year)) (. .)))")
	require.NoError(t, err)
	got := markov.Binarise(in, 1, 1)
	// with v=1 no vertical suffixes appear at all; synthetic node keeps
	// the bare parent label with h=1.
	assert.Contains(t, got.String(), "(FRAG (RB Not) (FRAG (NP-TMP")
}
