package tree_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pcfgo/tree"
)

// S2 — best-parse tree shape.
func TestParseLineScenarioS2Tree(t *testing.T) {
	tr, err := tree.ParseLine("(ROOT (W1 T) (W2 S))")
	require.NoError(t, err)
	assert.Equal(t, "ROOT", tr.Label)
	require.Len(t, tr.Children, 2)
	assert.Equal(t, "W1", tr.Children[0].Label)
	assert.Equal(t, "T", tr.Children[0].Children[0].Label)
	assert.Equal(t, []string{"T", "S"}, tr.Yield())
}

func TestStringRoundTrips(t *testing.T) {
	const s = "(ROOT (W1 T) (W2 S))"
	tr, err := tree.ParseLine(s)
	require.NoError(t, err)
	assert.Equal(t, s, tr.String())
}

func TestParseLineDeepTree(t *testing.T) {
	const s = "(ROOT (FRAG (RB Not) (NP-TMP (DT this) (NN year)) (. .)))"
	tr, err := tree.ParseLine(s)
	require.NoError(t, err)
	assert.Equal(t, s, tr.String())
	assert.Equal(t, []string{"Not", "this", "year", "."}, tr.Yield())
}

func TestParseLineMalformedUnbalancedParens(t *testing.T) {
	_, err := tree.ParseLine("(ROOT (W1 T)")
	assert.Error(t, err)
}

func TestReaderReadsMultipleLines(t *testing.T) {
	r := tree.NewReader(strings.NewReader("(A a)\n(B b)\n"))
	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", first.Label)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "B", second.Label)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
