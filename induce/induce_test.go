package induce_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pcfgo/induce"
	"github.com/npillmayer/pcfgo/tree"
)

func TestInduceRelativeFrequency(t *testing.T) {
	// ROOT -> A A twice, ROOT -> A B once: ROOT->A A should get weight 2/3.
	trees := []string{
		"(ROOT (A a) (A a))",
		"(ROOT (A a) (A a))",
		"(ROOT (A a) (B b))",
	}
	in := induce.New()
	for _, s := range trees {
		tr, err := tree.ParseLine(s)
		require.NoError(t, err)
		require.NoError(t, in.Add(tr))
	}

	var rules strings.Builder
	require.NoError(t, in.WriteRules(&rules))
	out := rules.String()
	assert.Contains(t, out, "ROOT -> A A 0.6666666666666666\n")
	assert.Contains(t, out, "ROOT -> A B 0.3333333333333333\n")

	var lexicon strings.Builder
	require.NoError(t, in.WriteLexicon(&lexicon))
	lex := lexicon.String()
	assert.Contains(t, lex, "A a 1\n")
	assert.Contains(t, lex, "B b 1\n")

	var words strings.Builder
	require.NoError(t, in.WriteWords(&words))
	assert.Equal(t, "a\nb\n", words.String())
}

func TestInduceRejectsArityAboveTwo(t *testing.T) {
	tr, err := tree.ParseLine("(ROOT (A a) (B b) (C c))")
	require.NoError(t, err)
	in := induce.New()
	err = in.Add(tr)
	assert.Error(t, err)
}

func TestInduceUnaryChainRule(t *testing.T) {
	tr, err := tree.ParseLine("(ROOT (W1 (W2 s)))")
	require.NoError(t, err)
	in := induce.New()
	require.NoError(t, in.Add(tr))

	var rules strings.Builder
	require.NoError(t, in.WriteRules(&rules))
	assert.Contains(t, rules.String(), "ROOT -> W1 1\n")

	var lexicon strings.Builder
	require.NoError(t, in.WriteLexicon(&lexicon))
	assert.Contains(t, lexicon.String(), "W2 s 1\n")
}
