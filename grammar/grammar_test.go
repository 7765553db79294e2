package grammar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pcfgo/grammar"
	"github.com/npillmayer/pcfgo/pcfgerr"
	"github.com/npillmayer/pcfgo/symtab"
)

func scenarioGrammar(t *testing.T) (*grammar.Grammar, *symtab.Table) {
	t.Helper()
	tab := symtab.New()
	g := grammar.New(tab)
	rules := "ROOT -> W1 W2 0.25\nROOT -> W2 W2 0.75\nW1 -> W2 0.6\n"
	lexicon := "W1 R 0.2\nW2 S 1.0\nW1 T 0.2\n"
	require.NoError(t, g.LoadRules(strings.NewReader(rules), "rules"))
	require.NoError(t, g.LoadLexicon(strings.NewReader(lexicon), "lexicon"))
	return g, tab
}

func TestLoadRulesAndLexicon(t *testing.T) {
	g, tab := scenarioGrammar(t)
	root, ok := tab.Lookup("ROOT")
	require.True(t, ok)
	prods := g.Productions(root)
	require.Len(t, prods, 2)

	w1, ok := tab.Lookup("W1")
	require.True(t, ok)
	w1Prods := g.Productions(w1)
	require.Len(t, w1Prods, 3) // W1 -> W2, W1 -> R, W1 -> T
}

func TestAppearancesIndexesEveryRhsSymbol(t *testing.T) {
	g, tab := scenarioGrammar(t)
	w2, ok := tab.Lookup("W2")
	require.True(t, ok)
	apps := g.Appearances(w2)
	// W2 appears in: ROOT->W1 W2, ROOT->W2 W2 (recorded once, although both
	// rhs slots are W2), and W1->W2.
	assert.NotEmpty(t, apps)
	for _, r := range apps {
		found := r.Rhs.Left == w2 || (r.Rhs.IsBinary() && r.Rhs.Right == w2)
		assert.True(t, found)
	}
}

func TestDuplicateRuleLastWriterWins(t *testing.T) {
	tab := symtab.New()
	g := grammar.New(tab)
	rules := "ROOT -> W1 W2 0.25\nROOT -> W1 W2 0.9\n"
	require.NoError(t, g.LoadRules(strings.NewReader(rules), "rules"))
	root, _ := tab.Lookup("ROOT")
	prods := g.Productions(root)
	require.Len(t, prods, 1)
	assert.Equal(t, 0.9, prods[0].Weight)
}

func TestEnsureSymbolAllowsEmptyAppearances(t *testing.T) {
	tab := symtab.New()
	g := grammar.New(tab)
	start := tab.Insert("ROOT")
	g.EnsureSymbol(start)
	assert.NotNil(t, g.Appearances(start))
	assert.Len(t, g.Appearances(start), 0)
}

func TestMalformedRuleWrongArity(t *testing.T) {
	tab := symtab.New()
	g := grammar.New(tab)
	err := g.LoadRules(strings.NewReader("ROOT -> A B C 0.5\n"), "rules")
	require.Error(t, err)
	var unb *pcfgerr.UnbinarisedRuleError
	assert.ErrorAs(t, err, &unb)
	assert.Equal(t, 1, unb.ExitCode())
}

func TestMalformedRuleBadArrow(t *testing.T) {
	tab := symtab.New()
	g := grammar.New(tab)
	err := g.LoadRules(strings.NewReader("ROOT => A 0.5\n"), "rules")
	require.Error(t, err)
	var malformed *pcfgerr.MalformedRuleError
	assert.ErrorAs(t, err, &malformed)
}

func TestIsTerminalDistinguishesLexiconWordsFromNonTerminals(t *testing.T) {
	g, tab := scenarioGrammar(t)
	r, _ := tab.Lookup("R")
	w2, _ := tab.Lookup("W2")
	assert.True(t, g.IsTerminal(r))
	assert.False(t, g.IsTerminal(w2))
}

func TestLhsSymbolsFirstSeenOrder(t *testing.T) {
	g, tab := scenarioGrammar(t)
	root, _ := tab.Lookup("ROOT")
	w1, _ := tab.Lookup("W1")
	order := g.LhsSymbols()
	require.Len(t, order, 3) // ROOT, W1, then W2 from the lexicon
	assert.Equal(t, root, order[0])
	assert.Equal(t, w1, order[1])
}

func TestMalformedLexiconWrongFieldCount(t *testing.T) {
	tab := symtab.New()
	g := grammar.New(tab)
	err := g.LoadLexicon(strings.NewReader("W1 R S 0.5\n"), "lexicon")
	require.Error(t, err)
	var malformed *pcfgerr.MalformedLexiconError
	assert.ErrorAs(t, err, &malformed)
}
