package outside_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pcfgo/grammar"
	"github.com/npillmayer/pcfgo/outside"
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

// S4 — outside table.
func TestScenarioS4OutsideTable(t *testing.T) {
	g, tab := scenarioGrammar(t)
	root, _ := tab.Lookup("ROOT")
	w2, _ := tab.Lookup("W2")

	tbl := outside.Compute(g, root)
	assert.Equal(t, 1.0, tbl.Outside(root))
	assert.GreaterOrEqual(t, tbl.Outside(w2), tbl.Outside(root)*0.75*tbl.Inside(w2))
}

func TestInsideSeedsFromLexicon(t *testing.T) {
	g, tab := scenarioGrammar(t)
	w2, _ := tab.Lookup("W2")
	w1, _ := tab.Lookup("W1")

	tbl := outside.Compute(g, w1)
	assert.Equal(t, 1.0, tbl.Inside(w2)) // W2 -> S 1.0
	// W1 -> R 0.2, W1 -> T 0.2, W1 -> W2 0.6*inside(W2)=0.6 -> max is 0.6
	assert.Equal(t, 0.6, tbl.Inside(w1))
}

func TestOutsideSidecarRoundTrips(t *testing.T) {
	g, tab := scenarioGrammar(t)
	root, _ := tab.Lookup("ROOT")
	tbl := outside.Compute(g, root)

	var buf strings.Builder
	require.NoError(t, tbl.WriteTo(&buf, tab, "outside"))

	reloaded, err := outside.ReadFrom(strings.NewReader(buf.String()), tab, "outside")
	require.NoError(t, err)
	assert.Equal(t, tbl.Outside(root), reloaded.Outside(root))
}

func TestMalformedOutsideLine(t *testing.T) {
	tab := symtab.New()
	_, err := outside.ReadFrom(strings.NewReader("ROOT not-a-float\n"), tab, "outside")
	require.Error(t, err)
}
