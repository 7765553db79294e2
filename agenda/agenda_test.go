package agenda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pcfgo"
	"github.com/npillmayer/pcfgo/agenda"
	"github.com/npillmayer/pcfgo/chart"
)

func alwaysViable(chart.Consequence) bool { return true }

func TestPopReturnsHighestKeyFirst(t *testing.T) {
	a := agenda.New()
	a.Push(chart.Consequence{Sym: 0, Span: pcfgo.NewSpan(0, 1), Weight: 0.2}, 0.2)
	a.Push(chart.Consequence{Sym: 1, Span: pcfgo.NewSpan(0, 1), Weight: 0.9}, 0.9)
	a.Push(chart.Consequence{Sym: 2, Span: pcfgo.NewSpan(0, 1), Weight: 0.5}, 0.5)

	c, ok := a.Pop(alwaysViable)
	require.True(t, ok)
	assert.Equal(t, int32(1), c.Sym)

	c, ok = a.Pop(alwaysViable)
	require.True(t, ok)
	assert.Equal(t, int32(2), c.Sym)

	c, ok = a.Pop(alwaysViable)
	require.True(t, ok)
	assert.Equal(t, int32(0), c.Sym)

	_, ok = a.Pop(alwaysViable)
	assert.False(t, ok)
}

func TestPushDedupesByCellRetainingMaxWeight(t *testing.T) {
	a := agenda.New()
	span := pcfgo.NewSpan(0, 1)
	a.Push(chart.Consequence{Sym: 0, Span: span, Weight: 0.2}, 0.2)
	a.Push(chart.Consequence{Sym: 0, Span: span, Weight: 0.8}, 0.8)
	a.Push(chart.Consequence{Sym: 0, Span: span, Weight: 0.1}, 0.1) // ignored, lighter

	c, ok := a.Pop(alwaysViable)
	require.True(t, ok)
	assert.Equal(t, 0.8, c.Weight)

	_, ok = a.Pop(alwaysViable)
	assert.False(t, ok, "the superseded lighter pushes must not resurface")
}

func TestPopSkipsNonViableCandidates(t *testing.T) {
	a := agenda.New()
	a.Push(chart.Consequence{Sym: 0, Span: pcfgo.NewSpan(0, 1), Weight: 0.9}, 0.9)
	a.Push(chart.Consequence{Sym: 1, Span: pcfgo.NewSpan(0, 1), Weight: 0.5}, 0.5)

	committed := map[int32]bool{0: true}
	viable := func(c chart.Consequence) bool { return !committed[c.Sym] }

	c, ok := a.Pop(viable)
	require.True(t, ok)
	assert.Equal(t, int32(1), c.Sym)
}
