package analysis_test

import (
	"testing"

	"github.com/jt05610/fsa"
	"github.com/jt05610/fsa/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, tt ...*fsa.Transition) *fsa.Automaton {
	t.Helper()
	a, err := fsa.NewBuilder("test").WithInitial("q0").WithTransitions(tt...).Build()
	require.NoError(t, err)
	return a
}

func TestAutomaton_Reachability(t *testing.T) {
	a := analysis.New(build(t,
		fsa.NewTransition("q0", 'a', "q1"),
		fsa.NewTransition("q1", 'b', "f2"),
		fsa.NewTransition("q1", 'a', "q3"),
		fsa.NewTransition("q3", 'a', "q3"),
		fsa.NewTransition("q4", 'a', "f2"),
	))
	assert.Equal(t, []fsa.State{"q0", "q1", "f2", "q3"}, a.Reachable())
	assert.Equal(t, []fsa.State{"q4"}, a.Unreachable())
	assert.Equal(t, []fsa.State{"q3"}, a.Dead())

	s := a.Summary()
	assert.Equal(t, 5, s.States)
	assert.Equal(t, 1, s.Final)
	assert.Equal(t, 2, s.Alphabet)
}

func TestAutomaton_Adjacency(t *testing.T) {
	a := analysis.New(build(t,
		fsa.NewTransition("q0", 'a', "q1"),
		fsa.NewTransition("q0", 'b', "q1"),
	))
	assert.Equal(t, 2.0, a.Transfer().At(0, 1))
	assert.Equal(t, 1.0, a.Adjacency().At(0, 1))
	assert.Equal(t, 0.0, a.Adjacency().At(1, 0))
}

// countByOracle enumerates every word of length n over alphabet.
func countByOracle(t *testing.T, a *fsa.Automaton, alphabet []rune, n int) float64 {
	t.Helper()
	words := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range words {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		words = next
	}
	count := 0.0
	for _, w := range words {
		ok, err := a.Accepts(w)
		require.NoError(t, err)
		if ok {
			count++
		}
	}
	return count
}

func TestAutomaton_CountAccepted(t *testing.T) {
	src := build(t,
		fsa.NewTransition("q0", 'a', "q0"),
		fsa.NewTransition("q0", 'b', "q0"),
		fsa.NewTransition("q0", 'a', "q1"),
		fsa.NewTransition("q1", 'a', "f2"),
		fsa.NewTransition("q1", 'b', "f2"),
	)
	_, err := analysis.New(src).CountAccepted(2)
	assert.ErrorIs(t, err, fsa.ErrNotDeterministic)

	d, _, err := fsa.Determinize(src)
	require.NoError(t, err)
	a := analysis.New(d)
	for n := 0; n <= 6; n++ {
		got, err := a.CountAccepted(n)
		require.NoError(t, err)
		assert.Equal(t, countByOracle(t, d, src.Alphabet(), n), got, "length %d", n)
	}
	// second to last symbol is a: half of all words of length >= 2
	got, err := a.CountAccepted(5)
	require.NoError(t, err)
	assert.Equal(t, 16.0, got)
}
