package fsa_test

import (
	"errors"
	"testing"

	"github.com/jt05610/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dfa(t *testing.T) *fsa.Automaton {
	t.Helper()
	a, err := fsa.NewBuilder("dfa").WithTransitions(
		fsa.NewTransition("q0", 'a', "q1"),
		fsa.NewTransition("q1", 'b', "f2"),
		fsa.NewTransition("f2", 'b', "f2"),
		fsa.NewTransition("f2", 'a', "q1"),
	).Build()
	require.NoError(t, err)
	return a
}

func TestRun(t *testing.T) {
	a := dfa(t)
	cases := []struct {
		input   string
		verdict fsa.Verdict
		state   fsa.State
	}{
		{"ab", fsa.Accepted, "f2"},
		{"abbb", fsa.Accepted, "f2"},
		{"aba", fsa.Rejected, "q1"},
		{"", fsa.Rejected, "q0"},
		{"b", fsa.Stuck, "q0"},
		{"aa", fsa.Stuck, "q1"},
		{"abz", fsa.Stuck, "f2"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			res, err := fsa.Run(a, c.input)
			require.NoError(t, err)
			assert.Equal(t, c.verdict, res.Verdict)
			assert.Equal(t, c.state, res.State)
		})
	}
}

func TestRun_EmptyInputOnFinalInitial(t *testing.T) {
	a, err := fsa.NewBuilder("f").WithInitial("f0").WithTransitions(fsa.NewTransition("f0", 'a', "q1")).Build()
	require.NoError(t, err)
	res, err := fsa.Run(a, "")
	require.NoError(t, err)
	assert.Equal(t, fsa.Accepted, res.Verdict)
	assert.Empty(t, res.Steps)
}

func TestRun_NotDeterministic(t *testing.T) {
	_, err := fsa.Run(nfa(t), "ab")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fsa.ErrNotDeterministic))
	var nd *fsa.NotDeterministicError
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, fsa.Key{State: "q0", Symbol: 'a'}, nd.Key)
	assert.Equal(t, fsa.NewStateSet("q1", "f1"), nd.To)

	_, err = nfa(t).Accepts("ab")
	assert.ErrorIs(t, err, fsa.ErrNotDeterministic)
}

func TestSimulator_OnStep(t *testing.T) {
	var steps []fsa.Step
	s := &fsa.Simulator{OnStep: func(st fsa.Step) { steps = append(steps, st) }}
	res, err := s.Run(dfa(t), "abb")
	require.NoError(t, err)
	assert.True(t, res.Accepted())
	assert.Equal(t, []fsa.Step{
		{From: "q0", Symbol: 'a', To: "q1"},
		{From: "q1", Symbol: 'b', To: "f2"},
		{From: "f2", Symbol: 'b', To: "f2"},
	}, steps)
	assert.Equal(t, steps, res.Steps)
}

func TestResult_String(t *testing.T) {
	res, err := fsa.Run(dfa(t), "b")
	require.NoError(t, err)
	assert.Equal(t, `"b" stuck: no transition from q0 on 'b'`, res.String())
	res, err = fsa.Run(dfa(t), "ab")
	require.NoError(t, err)
	assert.Equal(t, `"ab" accepted in f2`, res.String())
}

func TestRun_ZeroAutomaton(t *testing.T) {
	_, err := fsa.Run(&fsa.Automaton{}, "a")
	assert.ErrorIs(t, err, fsa.ErrNoInitialState)
	_, err = (&fsa.Automaton{Name: "zero"}).Accepts("")
	assert.ErrorIs(t, err, fsa.ErrNoInitialState)
	_, err = (&fsa.Constructor{}).Construct(&fsa.Automaton{})
	assert.ErrorIs(t, err, fsa.ErrNoInitialState)
}
