package fsa_test

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/jt05610/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// acceptsAnyPath is a brute-force oracle: it tries every path of a through
// input.
func acceptsAnyPath(a *fsa.Automaton, s fsa.State, input []rune) bool {
	if len(input) == 0 {
		return a.IsFinal(s)
	}
	for _, to := range a.Lookup(s, input[0]) {
		if acceptsAnyPath(a, to, input[1:]) {
			return true
		}
	}
	return false
}

func words(alphabet string, maxLen int) []string {
	out := []string{""}
	prev := []string{""}
	for n := 1; n <= maxLen; n++ {
		var next []string
		for _, w := range prev {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		prev = next
	}
	return out
}

func randomAutomaton(t *testing.T, rng *rand.Rand) *fsa.Automaton {
	t.Helper()
	n := 1 + rng.Intn(6)
	states := make([]fsa.State, n)
	for i := range states {
		kind := fsa.Normal
		if rng.Intn(3) == 0 {
			kind = fsa.Final
		}
		states[i] = fsa.NewState(kind, i)
	}
	b := fsa.NewBuilder("random").WithInitial(states[0])
	for _, s := range states {
		for _, sym := range "ab" {
			for k := rng.Intn(4); k > 0; k-- {
				b.WithTransitions(fsa.NewTransition(s, sym, states[rng.Intn(n)]))
			}
		}
	}
	a, err := b.Build()
	require.NoError(t, err)
	return a
}

func requireDeterministic(t *testing.T, d *fsa.Automaton) {
	t.Helper()
	require.True(t, d.IsDeterministic())
	for _, tr := range d.Transitions() {
		require.Len(t, d.Lookup(tr.From, tr.Symbol), 1, "key (%s, %c)", tr.From, tr.Symbol)
	}
}

func TestDeterminize_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inputs := words("abc", 6)
	for i := 0; i < 200; i++ {
		a := randomAutomaton(t, rng)
		d, _, err := fsa.Determinize(a)
		require.NoError(t, err)
		requireDeterministic(t, d)
		for _, w := range inputs {
			got, err := d.Accepts(w)
			require.NoError(t, err)
			want := acceptsAnyPath(a, a.Initial(), []rune(w))
			require.Equal(t, want, got, "automaton %d input %q\n%s", i, w, a.Listing())
		}
	}
}

func TestDeterminize_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	inputs := words("ab", 5)
	for i := 0; i < 50; i++ {
		a := randomAutomaton(t, rng)
		d1, _, err := fsa.Determinize(a)
		require.NoError(t, err)
		d2, listing, err := fsa.Determinize(d1)
		require.NoError(t, err)
		assert.Equal(t, d1.Listing(), listing, "a second pass keeps the names")
		for _, w := range inputs {
			r1, err := fsa.Run(d1, w)
			require.NoError(t, err)
			r2, err := fsa.Run(d2, w)
			require.NoError(t, err)
			require.Equal(t, r1.Accepted(), r2.Accepted(), "input %q", w)
		}
	}
}

func TestDeterminize_AlreadyDeterministic(t *testing.T) {
	a, err := fsa.NewBuilder("dfa").WithTransitions(
		fsa.NewTransition("q0", 'a', "q1"),
		fsa.NewTransition("q1", 'b', "f2"),
		fsa.NewTransition("f2", 'a', "q0"),
	).Build()
	require.NoError(t, err)
	d, _, err := fsa.Determinize(a)
	require.NoError(t, err)
	for _, w := range words("ab", 6) {
		want, err := a.Accepts(w)
		require.NoError(t, err)
		got, err := d.Accepts(w)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", w)
	}
}

func TestDeterminize_Scenario(t *testing.T) {
	a := nfa(t)
	d, listing, err := fsa.Determinize(a)
	require.NoError(t, err)
	assert.Equal(t, "q0,a=f1\nf1,b=f2\n", listing)
	assert.Equal(t, fsa.State("q0"), d.Initial())
	assert.Equal(t, []fsa.State{"f1", "f2"}, d.Final())

	set, ok := d.StateSetOf("f1")
	require.True(t, ok)
	assert.Equal(t, fsa.NewStateSet("q1", "f1"), set)

	res, err := fsa.Run(d, "ab")
	require.NoError(t, err)
	assert.Equal(t, fsa.Accepted, res.Verdict)

	res, err = fsa.Run(d, "b")
	require.NoError(t, err)
	assert.Equal(t, fsa.Stuck, res.Verdict)
	assert.Equal(t, fsa.State("q0"), res.State)
	assert.Equal(t, 'b', res.Symbol)
}

func TestDeterminize_FinalInitial(t *testing.T) {
	a, err := fsa.NewBuilder("loop").WithInitial("f0").WithTransitions(
		fsa.NewTransition("f0", 'a', "f0"),
		fsa.NewTransition("f0", 'a', "q1"),
	).Build()
	require.NoError(t, err)
	d, _, err := fsa.Determinize(a)
	require.NoError(t, err)
	assert.Equal(t, fsa.State("f0"), d.Initial())
	ok, err := d.Accepts("")
	require.NoError(t, err)
	assert.True(t, ok)
}

// nthFromLast accepts words over {a, b} whose n-th symbol from the end is a.
// Its deterministic form has 2^n states.
func nthFromLast(t *testing.T, n int) *fsa.Automaton {
	t.Helper()
	b := fsa.NewBuilder(fmt.Sprintf("last%d", n)).WithInitial("q0").WithTransitions(
		fsa.NewTransition("q0", 'a', "q0"),
		fsa.NewTransition("q0", 'b', "q0"),
		fsa.NewTransition("q0", 'a', "q1"),
	)
	for i := 1; i < n; i++ {
		to := fsa.NewState(fsa.Normal, i+1)
		if i == n-1 {
			to = fsa.NewState(fsa.Final, i+1)
		}
		from := fsa.NewState(fsa.Normal, i)
		b.WithTransitions(fsa.NewTransition(from, 'a', to), fsa.NewTransition(from, 'b', to))
	}
	a, err := b.Build()
	require.NoError(t, err)
	return a
}

func TestConstructor_Limit(t *testing.T) {
	a := nthFromLast(t, 8)
	before := a.Listing()

	c := &fsa.Constructor{Limit: 100}
	_, err := c.Construct(a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fsa.ErrAutomatonTooLarge))
	var tooLarge *fsa.TooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 100, tooLarge.Limit)
	assert.Equal(t, before, a.Listing())
	assert.False(t, a.IsDeterministic())

	c.Limit = 256
	d, err := c.Construct(a)
	require.NoError(t, err)
	assert.Len(t, d.States(), 256)
}

func TestConstructor_Parallel(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sources := make([]*fsa.Automaton, 16)
	want := make([]string, len(sources))
	for i := range sources {
		sources[i] = randomAutomaton(t, rng)
		d, listing, err := fsa.Determinize(sources[i])
		require.NoError(t, err)
		require.True(t, d.IsDeterministic())
		want[i] = listing
	}
	c := &fsa.Constructor{}
	got := make([]string, len(sources))
	errs := make([]error, len(sources))
	var wg sync.WaitGroup
	for i := range sources {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := c.Construct(sources[i])
			if err != nil {
				errs[i] = err
				return
			}
			got[i] = d.Listing()
		}(i)
	}
	wg.Wait()
	for i := range sources {
		require.NoError(t, errs[i])
		assert.Equal(t, want[i], got[i], "automaton %d", i)
	}
}
