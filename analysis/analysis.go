// Package analysis answers structural questions about automata with
// adjacency and transfer matrices.
package analysis

import (
	"fmt"

	"github.com/jt05610/fsa"
	"gonum.org/v1/gonum/mat"
)

type Automaton struct {
	*fsa.Automaton
	states []fsa.State
	index  map[fsa.State]int
}

func New(a *fsa.Automaton) *Automaton {
	states := a.States()
	index := make(map[fsa.State]int, len(states))
	for i, s := range states {
		index[s] = i
	}
	return &Automaton{
		Automaton: a,
		states:    states,
		index:     index,
	}
}

// Transfer counts, for every pair of states, the symbols leading from the
// first to the second.
func (a *Automaton) Transfer() *mat.Dense {
	n := len(a.states)
	m := mat.NewDense(n, n, nil)
	for _, t := range a.Transitions() {
		i, j := a.index[t.From], a.index[t.To]
		m.Set(i, j, m.At(i, j)+1)
	}
	return m
}

// Adjacency has a 1 wherever Transfer is non-zero.
func (a *Automaton) Adjacency() *mat.Dense {
	m := a.Transfer()
	m.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	}, m)
	return m
}

// closure grows seed along m until it stops changing.
func closure(m mat.Matrix, seed *mat.VecDense) *mat.VecDense {
	n := seed.Len()
	cur := mat.VecDenseCopyOf(seed)
	for {
		var next mat.VecDense
		next.MulVec(m, cur)
		next.AddVec(&next, cur)
		changed := false
		for i := 0; i < n; i++ {
			v := 0.0
			if next.AtVec(i) > 0 {
				v = 1
			}
			if v != cur.AtVec(i) {
				changed = true
			}
			next.SetVec(i, v)
		}
		if !changed {
			return cur
		}
		cur = &next
	}
}

func (a *Automaton) pick(v *mat.VecDense, want bool) []fsa.State {
	var out []fsa.State
	for i, s := range a.states {
		if (v.AtVec(i) > 0) == want {
			out = append(out, s)
		}
	}
	return out
}

func (a *Automaton) reachVector() *mat.VecDense {
	seed := mat.NewVecDense(len(a.states), nil)
	seed.SetVec(a.index[a.Initial()], 1)
	return closure(a.Adjacency().T(), seed)
}

func (a *Automaton) finalVector() *mat.VecDense {
	v := mat.NewVecDense(len(a.states), nil)
	for _, f := range a.Final() {
		v.SetVec(a.index[f], 1)
	}
	return v
}

// Reachable returns the states reachable from the initial state.
func (a *Automaton) Reachable() []fsa.State {
	return a.pick(a.reachVector(), true)
}

func (a *Automaton) Unreachable() []fsa.State {
	return a.pick(a.reachVector(), false)
}

// Dead returns the states from which no final state can be reached.
func (a *Automaton) Dead() []fsa.State {
	live := closure(a.Adjacency(), a.finalVector())
	return a.pick(live, false)
}

// CountAccepted returns the number of accepted words of length n. The
// automaton must be deterministic, since otherwise paths rather than words
// would be counted.
func (a *Automaton) CountAccepted(n int) (float64, error) {
	if !a.IsDeterministic() {
		return 0, fmt.Errorf("count accepted words: %w", fsa.ErrNotDeterministic)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative word length %d", n)
	}
	var p mat.Dense
	p.Pow(a.Transfer(), n)
	row := p.RowView(a.index[a.Initial()])
	return mat.Dot(row, a.finalVector()), nil
}

type Summary struct {
	States      int
	Final       int
	Alphabet    int
	Reachable   []fsa.State
	Unreachable []fsa.State
	Dead        []fsa.State
}

func (a *Automaton) Summary() *Summary {
	return &Summary{
		States:      len(a.states),
		Final:       len(a.Final()),
		Alphabet:    len(a.Alphabet()),
		Reachable:   a.Reachable(),
		Unreachable: a.Unreachable(),
		Dead:        a.Dead(),
	}
}
