// Package fsa builds finite automata from transition records, turns
// nondeterministic automata into deterministic ones by subset construction and
// simulates deterministic automata over input strings.
package fsa

import (
	"fmt"

	"github.com/google/uuid"
)

// Automaton is an initial state, a state set, a final-state subset and a
// transition table. It is immutable once built. Automata come from a Builder
// or a Constructor; a zero Automaton has no initial state.
type Automaton struct {
	ID   string
	Name string

	initial       State
	states        map[State]struct{}
	final         map[State]bool
	table         *Table
	deterministic bool
	origin        map[State]StateSet
}

func ID() string {
	return uuid.New().String()
}

func (a *Automaton) Initial() State { return a.initial }

func (a *Automaton) built() bool {
	return a != nil && a.table != nil && a.initial != ""
}

func (a *Automaton) States() []State { return stateSetOf(a.states) }

func (a *Automaton) Final() []State {
	final := make(map[State]struct{}, len(a.final))
	for s := range a.final {
		final[s] = struct{}{}
	}
	return stateSetOf(final)
}

func (a *Automaton) IsFinal(s State) bool { return a.final[s] }

func (a *Automaton) IsDeterministic() bool { return a.deterministic }

func (a *Automaton) Alphabet() []rune { return a.table.Alphabet() }

func (a *Automaton) Lookup(s State, symbol rune) StateSet { return a.table.Lookup(s, symbol) }

func (a *Automaton) Transitions() []*Transition { return a.table.Transitions() }

// Nondeterminism lists the keys that lead to more than one state.
func (a *Automaton) Nondeterminism() []Key { return a.table.Nondeterminism() }

func (a *Automaton) Listing() string { return a.table.Listing() }

// StateSetOf returns the source states a state of a determinized automaton
// stands for.
func (a *Automaton) StateSetOf(s State) (StateSet, bool) {
	set, ok := a.origin[s]
	return set, ok
}

func (a *Automaton) String() string {
	return fmt.Sprintf("%s (%d states, %d keys, initial %s)", a.Name, len(a.states), a.table.Len(), a.initial)
}

// Builder collects transition records and produces an Automaton.
type Builder struct {
	name        string
	initial     State
	final       []State
	transitions []*Transition
}

func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// WithInitial overrides the default initial state, which is the first
// normal-tagged state encountered in the transitions.
func (b *Builder) WithInitial(s State) *Builder {
	b.initial = s
	return b
}

// WithFinal declares final states in addition to the f-tagged ones.
func (b *Builder) WithFinal(states ...State) *Builder {
	b.final = append(b.final, states...)
	return b
}

func (b *Builder) WithTransitions(tt ...*Transition) *Builder {
	b.transitions = append(b.transitions, tt...)
	return b
}

func (b *Builder) defaultInitial() State {
	for _, t := range b.transitions {
		if t.From.Kind() == Normal {
			return t.From
		}
		if t.To.Kind() == Normal {
			return t.To
		}
	}
	if len(b.transitions) > 0 {
		return b.transitions[0].From
	}
	return ""
}

func (b *Builder) Build() (*Automaton, error) {
	table := NewTable()
	for _, t := range b.transitions {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("transition %s: %w", t, err)
		}
		table.Add(t.From, t.Symbol, t.To)
	}
	initial := b.initial
	if initial == "" {
		initial = b.defaultInitial()
	}
	if initial == "" {
		return nil, ErrNoInitialState
	}
	if !initial.Valid() {
		return nil, fmt.Errorf("initial state: %w: %q", ErrInvalidState, initial)
	}
	table.addState(initial)
	for _, s := range b.final {
		if !s.Valid() {
			return nil, fmt.Errorf("final state: %w: %q", ErrInvalidState, s)
		}
		table.addState(s)
	}
	a := &Automaton{
		ID:            ID(),
		Name:          b.name,
		initial:       initial,
		states:        make(map[State]struct{}),
		final:         make(map[State]bool),
		table:         table,
		deterministic: table.IsDeterministic(),
	}
	for _, s := range table.States() {
		a.states[s] = struct{}{}
		if s.Kind() == Final {
			a.final[s] = true
		}
	}
	for _, s := range b.final {
		a.final[s] = true
	}
	return a, nil
}

// Builder returns a Builder preloaded with a's name, initial state, final
// states and transitions, for deriving a variant of a.
func (a *Automaton) Builder() *Builder {
	return NewBuilder(a.Name).
		WithInitial(a.initial).
		WithFinal(a.Final()...).
		WithTransitions(a.Transitions()...)
}
