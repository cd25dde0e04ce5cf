package fsa

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Key addresses one row of a transition table.
type Key struct {
	State  State
	Symbol rune
}

func (k Key) String() string {
	return fmt.Sprintf("(%s, %c)", k.State, k.Symbol)
}

// Table maps (state, symbol) pairs to sets of destination states. A Table is
// not safe for concurrent mutation.
type Table struct {
	dest    map[Key]map[State]struct{}
	states  map[State]struct{}
	symbols map[rune]struct{}
}

func NewTable() *Table {
	return &Table{
		dest:    make(map[Key]map[State]struct{}),
		states:  make(map[State]struct{}),
		symbols: make(map[rune]struct{}),
	}
}

// Add inserts to into the destination set of (from, symbol). It reports
// whether the edge was new.
func (t *Table) Add(from State, symbol rune, to State) bool {
	t.states[from] = struct{}{}
	t.states[to] = struct{}{}
	t.symbols[symbol] = struct{}{}
	k := Key{State: from, Symbol: symbol}
	set, ok := t.dest[k]
	if !ok {
		set = make(map[State]struct{})
		t.dest[k] = set
	}
	if _, ok := set[to]; ok {
		return false
	}
	set[to] = struct{}{}
	return true
}

func (t *Table) addState(s State) {
	t.states[s] = struct{}{}
}

func (t *Table) Lookup(s State, symbol rune) StateSet {
	set, ok := t.dest[Key{State: s, Symbol: symbol}]
	if !ok {
		return StateSet{}
	}
	return stateSetOf(set)
}

// Alphabet returns the distinct symbols seen, in ascending order.
func (t *Table) Alphabet() []rune {
	alphabet := make([]rune, 0, len(t.symbols))
	for r := range t.symbols {
		alphabet = append(alphabet, r)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	return alphabet
}

// States returns every identifier seen as a source or destination.
func (t *Table) States() []State {
	return stateSetOf(t.states)
}

// Len is the number of (state, symbol) keys with at least one destination.
func (t *Table) Len() int {
	return len(t.dest)
}

func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.dest))
	for k := range t.dest {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return lessState(keys[i].State, keys[j].State)
		}
		return keys[i].Symbol < keys[j].Symbol
	})
	return keys
}

// Transitions expands the table into one record per edge, in key order.
func (t *Table) Transitions() []*Transition {
	var tt []*Transition
	for _, k := range t.Keys() {
		for _, to := range t.Lookup(k.State, k.Symbol) {
			tt = append(tt, NewTransition(k.State, k.Symbol, to))
		}
	}
	return tt
}

// IsDeterministic reports whether every key has at most one destination.
func (t *Table) IsDeterministic() bool {
	for _, set := range t.dest {
		if len(set) > 1 {
			return false
		}
	}
	return true
}

// Nondeterminism returns the keys with more than one destination.
func (t *Table) Nondeterminism() []Key {
	var keys []Key
	for _, k := range t.Keys() {
		if len(t.dest[k]) > 1 {
			keys = append(keys, k)
		}
	}
	return keys
}

func IsDeterministic(t *Table) bool {
	return t.IsDeterministic()
}

// WriteListing writes one from,symbol=to line per edge.
func (t *Table) WriteListing(w io.Writer) error {
	for _, tr := range t.Transitions() {
		if _, err := fmt.Fprintln(w, tr.String()); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) Listing() string {
	var buf bytes.Buffer
	_ = t.WriteListing(&buf)
	return buf.String()
}
