package fsa

import (
	"sort"
	"strings"
)

// StateSet is a sorted, duplicate free group of states. Two sets denote the
// same subset-construction state iff their keys are equal.
type StateSet []State

func NewStateSet(states ...State) StateSet {
	if len(states) == 0 {
		return StateSet{}
	}
	seen := make(map[State]struct{}, len(states))
	set := make(StateSet, 0, len(states))
	for _, s := range states {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		set = append(set, s)
	}
	sort.Slice(set, func(i, j int) bool { return lessState(set[i], set[j]) })
	return set
}

func stateSetOf(m map[State]struct{}) StateSet {
	set := make(StateSet, 0, len(m))
	for s := range m {
		set = append(set, s)
	}
	sort.Slice(set, func(i, j int) bool { return lessState(set[i], set[j]) })
	return set
}

func (s StateSet) Len() int { return len(s) }

// Key is the canonical identity of the set.
func (s StateSet) Key() string {
	parts := make([]string, len(s))
	for i, st := range s {
		parts[i] = string(st)
	}
	return strings.Join(parts, ",")
}

func (s StateSet) Intersects(set map[State]bool) bool {
	for _, st := range s {
		if set[st] {
			return true
		}
	}
	return false
}

func (s StateSet) String() string {
	return "{" + s.Key() + "}"
}
