package fsa

import (
	"regexp"
	"strconv"
)

// Kind classifies a state by its tag.
type Kind int

const (
	Normal Kind = iota
	Final
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Final:
		return "final"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Tag returns the identifier prefix used for states of this kind.
func (k Kind) Tag() byte {
	if k == Final {
		return 'f'
	}
	return 'q'
}

var stateRe = regexp.MustCompile(`^([qf])(\d+)$`)

// State is a state identifier of the form <tag><digits>, where the tag is q
// for normal states and f for final states.
type State string

func NewState(kind Kind, ordinal int) State {
	return State(string(kind.Tag()) + strconv.Itoa(ordinal))
}

func (s State) Valid() bool {
	return stateRe.MatchString(string(s))
}

// Kind reports the kind implied by the tag. Identifiers outside the grammar
// are normal.
func (s State) Kind() Kind {
	if len(s) > 0 && s[0] == 'f' && s.Valid() {
		return Final
	}
	return Normal
}

// Ordinal returns the numeric suffix of the identifier.
func (s State) Ordinal() (int, bool) {
	m := stateRe.FindStringSubmatch(string(s))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s State) String() string { return string(s) }

// lessState orders states by numeric suffix, then tag, so q2 sorts before q10.
func lessState(a, b State) bool {
	na, okA := a.Ordinal()
	nb, okB := b.Ordinal()
	switch {
	case okA && okB:
		if na != nb {
			return na < nb
		}
		return a[0] > b[0]
	case okA != okB:
		return okA
	default:
		return a < b
	}
}
