package fsa

import "fmt"

// Transition is one edge of an automaton: reading Symbol in From may move to To.
type Transition struct {
	From   State
	Symbol rune
	To     State
}

func NewTransition(from State, symbol rune, to State) *Transition {
	return &Transition{
		From:   from,
		Symbol: symbol,
		To:     to,
	}
}

// ValidSymbol reports whether r is a single alphanumeric ASCII symbol.
func ValidSymbol(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func (t *Transition) Validate() error {
	if !t.From.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, t.From)
	}
	if !t.To.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, t.To)
	}
	if !ValidSymbol(t.Symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, t.Symbol)
	}
	return nil
}

// String renders the transition in record form, e.g. q0,a=f1.
func (t *Transition) String() string {
	return fmt.Sprintf("%s,%c=%s", t.From, t.Symbol, t.To)
}
