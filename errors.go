package fsa

import (
	"errors"
	"fmt"
)

var (
	ErrNotDeterministic  = errors.New("automaton is not deterministic")
	ErrAutomatonTooLarge = errors.New("automaton too large")
	ErrNoInitialState    = errors.New("no initial state")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidSymbol     = errors.New("invalid symbol")
)

// NotDeterministicError names the first key with several destinations.
type NotDeterministicError struct {
	Key Key
	To  StateSet
}

func (e *NotDeterministicError) Error() string {
	return fmt.Sprintf("%s: %s leads to %s", ErrNotDeterministic, e.Key, e.To)
}

func (e *NotDeterministicError) Is(target error) bool {
	return target == ErrNotDeterministic
}

// TooLargeError is returned when subset construction registers more states
// than its limit allows.
type TooLargeError struct {
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%s: subset construction exceeded %d states", ErrAutomatonTooLarge, e.Limit)
}

func (e *TooLargeError) Is(target error) bool {
	return target == ErrAutomatonTooLarge
}

// ParseWarning describes a malformed transition record that was skipped.
type ParseWarning struct {
	Line   int
	Text   string
	Reason string
}

func (w *ParseWarning) Error() string {
	return fmt.Sprintf("line %d: %s: %q", w.Line, w.Reason, w.Text)
}
