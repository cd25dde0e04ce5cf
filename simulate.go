package fsa

import "fmt"

type Verdict int

const (
	Accepted Verdict = iota
	Rejected
	Stuck
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Stuck:
		return "stuck"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Step is one move of a simulation.
type Step struct {
	From   State
	Symbol rune
	To     State
}

// Result is the outcome of simulating an input. State is the state the run
// ended in; for Stuck runs Symbol is the symbol that had no edge.
type Result struct {
	Verdict Verdict
	Input   string
	State   State
	Symbol  rune
	Steps   []Step
}

func (r *Result) Accepted() bool { return r.Verdict == Accepted }

func (r *Result) String() string {
	switch r.Verdict {
	case Stuck:
		return fmt.Sprintf("%q stuck: no transition from %s on %q", r.Input, r.State, r.Symbol)
	default:
		return fmt.Sprintf("%q %s in %s", r.Input, r.Verdict, r.State)
	}
}

// Simulator walks deterministic automata. OnStep, if set, is called after
// every move.
type Simulator struct {
	OnStep func(Step)
}

func (s *Simulator) Run(a *Automaton, input string) (*Result, error) {
	if !a.built() {
		return nil, ErrNoInitialState
	}
	if !a.deterministic {
		keys := a.table.Nondeterminism()
		return nil, &NotDeterministicError{Key: keys[0], To: a.table.Lookup(keys[0].State, keys[0].Symbol)}
	}
	res := &Result{
		Input: input,
		State: a.initial,
	}
	for _, symbol := range input {
		next := a.table.Lookup(res.State, symbol)
		if next.Len() == 0 {
			res.Verdict = Stuck
			res.Symbol = symbol
			return res, nil
		}
		step := Step{From: res.State, Symbol: symbol, To: next[0]}
		res.Steps = append(res.Steps, step)
		res.State = step.To
		if s.OnStep != nil {
			s.OnStep(step)
		}
	}
	if a.final[res.State] {
		res.Verdict = Accepted
	} else {
		res.Verdict = Rejected
	}
	return res, nil
}

func Run(a *Automaton, input string) (*Result, error) {
	s := &Simulator{}
	return s.Run(a, input)
}

// Accepts reports whether a deterministic automaton accepts input.
func (a *Automaton) Accepts(input string) (bool, error) {
	res, err := Run(a, input)
	if err != nil {
		return false, err
	}
	return res.Accepted(), nil
}
