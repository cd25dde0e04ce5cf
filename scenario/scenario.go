// Package scenario checks an automaton against a suite of inputs whose
// expected outcomes are boolean expressions, for example
//
//	cases:
//	  - input: ab
//	    expect: accepted && steps == 2
//	  - input: b
//	    expect: stuck && symbol == "b"
//
// Expressions see accepted, rejected, stuck, verdict, state, symbol, input and
// steps.
package scenario

import (
	"fmt"
	"io"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/jt05610/fsa"
	"gopkg.in/yaml.v3"
)

type Case struct {
	Name   string `yaml:"name,omitempty"`
	Input  string `yaml:"input"`
	Expect string `yaml:"expect"`

	program *vm.Program
}

func (c *Case) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%q", c.Input)
}

type Suite struct {
	Cases []*Case `yaml:"cases"`
}

func env(res *fsa.Result) map[string]interface{} {
	e := map[string]interface{}{
		"accepted": false,
		"rejected": false,
		"stuck":    false,
		"verdict":  "",
		"state":    "",
		"symbol":   "",
		"input":    "",
		"steps":    0,
	}
	if res == nil {
		return e
	}
	e["accepted"] = res.Verdict == fsa.Accepted
	e["rejected"] = res.Verdict == fsa.Rejected
	e["stuck"] = res.Verdict == fsa.Stuck
	e["verdict"] = res.Verdict.String()
	e["state"] = string(res.State)
	if res.Verdict == fsa.Stuck {
		e["symbol"] = string(res.Symbol)
	}
	e["input"] = res.Input
	e["steps"] = len(res.Steps)
	return e
}

// Compile checks every expectation and prepares it for evaluation.
func (s *Suite) Compile() error {
	for i, c := range s.Cases {
		if c.Expect == "" {
			return fmt.Errorf("case %d (%s): empty expectation", i, c)
		}
		program, err := expr.Compile(c.Expect, expr.Env(env(nil)), expr.AsBool())
		if err != nil {
			return fmt.Errorf("case %d (%s): %w", i, c, err)
		}
		c.program = program
	}
	return nil
}

func Load(r io.Reader) (*Suite, error) {
	var s Suite
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	if err := s.Compile(); err != nil {
		return nil, err
	}
	return &s, nil
}

type Outcome struct {
	Case   *Case
	Result *fsa.Result
	Passed bool
}

// Run simulates every case on a, which must be deterministic.
func (s *Suite) Run(a *fsa.Automaton) ([]*Outcome, error) {
	if !a.IsDeterministic() {
		return nil, fmt.Errorf("run scenarios: %w", fsa.ErrNotDeterministic)
	}
	outcomes := make([]*Outcome, 0, len(s.Cases))
	for _, c := range s.Cases {
		if c.program == nil {
			if err := s.Compile(); err != nil {
				return nil, err
			}
		}
		res, err := fsa.Run(a, c.Input)
		if err != nil {
			return nil, err
		}
		out, err := expr.Run(c.program, env(res))
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c, err)
		}
		outcomes = append(outcomes, &Outcome{
			Case:   c,
			Result: res,
			Passed: out.(bool),
		})
	}
	return outcomes, nil
}

// Failed filters the outcomes that did not pass.
func Failed(outcomes []*Outcome) []*Outcome {
	var failed []*Outcome
	for _, o := range outcomes {
		if !o.Passed {
			failed = append(failed, o)
		}
	}
	return failed
}
