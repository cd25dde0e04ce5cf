package yaml

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jt05610/fsa"
	"github.com/jt05610/fsa/fsafile"
	"gopkg.in/yaml.v3"
)

var _ fsafile.Service = (*Service)(nil)

// Document is the YAML form of an automaton:
//
//	name: example
//	initial: q0
//	final: [f1]
//	transitions:
//	  - {from: q0, symbol: a, to: [q1, f1]}
type Document struct {
	Name        string       `yaml:"name"`
	Initial     string       `yaml:"initial,omitempty"`
	Final       []string     `yaml:"final,omitempty,flow"`
	Transitions []Transition `yaml:"transitions"`
}

type Transition struct {
	From   string   `yaml:"from"`
	Symbol string   `yaml:"symbol"`
	To     []string `yaml:"to,flow"`
}

func (d *Document) Automaton() (*fsa.Automaton, error) {
	b := fsa.NewBuilder(d.Name).WithInitial(fsa.State(d.Initial))
	for _, f := range d.Final {
		b.WithFinal(fsa.State(f))
	}
	for i, t := range d.Transitions {
		symbol, size := utf8.DecodeRuneInString(t.Symbol)
		if size == 0 || size != len(t.Symbol) {
			return nil, fmt.Errorf("transition %d: %w: %q", i, fsa.ErrInvalidSymbol, t.Symbol)
		}
		for _, to := range t.To {
			b.WithTransitions(fsa.NewTransition(fsa.State(t.From), symbol, fsa.State(to)))
		}
	}
	return b.Build()
}

func NewDocument(a *fsa.Automaton) *Document {
	d := &Document{
		Name:    a.Name,
		Initial: string(a.Initial()),
	}
	for _, f := range a.Final() {
		d.Final = append(d.Final, string(f))
	}
	for _, tr := range a.Transitions() {
		n := len(d.Transitions)
		if n > 0 && d.Transitions[n-1].From == string(tr.From) && d.Transitions[n-1].Symbol == string(tr.Symbol) {
			d.Transitions[n-1].To = append(d.Transitions[n-1].To, string(tr.To))
			continue
		}
		d.Transitions = append(d.Transitions, Transition{
			From:   string(tr.From),
			Symbol: string(tr.Symbol),
			To:     []string{string(tr.To)},
		})
	}
	return d
}

type Service struct {
}

func (s *Service) Load(_ context.Context, r io.Reader) (*fsa.Automaton, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return d.Automaton()
}

func (s *Service) Save(_ context.Context, w io.Writer, a *fsa.Automaton) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(a)); err != nil {
		return err
	}
	return enc.Close()
}

func (s *Service) Format() fsafile.Format {
	return fsafile.YAML
}
