// Package pb encodes automata in protocol buffer wire format. The message
// layout is
//
//	message Automaton {
//	  string name = 1;
//	  string initial = 2;
//	  repeated string final = 3;
//	  repeated Transition transitions = 4;
//	}
//	message Transition {
//	  string from = 1;
//	  string symbol = 2;
//	  repeated string to = 3;
//	}
package pb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jt05610/fsa"
	"github.com/jt05610/fsa/fsafile"
	"google.golang.org/protobuf/encoding/protowire"
)

var _ fsafile.Service = (*Service)(nil)

var ErrMalformed = errors.New("malformed automaton message")

const (
	fieldName        protowire.Number = 1
	fieldInitial     protowire.Number = 2
	fieldFinal       protowire.Number = 3
	fieldTransitions protowire.Number = 4

	fieldFrom   protowire.Number = 1
	fieldSymbol protowire.Number = 2
	fieldTo     protowire.Number = 3
)

func appendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func Marshal(a *fsa.Automaton) []byte {
	var b []byte
	b = appendString(b, fieldName, a.Name)
	b = appendString(b, fieldInitial, string(a.Initial()))
	for _, f := range a.Final() {
		b = appendString(b, fieldFinal, string(f))
	}
	for _, tr := range a.Transitions() {
		var m []byte
		m = appendString(m, fieldFrom, string(tr.From))
		m = appendString(m, fieldSymbol, string(tr.Symbol))
		m = appendString(m, fieldTo, string(tr.To))
		b = protowire.AppendTag(b, fieldTransitions, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	return b
}

// field calls fn for every length-delimited field of msg and skips the rest.
func field(msg []byte, fn func(num protowire.Number, v []byte) error) error {
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		msg = msg[n:]
		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
			}
			msg = msg[n:]
			continue
		}
		v, n := protowire.ConsumeBytes(msg)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		msg = msg[n:]
		if err := fn(num, v); err != nil {
			return err
		}
	}
	return nil
}

func Unmarshal(msg []byte) (*fsa.Automaton, error) {
	var (
		name, initial string
		final         []fsa.State
		transitions   []*fsa.Transition
	)
	err := field(msg, func(num protowire.Number, v []byte) error {
		switch num {
		case fieldName:
			name = string(v)
		case fieldInitial:
			initial = string(v)
		case fieldFinal:
			final = append(final, fsa.State(v))
		case fieldTransitions:
			tt, err := unmarshalTransition(v)
			if err != nil {
				return err
			}
			transitions = append(transitions, tt...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fsa.NewBuilder(name).
		WithInitial(fsa.State(initial)).
		WithFinal(final...).
		WithTransitions(transitions...).
		Build()
}

func unmarshalTransition(msg []byte) ([]*fsa.Transition, error) {
	var (
		from, symbol string
		to           []string
	)
	err := field(msg, func(num protowire.Number, v []byte) error {
		switch num {
		case fieldFrom:
			from = string(v)
		case fieldSymbol:
			symbol = string(v)
		case fieldTo:
			to = append(to, string(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r, size := utf8.DecodeRuneInString(symbol)
	if size == 0 || size != len(symbol) {
		return nil, fmt.Errorf("%w: %q", fsa.ErrInvalidSymbol, symbol)
	}
	tt := make([]*fsa.Transition, len(to))
	for i, dest := range to {
		tt[i] = fsa.NewTransition(fsa.State(from), r, fsa.State(dest))
	}
	return tt, nil
}

type Service struct {
}

func (s *Service) Load(_ context.Context, r io.Reader) (*fsa.Automaton, error) {
	msg, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(msg)
}

func (s *Service) Save(_ context.Context, w io.Writer, a *fsa.Automaton) error {
	_, err := w.Write(Marshal(a))
	return err
}

func (s *Service) Format() fsafile.Format {
	return fsafile.Protobuf
}
