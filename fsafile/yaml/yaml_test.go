package yaml_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jt05610/fsa"
	"github.com/jt05610/fsa/fsafile/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `
name: nfa
initial: q0
final: [q1]
transitions:
  - from: q0
    symbol: a
    to: [q1, f1]
  - {from: q1, symbol: b, to: [f1]}
`

func TestService_Load(t *testing.T) {
	s := &yaml.Service{}
	a, err := s.Load(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "nfa", a.Name)
	assert.Equal(t, fsa.State("q0"), a.Initial())
	assert.Equal(t, []fsa.State{"q1", "f1"}, a.Final())
	assert.False(t, a.IsDeterministic())
	assert.Equal(t, fsa.NewStateSet("q1", "f1"), a.Lookup("q0", 'a'))
}

func TestService_LoadBadSymbol(t *testing.T) {
	s := &yaml.Service{}
	_, err := s.Load(context.Background(), strings.NewReader("name: x\ntransitions:\n  - {from: q0, symbol: ab, to: [q1]}\n"))
	assert.ErrorIs(t, err, fsa.ErrInvalidSymbol)
}

func TestService_SaveLoad(t *testing.T) {
	s := &yaml.Service{}
	src, err := s.Load(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, s.Save(context.Background(), buf, src))
	assert.Contains(t, buf.String(), "to: [q1, f1]")

	back, err := s.Load(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, src.Listing(), back.Listing())
	assert.Equal(t, src.Initial(), back.Initial())
	assert.Equal(t, src.Final(), back.Final())
}
