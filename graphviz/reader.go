package graphviz

import (
	"io"

	"github.com/goccy/go-graphviz/cgraph"
	"github.com/jt05610/fsa"
	"github.com/jt05610/fsa/fsafile/text"
)

var _ fsa.Loader[*fsa.Automaton] = (*Reader)(nil)

// Reader loads automata from DOT written by Writer. Edges are read back from
// their record names, final states from their double circle shape.
type Reader struct {
	Name string
}

func (r *Reader) Load(reader io.Reader) (*fsa.Automaton, error) {
	bytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	g, err := cgraph.ParseBytes(bytes)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = g.Close()
	}()
	b := fsa.NewBuilder(r.Name)
	for node := g.FirstNode(); node != nil; node = g.NextNode(node) {
		if node.Get("shape") == string(cgraph.DoubleCircleShape) {
			b.WithFinal(fsa.State(node.Name()))
		}
	}
	for node := g.FirstNode(); node != nil; node = g.NextNode(node) {
		for edge := g.FirstOut(node); edge != nil; edge = g.NextOut(edge) {
			if node.Name() == startNode {
				b.WithInitial(fsa.State(edge.Node().Name()))
				continue
			}
			t, err := text.ParseRecord(edge.Name())
			if err != nil {
				return nil, err
			}
			b.WithTransitions(t)
		}
	}
	return b.Build()
}

func Loader() *Reader {
	return &Reader{}
}
