package graphviz

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/jt05610/fsa"
)

var _ fsa.Flusher[*fsa.Automaton] = (*Writer)(nil)

// startNode is the point node whose edge marks the initial state.
const startNode = "__start"

type Writer struct {
	*Config
	g       *cgraph.Graph
	mapping map[fsa.State]*cgraph.Node
}

func (w *Writer) label(a *fsa.Automaton, s fsa.State) string {
	if !w.ShowSets {
		return string(s)
	}
	set, ok := a.StateSetOf(s)
	if !ok {
		return string(s)
	}
	return string(s) + "\n" + set.String()
}

func (w *Writer) writeState(a *fsa.Automaton, s fsa.State) error {
	node, err := w.g.CreateNode(string(s))
	if err != nil {
		return err
	}
	if a.IsFinal(s) {
		node.SetShape(cgraph.DoubleCircleShape)
	} else {
		node.SetShape(cgraph.CircleShape)
	}
	node.SetLabel(w.label(a, s))
	node.Set("fontname", string(w.Font))
	w.mapping[s] = node
	return nil
}

func (w *Writer) writeStart(a *fsa.Automaton) error {
	node, err := w.g.CreateNode(startNode)
	if err != nil {
		return err
	}
	node.SetShape(cgraph.PointShape)
	_, err = w.g.CreateEdge(startNode, node, w.mapping[a.Initial()])
	return err
}

// writeTransition names each edge after its record so the reader can recover
// the symbol.
func (w *Writer) writeTransition(t *fsa.Transition) error {
	src := w.mapping[t.From]
	dst := w.mapping[t.To]
	edge, err := w.g.CreateEdge(t.String(), src, dst)
	if err != nil {
		return err
	}
	edge.SetLabel(string(t.Symbol))
	return nil
}

func (w *Writer) Flush(out io.Writer, a *fsa.Automaton) error {
	graph := graphviz.New()
	defer func() {
		_ = graph.Close()
	}()
	g, err := graph.Graph()
	if err != nil {
		return err
	}
	defer func() {
		_ = g.Close()
	}()
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	w.mapping = make(map[fsa.State]*cgraph.Node)
	for _, s := range a.States() {
		if err := w.writeState(a, s); err != nil {
			return fmt.Errorf("state %s: %w", s, err)
		}
	}
	if err := w.writeStart(a); err != nil {
		return err
	}
	for _, t := range a.Transitions() {
		if err := w.writeTransition(t); err != nil {
			return fmt.Errorf("transition %s: %w", t, err)
		}
	}
	return graph.Render(w.g, graphviz.Format(w.Format), out)
}

type Font string

const (
	Helvetica Font = "Helvetica"
	Arial     Font = "Arial"
	SansSerif Font = "sans-serif"
	Times     Font = "Times"
)

// ParseFont accepts helvetica, arial, sans-serif and times.
func ParseFont(s string) (Font, error) {
	for _, f := range []Font{Helvetica, Arial, SansSerif, Times} {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported font: %s", s)
}

type RankDir string

const (
	LeftToRight RankDir = "LR"
	TopToBottom RankDir = "TB"
)

type Format string

const (
	DOT Format = Format(graphviz.XDOT)
	SVG Format = Format(graphviz.SVG)
	PNG Format = Format(graphviz.PNG)
)

// ParseFormat accepts dot, svg and png.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case DOT, SVG, PNG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported graphviz format: %s", s)
	}
}

type Config struct {
	Name string
	Font
	RankDir
	Format
	// ShowSets adds the source state set to the label of each state of a
	// determinized automaton.
	ShowSets bool
}

func New(config *Config) *Writer {
	if config.Name == "" {
		config.Name = "fsa"
	}
	if config.Font == "" {
		config.Font = Helvetica
	}
	if config.RankDir == "" {
		config.RankDir = LeftToRight
	}
	if config.Format == "" {
		config.Format = DOT
	}
	return &Writer{
		Config:  config,
		mapping: make(map[fsa.State]*cgraph.Node),
	}
}
