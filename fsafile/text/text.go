// Package text reads and writes automata as transition records, one per line:
//
//	q0,a=q1
//	q1,b=f2
//
// The tag q marks a normal state and f a final one. Lines starting with # are
// comments, except the directives "# initial: <state>" and
// "# final: <state> ...".
package text

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jt05610/fsa"
	"github.com/jt05610/fsa/fsafile"
	"go.uber.org/zap"
)

var _ fsafile.Service = (*Service)(nil)

const recordShape = "<tag><digits>,<symbol>=<tag><digits>"

// MaxLineLength bounds the lines Parse tries to match. Longer lines are
// reported with their first MaxLineLength bytes and skipped.
const MaxLineLength = 4096

var (
	recordRe    = regexp.MustCompile(`^\s*([qf])(\d+)\s*,\s*([A-Za-z0-9])\s*=\s*([qf])(\d+)\s*$`)
	directiveRe = regexp.MustCompile(`^#\s*(initial|final)\s*:\s*(.*)$`)
)

// ParseRecord parses one transition record.
func ParseRecord(line string) (*fsa.Transition, error) {
	m := recordRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("expected %s", recordShape)
	}
	from := fsa.State(m[1] + m[2])
	to := fsa.State(m[4] + m[5])
	return fsa.NewTransition(from, rune(m[3][0]), to), nil
}

// Document is the parsed content of a transition file.
type Document struct {
	Initial     fsa.State
	Final       []fsa.State
	Transitions []*fsa.Transition
	Warnings    []*fsa.ParseWarning
}

// Parse reads records from r. Malformed lines become warnings and are
// skipped; only read errors are returned.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	br := bufio.NewReader(r)
	n := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if raw != "" {
			n++
			doc.line(n, raw)
		}
		if err != nil {
			return doc, nil
		}
	}
}

func (d *Document) line(n int, raw string) {
	line := strings.TrimSpace(raw)
	if len(line) > MaxLineLength {
		d.warn(n, line[:MaxLineLength], fmt.Sprintf("line longer than %d bytes", MaxLineLength))
		return
	}
	if line == "" {
		return
	}
	if strings.HasPrefix(line, "#") {
		if err := d.directive(line); err != nil {
			d.warn(n, line, err.Error())
		}
		return
	}
	t, err := ParseRecord(line)
	if err != nil {
		d.warn(n, line, err.Error())
		return
	}
	d.Transitions = append(d.Transitions, t)
}

func (d *Document) warn(line int, text, reason string) {
	d.Warnings = append(d.Warnings, &fsa.ParseWarning{
		Line:   line,
		Text:   text,
		Reason: reason,
	})
}

func (d *Document) directive(line string) error {
	m := directiveRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	fields := strings.Fields(m[2])
	for _, f := range fields {
		if !fsa.State(f).Valid() {
			return fmt.Errorf("%s directive: %w: %q", m[1], fsa.ErrInvalidState, f)
		}
	}
	switch m[1] {
	case "initial":
		if len(fields) != 1 {
			return fmt.Errorf("initial directive needs exactly one state")
		}
		d.Initial = fsa.State(fields[0])
	case "final":
		for _, f := range fields {
			d.Final = append(d.Final, fsa.State(f))
		}
	}
	return nil
}

// Service loads and saves transition files. Warnings are logged to Logger.
type Service struct {
	Logger *zap.Logger
	// Name is given to loaded automata.
	Name string
}

func New(logger *zap.Logger, name string) *Service {
	return &Service{
		Logger: logger,
		Name:   name,
	}
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Service) Load(_ context.Context, r io.Reader) (*fsa.Automaton, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	for _, w := range doc.Warnings {
		s.logger().Warn("skipping malformed transition",
			zap.Int("line", w.Line),
			zap.String("text", w.Text),
			zap.String("reason", w.Reason),
		)
	}
	a, err := fsa.NewBuilder(s.Name).
		WithInitial(doc.Initial).
		WithFinal(doc.Final...).
		WithTransitions(doc.Transitions...).
		Build()
	if err != nil {
		return nil, err
	}
	s.logger().Debug("loaded automaton",
		zap.String("id", a.ID),
		zap.Int("transitions", len(doc.Transitions)),
		zap.Int("warnings", len(doc.Warnings)),
	)
	return a, nil
}

// Save writes the initial state and any final states without the f tag as
// directives, then the records.
func (s *Service) Save(_ context.Context, w io.Writer, a *fsa.Automaton) error {
	if _, err := fmt.Fprintf(w, "# initial: %s\n", a.Initial()); err != nil {
		return err
	}
	var declared []string
	for _, f := range a.Final() {
		if f.Kind() != fsa.Final {
			declared = append(declared, string(f))
		}
	}
	if len(declared) > 0 {
		if _, err := fmt.Fprintf(w, "# final: %s\n", strings.Join(declared, " ")); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, a.Listing())
	return err
}

func (s *Service) Format() fsafile.Format {
	return fsafile.Text
}
