// Package fsafile defines the file formats automata are loaded from and saved
// to.
package fsafile

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jt05610/fsa"
)

type Service interface {
	Load(ctx context.Context, r io.Reader) (*fsa.Automaton, error)
	Save(ctx context.Context, w io.Writer, a *fsa.Automaton) error
	Format() Format
}

type Format string

const (
	Text     Format = "text"
	YAML     Format = "yaml"
	Protobuf Format = "pb"
)

// FormatOf guesses a format from a file extension. Unknown extensions are
// read as transition records.
func FormatOf(path string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return YAML
	case "pb", "bin":
		return Protobuf
	default:
		return Text
	}
}

// Registry picks a Service by format.
type Registry struct {
	services map[Format]Service
}

func NewRegistry(services ...Service) *Registry {
	r := &Registry{services: make(map[Format]Service)}
	for _, s := range services {
		r.WithService(s)
	}
	return r
}

func (r *Registry) WithService(s Service) *Registry {
	r.services[s.Format()] = s
	return r
}

func (r *Registry) Service(f Format) (Service, error) {
	s, ok := r.services[f]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", f)
	}
	return s, nil
}

// ForPath returns the service for path's extension, or for format when it is
// not empty.
func (r *Registry) ForPath(path string, format Format) (Service, error) {
	if format == "" {
		format = FormatOf(path)
	}
	return r.Service(format)
}
