/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jt05610/fsa"
	"github.com/jt05610/fsa/env"
	"github.com/jt05610/fsa/fsafile"
	"github.com/jt05610/fsa/fsafile/pb"
	"github.com/jt05610/fsa/fsafile/text"
	"github.com/jt05610/fsa/fsafile/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFile string
	format    string
	initial   string
	maxStates int
	verbose   bool

	logger  = zap.NewNop()
	environ = &env.Environment{}
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:   "fsa",
	Short: "fsa determinizes finite automata and runs inputs through them",
	Long: `fsa reads a finite automaton from a list of transitions such as

  q0,a=q1
  q0,a=f1
  q1,b=f1

where q marks a normal state and f a final one, converts it to a deterministic
automaton by subset construction and decides whether input strings are accepted.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		environ = env.LoadEnv(logger)
		applyEnv(cmd)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// applyEnv fills the flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("input") && environ.File != "" {
		inputFile = environ.File
	}
	if !flags.Changed("format") && environ.Format != "" {
		format = environ.Format
	}
	if !flags.Changed("initial") && environ.Initial != "" {
		initial = environ.Initial
	}
	if !flags.Changed("max-states") && environ.MaxStates > 0 {
		maxStates = environ.MaxStates
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "automaton file, - for stdin")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "input format: text, yaml or pb (default from extension)")
	rootCmd.PersistentFlags().StringVar(&initial, "initial", "", "initial state (default first normal state)")
	rootCmd.PersistentFlags().IntVar(&maxStates, "max-states", fsa.DefaultStateLimit, "maximum number of states subset construction may create")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

func registry(name string) *fsafile.Registry {
	return fsafile.NewRegistry(
		text.New(logger, name),
		&yaml.Service{},
		&pb.Service{},
	)
}

func open(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

// automatonName is the file name of path without its extension.
func automatonName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// loadAutomaton reads the automaton named by --input.
func loadAutomaton(cmd *cobra.Command) (*fsa.Automaton, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("no input file: use --input or FSA_FILE")
	}
	srv, err := registry(automatonName(inputFile)).ForPath(inputFile, fsafile.Format(format))
	if err != nil {
		return nil, err
	}
	f, err := open(cmd, inputFile)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	a, err := srv.Load(context.Background(), f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", inputFile, err)
	}
	if initial != "" {
		a, err = a.Builder().WithInitial(fsa.State(initial)).Build()
		if err != nil {
			return nil, err
		}
	}
	logger.Info("loaded automaton",
		zap.String("file", inputFile),
		zap.String("id", a.ID),
		zap.Int("states", len(a.States())),
		zap.Bool("deterministic", a.IsDeterministic()),
	)
	return a, nil
}

// deterministic returns a unchanged if it is deterministic and force is not
// set, and its subset construction otherwise.
func deterministic(a *fsa.Automaton, force bool) (*fsa.Automaton, error) {
	if a.IsDeterministic() && !force {
		logger.Info("automaton is already deterministic", zap.String("id", a.ID))
		return a, nil
	}
	logger.Info("converting automaton to a deterministic one",
		zap.String("id", a.ID),
		zap.Int("nondeterministic keys", len(a.Nondeterminism())),
	)
	c := &fsa.Constructor{Limit: maxStates}
	d, err := c.Construct(a)
	if err != nil {
		return nil, err
	}
	logger.Info("determinized automaton", zap.String("id", d.ID), zap.Int("states", len(d.States())))
	return d, nil
}
