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
	"bufio"
	"fmt"
	"io"

	"github.com/jt05610/fsa"
	"github.com/spf13/cobra"
)

var (
	interactive bool
	trace       bool
)

func report(out io.Writer, res *fsa.Result) {
	switch res.Verdict {
	case fsa.Accepted:
		fmt.Fprintf(out, "%q accepted in %s\n", res.Input, res.State)
	case fsa.Rejected:
		fmt.Fprintf(out, "%q rejected: %s is not a final state\n", res.Input, res.State)
	case fsa.Stuck:
		fmt.Fprintf(out, "%q rejected: no transition from %s on %q\n", res.Input, res.State, res.Symbol)
	}
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [input...]",
	Short: "Decide whether input strings are accepted",
	Long: `Decide whether input strings are accepted. The automaton is determinized first
if needed. Inputs are taken from the arguments, or line by line from stdin with
--interactive until end of input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}
		d, err := deterministic(a, false)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		sim := &fsa.Simulator{}
		if trace {
			sim.OnStep = func(s fsa.Step) {
				fmt.Fprintf(out, "  %s --%c--> %s\n", s.From, s.Symbol, s.To)
			}
		}
		exec := func(input string) error {
			res, err := sim.Run(d, input)
			if err != nil {
				return err
			}
			report(out, res)
			return nil
		}
		for _, input := range args {
			if err := exec(input); err != nil {
				return err
			}
		}
		if !interactive {
			return nil
		}
		sc := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "input: ")
			if !sc.Scan() {
				fmt.Fprintln(out)
				return sc.Err()
			}
			if err := exec(sc.Text()); err != nil {
				return err
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "read inputs from stdin")
	runCmd.Flags().BoolVarP(&trace, "trace", "t", false, "print every move")
}
