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
	"fmt"

	"github.com/jt05610/fsa/analysis"
	"github.com/spf13/cobra"
)

var countLength int

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print structural facts about an automaton",
	Long: `Print the number of states, unreachable and dead states and, with --count,
the number of accepted words of a given length.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		s := analysis.New(a).Summary()
		fmt.Fprintf(out, "initial:       %s\n", a.Initial())
		fmt.Fprintf(out, "states:        %d\n", s.States)
		fmt.Fprintf(out, "final:         %d\n", s.Final)
		fmt.Fprintf(out, "alphabet:      %d\n", s.Alphabet)
		fmt.Fprintf(out, "deterministic: %t\n", a.IsDeterministic())
		fmt.Fprintf(out, "unreachable:   %v\n", s.Unreachable)
		fmt.Fprintf(out, "dead:          %v\n", s.Dead)
		if countLength < 0 {
			return nil
		}
		d, err := deterministic(a, false)
		if err != nil {
			return err
		}
		n, err := analysis.New(d).CountAccepted(countLength)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "accepted words of length %d: %.0f\n", countLength, n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVarP(&countLength, "count", "c", -1, "count accepted words of this length")
}
