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

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether an automaton is deterministic",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if a.IsDeterministic() {
			fmt.Fprintln(out, "deterministic")
			return nil
		}
		fmt.Fprintln(out, "nondeterministic")
		for _, k := range a.Nondeterminism() {
			fmt.Fprintf(out, "  %s,%c -> %s\n", k.State, k.Symbol, a.Lookup(k.State, k.Symbol))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
