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
	"os"

	"github.com/jt05610/fsa/scenario"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify scenario.yaml",
	Short: "Check an automaton against a scenario file",
	Long: `Check an automaton against a scenario file. Each case gives an input and a
boolean expectation over accepted, rejected, stuck, verdict, state, symbol,
input and steps.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}
		d, err := deterministic(a, false)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		suite, err := scenario.Load(f)
		if err != nil {
			return err
		}
		outcomes, err := suite.Run(d)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, o := range outcomes {
			status := "ok  "
			if !o.Passed {
				status = "FAIL"
			}
			fmt.Fprintf(out, "%s %s: %s (expect %s)\n", status, o.Case, o.Result.Verdict, o.Case.Expect)
		}
		failed := scenario.Failed(outcomes)
		if len(failed) > 0 {
			logger.Warn("scenario failures", zap.Int("failed", len(failed)), zap.Int("cases", len(outcomes)))
			return fmt.Errorf("%d of %d cases failed", len(failed), len(outcomes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
