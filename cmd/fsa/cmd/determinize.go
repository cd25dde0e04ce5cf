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
	"os"

	"github.com/jt05610/fsa/fsafile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFile string
	toFormat   string
	force      bool
	showSets   bool
)

// determinizeCmd represents the determinize command
var determinizeCmd = &cobra.Command{
	Use:   "determinize",
	Short: "Convert an automaton to a deterministic one",
	Long: `Convert an automaton to a deterministic one by subset construction and print
its transitions. States are renamed q<n> or f<n> in the order they are found.
With --output the result is written to a file instead, in the format given by
--to or the file extension.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}
		d, err := deterministic(a, force)
		if err != nil {
			return err
		}
		if outputFile == "" {
			if showSets {
				for _, s := range d.States() {
					if set, ok := d.StateSetOf(s); ok {
						fmt.Fprintf(cmd.OutOrStdout(), "# %s = %s\n", s, set)
					}
				}
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), d.Listing())
			return err
		}
		srv, err := registry(d.Name).ForPath(outputFile, fsafile.Format(toFormat))
		if err != nil {
			return err
		}
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		if err := srv.Save(context.Background(), f, d); err != nil {
			return err
		}
		logger.Info("wrote automaton", zap.String("file", outputFile), zap.String("format", string(srv.Format())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(determinizeCmd)
	determinizeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file")
	determinizeCmd.Flags().StringVar(&toFormat, "to", "", "output format: text, yaml or pb (default from extension)")
	determinizeCmd.Flags().BoolVar(&force, "force", false, "run subset construction even if the automaton is deterministic")
	determinizeCmd.Flags().BoolVar(&showSets, "sets", false, "print the source states behind each new state")
}
