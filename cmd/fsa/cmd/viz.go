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
	"path/filepath"

	"github.com/jt05610/fsa/graphviz"
	"github.com/spf13/cobra"
)

var (
	outputDir    string
	graphFormat  string
	fontName     string
	vizDetermine bool
)

// vizCmd represents the viz command
var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Create a graphviz figure from an automaton",
	Long:  `Create a graphviz figure from an automaton. Final states are drawn as double circles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}
		if vizDetermine {
			a, err = deterministic(a, false)
			if err != nil {
				return err
			}
		}
		f, err := graphviz.ParseFormat(graphFormat)
		if err != nil {
			return err
		}
		font, err := graphviz.ParseFont(fontName)
		if err != nil {
			return err
		}
		name := a.Name
		if name == "" {
			name = "fsa"
		}
		cfg := &graphviz.Config{
			Name:     name,
			Font:     font,
			RankDir:  graphviz.LeftToRight,
			Format:   f,
			ShowSets: vizDetermine,
		}
		outPath := filepath.Join(outputDir, name+"."+string(f))
		fmt.Fprintf(cmd.OutOrStdout(), "writing figure for %s to %s...", inputFile, outPath)
		if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
			return err
		}
		df, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = df.Close()
		}()
		w := graphviz.New(cfg)
		if err := w.Flush(df, a); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vizCmd)
	vizCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	vizCmd.Flags().StringVarP(&graphFormat, "type", "T", "svg", "output format: dot, svg or png")
	vizCmd.Flags().StringVar(&fontName, "font", string(graphviz.Helvetica), "node font: Helvetica, Arial, sans-serif or Times")
	vizCmd.Flags().BoolVarP(&vizDetermine, "determinize", "d", false, "draw the deterministic automaton")
}
