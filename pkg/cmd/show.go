// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/consensys/go-bitvec/pkg/util/termio"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] literal1 literal2 ...",
	Short: "show literals in every supported base.",
	Long: `Parse one or more literals and print a table giving, for each, its
	width along with its binary, octal, hexadecimal, unsigned and signed
	renderings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		ansi := GetFlag(cmd, "ansi") && termio.IsTerminal(os.Stdout)
		textWidth := GetUint(cmd, "textwidth")
		//
		// Piped output is never clipped
		if textWidth == 0 {
			textWidth = termio.Width(os.Stdout, 0)
		}
		//
		exitOnError(cmd, runShow(cmd.OutOrStdout(), args, ansi, textWidth))
	},
}

// Column headers for the show table
var showHeaders = []string{"literal", "width", "binary", "octal", "hex", "unsigned", "signed"}

// runShow prints the show table, clipping columns so the table fits within
// textWidth characters.  A textWidth of zero leaves columns unclipped.
func runShow(out io.Writer, args []string, ansi bool, textWidth uint) error {
	vecs, err := parseLiterals(args)
	if err != nil {
		return err
	}
	//
	var (
		ncols = uint(len(showHeaders))
		tp    = termio.NewTablePrinter(ncols, uint(len(vecs)+1))
		bold  = termio.BoldAnsiEscape().Build()
		red   = termio.NewAnsiEscape().FgColour(termio.TERM_RED).Build()
	)
	//
	tp.SetRow(0, showHeaders...)
	//
	for col := range ncols {
		tp.SetEscape(col, 0, bold)
	}
	//
	for i, x := range vecs {
		row := uint(i + 1)
		tp.SetRow(row, showRow(args[i], x)...)
		//
		if x.IsNegative() {
			tp.SetEscape(ncols-1, row, red)
		}
	}
	//
	tp.AnsiEscapes(ansi)
	//
	if textWidth > 0 {
		tp.SetMaxWidths(max(4, textWidth/ncols))
	}
	//
	tp.Print(out)
	//
	return nil
}

func showRow(literal string, x bitvec.BitVector) []string {
	return []string{
		literal,
		fmt.Sprintf("%d", x.Width()),
		x.BinaryString(),
		x.OctalString(),
		x.HexString(),
		fmt.Sprintf("%d", x.Uint64()),
		fmt.Sprintf("%d", x.Int64()),
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Uint("textwidth", 0, "maximum width of the table (0 uses the terminal width, or no limit when piped)")
}
