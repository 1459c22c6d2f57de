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
	"github.com/consensys/go-bitvec/pkg/util/field/bls12_377"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] literal1 literal2 ...",
	Short: "convert literals into a given base.",
	Long: `Parse one or more literals and print each again in a given base.
	Hexadecimal and octal literals are padded with leading zero bits up to a
	whole number of digits.  Base f prints the embedding of each literal into
	the BLS12-377 scalar field.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		base := GetString(cmd, "base")
		signed := GetFlag(cmd, "signed")
		//
		exitOnError(cmd, runConvert(cmd.OutOrStdout(), args, base, signed))
	},
}

func runConvert(out io.Writer, args []string, base string, signed bool) error {
	format, err := converter(base, signed)
	if err != nil {
		return err
	}
	//
	vecs, err := parseLiterals(args)
	if err != nil {
		return err
	}
	//
	for _, x := range vecs {
		fmt.Fprintln(out, format(x))
	}
	//
	return nil
}

// converter returns the rendering function for a given base flag.
func converter(base string, signed bool) (func(bitvec.BitVector) string, error) {
	if base == "f" {
		return func(x bitvec.BitVector) string { return formatField(x, signed) }, nil
	}
	//
	b, err := parseBase(base)
	if err != nil {
		return nil, err
	}
	// Cannot fail, as base already checked.
	return func(x bitvec.BitVector) string {
		text, _ := x.Format(b, signed)
		return text
	}, nil
}

// formatField renders the field element corresponding to a bit vector.  Under
// the signed interpretation, negative values map to their additive inverse.
func formatField(x bitvec.BitVector, signed bool) string {
	var elem bls12_377.Element
	//
	if signed {
		elem = bls12_377.FromSignedBitVector(x)
	} else {
		elem = bls12_377.FromBitVector(x)
	}
	//
	return elem.String()
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("base", "b", "h", "target base (one of b, o, d, h, or f for the field)")
	convertCmd.Flags().Bool("signed", false, "use the signed interpretation for decimal output")
}
