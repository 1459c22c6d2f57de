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
	"slices"
	"strconv"
	"strings"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply [flags] op literal [operand ...]",
	Short: "apply a single operation to one or two literals.",
	Long: `Apply a single named operation and print the result as a literal.
	Binary operators (add, sub, mul, div, rem, and, or, xor) take two literals
	of equal width.  Unary operators (not, neg, inc, dec) take one literal.
	Shifts (shl, ashr, lshr), extensions (sext, zext), truncation (trunc) and
	bit selection (bit) take a literal and an amount.  Slicing (slice) takes a
	literal and one or two bit indices, whilst concatenation (concat) takes a
	literal and either another literal or a sequence of bits.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		base := GetString(cmd, "base")
		signed := GetFlag(cmd, "signed")
		//
		exitOnError(cmd, runApply(cmd.OutOrStdout(), args[0], args[1:], base, signed))
	},
}

// Operators which may additionally report wrap around.
var overflowOps = map[string]func(bitvec.BitVector, bitvec.BitVector) (bitvec.BitVector, bool, error){
	"add": bitvec.BitVector.AddOverflow,
	"sub": bitvec.BitVector.SubOverflow,
	"mul": bitvec.BitVector.MulOverflow,
}

var binaryOps = map[string]func(bitvec.BitVector, bitvec.BitVector) (bitvec.BitVector, error){
	"div": bitvec.BitVector.Div,
	"rem": bitvec.BitVector.Rem,
	"and": bitvec.BitVector.And,
	"or":  bitvec.BitVector.Or,
	"xor": bitvec.BitVector.Xor,
}

var unaryOps = map[string]func(bitvec.BitVector) bitvec.BitVector{
	"not": bitvec.BitVector.Not,
	"neg": bitvec.BitVector.Neg,
	"inc": bitvec.BitVector.Inc,
	"dec": bitvec.BitVector.Dec,
}

var amountOps = map[string]func(bitvec.BitVector, uint) (bitvec.BitVector, error){
	"shl":   bitvec.BitVector.Shl,
	"ashr":  bitvec.BitVector.Ashr,
	"lshr":  bitvec.BitVector.Lshr,
	"sext":  bitvec.BitVector.SignExtend,
	"zext":  bitvec.BitVector.ZeroExtend,
	"trunc": bitvec.BitVector.Truncate,
	"bit":   bitAsVector,
}

func runApply(out io.Writer, op string, args []string, base string, signed bool) error {
	b, err := parseBase(base)
	if err != nil {
		return err
	}
	//
	result, err := apply(op, args)
	if err != nil {
		return err
	}
	//
	text, _ := result.Format(b, signed)
	fmt.Fprintln(out, text)
	//
	return nil
}

// apply a named operation to a given set of arguments.
func apply(op string, args []string) (bitvec.BitVector, error) {
	x, err := bitvec.Parse(args[0])
	if err != nil {
		return bitvec.BitVector{}, err
	}
	//
	log.Debugf("applying %s to %s", op, strings.Join(args, ", "))
	//
	switch {
	case overflowOps[op] != nil:
		y, err := operand(op, args)
		if err != nil {
			return bitvec.BitVector{}, err
		}
		//
		r, overflow, err := overflowOps[op](x, y)
		if overflow {
			log.Infof("%s %s, %s wrapped around", op, x.String(), y.String())
		}
		//
		return r, err
	case binaryOps[op] != nil:
		y, err := operand(op, args)
		if err != nil {
			return bitvec.BitVector{}, err
		}
		//
		return binaryOps[op](x, y)
	case unaryOps[op] != nil:
		if err := checkArity(op, args, 1); err != nil {
			return bitvec.BitVector{}, err
		}
		//
		return unaryOps[op](x), nil
	case amountOps[op] != nil:
		if err := checkArity(op, args, 2); err != nil {
			return bitvec.BitVector{}, err
		}
		//
		n, err := parseIndex(args[1])
		if err != nil {
			return bitvec.BitVector{}, err
		}
		//
		return amountOps[op](x, n)
	case op == "slice":
		return applySlice(x, args)
	case op == "concat":
		if err := checkArity(op, args, 2); err != nil {
			return bitvec.BitVector{}, err
		} else if !strings.ContainsRune(args[1], '\'') {
			return x.ConcatBits(args[1])
		}
		//
		y, err := bitvec.Parse(args[1])
		if err != nil {
			return bitvec.BitVector{}, err
		}
		//
		return x.Concat(y)
	default:
		return bitvec.BitVector{}, fmt.Errorf("unknown operation \"%s\" (expected one of %s)", op,
			strings.Join(operations(), ", "))
	}
}

func applySlice(x bitvec.BitVector, args []string) (bitvec.BitVector, error) {
	if len(args) != 2 && len(args) != 3 {
		return bitvec.BitVector{}, fmt.Errorf("slice expects 1 or 2 indices (got %d)", len(args)-1)
	}
	//
	start, err := parseIndex(args[1])
	if err != nil {
		return bitvec.BitVector{}, err
	} else if len(args) == 2 {
		return x.SliceFrom(start)
	}
	//
	end, err := parseIndex(args[2])
	if err != nil {
		return bitvec.BitVector{}, err
	}
	//
	return x.Slice(start, end)
}

// operand parses the second literal of a binary operation.
func operand(op string, args []string) (bitvec.BitVector, error) {
	if err := checkArity(op, args, 2); err != nil {
		return bitvec.BitVector{}, err
	}
	//
	return bitvec.Parse(args[1])
}

// bitAsVector extracts a single bit as a 1-bit vector.
func bitAsVector(x bitvec.BitVector, i uint) (bitvec.BitVector, error) {
	bit, err := x.Bit(i)
	if err != nil {
		return bitvec.BitVector{}, err
	} else if bit {
		return bitvec.FromUnsigned(1, 1)
	}
	//
	return bitvec.FromUnsigned(0, 1)
}

func checkArity(op string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s expects %d operand(s) (got %d)", op, n, len(args))
	}
	//
	return nil
}

func parseIndex(arg string) (uint, error) {
	n, err := strconv.ParseUint(arg, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid amount \"%s\"", arg)
	}
	//
	return uint(n), nil
}

// operations returns the sorted names of all supported operations.
func operations() []string {
	var names = []string{"slice", "concat"}
	//
	names = appendKeys(names, overflowOps)
	names = appendKeys(names, binaryOps)
	names = appendKeys(names, unaryOps)
	names = appendKeys(names, amountOps)
	//
	slices.Sort(names)
	//
	return names
}

func appendKeys[V any](names []string, m map[string]V) []string {
	for k := range m {
		names = append(names, k)
	}
	//
	return names
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringP("base", "b", "b", "base used for the result (one of b, o, d, h)")
	applyCmd.Flags().Bool("signed", false, "use the signed interpretation for decimal output")
}
