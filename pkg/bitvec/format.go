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
package bitvec

import (
	"fmt"
	"strconv"
	"strings"
)

// BinaryString renders this bit vector as a binary literal (e.g. "4'b1010"),
// with exactly width digits, most significant first.
func (x BitVector) BinaryString() string {
	return x.render('b')
}

// OctalString renders this bit vector as an octal literal.  The width is
// padded with leading zero bits up to the next multiple of three.
func (x BitVector) OctalString() string {
	return x.render('o')
}

// HexString renders this bit vector as a hexadecimal literal with uppercase
// digits (e.g. "8'hFA").  The width is padded with leading zero bits up to the
// next multiple of four.
func (x BitVector) HexString() string {
	return x.render('h')
}

// DecimalString renders this bit vector as a decimal literal, using either the
// signed or unsigned interpretation of its bits.
func (x BitVector) DecimalString(signed bool) string {
	if signed {
		return fmt.Sprintf("%d'd%d", x.width, x.Int64())
	}
	//
	return fmt.Sprintf("%d'd%d", x.width, x.value)
}

// Format renders this bit vector in the base identified by a literal base
// character (one of 'b', 'o', 'd' or 'h').  The signed flag only affects
// decimal rendering.
func (x BitVector) Format(base byte, signed bool) (string, error) {
	switch base {
	case 'b':
		return x.BinaryString(), nil
	case 'o':
		return x.OctalString(), nil
	case 'd':
		return x.DecimalString(signed), nil
	case 'h':
		return x.HexString(), nil
	default:
		return "", fmt.Errorf("%w: unknown base '%c'", ErrInvalidArgument, base)
	}
}

func (x BitVector) String() string {
	return x.BinaryString()
}

// render a bit vector using a power-of-two base.
func (x BitVector) render(base byte) string {
	var (
		bpd    = bitsPerDigit(base)
		digits = (x.width + bpd - 1) / bpd
		text   = strconv.FormatUint(x.value, 1<<bpd)
		// Padding required to reach a whole number of digits.
		padding = strings.Repeat("0", int(digits)-len(text))
	)
	//
	return fmt.Sprintf("%d'%c%s%s", digits*bpd, base, padding, strings.ToUpper(text))
}

// bitsPerDigit returns the number of bits encoded by each digit of a
// (non-decimal) literal base.
func bitsPerDigit(base byte) uint {
	switch base {
	case 'b':
		return 1
	case 'o':
		return 3
	case 'h':
		return 4
	default:
		panic(fmt.Sprintf("unknown base '%c'", base))
	}
}
