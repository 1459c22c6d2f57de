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
	"errors"
	"testing"

	"github.com/consensys/go-bitvec/pkg/util/source"
)

func Test_Parse_01(t *testing.T) {
	x := checkParse(t, "4'hF", 15, 4)
	checkRender(t, x.BinaryString(), "4'b1111")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "4'b1010", 10, 4)
	checkParse(t, "8'b1010_1010", 0xAA, 8)
	checkParse(t, "8'b_1010_1010_", 0xAA, 8)
	checkParse(t, "1'b1", 1, 1)
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "3'o7", 7, 3)
	checkParse(t, "6'o17", 15, 6)
	checkParse(t, "4'o17", 15, 4)
	checkParse(t, "12'o7_7_7_7", 0xFFF, 12)
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "8'hff", 0xFF, 8)
	checkParse(t, "8'hFf", 0xFF, 8)
	checkParse(t, "16'hdead", 0xDEAD, 16)
	checkParse(t, "6'h3F", 0x3F, 6)
	checkParse(t, "63'h7FFF_FFFF_FFFF_FFFF", Mask(63), 63)
}

func Test_Parse_05(t *testing.T) {
	checkParse(t, "8'd0", 0, 8)
	checkParse(t, "8'd255", 255, 8)
	checkParse(t, "8'd0000255", 255, 8)
	checkParse(t, "16'd65_535", 65535, 16)
	checkParse(t, "1'd1", 1, 1)
}

func Test_Parse_06(t *testing.T) {
	// Grammar violations
	checkParseFails(t, "", ErrParse)
	checkParseFails(t, "8", ErrParse)
	checkParseFails(t, "8'", ErrParse)
	checkParseFails(t, "8'h", ErrParse)
	checkParseFails(t, "8'h__", ErrParse)
	checkParseFails(t, "'hFF", ErrParse)
	checkParseFails(t, "8hFF", ErrParse)
	checkParseFails(t, "8'xFF", ErrParse)
	checkParseFails(t, "8'HFF", ErrParse)
	checkParseFails(t, "8'hFG", ErrParse)
	checkParseFails(t, "8'hF F", ErrParse)
	checkParseFails(t, " 8'hFF", ErrParse)
	checkParseFails(t, "8'hFF ", ErrParse)
	checkParseFails(t, "8'hFF'", ErrParse)
	checkParseFails(t, "8_'hFF", ErrParse)
	checkParseFails(t, "-8'hFF", ErrParse)
	checkParseFails(t, "4'b1012", ErrParse)
	checkParseFails(t, "6'o78", ErrParse)
	checkParseFails(t, "8'd12A", ErrParse)
}

func Test_Parse_07(t *testing.T) {
	// Digit counts
	checkParseFails(t, "8'hF", ErrWidthMismatch)
	checkParseFails(t, "4'hFF", ErrWidthMismatch)
	checkParseFails(t, "4'b101", ErrWidthMismatch)
	checkParseFails(t, "4'b10101", ErrWidthMismatch)
	checkParseFails(t, "6'o7", ErrWidthMismatch)
	checkParseFails(t, "4'b00_000", ErrWidthMismatch)
}

func Test_Parse_08(t *testing.T) {
	// Ranges
	checkParseFails(t, "8'd256", ErrRange)
	checkParseFails(t, "6'h7F", ErrRange)
	checkParseFails(t, "4'o20", ErrRange)
	checkParseFails(t, "63'd9223372036854775808", ErrRange)
	checkParseFails(t, "8'd99999999999999999999999", ErrRange)
}

func Test_Parse_09(t *testing.T) {
	// Widths
	checkParseFails(t, "0'b0", ErrInvalidWidth)
	checkParseFails(t, "64'h0000000000000000", ErrInvalidWidth)
	checkParseFails(t, "99999999999999999999999'b0", ErrInvalidWidth)
}

func Test_Parse_10(t *testing.T) {
	checkSyntaxError(t, "8'hFG", 4, 5)
	checkSyntaxError(t, "8'xFF", 2, 3)
	checkSyntaxError(t, "8'hF F", 4, 5)
	checkSyntaxError(t, "8'", 2, 2)
	checkSyntaxError(t, "8'h__", 2, 5)
	checkSyntaxError(t, "'hFF", 0, 1)
}

func Test_MustParse_01(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse did not panic")
		}
	}()
	//
	MustParse("8'hF")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkParse(t *testing.T, text string, value uint64, width uint) BitVector {
	t.Helper()
	//
	x, err := Parse(text)
	//
	if checkError(t, err, nil) {
		checkInvariant(t, x)
		//
		if x.Uint64() != value || x.Width() != width {
			t.Errorf("parsing \"%s\" gave %s (expected %d'd%d)", text, x.String(), width, value)
		}
	}
	//
	return x
}

func checkParseFails(t *testing.T, text string, expected error) {
	t.Helper()
	//
	_, err := Parse(text)
	checkError(t, err, expected)
}

func checkSyntaxError(t *testing.T, text string, start, end int) {
	t.Helper()
	//
	var (
		_, err = Parse(text)
		serr   *source.SyntaxError
	)
	//
	if !errors.As(err, &serr) {
		t.Errorf("parsing \"%s\" gave %v (expected syntax error)", text, err)
	} else if span := serr.Span(); span.Start() != start || span.End() != end {
		t.Errorf("parsing \"%s\" reported error at %d:%d (expected %d:%d)", text, span.Start(), span.End(), start, end)
	} else if serr.Text() != text {
		t.Errorf("syntax error has text \"%s\"", serr.Text())
	}
}
