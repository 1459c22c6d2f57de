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
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-bitvec/pkg/util/source"
	"github.com/consensys/go-bitvec/pkg/util/source/lex"
)

// Token kinds for literals.  A word is a run of letters, digits and
// underscores, whilst a tick is the "'" separating the width from the base.
const (
	endOf uint = iota
	word
	tick
)

// Rule for describing words, which covers the width as well as the base
// character and its digits.
var wordRule lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'),
	lex.Unit('_')))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('\''), tick),
	lex.Rule(wordRule, word),
	lex.Rule(lex.Eof[rune](), endOf),
}

// Parse a bit vector from a literal of the form <width>'<base><digits>, such
// as "8'hFF", "4'b1010", "6'o77" or "12'd4095".  Underscores in the digits are
// ignored.  For binary, octal and hexadecimal literals the number of digits
// must exactly cover the width (rounding up to a whole digit), whilst decimal
// literals may have any number of digits provided the value fits.
func Parse(text string) (BitVector, error) {
	var (
		items  = []rune(text)
		lexer  = lex.NewLexer(items, rules...)
		tokens = lexer.Collect()
	)
	// Check whether lexing got stuck.
	if lexer.Remaining() != 0 {
		index := int(lexer.Index())
		return BitVector{}, syntaxError(items, source.NewSpan(index, index+1), "unexpected character")
	}
	// Check token structure.
	for i, kind := range []uint{word, tick, word, endOf} {
		if i >= len(tokens) {
			break
		} else if tokens[i].Kind != kind {
			return BitVector{}, syntaxError(items, tokens[i].Span, expected(kind))
		}
	}
	// Sanity check
	if len(tokens) != 4 {
		return BitVector{}, syntaxError(items, source.NewSpan(len(items), len(items)), "unexpected end of literal")
	}
	//
	width, err := parseWidth(items, tokens[0].Span)
	if err != nil {
		return BitVector{}, err
	}
	//
	return parseDigits(items, tokens[2].Span, width)
}

// MustParse parses a literal, panicking if it is malformed.  This is intended
// for literals known to be correct, such as constants in tests.
func MustParse(text string) BitVector {
	return Must(Parse(text))
}

func parseWidth(items []rune, span source.Span) (uint, error) {
	var text = string(items[span.Start():span.End()])
	//
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, syntaxError(items, span, "expected decimal width")
		}
	}
	//
	width, err := strconv.ParseUint(text, 10, 0)
	//
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidWidth, text)
	} else if err := CheckWidth(uint(width)); err != nil {
		return 0, err
	}
	//
	return uint(width), nil
}

func parseDigits(items []rune, span source.Span, width uint) (BitVector, error) {
	var (
		base   = items[span.Start()]
		digits strings.Builder
		radix  int
	)
	//
	switch base {
	case 'b':
		radix = 2
	case 'o':
		radix = 8
	case 'd':
		radix = 10
	case 'h':
		radix = 16
	default:
		return BitVector{}, syntaxError(items, source.NewSpan(span.Start(), span.Start()+1), "unknown base")
	}
	// Strip separators, whilst checking every digit belongs to the base.
	for i := span.Start() + 1; i < span.End(); i++ {
		if items[i] == '_' {
			continue
		} else if digitValue(items[i]) >= radix {
			return BitVector{}, syntaxError(items, source.NewSpan(i, i+1), fmt.Sprintf("invalid digit for base %d", radix))
		}
		//
		digits.WriteRune(items[i])
	}
	//
	if digits.Len() == 0 {
		return BitVector{}, syntaxError(items, span, "missing digits")
	} else if radix != 10 {
		bpd := bitsPerDigit(byte(base))
		// Determine number of digits required to cover the width
		if count := (width + bpd - 1) / bpd; uint(digits.Len()) != count {
			return BitVector{}, fmt.Errorf("%w: %d digits given for u%d (expected %d)", ErrWidthMismatch,
				digits.Len(), width, count)
		}
	}
	//
	value, err := strconv.ParseUint(digits.String(), radix, 64)
	//
	if errors.Is(err, strconv.ErrRange) {
		return BitVector{}, fmt.Errorf("%w: %s does not fit in u%d", ErrRange, digits.String(), width)
	} else if err != nil {
		// Should be unreachable, since digits were already checked.
		return BitVector{}, syntaxError(items, span, err.Error())
	}
	//
	return FromUnsigned(value, width)
}

// digitValue returns the value of a (hexadecimal) digit, or 16 for anything
// which is not a digit.
func digitValue(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return 16
	}
}

func expected(kind uint) string {
	switch kind {
	case word:
		return "expected width or digits"
	case tick:
		return "expected '"
	default:
		return "unexpected trailing characters"
	}
}

func syntaxError(items []rune, span source.Span, msg string) error {
	return fmt.Errorf("%w: %w", ErrParse, source.NewSyntaxError(items, span, msg))
}
