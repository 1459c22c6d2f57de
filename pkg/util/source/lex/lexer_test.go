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
package lex

import (
	"testing"

	"github.com/consensys/go-bitvec/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func TestLexer_00(t *testing.T) {
	var tokens = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{TICK, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "'", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{NUMBER, source.NewSpan(0, 1)},
		{TICK, source.NewSpan(1, 2)},
		{LETTER, source.NewSpan(2, 3)},
		{NUMBER, source.NewSpan(3, 7)},
		{END_OF, source.NewSpan(7, 7)},
	}

	checkLexer(t, "4'b1010", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens = []Token{
		{NUMBER, source.NewSpan(0, 2)},
	}

	checkLexer(t, "12 ", 1, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens []Token

	checkLexer(t, "?", 1, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens = []Token{
		{LETTER, source.NewSpan(0, 1)},
		{LETTER, source.NewSpan(1, 2)},
		{NUMBER, source.NewSpan(2, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "hB1_0", 0, tokens...)
}

func TestScanners(t *testing.T) {
	assert.Equal(t, uint(0), Unit('a', 'b')([]rune("ac")))
	assert.Equal(t, uint(2), Unit('a', 'b')([]rune("abc")))
	assert.Equal(t, uint(0), Unit('a', 'b')([]rune("a")))
	assert.Equal(t, uint(1), Within('0', '9')([]rune("5x")))
	assert.Equal(t, uint(0), Within('0', '9')([]rune("x5")))
	assert.Equal(t, uint(3), Many(Within('0', '9'))([]rune("123x")))
	assert.Equal(t, uint(0), Many(Within('0', '9'))([]rune("")))
	assert.Equal(t, uint(1), Or(Unit('x'), Unit('y'))([]rune("y")))
	assert.Equal(t, uint(1), Eof[rune]()([]rune("")))
	assert.Equal(t, uint(0), Eof[rune]()([]rune("a")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const TICK uint = 1
const LETTER uint = 2
const NUMBER uint = 3

// Rule for describing numbers
var number Scanner[rune] = Many(Or(Within('0', '9'), Unit('_')))

// Rule for describing single letters
var letter Scanner[rune] = Or(Within('a', 'z'), Within('A', 'Z'))

// lexing rules
var rules []LexRule[rune] = []LexRule[rune]{
	Rule(Unit('\''), TICK),
	Rule(letter, LETTER),
	Rule(number, NUMBER),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer[rune](items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	//
	assert.Equal(t, expected, tokens)
	assert.Equal(t, remainder, lexer.Remaining(), "unmatched items: %v", string(items[min(int(lexer.Index()), len(items)):]))
}
