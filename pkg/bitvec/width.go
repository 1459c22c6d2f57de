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
	"math/bits"
)

// MaxWidth is the largest bitwidth a BitVector can have.  This is one less
// than the native word size, which ensures that 1<<width never overflows.
const MaxWidth uint = bits.UintSize - 1

// ErrInvalidWidth is reported when a width lies outside [1, MaxWidth], or when
// an extension or truncation goes in the wrong direction.
var ErrInvalidWidth = errors.New("invalid width")

// ErrRange is reported when a value does not fit within the declared width.
var ErrRange = errors.New("value out of range")

// ErrParse is reported when literal text does not match the literal grammar.
var ErrParse = errors.New("malformed literal")

// ErrWidthMismatch is reported when a binary operator is applied to operands
// of different widths, or when a literal's digit count does not match its
// declared width.
var ErrWidthMismatch = errors.New("width mismatch")

// ErrDivideByZero is reported when dividing (or taking the remainder) by zero.
var ErrDivideByZero = errors.New("division by zero")

// ErrInvalidArgument is reported for out of bounds shift amounts and slice
// indices.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrWidthOverflow is reported when a concatenation or extension would produce
// a width exceeding MaxWidth.
var ErrWidthOverflow = errors.New("width overflow")

// ErrIndex is reported when a bit index lies outside the bit vector.
var ErrIndex = errors.New("bit index out of bounds")

// IsValidWidth checks whether a given width can be used for a BitVector.
func IsValidWidth(width uint) bool {
	return width >= 1 && width <= MaxWidth
}

// CheckWidth returns an error if the given width cannot be used for a
// BitVector.
func CheckWidth(width uint) error {
	if !IsValidWidth(width) {
		return fmt.Errorf("%w: %d (expected 1..%d)", ErrInvalidWidth, width, MaxWidth)
	}
	//
	return nil
}

// Mask returns a word with the lowest width bits set.
func Mask(width uint) uint64 {
	return (uint64(1) << width) - 1
}

// checkGrowth determines whether a result width is permitted for an operation
// which widens its receiver.
func checkGrowth(width uint) error {
	if width > MaxWidth {
		return fmt.Errorf("%w: %w: %d exceeds %d", ErrWidthOverflow, ErrInvalidWidth, width, MaxWidth)
	}
	//
	return nil
}

func checkSameWidth(op string, x, y BitVector) error {
	if x.width != y.width {
		return fmt.Errorf("%w: %s of u%d and u%d", ErrWidthMismatch, op, x.width, y.width)
	}
	//
	return nil
}
