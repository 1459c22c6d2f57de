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
)

// And computes the bitwise conjunction of two bit vectors of equal width.
func (x BitVector) And(y BitVector) (BitVector, error) {
	if err := checkSameWidth("and", x, y); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{x.value & y.value, x.width}, nil
}

// Or computes the bitwise disjunction of two bit vectors of equal width.
func (x BitVector) Or(y BitVector) (BitVector, error) {
	if err := checkSameWidth("or", x, y); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{x.value | y.value, x.width}, nil
}

// Xor computes the bitwise exclusive-or of two bit vectors of equal width.
func (x BitVector) Xor(y BitVector) (BitVector, error) {
	if err := checkSameWidth("xor", x, y); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{x.value ^ y.value, x.width}, nil
}

// Not flips every bit of this bit vector.
func (x BitVector) Not() BitVector {
	return x.wrap(^x.value)
}

// Shl shifts this bit vector left by n bits.  Bits shifted beyond the width are
// discarded, and the width is unchanged.  The shift amount must be less than
// the width.
func (x BitVector) Shl(n uint) (BitVector, error) {
	if err := x.checkShift(n); err != nil {
		return BitVector{}, err
	}
	//
	return x.wrap(x.value << n), nil
}

// Ashr performs an arithmetic right shift by n bits, such that vacated bits
// are filled with copies of the sign bit.
func (x BitVector) Ashr(n uint) (BitVector, error) {
	if err := x.checkShift(n); err != nil {
		return BitVector{}, err
	}
	//
	var (
		mask  = Mask(x.width)
		value = x.value >> n
	)
	// Fill the top n bits when the sign bit was set
	if x.IsNegative() {
		value |= mask &^ (mask >> n)
	}
	//
	return BitVector{value, x.width}, nil
}

// Lshr performs a logical right shift by n bits, such that vacated bits are
// filled with zeros.
func (x BitVector) Lshr(n uint) (BitVector, error) {
	if err := x.checkShift(n); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{x.value >> n, x.width}, nil
}

// ConcatBits appends a literal sequence of bits (e.g. "10_01") onto the least
// significant end of this bit vector.  Underscores are ignored.  The result is
// wider than this bit vector by the number of appended bits.
func (x BitVector) ConcatBits(literal string) (BitVector, error) {
	var n uint
	// Validate the literal before touching anything.
	for i, c := range literal {
		switch c {
		case '_':
		case '0', '1':
			n++
		default:
			return BitVector{}, fmt.Errorf("%w: invalid bit %q at offset %d in \"%s\"", ErrParse, c, i, literal)
		}
	}
	//
	if n == 0 {
		return BitVector{}, fmt.Errorf("%w: no bits in \"%s\"", ErrParse, literal)
	} else if err := checkGrowth(x.width + n); err != nil {
		return BitVector{}, err
	}
	//
	var value = x.value
	//
	for _, c := range literal {
		if c != '_' {
			value = (value << 1) | uint64(c-'0')
		}
	}
	//
	return BitVector{value, x.width + n}, nil
}

// Concat appends another bit vector onto the least significant end of this bit
// vector, such that the result has width x.Width() + low.Width().
func (x BitVector) Concat(low BitVector) (BitVector, error) {
	var width = x.width + low.width
	//
	if err := checkGrowth(width); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{(x.value << low.width) | low.value, width}, nil
}

// AndAssign updates this bit vector with the result of a bitwise conjunction.
func (p *BitVector) AndAssign(y BitVector) error {
	return p.assign(p.And(y))
}

// OrAssign updates this bit vector with the result of a bitwise disjunction.
func (p *BitVector) OrAssign(y BitVector) error {
	return p.assign(p.Or(y))
}

// XorAssign updates this bit vector with the result of a bitwise exclusive-or.
func (p *BitVector) XorAssign(y BitVector) error {
	return p.assign(p.Xor(y))
}

// ShlAssign shifts this bit vector left in place.
func (p *BitVector) ShlAssign(n uint) error {
	return p.assign(p.Shl(n))
}

// AshrAssign shifts this bit vector right arithmetically in place.
func (p *BitVector) AshrAssign(n uint) error {
	return p.assign(p.Ashr(n))
}

// LshrAssign shifts this bit vector right logically in place.
func (p *BitVector) LshrAssign(n uint) error {
	return p.assign(p.Lshr(n))
}

// ConcatBitsAssign appends a literal sequence of bits in place, thus widening
// this bit vector.
func (p *BitVector) ConcatBitsAssign(literal string) error {
	return p.assign(p.ConcatBits(literal))
}

// ConcatAssign appends another bit vector in place.
func (p *BitVector) ConcatAssign(low BitVector) error {
	return p.assign(p.Concat(low))
}

func (x BitVector) checkShift(n uint) error {
	if n >= x.width {
		return fmt.Errorf("%w: shift by %d exceeds u%d", ErrInvalidArgument, n, x.width)
	}
	//
	return nil
}
