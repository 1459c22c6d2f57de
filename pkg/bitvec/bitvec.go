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
	"cmp"
	"fmt"
)

// BitVector is an unsigned bit pattern of a fixed width between 1 and
// MaxWidth.  Arithmetic on bit vectors wraps modulo 2^width, and the pattern
// can be interpreted as either signed (two's complement) or unsigned when it is
// read.  BitVectors are plain values, so copying one never aliases another.
// The zero value has width zero and is not a valid bit vector.
type BitVector struct {
	// Underlying bit pattern, which is always strictly below 2^width.
	value uint64
	// Number of significant bits.
	width uint
}

// Unsigned captures the native unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed captures the native signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// FromUnsigned constructs a bit vector of the given width from an unsigned
// value.  This fails if the width is invalid, or the value cannot be
// represented in that many bits.
func FromUnsigned(value uint64, width uint) (BitVector, error) {
	if err := CheckWidth(width); err != nil {
		return BitVector{}, err
	} else if value > Mask(width) {
		return BitVector{}, fmt.Errorf("%w: %d does not fit in u%d", ErrRange, value, width)
	}
	//
	return BitVector{value, width}, nil
}

// FromSigned constructs a bit vector of the given width holding the two's
// complement encoding of a signed value.  This fails if the width is invalid,
// or the value lies outside [-2^(width-1), 2^(width-1)).
func FromSigned(value int64, width uint) (BitVector, error) {
	if err := CheckWidth(width); err != nil {
		return BitVector{}, err
	}
	//
	var (
		bound = int64(1) << (width - 1)
	)
	//
	if value < -bound || value >= bound {
		return BitVector{}, fmt.Errorf("%w: %d does not fit in i%d", ErrRange, value, width)
	}
	//
	return BitVector{uint64(value) & Mask(width), width}, nil
}

// OfUnsigned constructs a bit vector from any native unsigned integer.
func OfUnsigned[T Unsigned](value T, width uint) (BitVector, error) {
	return FromUnsigned(uint64(value), width)
}

// OfSigned constructs a bit vector from any native signed integer.
func OfSigned[T Signed](value T, width uint) (BitVector, error) {
	return FromSigned(int64(value), width)
}

// Zero returns the all zeros bit vector of a given width.
func Zero(width uint) (BitVector, error) {
	return FromUnsigned(0, width)
}

// Ones returns the all ones bit vector of a given width.
func Ones(width uint) (BitVector, error) {
	if err := CheckWidth(width); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{Mask(width), width}, nil
}

// Width returns the number of bits in this bit vector.
func (x BitVector) Width() uint {
	return x.width
}

// Uint64 returns the bit pattern interpreted as an unsigned integer.
func (x BitVector) Uint64() uint64 {
	return x.value
}

// Int64 returns the bit pattern interpreted as a two's complement signed
// integer.
func (x BitVector) Int64() int64 {
	var sign = uint64(1) << (x.width - 1)
	//
	if x.value&sign == 0 {
		return int64(x.value)
	}
	// Clear sign bit, then subtract its weight.
	return int64(x.value^sign) - int64(sign)
}

// ToUnsigned converts a bit vector into a native unsigned integer type, failing
// if the (unsigned) value does not fit.
func ToUnsigned[T Unsigned](x BitVector) (T, error) {
	var r = T(x.value)
	//
	if uint64(r) != x.value {
		return 0, fmt.Errorf("%w: %d does not fit in %T", ErrRange, x.value, r)
	}
	//
	return r, nil
}

// ToSigned converts a bit vector into a native signed integer type, using the
// two's complement interpretation, failing if that value does not fit.
func ToSigned[T Signed](x BitVector) (T, error) {
	var (
		v = x.Int64()
		r = T(v)
	)
	//
	if int64(r) != v {
		return 0, fmt.Errorf("%w: %d does not fit in %T", ErrRange, v, r)
	}
	//
	return r, nil
}

// IsZero checks whether every bit is zero.
func (x BitVector) IsZero() bool {
	return x.value == 0
}

// IsNegative checks whether the most significant bit is set.
func (x BitVector) IsNegative() bool {
	return x.value>>(x.width-1) == 1
}

// Equal checks whether two bit vectors have both the same width and the same
// bit pattern.
func (x BitVector) Equal(y BitVector) bool {
	return x.width == y.width && x.value == y.value
}

// Cmp compares the unsigned interpretations of two bit vectors, returning -1,
// 0 or 1.  The widths need not agree.
func (x BitVector) Cmp(y BitVector) int {
	return cmp.Compare(x.value, y.value)
}

// CmpSigned compares the signed interpretations of two bit vectors, returning
// -1, 0 or 1.  The widths need not agree.
func (x BitVector) CmpSigned(y BitVector) int {
	return cmp.Compare(x.Int64(), y.Int64())
}

// Set this bit vector to match another.
func (p *BitVector) Set(other BitVector) {
	*p = other
}

// Must unwraps the result of an operation which cannot fail for the given
// arguments, panicking otherwise.
func Must(x BitVector, err error) BitVector {
	if err != nil {
		panic(err)
	}
	//
	return x
}
