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
	"math/bits"
)

// Add two bit vectors of equal width, wrapping around on overflow.
func (x BitVector) Add(y BitVector) (BitVector, error) {
	r, _, err := x.AddOverflow(y)
	return r, err
}

// AddOverflow adds two bit vectors of equal width, additionally reporting
// whether the unsigned result wrapped around.
func (x BitVector) AddOverflow(y BitVector) (BitVector, bool, error) {
	if err := checkSameWidth("add", x, y); err != nil {
		return BitVector{}, false, err
	}
	// Cannot overflow 64 bits, since width < 64.
	sum := x.value + y.value
	//
	return x.wrap(sum), sum > Mask(x.width), nil
}

// Sub subtracts one bit vector from another of equal width, wrapping around on
// underflow.
func (x BitVector) Sub(y BitVector) (BitVector, error) {
	r, _, err := x.SubOverflow(y)
	return r, err
}

// SubOverflow subtracts one bit vector from another of equal width,
// additionally reporting whether the unsigned result wrapped around (i.e. a
// borrow occurred).
func (x BitVector) SubOverflow(y BitVector) (BitVector, bool, error) {
	if err := checkSameWidth("sub", x, y); err != nil {
		return BitVector{}, false, err
	}
	//
	return x.wrap(x.value - y.value), y.value > x.value, nil
}

// Mul multiplies two bit vectors of equal width, keeping only the low bits of
// the product.
func (x BitVector) Mul(y BitVector) (BitVector, error) {
	r, _, err := x.MulOverflow(y)
	return r, err
}

// MulOverflow multiplies two bit vectors of equal width, additionally
// reporting whether any bits of the full product were discarded.
func (x BitVector) MulOverflow(y BitVector) (BitVector, bool, error) {
	if err := checkSameWidth("mul", x, y); err != nil {
		return BitVector{}, false, err
	}
	//
	hi, lo := bits.Mul64(x.value, y.value)
	//
	return x.wrap(lo), hi != 0 || lo > Mask(x.width), nil
}

// Div performs unsigned division of two bit vectors of equal width.
func (x BitVector) Div(y BitVector) (BitVector, error) {
	if err := checkDivisor("div", x, y); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{x.value / y.value, x.width}, nil
}

// Rem computes the unsigned remainder of two bit vectors of equal width.
func (x BitVector) Rem(y BitVector) (BitVector, error) {
	if err := checkDivisor("rem", x, y); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{x.value % y.value, x.width}, nil
}

// Inc returns this bit vector plus one, wrapping around on overflow.
func (x BitVector) Inc() BitVector {
	return x.wrap(x.value + 1)
}

// Dec returns this bit vector minus one, wrapping around on underflow.
func (x BitVector) Dec() BitVector {
	return x.wrap(x.value - 1)
}

// Neg returns the two's complement negation of this bit vector.
func (x BitVector) Neg() BitVector {
	return x.wrap(-x.value)
}

// AddAssign updates this bit vector with the result of an addition.
func (p *BitVector) AddAssign(y BitVector) error {
	return p.assign(p.Add(y))
}

// SubAssign updates this bit vector with the result of a subtraction.
func (p *BitVector) SubAssign(y BitVector) error {
	return p.assign(p.Sub(y))
}

// MulAssign updates this bit vector with the result of a multiplication.
func (p *BitVector) MulAssign(y BitVector) error {
	return p.assign(p.Mul(y))
}

// DivAssign updates this bit vector with the result of a division.  On
// failure, this bit vector is left unchanged.
func (p *BitVector) DivAssign(y BitVector) error {
	return p.assign(p.Div(y))
}

// RemAssign updates this bit vector with the result of a remainder.
func (p *BitVector) RemAssign(y BitVector) error {
	return p.assign(p.Rem(y))
}

// Increment this bit vector in place.
func (p *BitVector) Increment() {
	*p = p.Inc()
}

// Decrement this bit vector in place.
func (p *BitVector) Decrement() {
	*p = p.Dec()
}

// wrap a raw 64-bit result into a bit vector of the same width as this,
// discarding any bits above the width.
func (x BitVector) wrap(value uint64) BitVector {
	return BitVector{value & Mask(x.width), x.width}
}

// assign updates this bit vector only when the operation which produced r was
// successful.
func (p *BitVector) assign(r BitVector, err error) error {
	if err != nil {
		return err
	}
	//
	*p = r
	//
	return nil
}

func checkDivisor(op string, x, y BitVector) error {
	if err := checkSameWidth(op, x, y); err != nil {
		return err
	} else if y.value == 0 {
		return fmt.Errorf("%w: %s of %s", ErrDivideByZero, op, x.String())
	}
	//
	return nil
}
