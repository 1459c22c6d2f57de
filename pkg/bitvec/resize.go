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

// SignExtend widens this bit vector to a given width, replicating the most
// significant bit into every new bit.
func (x BitVector) SignExtend(width uint) (BitVector, error) {
	if err := x.checkExtension(width); err != nil {
		return BitVector{}, err
	} else if !x.IsNegative() {
		return BitVector{x.value, width}, nil
	}
	// Set every bit between the old and new widths.
	return BitVector{x.value | (Mask(width) &^ Mask(x.width)), width}, nil
}

// ZeroExtend widens this bit vector to a given width, such that every new bit
// is zero.
func (x BitVector) ZeroExtend(width uint) (BitVector, error) {
	if err := x.checkExtension(width); err != nil {
		return BitVector{}, err
	}
	//
	return BitVector{x.value, width}, nil
}

// Truncate narrows this bit vector to a given width, discarding all bits above
// that width.
func (x BitVector) Truncate(width uint) (BitVector, error) {
	if width == 0 || width > x.width {
		return BitVector{}, fmt.Errorf("%w: cannot truncate u%d to u%d", ErrInvalidWidth, x.width, width)
	}
	//
	return BitVector{x.value & Mask(width), width}, nil
}

// Slice extracts the bits in the range [start, end) as a new bit vector, where
// bit 0 is the least significant.  The bounds may be given in either order,
// must differ, and must both lie within [0, width].
func (x BitVector) Slice(start, end uint) (BitVector, error) {
	if start > x.width || end > x.width {
		return BitVector{}, fmt.Errorf("%w: slice [%d, %d) outside u%d", ErrInvalidArgument, start, end, x.width)
	} else if start == end {
		return BitVector{}, fmt.Errorf("%w: empty slice [%d, %d)", ErrInvalidArgument, start, end)
	} else if start > end {
		start, end = end, start
	}
	//
	width := end - start
	//
	return BitVector{(x.value >> start) & Mask(width), width}, nil
}

// SliceFrom extracts every bit from a given start index upwards.  This is
// equivalent to x.Slice(start, x.Width()).
func (x BitVector) SliceFrom(start uint) (BitVector, error) {
	return x.Slice(start, x.width)
}

// Bit returns the value of the iᵗʰ bit, where bit 0 is the least significant.
func (x BitVector) Bit(i uint) (bool, error) {
	if err := x.checkIndex(i); err != nil {
		return false, err
	}
	//
	return (x.value>>i)&1 == 1, nil
}

// WithBit returns a copy of this bit vector with the iᵗʰ bit set to a given
// value.
func (x BitVector) WithBit(i uint, val bool) (BitVector, error) {
	if err := x.checkIndex(i); err != nil {
		return BitVector{}, err
	}
	//
	mask := uint64(1) << i
	//
	if val {
		return BitVector{x.value | mask, x.width}, nil
	}
	//
	return BitVector{x.value &^ mask, x.width}, nil
}

// PopCount returns the number of bits which are set.
func (x BitVector) PopCount() uint {
	return uint(bits.OnesCount64(x.value))
}

// LeadingZeros returns the number of zero bits above the most significant set
// bit, counting from the top of this bit vector (not the underlying word).
func (x BitVector) LeadingZeros() uint {
	return uint(bits.LeadingZeros64(x.value)) - (64 - x.width)
}

// SignExtendAssign widens this bit vector in place.
func (p *BitVector) SignExtendAssign(width uint) error {
	return p.assign(p.SignExtend(width))
}

// ZeroExtendAssign widens this bit vector in place.
func (p *BitVector) ZeroExtendAssign(width uint) error {
	return p.assign(p.ZeroExtend(width))
}

// TruncateAssign narrows this bit vector in place.
func (p *BitVector) TruncateAssign(width uint) error {
	return p.assign(p.Truncate(width))
}

func (x BitVector) checkExtension(width uint) error {
	if err := checkGrowth(width); err != nil {
		return err
	} else if width < x.width {
		return fmt.Errorf("%w: cannot extend u%d to u%d", ErrInvalidWidth, x.width, width)
	}
	//
	return nil
}

func (x BitVector) checkIndex(i uint) error {
	if i >= x.width {
		return fmt.Errorf("%w: bit %d of u%d", ErrIndex, i, x.width)
	}
	//
	return nil
}
