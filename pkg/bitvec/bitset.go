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

	"github.com/bits-and-blooms/bitset"
)

// ToBitSet returns the set of indices of bits which are set in this bit
// vector.  The resulting set has length equal to the width.
func ToBitSet(x BitVector) *bitset.BitSet {
	var set = bitset.New(x.width)
	//
	for i := uint(0); i < x.width; i++ {
		if (x.value>>i)&1 == 1 {
			set.Set(i)
		}
	}
	//
	return set
}

// FromBitSet constructs a bit vector of a given width whose set bits are
// exactly the members of a given set.  This fails if the set contains an index
// at or above the width.
func FromBitSet(set *bitset.BitSet, width uint) (BitVector, error) {
	if err := CheckWidth(width); err != nil {
		return BitVector{}, err
	}
	//
	var value uint64
	//
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if i >= width {
			return BitVector{}, fmt.Errorf("%w: bit %d set beyond u%d", ErrRange, i, width)
		}
		//
		value |= uint64(1) << i
	}
	//
	return BitVector{value, width}, nil
}
