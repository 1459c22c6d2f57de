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
package bls12_377

import (
	"fmt"

	"github.com/consensys/go-bitvec/pkg/bitvec"
)

// FromBitVector embeds the unsigned interpretation of a bit vector into the
// field.  Since bit vectors are at most 63 bits wide, this is always exact.
func FromBitVector(x bitvec.BitVector) Element {
	return Element{}.SetUint64(x.Uint64())
}

// FromSignedBitVector embeds the signed interpretation of a bit vector into
// the field, such that negative values map to their additive inverses.
func FromSignedBitVector(x bitvec.BitVector) Element {
	var (
		v    = x.Int64()
		elem Element
	)
	//
	if v >= 0 {
		return elem.SetUint64(uint64(v))
	}
	// Magnitude of v cannot overflow, since bit vectors are narrower than 64
	// bits.
	elem = elem.SetUint64(uint64(-v))
	elem.Element.Neg(&elem.Element)
	//
	return elem
}

// ToBitVector extracts a bit vector of the given width from a field element.
// This fails if the element does not represent an unsigned integer which fits
// within that width.
func ToBitVector(x Element, width uint) (bitvec.BitVector, error) {
	if !x.IsUint64() {
		return bitvec.BitVector{}, fmt.Errorf("%w: %s does not fit in u%d", bitvec.ErrRange, x.String(), width)
	}
	//
	return bitvec.FromUnsigned(x.Uint64(), width)
}
