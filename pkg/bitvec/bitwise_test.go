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
	"math/rand/v2"
	"testing"
)

func Test_Bitwise_01(t *testing.T) {
	x := MustParse("8'b1100_1010")
	y := MustParse("8'b1010_0110")
	//
	checkBinary(t, "and", x, y, BitVector.And, MustParse("8'b1000_0010"))
	checkBinary(t, "or", x, y, BitVector.Or, MustParse("8'b1110_1110"))
	checkBinary(t, "xor", x, y, BitVector.Xor, MustParse("8'b0110_1100"))
	//
	if r := x.Not(); !r.Equal(MustParse("8'b0011_0101")) {
		t.Errorf("~%s gave %s", x.String(), r.String())
	}
}

func Test_Bitwise_02(t *testing.T) {
	x := MustParse("8'hFF")
	y := MustParse("4'hF")
	//
	for _, op := range []func(BitVector, BitVector) (BitVector, error){BitVector.And, BitVector.Or, BitVector.Xor} {
		_, err := op(x, y)
		checkError(t, err, ErrWidthMismatch)
	}
	//
	checkError(t, x.AndAssign(y), ErrWidthMismatch)
	checkError(t, x.OrAssign(y), ErrWidthMismatch)
	checkError(t, x.XorAssign(y), ErrWidthMismatch)
	//
	if !x.Equal(MustParse("8'hFF")) {
		t.Errorf("failed assignment modified receiver: %s", x.String())
	}
}

func Test_Bitwise_03(t *testing.T) {
	x := MustParse("4'b1100")
	//
	if err := x.AndAssign(MustParse("4'b0110")); err != nil || x.Uint64() != 0b0100 {
		t.Errorf("&= gave %s (%v)", x.String(), err)
	}
	//
	if err := x.OrAssign(MustParse("4'b0011")); err != nil || x.Uint64() != 0b0111 {
		t.Errorf("|= gave %s (%v)", x.String(), err)
	}
	//
	if err := x.XorAssign(MustParse("4'b1111")); err != nil || x.Uint64() != 0b1000 {
		t.Errorf("^= gave %s (%v)", x.String(), err)
	}
}

func Test_Not_01(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	//
	for i := 0; i < 1000; i++ {
		x := randomBitVector(rng, 1+rng.UintN(MaxWidth))
		r := x.Not()
		checkInvariant(t, r)
		//
		if !r.Not().Equal(x) || r.PopCount()+x.PopCount() != x.Width() {
			t.Errorf("~%s gave %s", x.String(), r.String())
		}
	}
}

func Test_Shl_01(t *testing.T) {
	x := MustParse("4'b1011")
	//
	checkShift(t, "<<", x, 0, BitVector.Shl, MustParse("4'b1011"))
	checkShift(t, "<<", x, 1, BitVector.Shl, MustParse("4'b0110"))
	checkShift(t, "<<", x, 3, BitVector.Shl, MustParse("4'b1000"))
	checkShiftFails(t, x, 4, BitVector.Shl)
	checkShiftFails(t, x, 100, BitVector.Shl)
}

func Test_Ashr_01(t *testing.T) {
	x := MustParse("8'b1001_0110")
	//
	checkShift(t, ">>>", x, 0, BitVector.Ashr, MustParse("8'b1001_0110"))
	checkShift(t, ">>>", x, 1, BitVector.Ashr, MustParse("8'b1100_1011"))
	checkShift(t, ">>>", x, 4, BitVector.Ashr, MustParse("8'b1111_1001"))
	checkShift(t, ">>>", x, 7, BitVector.Ashr, MustParse("8'b1111_1111"))
	checkShiftFails(t, x, 8, BitVector.Ashr)
}

func Test_Ashr_02(t *testing.T) {
	x := MustParse("8'b0101_0110")
	//
	checkShift(t, ">>>", x, 1, BitVector.Ashr, MustParse("8'b0010_1011"))
	checkShift(t, ">>>", x, 7, BitVector.Ashr, MustParse("8'b0000_0000"))
}

func Test_Ashr_03(t *testing.T) {
	// Arithmetic shift agrees with signed division by powers of two, rounding
	// towards negative infinity.
	rng := rand.New(rand.NewPCG(5, 6))
	//
	for i := 0; i < 1000; i++ {
		w := 1 + rng.UintN(MaxWidth)
		x := randomBitVector(rng, w)
		n := rng.UintN(w)
		r := Must(x.Ashr(n))
		//
		if r.Int64() != x.Int64()>>n {
			t.Errorf("%s >>> %d gave %s", x.String(), n, r.String())
		}
	}
}

func Test_Lshr_01(t *testing.T) {
	x := MustParse("8'b1001_0110")
	//
	checkShift(t, ">>", x, 1, BitVector.Lshr, MustParse("8'b0100_1011"))
	checkShift(t, ">>", x, 7, BitVector.Lshr, MustParse("8'b0000_0001"))
	checkShiftFails(t, x, 8, BitVector.Lshr)
}

func Test_ShiftAssign_01(t *testing.T) {
	x := MustParse("4'b1001")
	//
	checkError(t, x.ShlAssign(4), ErrInvalidArgument)
	checkError(t, x.AshrAssign(4), ErrInvalidArgument)
	checkError(t, x.LshrAssign(4), ErrInvalidArgument)
	//
	if err := x.ShlAssign(1); err != nil || x.Uint64() != 0b0010 {
		t.Errorf("<<= gave %s (%v)", x.String(), err)
	}
	//
	if err := x.ShlAssign(2); err != nil || x.Uint64() != 0b1000 {
		t.Errorf("<<= gave %s (%v)", x.String(), err)
	}
	//
	if err := x.AshrAssign(2); err != nil || x.Uint64() != 0b1110 {
		t.Errorf(">>>= gave %s (%v)", x.String(), err)
	}
	//
	if err := x.LshrAssign(1); err != nil || x.Uint64() != 0b0111 {
		t.Errorf(">>= gave %s (%v)", x.String(), err)
	}
}

func Test_ConcatBits_01(t *testing.T) {
	checkConcatBits(t, "4'b1010", "1", "5'b10101")
	checkConcatBits(t, "4'b1010", "0_1", "6'b101001")
	checkConcatBits(t, "1'b0", "1111_0000", "9'b0_1111_0000")
	checkConcatBits(t, "8'hFF", "00000000", "16'hFF00")
}

func Test_ConcatBits_02(t *testing.T) {
	x := MustParse("4'b1010")
	//
	for _, lit := range []string{"", "_", "2", "10x", "0b1"} {
		_, err := x.ConcatBits(lit)
		checkError(t, err, ErrParse)
	}
}

func Test_ConcatBits_03(t *testing.T) {
	x := Must(Ones(MaxWidth - 2))
	//
	if r, err := x.ConcatBits("01"); checkError(t, err, nil) && r.Width() != MaxWidth {
		t.Errorf("unexpected width %d", r.Width())
	}
	//
	_, err := x.ConcatBits("010")
	checkError(t, err, ErrWidthOverflow)
	// Invalid characters reported before overflow
	_, err = x.ConcatBits("0101012")
	checkError(t, err, ErrParse)
}

func Test_ConcatBits_04(t *testing.T) {
	x := MustParse("2'b11")
	//
	checkError(t, x.ConcatBitsAssign("0a"), ErrParse)
	//
	if err := x.ConcatBitsAssign("00"); err != nil || !x.Equal(MustParse("4'b1100")) {
		t.Errorf("concat assign gave %s (%v)", x.String(), err)
	}
}

func Test_ConcatBits_05(t *testing.T) {
	// Low bits equal appended literal, high bits equal original.
	rng := rand.New(rand.NewPCG(7, 8))
	//
	for i := 0; i < 1000; i++ {
		w := 1 + rng.UintN(MaxWidth-1)
		n := 1 + rng.UintN(MaxWidth-w)
		x := randomBitVector(rng, w)
		y := randomBitVector(rng, n)
		// Render y's bits
		bits := y.BinaryString()[len(y.BinaryString())-int(n):]
		//
		r, err := x.ConcatBits(bits)
		//
		if !checkError(t, err, nil) {
			continue
		}
		//
		checkInvariant(t, r)
		//
		if r.Width() != w+n {
			t.Errorf("%s ++ %s has width %d", x.String(), bits, r.Width())
		} else if lo := Must(r.Truncate(n)); !lo.Equal(y) {
			t.Errorf("%s ++ %s has low bits %s", x.String(), bits, lo.String())
		} else if hi := Must(r.SliceFrom(n)); !hi.Equal(x) {
			t.Errorf("%s ++ %s has high bits %s", x.String(), bits, hi.String())
		} else if c := Must(x.Concat(y)); !c.Equal(r) {
			t.Errorf("%s ++ %s gave %s", x.String(), y.String(), c.String())
		}
	}
}

func Test_Concat_01(t *testing.T) {
	x := MustParse("4'hA")
	//
	if err := x.ConcatAssign(MustParse("8'h5C")); err != nil || !x.Equal(MustParse("12'hA5C")) {
		t.Errorf("concat gave %s (%v)", x.String(), err)
	}
	//
	checkError(t, x.ConcatAssign(Must(Zero(MaxWidth-11))), ErrWidthOverflow)
	//
	if !x.Equal(MustParse("12'hA5C")) {
		t.Errorf("failed concat modified receiver: %s", x.String())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkBinary(t *testing.T, op string, x, y BitVector, fn func(BitVector, BitVector) (BitVector, error),
	expected BitVector) {
	t.Helper()
	//
	if r, err := fn(x, y); checkError(t, err, nil) && !r.Equal(expected) {
		t.Errorf("%s %s %s gave %s (expected %s)", x.String(), op, y.String(), r.String(), expected.String())
	}
}

func checkShift(t *testing.T, op string, x BitVector, n uint, fn func(BitVector, uint) (BitVector, error),
	expected BitVector) {
	t.Helper()
	//
	if r, err := fn(x, n); checkError(t, err, nil) {
		checkInvariant(t, r)
		//
		if !r.Equal(expected) {
			t.Errorf("%s %s %d gave %s (expected %s)", x.String(), op, n, r.String(), expected.String())
		}
	}
}

func checkShiftFails(t *testing.T, x BitVector, n uint, fn func(BitVector, uint) (BitVector, error)) {
	t.Helper()
	//
	_, err := fn(x, n)
	checkError(t, err, ErrInvalidArgument)
}

func checkConcatBits(t *testing.T, lhs string, bits string, expected string) {
	t.Helper()
	//
	x := MustParse(lhs)
	//
	if r, err := x.ConcatBits(bits); checkError(t, err, nil) && !r.Equal(MustParse(expected)) {
		t.Errorf("%s ++ %s gave %s (expected %s)", lhs, bits, r.String(), expected)
	}
}
