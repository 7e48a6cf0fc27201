// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigUIntCanonicalization(t *testing.T) {
	z := new(BigUInt).Add(NewBigUInt(1), NewBigUInt(0xFFFFFFFF))
	assert.True(t, len(z.limbs) == 1 || z.limbs[len(z.limbs)-1] != 0, "no trailing zero limb except canonical [0]")
	zero := NewBigUInt(0)
	assert.Equal(t, []Word{0}, zero.limbs)
}

// digitValues converts a string of ASCII decimal digits into the digit
// values (0-9) that ParseBigUIntDigits expects.
func digitValues(s string) []byte {
	d := []byte(s)
	for i := range d {
		d[i] -= '0'
	}
	return d
}

func TestBigUIntAddCommutative(t *testing.T) {
	a := ParseBigUIntDigits(digitValues("123456789012345678901234567890"))
	b := ParseBigUIntDigits(digitValues("98765432109876543210"))
	ab := new(BigUInt).Add(a, b)
	ba := new(BigUInt).Add(b, a)
	assert.Equal(t, 0, Cmp(ab, ba))
}

func TestBigUIntMulDistributive(t *testing.T) {
	a := ParseBigUIntDigits(digitValues("123456789"))
	b := ParseBigUIntDigits(digitValues("987654321"))
	c := ParseBigUIntDigits(digitValues("555555555"))
	lhs := new(BigUInt).Mul(a, new(BigUInt).Add(b, c))
	rhs := new(BigUInt).Add(new(BigUInt).Mul(a, b), new(BigUInt).Mul(a, c))
	assert.Equal(t, 0, Cmp(lhs, rhs))
}

func TestBigUIntQuoRemEuclidean(t *testing.T) {
	a := ParseBigUIntDigits(digitValues("999999999999999999999999999999"))
	b := ParseBigUIntDigits(digitValues("7"))
	q, r := QuoRem(a, b)
	back := new(BigUInt).Add(new(BigUInt).Mul(q, b), r)
	assert.Equal(t, 0, Cmp(back, a))
	assert.True(t, Cmp(r, b) < 0)
}

func TestBigUIntBurnikelZieglerScenario(t *testing.T) {
	// 10^1199 + 7 divided by 10^699 + 3
	a := new(BigUInt).Add(pow10BigUInt(1199), NewBigUInt(7))
	b := new(BigUInt).Add(pow10BigUInt(699), NewBigUInt(3))
	q, r := QuoRem(a, b)
	back := new(BigUInt).Add(new(BigUInt).Mul(q, b), r)
	assert.Equal(t, 0, Cmp(back, a))
	assert.True(t, Cmp(r, b) < 0)
}

func TestBigUIntSqrtBound(t *testing.T) {
	for _, s := range []string{"2", "1000000007", "123456789012345678901234567890"} {
		n := ParseBigUIntDigits(digitValues(s))
		sq := new(BigUInt).Sqrt(n)
		lo := new(BigUInt).Mul(sq, sq)
		hi := new(BigUInt).Mul(new(BigUInt).Add(sq, NewBigUInt(1)), new(BigUInt).Add(sq, NewBigUInt(1)))
		assert.True(t, Cmp(lo, n) <= 0)
		assert.True(t, Cmp(n, hi) < 0)
	}
}

func TestBigUIntGcd(t *testing.T) {
	a := ParseBigUIntDigits(digitValues("48"))
	b := ParseBigUIntDigits(digitValues("18"))
	g := new(BigUInt).Gcd(a, b)
	assert.Equal(t, "6", g.String())
}

func TestBigUIntStringRoundTrip(t *testing.T) {
	s := "31415926535897932384626433832795028841971693993751"
	n := ParseBigUIntDigits(digitValues(s))
	require.Equal(t, s, n.String())
}

func TestBigUIntShiftPowerCrossCheck(t *testing.T) {
	for n := uint(0); n <= 128; n += 16 {
		shifted := new(BigUInt).Shl(NewBigUInt(1), n)
		pow := NewBigUInt(1)
		two := NewBigUInt(2)
		for i := uint(0); i < n; i++ {
			pow = new(BigUInt).Mul(pow, two)
		}
		assert.Equal(t, 0, Cmp(shifted, pow), "n=%d", n)
	}
}
