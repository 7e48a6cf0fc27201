// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigIntNoNegativeZero(t *testing.T) {
	a := NewBigInt(5)
	b := NewBigInt(5)
	z := new(BigInt).Sub(a, b)
	assert.Equal(t, 0, z.Sign())
	assert.False(t, z.neg)
}

func TestBigIntFloorDivModEuclidean(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{7, 3}, {-7, 3}, {7, -3}, {-7, -3}, {10, 5}, {-1, 2},
	}
	for _, c := range cases {
		a, b := NewBigInt(c.a), NewBigInt(c.b)
		q, r := new(BigInt), new(BigInt)
		q.DivMod(r, a, b)
		back := new(BigInt).Add(new(BigInt).Mul(q, b), r)
		assert.Equal(t, 0, CmpBigInt(back, a), "a=%d b=%d", c.a, c.b)
		assert.True(t, r.Sign()*b.Sign() >= 0 && CmpBigInt(new(BigInt).Abs(r), new(BigInt).Abs(b)) < 0, "a=%d b=%d r=%s", c.a, c.b, r)
	}
}

func TestBigIntTruncateDivModSignOfDividend(t *testing.T) {
	a, b := NewBigInt(-7), NewBigInt(3)
	q, r := new(BigInt), new(BigInt)
	q.QuoRem(r, a, b)
	assert.Equal(t, -1, r.Sign())
}

func TestBigIntBitwiseIdentities(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -42, 12345} {
		x := NewBigInt(v)
		notX := new(BigInt).Not(x)
		want := new(BigInt).Neg(new(BigInt).Add(x, NewBigInt(1)))
		assert.Equal(t, want.String(), notX.String(), "~x = -(x+1) for x=%d", v)

		xorSelf := new(BigInt).Xor(x, x)
		assert.Equal(t, 0, xorSelf.Sign())

		negOne := NewBigInt(-1)
		andNegOne := new(BigInt).And(x, negOne)
		assert.Equal(t, x.String(), andNegOne.String())

		orZero := new(BigInt).Or(x, NewBigInt(0))
		assert.Equal(t, x.String(), orZero.String())
	}
}

func TestBigIntGcdLcmIdentity(t *testing.T) {
	a, b := NewBigInt(48), NewBigInt(18)
	g := new(BigInt).Gcd(a, b)
	l := new(BigInt).Lcm(a, b)
	lhs := new(BigInt).Mul(g, l)
	rhs := new(BigInt).Abs(new(BigInt).Mul(a, b))
	assert.Equal(t, 0, CmpBigInt(lhs, rhs))
}

func TestBigIntExtendedGcdBezout(t *testing.T) {
	a, b := NewBigInt(240), NewBigInt(46)
	g, s, tt := new(BigInt).ExtendedGcd(a, b)
	lhs := new(BigInt).Add(new(BigInt).Mul(a, s), new(BigInt).Mul(b, tt))
	assert.Equal(t, 0, CmpBigInt(lhs, g))
}

func TestBigIntModPowFermat(t *testing.T) {
	p := NewBigInt(1000000007)
	a := NewBigInt(12345)
	one := NewBigInt(1)
	pMinus1 := new(BigInt).Sub(p, one)
	r := new(BigInt).ModPow(a, pMinus1, p)
	assert.Equal(t, "1", r.String())
}

func TestBigIntRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "123456789012345678901234567890", "-987654321"} {
		var x BigInt
		require := assert.New(t)
		err := x.UnmarshalText([]byte(s))
		require.NoError(err)
		require.Equal(s, x.String())
	}
}
