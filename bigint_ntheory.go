// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Gcd sets z to the (non-negative) greatest common divisor of x and y
// and returns z, delegating to BigUInt's binary GCD on magnitudes.
func (z *BigInt) Gcd(x, y *BigInt) *BigInt {
	z.mag = new(BigUInt).Gcd(x.mag, y.mag)
	z.neg = false
	return z
}

// Lcm sets z to the least common multiple of x and y (both assumed
// non-zero) and returns z: lcm(a,b) = |a*b| / gcd(a,b).
func (z *BigInt) Lcm(x, y *BigInt) *BigInt {
	g := new(BigInt).Gcd(x, y)
	prod := new(BigInt).Mul(x, y)
	prod.neg = false
	z.QuoRem(nil, prod, g)
	return z
}

// ExtendedGcd sets z to gcd(a, b) and returns (z, s, t) such that
// a*s + b*t = z (Bezout's identity), using the standard iterative
// extended Euclidean algorithm on signed BigInts.
func (z *BigInt) ExtendedGcd(a, b *BigInt) (g, s, t *BigInt) {
	oldR, r := new(BigInt).Set(a), new(BigInt).Set(b)
	oldS, newS := NewBigInt(1), NewBigInt(0)
	oldT, newT := NewBigInt(0), NewBigInt(1)

	for !r.mag.IsZero() {
		q := new(BigInt).QuoRem(nil, oldR, r)
		oldR, r = r, new(BigInt).Sub(oldR, new(BigInt).Mul(q, r))
		oldS, newS = newS, new(BigInt).Sub(oldS, new(BigInt).Mul(q, newS))
		oldT, newT = newT, new(BigInt).Sub(oldT, new(BigInt).Mul(q, newT))
	}
	if oldR.neg {
		oldR.neg = false
		oldS.neg = !oldS.neg
		oldT.neg = !oldT.neg
		oldS.normSign()
		oldT.normSign()
	}
	z.Set(oldR)
	return z, oldS, oldT
}

// ModPow sets z = base^exp mod m using right-to-left binary
// exponentiation with reduction at every step. Preconditions: exp >= 0
// (checked, InvalidArgument otherwise), m > 0 (checked, InvalidArgument
// otherwise).
func (z *BigInt) ModPow(base, exp, m *BigInt) *BigInt {
	if exp.neg {
		panicf(InvalidArgument, "BigInt.ModPow", "negative exponent")
	}
	if m.Sign() <= 0 {
		panicf(InvalidArgument, "BigInt.ModPow", "modulus must be positive")
	}
	result := NewBigInt(1)
	b := new(BigInt)
	new(BigInt).DivMod(b, base, m) // reduce base mod m up front
	e := new(BigInt).Set(exp)
	two := NewBigInt(2)
	zero := NewBigInt(0)
	for CmpBigInt(e, zero) > 0 {
		rem := new(BigInt)
		e.DivMod(rem, e, two)
		if rem.Sign() != 0 {
			result.Mul(result, b)
			new(BigInt).DivMod(result, result, m)
		}
		b.Mul(b, b)
		new(BigInt).DivMod(b, b, m)
	}
	z.Set(result)
	return z
}

// ModInverse sets z to the modular inverse of a mod m and returns
// (z, nil), or returns (z, err) with err of ErrorKind NotInvertible and
// z unchanged if gcd(a,m) != 1. It is implemented via ExtendedGcd.
func (z *BigInt) ModInverse(a, m *BigInt) (*BigInt, error) {
	g, s, _ := new(BigInt).ExtendedGcd(a, m)
	if CmpBigInt(g, NewBigInt(1)) != 0 {
		return z, newError(NotInvertible, "BigInt.ModInverse", "gcd(a, m) != 1")
	}
	new(BigInt).DivMod(z, s, m)
	return z, nil
}
