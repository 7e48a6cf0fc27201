// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// karatsubaThreshold is the minimum operand length (in limbs) below
// which mulLimbs falls back to schoolbook multiplication. Grounded on
// the same dispatch shape as math/big's nat.mul (threshold tuned for
// 64-bit words there; 32 limbs is the right order of magnitude for
// 30-bit limbs).
const karatsubaThreshold = 32

// mulAddVWW sets z[i] = x[i]*m + c (propagated) for all i and returns
// the final carry limb.
func mulAddVWW(z, x []Word, m, c Word) Word {
	var carry uint64 = uint64(c)
	mm := uint64(m)
	for i, xi := range x {
		p := uint64(xi)*mm + carry
		z[i] = Word(p & limbMask)
		carry = p >> limbBits
	}
	return Word(carry)
}

// schoolbookMul computes z = x*y with the classic O(n*m) algorithm
// using a 64-bit accumulator per limb (safe since 30+30 = 60 bits).
func schoolbookMul(x, y []Word) []Word {
	x, y = norm(x), norm(y)
	if len(x) == 1 && x[0] == 0 || len(y) == 1 && y[0] == 0 {
		return []Word{0}
	}
	z := make([]Word, len(x)+len(y))
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		var carry uint64
		yy := uint64(yj)
		for i, xi := range x {
			p := uint64(xi)*yy + uint64(z[i+j]) + carry
			z[i+j] = Word(p & limbMask)
			carry = p >> limbBits
		}
		k := j + len(x)
		for carry != 0 {
			p := uint64(z[k]) + carry
			z[k] = Word(p & limbMask)
			carry = p >> limbBits
			k++
		}
	}
	return norm(z)
}

// shiftedAdd sets z = x + (y << (k*limbBits)), growing z as needed,
// and returns the (possibly reallocated, normalized) result.
func shiftedAdd(x, y []Word, k int) []Word {
	n := len(x)
	if m := len(y) + k; m > n {
		n = m
	}
	z := make([]Word, n+1)
	copy(z, x)
	var c uint64
	for i, yi := range y {
		s := uint64(z[i+k]) + uint64(yi) + c
		z[i+k] = Word(s & limbMask)
		c = s >> limbBits
	}
	for i := k + len(y); c != 0; i++ {
		s := uint64(z[i]) + c
		z[i] = Word(s & limbMask)
		c = s >> limbBits
	}
	return norm(z)
}

// subFrom sets z = x - y in place over a common buffer large enough
// for x, assuming x >= y; returns the normalized result.
func subFrom(x, y []Word) []Word {
	z := make([]Word, len(x))
	copy(z, x)
	yy := make([]Word, len(z))
	copy(yy, y)
	subVV(z, z, yy)
	return norm(z)
}

// karatsuba computes x*y for operands with min(len(x), len(y)) >=
// karatsubaThreshold using the standard three-multiplication split:
//
//	x = A*beta^k + B,  y = C*beta^k + D
//	x*y = A*C*beta^2k + ((A+B)(C+D) - A*C - B*D)*beta^k + B*D
//
// and recurses on the three half-sized products.
func karatsuba(x, y []Word) []Word {
	x, y = norm(x), norm(y)
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n < karatsubaThreshold {
		return schoolbookMul(x, y)
	}
	k := n / 2

	low := func(s []Word) []Word {
		if len(s) > k {
			return norm(s[:k])
		}
		return norm(s)
	}
	high := func(s []Word) []Word {
		if len(s) > k {
			return norm(s[k:])
		}
		return []Word{0}
	}

	A, B := high(x), low(x)
	C, D := high(y), low(y)

	ac := mulLimbs(A, C)
	bd := mulLimbs(B, D)

	apb := addLimbsPlain(A, B)
	cpd := addLimbsPlain(C, D)
	mid := mulLimbs(apb, cpd)
	mid = subFrom(mid, addLimbsPlain(ac, bd))

	result := append([]Word{}, bd...)
	result = shiftedAdd(result, mid, k)
	result = shiftedAdd(result, ac, 2*k)
	return norm(result)
}

// addLimbsPlain adds two normalized limb slices of arbitrary length.
func addLimbsPlain(x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]Word, len(x)+1)
	copy(z, x)
	yy := make([]Word, len(x))
	copy(yy, y)
	c := addVV(z[:len(x)], z[:len(x)], yy)
	z[len(x)] = c
	return norm(z)
}

// mulLimbs dispatches to schoolbook or Karatsuba multiplication based
// on operand size, per spec: < 32 limbs schoolbook, otherwise
// Karatsuba. (The 3-way Toom-Cook split mentioned as an optional
// refinement above ~256 limbs is not implemented: Karatsuba alone
// already satisfies the sub-quadratic requirement and the module has
// no workload that exercises operands large enough for Toom to pay for
// its implementation complexity; see DESIGN.md.)
func mulLimbs(x, y []Word) []Word {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < karatsubaThreshold {
		return schoolbookMul(x, y)
	}
	return karatsuba(x, y)
}

// Mul sets z = x * y and returns z.
func (z *BigUInt) Mul(x, y *BigUInt) *BigUInt {
	z.limbs = norm(mulLimbs(norm(x.limbs), norm(y.limbs)))
	return z
}

// IMul is the in-place form of Mul: z *= x.
func (z *BigUInt) IMul(x *BigUInt) *BigUInt { return z.Mul(z, x) }
