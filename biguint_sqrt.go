// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "math"

// maxNewtonIter bounds every Newton iteration in this package (sqrt,
// and BigDecimal's exp/ln range-reduction helpers) as a divergence
// guard: iteration always stops earlier once the sequence repeats its
// predecessor, but a hard cap keeps pathological inputs bounded.
const maxNewtonIter = 100

// Sqrt sets z to floor(sqrt(x)) and returns z. The result s satisfies
// s*s <= x < (s+1)*(s+1). It uses Newton's method x_{n+1} =
// (x_n + n/x_n)/2 seeded from a float64 approximation of x's leading
// limbs, terminating when the iterate stops decreasing (equivalently,
// repeats its predecessor).
func (z *BigUInt) Sqrt(x *BigUInt) *BigUInt {
	if x.IsZero() {
		z.limbs = []Word{0}
		return z
	}
	if Cmp(x, NewBigUInt(1)) == 0 {
		z.limbs = []Word{1}
		return z
	}

	guess := seedSqrt(x)
	two := NewBigUInt(2)

	cur := guess
	for i := 0; i < maxNewtonIter; i++ {
		q, _ := QuoRem(x, cur)
		sum := new(BigUInt).Add(cur, q)
		next, _ := QuoRem(sum, two)
		if Cmp(next, cur) >= 0 {
			break
		}
		cur = next
	}
	// cur now satisfies cur*cur <= x < (cur+1)^2 up to a possible
	// off-by-one from integer truncation during the last step; fix up.
	for {
		sq := new(BigUInt).Mul(cur, cur)
		if Cmp(sq, x) > 0 {
			cur.Sub(cur, NewBigUInt(1))
			continue
		}
		next := new(BigUInt).Add(cur, NewBigUInt(1))
		sq2 := new(BigUInt).Mul(next, next)
		if Cmp(sq2, x) <= 0 {
			cur = next
			continue
		}
		break
	}
	z.limbs = cur.limbs
	return z
}

// seedSqrt produces an initial Newton guess from a float64
// approximation of x's most significant limbs.
func seedSqrt(x *BigUInt) *BigUInt {
	xl := norm(x.limbs)
	n := len(xl)
	// Take up to the top 3 limbs to build a float64 approximation
	// of x, then compute math.Sqrt and scale back.
	var top float64
	lim := n
	if lim > 3 {
		lim = 3
	}
	for i := 0; i < lim; i++ {
		top = top*limbBase + float64(xl[n-1-i])
	}
	approx := math.Sqrt(top)
	// top approximates x >> (limbBits*(n-lim)), so sqrt(top)
	// approximates sqrt(x) >> (limbBits*(n-lim)/2).
	shiftLimbs := (n - lim)
	// sqrt(x) ~ approx * limbBase^(shiftLimbs/2) adjusted for the
	// odd remainder by an extra sqrt(limbBase) factor.
	half := shiftLimbs / 2
	if shiftLimbs%2 != 0 {
		approx *= math.Sqrt(limbBase)
	}
	g := new(BigUInt).SetUint64(uint64(approx) + 1)
	if half > 0 {
		g.Shl(g, uint(half)*limbBits)
	}
	if g.IsZero() {
		g.SetUint64(1)
	}
	return g
}
