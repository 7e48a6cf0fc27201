// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// sinTaylor computes sin(r) for |r| <= pi (as range-reduced by
// reduceAngle into (-pi, pi]) via the alternating series
// r - r^3/3! + r^5/5! - ...
func sinTaylor(r *BigDecimal, prec uint32) *BigDecimal {
	rsq := new(BigDecimal).Mul(r, r)
	sum := new(BigDecimal).Set(r)
	term := new(BigDecimal).Set(r)
	neg := true
	for k := int64(1); k < int64(maxNewtonIter)*20; k++ {
		term = new(BigDecimal).Mul(term, rsq)
		denom := NewBigDecimalFromInt64((2*k + 1) * (2 * k))
		term = new(BigDecimal).Quo(term, denom, prec, HalfEven)
		if negligible(term, prec) {
			break
		}
		if neg {
			sum = new(BigDecimal).Sub(sum, term)
		} else {
			sum = new(BigDecimal).Add(sum, term)
		}
		neg = !neg
	}
	return sum
}

// cosTaylor computes cos(r) for a small |r| via 1 - r^2/2! + r^4/4! - ...
func cosTaylor(r *BigDecimal, prec uint32) *BigDecimal {
	rsq := new(BigDecimal).Mul(r, r)
	sum := NewBigDecimalFromInt64(1)
	term := NewBigDecimalFromInt64(1)
	neg := true
	for k := int64(1); k < int64(maxNewtonIter)*20; k++ {
		term = new(BigDecimal).Mul(term, rsq)
		denom := NewBigDecimalFromInt64((2*k - 1) * (2 * k))
		term = new(BigDecimal).Quo(term, denom, prec, HalfEven)
		if negligible(term, prec) {
			break
		}
		if neg {
			sum = new(BigDecimal).Sub(sum, term)
		} else {
			sum = new(BigDecimal).Add(sum, term)
		}
		neg = !neg
	}
	return sum
}

// reduceAngle reduces x modulo 2*pi into (-pi, pi], returning the
// reduced angle at working precision wp.
func reduceAngle(x *BigDecimal, wp uint32) *BigDecimal {
	pi := Pi(wp)
	twoPi := new(BigDecimal).Mul(NewBigDecimalFromInt64(2), pi)
	nDec := new(BigDecimal).Quo(x, twoPi, 0, Floor)
	r := new(BigDecimal).Sub(x, new(BigDecimal).Mul(nDec, twoPi))
	if CmpBigDecimal(r, pi) > 0 {
		r = new(BigDecimal).Sub(r, twoPi)
	}
	return r
}

// Sin sets z = sin(x) to prec fractional digits and returns z.
func (z *BigDecimal) Sin(x *BigDecimal, prec uint32) *BigDecimal {
	wp := prec + transcendentalGuard
	r := reduceAngle(x, wp)
	z.Set(sinTaylor(r, wp).Round(int32(prec), HalfEven))
	return z
}

// Cos sets z = cos(x) to prec fractional digits and returns z.
func (z *BigDecimal) Cos(x *BigDecimal, prec uint32) *BigDecimal {
	wp := prec + transcendentalGuard
	r := reduceAngle(x, wp)
	z.Set(cosTaylor(r, wp).Round(int32(prec), HalfEven))
	return z
}

// Tan sets z = tan(x) = sin(x)/cos(x) to prec fractional digits and
// returns z. Panics with ErrorKind DomainError if cos(x) rounds to 0
// at the working precision (x near an odd multiple of pi/2).
func (z *BigDecimal) Tan(x *BigDecimal, prec uint32) *BigDecimal {
	wp := prec + transcendentalGuard
	r := reduceAngle(x, wp)
	s := sinTaylor(r, wp)
	c := cosTaylor(r, wp)
	if negligible(c, wp) {
		panicf(DomainError, "BigDecimal.Tan", "tangent undefined near an odd multiple of pi/2")
	}
	z.Set(new(BigDecimal).Quo(s, c, prec, HalfEven))
	return z
}

// Cot sets z = cos(x)/sin(x) to prec fractional digits and returns z.
func (z *BigDecimal) Cot(x *BigDecimal, prec uint32) *BigDecimal {
	wp := prec + transcendentalGuard
	r := reduceAngle(x, wp)
	s := sinTaylor(r, wp)
	c := cosTaylor(r, wp)
	if negligible(s, wp) {
		panicf(DomainError, "BigDecimal.Cot", "cotangent undefined at a multiple of pi")
	}
	z.Set(new(BigDecimal).Quo(c, s, prec, HalfEven))
	return z
}

// Csc sets z = 1/sin(x) to prec fractional digits and returns z.
func (z *BigDecimal) Csc(x *BigDecimal, prec uint32) *BigDecimal {
	wp := prec + transcendentalGuard
	r := reduceAngle(x, wp)
	s := sinTaylor(r, wp)
	if negligible(s, wp) {
		panicf(DomainError, "BigDecimal.Csc", "cosecant undefined at a multiple of pi")
	}
	z.Set(new(BigDecimal).Quo(NewBigDecimalFromInt64(1), s, prec, HalfEven))
	return z
}
