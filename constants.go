// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// This file computes and caches the process-wide constants that
// BigDecimal's transcendental functions rely on: e, powers of e used
// by Exp's range reduction, ln(2) and ln(10) used by Ln's base
// conversion, and pi. All of them are lazily computed to at least the
// precision last requested and memoized, mirroring the teacher's
// math/pi.go caching pattern (Pi keeps the highest-precision value
// computed so far and recomputes only when asked for more digits).
// As in the teacher's package, access to these caches is not guarded
// by a mutex: callers that fan out transcendental calls across
// goroutines must warm the cache (call Pi/E with sufficient headroom)
// from a single goroutine first. See spec ​§5 Concurrency & Resource
// Model and ​§9 Global State.

const constantGuardDigits = 10

var (
	cachedPi  = NewBigDecimalFromInt64(0)
	cachedPiP uint32

	cachedE  = NewBigDecimalFromInt64(0)
	cachedEP uint32

	cachedLn2  = NewBigDecimalFromInt64(0)
	cachedLn2P uint32

	cachedLn10  = NewBigDecimalFromInt64(0)
	cachedLn10P uint32

	ePowers  = map[int]*BigDecimal{}
	ePowersP uint32
)

// negligible reports whether |x| rounds to zero at prec fractional
// digits plus a small guard, i.e. x contributes nothing further to a
// series sum targeting prec digits.
func negligible(x *BigDecimal, prec uint32) bool {
	r := x.Round(int32(prec)+2, DOWN)
	return r.IsZero()
}

// atanRecip computes atan(1/denom) via the Taylor series
// atan(y) = y - y^3/3 + y^5/5 - ... to prec fractional digits, for
// y = 1/denom with denom an integer >= 2. Used by Pi's Machin-like
// formula.
func atanRecip(denom int64, prec uint32) *BigDecimal {
	wp := prec + constantGuardDigits
	y := new(BigDecimal).Quo(NewBigDecimalFromInt64(1), NewBigDecimalFromInt64(denom), wp, HalfEven)
	ysq := new(BigDecimal).Mul(y, y)
	sum := new(BigDecimal).Set(y)
	cur := new(BigDecimal).Set(y)
	neg := true
	for k := 1; k < maxNewtonIter*20; k++ {
		cur = new(BigDecimal).Mul(cur, ysq)
		term := new(BigDecimal).Quo(cur, NewBigDecimalFromInt64(int64(2*k+1)), wp, HalfEven)
		if negligible(term, wp) {
			break
		}
		if neg {
			sum = new(BigDecimal).Sub(sum, term)
		} else {
			sum = new(BigDecimal).Add(sum, term)
		}
		neg = !neg
	}
	return sum.Round(int32(prec), HalfEven)
}

// artanhFrac computes artanh(num/den) = (num/den) + (num/den)^3/3 +
// (num/den)^5/5 + ... to prec fractional digits. Used to derive
// ln(2) and ln(5) (hence ln(10)) without relying on Ln itself.
func artanhFrac(num, den int64, prec uint32) *BigDecimal {
	wp := prec + constantGuardDigits
	y := new(BigDecimal).Quo(NewBigDecimalFromInt64(num), NewBigDecimalFromInt64(den), wp, HalfEven)
	ysq := new(BigDecimal).Mul(y, y)
	sum := new(BigDecimal).Set(y)
	cur := new(BigDecimal).Set(y)
	for k := 1; k < maxNewtonIter*20; k++ {
		cur = new(BigDecimal).Mul(cur, ysq)
		term := new(BigDecimal).Quo(cur, NewBigDecimalFromInt64(int64(2*k+1)), wp, HalfEven)
		if negligible(term, wp) {
			break
		}
		sum = new(BigDecimal).Add(sum, term)
	}
	return sum.Round(int32(prec), HalfEven)
}

// Pi returns the value of pi to prec fractional digits, using
// Machin's formula pi = 16*atan(1/5) - 4*atan(1/239).
func Pi(prec uint32) *BigDecimal {
	if cachedPiP >= prec && cachedPiP > 0 {
		return cachedPi.Round(int32(prec), HalfEven)
	}
	wp := prec + constantGuardDigits
	t1 := new(BigDecimal).Mul(NewBigDecimalFromInt64(16), atanRecip(5, wp))
	t2 := new(BigDecimal).Mul(NewBigDecimalFromInt64(4), atanRecip(239, wp))
	pi := new(BigDecimal).Sub(t1, t2)
	cachedPi = pi
	cachedPiP = prec
	return pi.Round(int32(prec), HalfEven)
}

// Ln2 returns ln(2) to prec fractional digits, via
// ln(2) = 2*artanh(1/3).
func Ln2(prec uint32) *BigDecimal {
	if cachedLn2P >= prec && prec > 0 {
		return cachedLn2.Round(int32(prec), HalfEven)
	}
	wp := prec + constantGuardDigits
	v := new(BigDecimal).Mul(NewBigDecimalFromInt64(2), artanhFrac(1, 3, wp))
	cachedLn2 = v
	cachedLn2P = prec
	return v.Round(int32(prec), HalfEven)
}

// Ln10 returns ln(10) to prec fractional digits, via ln(10) = ln(2) +
// ln(5), and ln(5) = 2*artanh(2/3).
func Ln10(prec uint32) *BigDecimal {
	if cachedLn10P >= prec && prec > 0 {
		return cachedLn10.Round(int32(prec), HalfEven)
	}
	wp := prec + constantGuardDigits
	ln5 := new(BigDecimal).Mul(NewBigDecimalFromInt64(2), artanhFrac(2, 3, wp))
	v := new(BigDecimal).Add(Ln2(wp), ln5)
	cachedLn10 = v
	cachedLn10P = prec
	return v.Round(int32(prec), HalfEven)
}

// E returns Euler's number to prec fractional digits via the rapidly
// converging series e = sum_{n=0}^inf 1/n!.
func E(prec uint32) *BigDecimal {
	if cachedEP >= prec && prec > 0 {
		return cachedE.Round(int32(prec), HalfEven)
	}
	wp := prec + constantGuardDigits
	sum := NewBigDecimalFromInt64(1)
	term := NewBigDecimalFromInt64(1)
	for n := int64(1); n < int64(maxNewtonIter)*20; n++ {
		term = new(BigDecimal).Quo(term, NewBigDecimalFromInt64(n), wp, HalfEven)
		if negligible(term, wp) {
			break
		}
		sum = new(BigDecimal).Add(sum, term)
	}
	cachedE = sum
	cachedEP = prec
	return sum.Round(int32(prec), HalfEven)
}

// ePow returns e^k for small non-negative integers k (the anchors
// 1..15, 16 and 32 spec ​§4.4 names for Exp's range reduction), to prec
// fractional digits, computed once per requested precision level and
// cached.
func ePow(k int, prec uint32) *BigDecimal {
	if ePowersP < prec {
		ePowers = map[int]*BigDecimal{}
		ePowersP = prec
	}
	if v, ok := ePowers[k]; ok {
		return v
	}
	base := E(prec + constantGuardDigits)
	r := NewBigDecimalFromInt64(1)
	for i := 0; i < k; i++ {
		r = new(BigDecimal).Mul(r, base)
		r = r.Round(int32(prec)+constantGuardDigits, HalfEven)
	}
	ePowers[k] = r
	return r
}
