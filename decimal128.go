// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Decimal128 is a fixed-width decimal with a 96-bit unsigned
// coefficient and a scale in [0, MaxScale128], packed the way the spec's
// data model describes: low/mid/high hold the 96-bit coefficient
// little-endian, and flags packs the sign in bit 31 and the scale in
// bits 16..23.
//
// Arithmetic on the packed fields is performed by momentarily widening
// the coefficient into a BigUInt (this package's arbitrary-precision
// unsigned engine already provides exactly the wide add/mul/divmod
// operations spec ​§4.5 calls for at "128- or 256-bit"; reusing it
// avoids a second, narrower implementation of the same primitives)
// and reducing the result back to 96 bits, checking for overflow.
type Decimal128 struct {
	low, mid, high uint32
	flags          uint32
}

const (
	// MaxNumDigits is the maximum number of significant decimal
	// digits a Decimal128 coefficient can hold.
	MaxNumDigits = 29
	// MaxScale128 is the maximum scale a Decimal128 can carry.
	MaxScale128 = 28

	signMask  = uint32(1) << 31
	scaleMask = uint32(0xFF) << 16
)

// maxCoef96 is 2^96 - 1, the largest representable coefficient.
var maxCoef96 = new(BigUInt).Sub(pow2BigUInt(96), NewBigUInt(1))

var pow2Cache = map[int]*BigUInt{}

func pow2BigUInt(n int) *BigUInt {
	if v, ok := pow2Cache[n]; ok {
		return v
	}
	r := new(BigUInt).Shl(NewBigUInt(1), uint(n))
	pow2Cache[n] = r
	return r
}

// coeffToBigUInt widens x's packed 96-bit coefficient into a BigUInt.
func (x Decimal128) coeffToBigUInt() *BigUInt {
	lo := uint64(x.low) | uint64(x.mid)<<32
	z := new(BigUInt).SetUint64(lo)
	hi := new(BigUInt).SetUint64(uint64(x.high))
	hi.Shl(hi, 64)
	z.Add(z, hi)
	return z
}

// neg96 reports whether the sign bit is set.
func (x Decimal128) neg96() bool { return x.flags&signMask != 0 }

// scale96 returns the packed scale.
func (x Decimal128) scale96() uint32 { return (x.flags & scaleMask) >> 16 }

// fromBigUInt packs a BigUInt coefficient (assumed <= maxCoef96),
// sign, and scale into a Decimal128. It panics with ErrorKind
// Overflow if the coefficient does not fit in 96 bits or if scale is
// out of [0, MaxScale128].
func fromBigUInt(mag *BigUInt, neg bool, scale uint32) Decimal128 {
	if Cmp(mag, maxCoef96) > 0 {
		panicf(Overflow, "Decimal128", "coefficient exceeds 2^96-1")
	}
	if scale > MaxScale128 {
		panicf(Overflow, "Decimal128", "scale exceeds MaxScale128 (28)")
	}
	limbs := mag.limbs
	var lo64, hi64 uint64
	// BigUInt limbs are base-2^30; fold them into two 64-bit words.
	shift := uint(0)
	for _, w := range limbs {
		contrib := uint64(w) << (shift % 64)
		if shift < 64 {
			lo64 |= contrib
			if shift+limbBits > 64 {
				hi64 |= uint64(w) >> (64 - shift)
			}
		} else {
			hi64 |= uint64(w) << (shift - 64)
		}
		shift += limbBits
	}
	d := Decimal128{
		low:  uint32(lo64),
		mid:  uint32(lo64 >> 32),
		high: uint32(hi64),
	}
	if neg && !mag.IsZero() {
		d.flags |= signMask
	}
	d.flags |= (scale << 16) & scaleMask
	return d
}

// NewDecimal128FromInt64 returns a Decimal128 equal to x with scale 0.
func NewDecimal128FromInt64(x int64) Decimal128 {
	if x < 0 {
		return fromBigUInt(new(BigUInt).SetUint64(uint64(-x)), true, 0)
	}
	return fromBigUInt(new(BigUInt).SetUint64(uint64(x)), false, 0)
}

// ParseDecimal128 parses s via NumParse into a Decimal128, failing
// with ErrorKind Overflow if the result does not fit.
func ParseDecimal128(s string) (Decimal128, error) {
	p, err := NumParse(s)
	if err != nil {
		return Decimal128{}, err
	}
	if int32(p.Scale) < 0 || p.Scale > MaxScale128 {
		return Decimal128{}, newError(Overflow, "ParseDecimal128", "scale out of range")
	}
	mag := ParseBigUIntDigits(p.Digits)
	if Cmp(mag, maxCoef96) > 0 {
		return Decimal128{}, newError(Overflow, "ParseDecimal128", "coefficient exceeds 96 bits")
	}
	return fromBigUInt(mag, p.Neg, uint32(p.Scale)), nil
}

// Scale returns x's scale.
func (x Decimal128) Scale() uint32 { return x.scale96() }

// Sign returns -1, 0 or +1.
func (x Decimal128) Sign() int {
	if x.coeffToBigUInt().IsZero() {
		return 0
	}
	if x.neg96() {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Decimal128) IsZero() bool { return x.coeffToBigUInt().IsZero() }

// Coefficient returns x's coefficient as a BigUInt.
func (x Decimal128) Coefficient() *BigUInt { return x.coeffToBigUInt() }

// alignDec128 scales up the smaller-scale operand's coefficient to
// the common scale max(scale_a, scale_b) and returns the aligned
// (unsigned) coefficients, their signs, and the common scale.
func alignDec128(x, y Decimal128) (xm, ym *BigUInt, xn, yn bool, scale uint32) {
	xs, ys := x.scale96(), y.scale96()
	scale = xs
	if ys > scale {
		scale = ys
	}
	xm = x.coeffToBigUInt()
	if d := scale - xs; d > 0 {
		xm = new(BigUInt).Mul(xm, pow10BigUInt(int(d)))
	}
	ym = y.coeffToBigUInt()
	if d := scale - ys; d > 0 {
		ym = new(BigUInt).Mul(ym, pow10BigUInt(int(d)))
	}
	return xm, ym, x.neg96(), y.neg96(), scale
}

// Add returns x + y, rounded with banker's rounding and the scale
// reduced (never below 0) if the aligned sum would overflow 96 bits.
func (x Decimal128) Add(y Decimal128) Decimal128 {
	xm, ym, xn, yn, scale := alignDec128(x, y)
	var rmag *BigUInt
	var rneg bool
	if xn == yn {
		rmag = new(BigUInt).Add(xm, ym)
		rneg = xn
	} else if Cmp(xm, ym) >= 0 {
		rmag = new(BigUInt).Sub(xm, ym)
		rneg = xn
	} else {
		rmag = new(BigUInt).Sub(ym, xm)
		rneg = yn
	}
	return reduceTo96(rmag, rneg, scale)
}

// Sub returns x - y.
func (x Decimal128) Sub(y Decimal128) Decimal128 {
	yn := y
	yn.flags ^= signMask
	return x.Add(yn)
}

// reduceTo96 shortens mag/scale with banker's rounding until mag fits
// in 96 bits, never reducing scale below 0; panics with ErrorKind
// Overflow if the integer part alone still does not fit at scale 0.
func reduceTo96(mag *BigUInt, neg bool, scale uint32) Decimal128 {
	for Cmp(mag, maxCoef96) > 0 && scale > 0 {
		s := mag.String()
		digits := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			digits[i] = s[i] - '0'
		}
		kept := digits[:len(digits)-1]
		lead := digits[len(digits)-1]
		rounded := ParseBigUIntDigits(kept)
		if applyRounding(HalfEven, roundingInput{kept: kept, discardedLeading: lead, neg: neg}) {
			rounded.Add(rounded, NewBigUInt(1))
		}
		mag = rounded
		scale--
	}
	if Cmp(mag, maxCoef96) > 0 {
		panicf(Overflow, "Decimal128", "result exceeds 29 significant digits")
	}
	return fromBigUInt(mag, neg, scale)
}

// Mul returns x * y. Combined scale is scale_a + scale_b, reduced by
// the number of trailing digits dropped if the raw product does not
// fit in 96 bits.
func (x Decimal128) Mul(y Decimal128) Decimal128 {
	xm, ym := x.coeffToBigUInt(), y.coeffToBigUInt()
	prod := new(BigUInt).Mul(xm, ym)
	scale := x.scale96() + y.scale96()
	neg := x.neg96() != y.neg96()
	// scale may need clamping to MaxScale128 in addition to the
	// 96-bit coefficient fit; reduceTo96 only stops reducing once the
	// coefficient fits, so clamp scale down to MaxScale128 first if
	// needed by pre-dividing.
	for scale > MaxScale128 {
		prod, _ = QuoRem(prod, NewBigUInt(10))
		scale--
	}
	return reduceTo96(prod, neg, scale)
}

// Quo returns x / y. Panics with ErrorKind DivisionByZero if y == 0.
//
// Classification per spec ​§4.5: zero dividend, unit divisor and
// equal coefficients at equal scales are fast paths; there is no
// separate exact-division path, so an exact quotient such as 10/5 also
// takes the general case. The general case performs long
// division bounded to whichever is smaller of 29 significant digits
// or 28-(scale_a-scale_b) fractional digits, carrying one guard digit
// and rounding half-to-even with the documented "5-tail forces
// round-up" deviation (spec ​§9 Open Questions) rather than a strict
// sticky-bit HALF_EVEN.
func (x Decimal128) Quo(y Decimal128) Decimal128 {
	ym := y.coeffToBigUInt()
	if ym.IsZero() {
		panicf(DivisionByZero, "Decimal128.Quo", "division by zero")
	}
	xm := x.coeffToBigUInt()
	neg := x.neg96() != y.neg96()

	if xm.IsZero() {
		return Decimal128{flags: (x.scale96() << 16) & scaleMask}
	}
	if Cmp(ym, NewBigUInt(1)) == 0 {
		// unit divisor: the result keeps scale max(scale_a-scale_b, 0)
		// and, unlike the general path below, gains no extra
		// fractional digits.
		scaleDelta := int32(x.scale96()) - int32(y.scale96())
		mag := xm
		var scale uint32
		if scaleDelta >= 0 {
			scale = uint32(scaleDelta)
		} else {
			mag = new(BigUInt).Mul(mag, pow10BigUInt(int(-scaleDelta)))
			scale = 0
		}
		return reduceTo96(mag, neg, scale)
	}
	if Cmp(xm, ym) == 0 && x.scale96() == y.scale96() {
		return fromBigUInt(NewBigUInt(1), neg, 0)
	}

	maxFrac := int32(MaxScale128) - (int32(x.scale96()) - int32(y.scale96()))
	if maxFrac > int32(MaxNumDigits) {
		maxFrac = int32(MaxNumDigits)
	}
	if maxFrac < 0 {
		maxFrac = 0
	}

	scaled := new(BigUInt).Mul(xm, pow10BigUInt(int(maxFrac)+1)) // one guard digit
	q, _ := QuoRem(scaled, ym)
	qs := q.String()
	digits := make([]byte, len(qs))
	for i := 0; i < len(qs); i++ {
		digits[i] = qs[i] - '0'
	}
	lead := digits[len(digits)-1]
	kept := digits[:len(digits)-1]
	roundUp := lead >= 5 // spec ​§9: round-on-5 regardless of residual/mode, documented deviation
	mag := ParseBigUIntDigits(kept)
	if roundUp {
		mag.Add(mag, NewBigUInt(1))
	}
	resultScale := int32(x.scale96()) - int32(y.scale96()) + maxFrac
	if resultScale < 0 {
		resultScale = 0
	}
	return reduceTo96(mag, neg, uint32(resultScale))
}

// Round returns x rounded to n decimal places under HALF_EVEN.
func (x Decimal128) Round(n uint32) Decimal128 {
	scale := x.scale96()
	if n == scale {
		return x
	}
	mag := x.coeffToBigUInt()
	if n > scale {
		mag = new(BigUInt).Mul(mag, pow10BigUInt(int(n-scale)))
		return fromBigUInt(mag, x.neg96(), n)
	}
	drop := scale - n
	s := mag.String()
	digits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		digits[i] = s[i] - '0'
	}
	if uint32(len(digits)) <= drop {
		return Decimal128{flags: (n << 16) & scaleMask}
	}
	cut := uint32(len(digits)) - drop
	kept := digits[:cut]
	lead := digits[cut]
	rest := false
	for _, d := range digits[cut+1:] {
		if d != 0 {
			rest = true
		}
	}
	newMag := ParseBigUIntDigits(kept)
	if applyRounding(HalfEven, roundingInput{kept: kept, discardedLeading: lead, discardedRest: rest, neg: x.neg96()}) {
		newMag.Add(newMag, NewBigUInt(1))
	}
	return fromBigUInt(newMag, x.neg96(), n)
}

// String renders x the same way BigDecimal does: signed integer part,
// '.' plus exactly Scale() fractional digits.
func (x Decimal128) String() string {
	bd := &BigDecimal{coeff: NewBigIntFromBigUInt(x.coeffToBigUInt(), x.neg96()), scale: int32(x.scale96())}
	return bd.String()
}
