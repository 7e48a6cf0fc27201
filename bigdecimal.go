// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "strings"

// BigDecimal is a variable-precision decimal value: coefficient *
// 10^(-scale), with coefficient a BigInt and scale a signed int32.
// Scale may be negative to represent large integers without
// accumulating trailing digits in the coefficient. There is no
// invariant that the coefficient's trailing zeros be stripped; scale
// carries semantic precision (e.g. "1.50" round-trips as coefficient
// 150, scale 2, distinct from "1.5").
type BigDecimal struct {
	coeff *BigInt
	scale int32
}

// NewBigDecimal returns a BigDecimal equal to coeff * 10^(-scale).
func NewBigDecimal(coeff *BigInt, scale int32) *BigDecimal {
	return &BigDecimal{coeff: new(BigInt).Set(coeff), scale: scale}
}

// NewBigDecimalFromInt64 returns an exact integer BigDecimal.
func NewBigDecimalFromInt64(x int64) *BigDecimal {
	return &BigDecimal{coeff: NewBigInt(x), scale: 0}
}

// ParseBigDecimal parses s via NumParse and returns the corresponding
// BigDecimal.
func ParseBigDecimal(s string) (*BigDecimal, error) {
	p, err := NumParse(s)
	if err != nil {
		return nil, err
	}
	coeff := NewBigIntFromBigUInt(ParseBigUIntDigits(p.Digits), p.Neg)
	return &BigDecimal{coeff: coeff, scale: p.Scale}, nil
}

// Scale returns x's scale.
func (x *BigDecimal) Scale() int32 { return x.scale }

// Coefficient returns a copy of x's coefficient.
func (x *BigDecimal) Coefficient() *BigInt { return new(BigInt).Set(x.coeff) }

// Sign returns -1, 0 or +1.
func (x *BigDecimal) Sign() int { return x.coeff.Sign() }

// IsZero reports whether x == 0.
func (x *BigDecimal) IsZero() bool { return x.coeff.Sign() == 0 }

// Set sets z to x and returns z.
func (z *BigDecimal) Set(x *BigDecimal) *BigDecimal {
	z.coeff = new(BigInt).Set(x.coeff)
	z.scale = x.scale
	return z
}

// scaleUpCoeff returns x's coefficient scaled up by 10^n (n >= 0).
func scaleUpCoeff(x *BigInt, n int32) *BigInt {
	if n <= 0 {
		return new(BigInt).Set(x)
	}
	pow := tenPow(n)
	return new(BigInt).Mul(x, pow)
}

var tenPowCache = map[int32]*BigInt{}

func tenPow(n int32) *BigInt {
	if n < 0 {
		n = 0
	}
	if v, ok := tenPowCache[n]; ok {
		return v
	}
	r := NewBigInt(1)
	ten := NewBigInt(10)
	for i := int32(0); i < n; i++ {
		r = new(BigInt).Mul(r, ten)
	}
	tenPowCache[n] = r
	return r
}

// align scales x and y's coefficients up to a common scale
// max(x.scale, y.scale) and returns (xCoeff, yCoeff, commonScale).
func align(x, y *BigDecimal) (*BigInt, *BigInt, int32) {
	s := x.scale
	if y.scale > s {
		s = y.scale
	}
	xc := scaleUpCoeff(x.coeff, s-x.scale)
	yc := scaleUpCoeff(y.coeff, s-y.scale)
	return xc, yc, s
}

// Add sets z = x + y and returns z.
func (z *BigDecimal) Add(x, y *BigDecimal) *BigDecimal {
	xc, yc, s := align(x, y)
	z.coeff = new(BigInt).Add(xc, yc)
	z.scale = s
	return z
}

// Sub sets z = x - y and returns z.
func (z *BigDecimal) Sub(x, y *BigDecimal) *BigDecimal {
	xc, yc, s := align(x, y)
	z.coeff = new(BigInt).Sub(xc, yc)
	z.scale = s
	return z
}

// Neg sets z = -x and returns z.
func (z *BigDecimal) Neg(x *BigDecimal) *BigDecimal {
	z.coeff = new(BigInt).Neg(x.coeff)
	z.scale = x.scale
	return z
}

// Abs sets z = |x| and returns z.
func (z *BigDecimal) Abs(x *BigDecimal) *BigDecimal {
	z.coeff = new(BigInt).Abs(x.coeff)
	z.scale = x.scale
	return z
}

// Mul sets z = x * y and returns z: scale = scale_a + scale_b,
// coefficients multiply.
func (z *BigDecimal) Mul(x, y *BigDecimal) *BigDecimal {
	z.coeff = new(BigInt).Mul(x.coeff, y.coeff)
	z.scale = x.scale + y.scale
	return z
}

// CmpBigDecimal compares x and y by value (not representation).
func CmpBigDecimal(x, y *BigDecimal) int {
	xc, yc, _ := align(x, y)
	return CmpBigInt(xc, yc)
}

// digitsOf returns the big-endian decimal digit values of |x|'s
// magnitude (x != 0 assumed; "0" is returned as []byte{0} for x == 0).
func digitsOf(x *BigInt) []byte {
	s := x.mag.String()
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i] - '0'
	}
	return out
}

// Quo sets z to x / y rounded to precision p fractional digits (p is
// the target number of digits after the decimal point) using
// policy, and returns z. It panics with ErrorKind DivisionByZero if
// y == 0.
//
// Implementation: one integer division of the coefficients, with the
// dividend's coefficient pre-scaled by a power of ten (the divisor's
// instead, when x carries more fractional digits than y's plus p) so
// that the quotient carries exactly p fractional digits, then one
// guard digit decides the rounding. An exact quotient also keeps all p
// fractional digits: trailing zeros are not removed and division does
// not stop early. Division by a divisor whose coefficient is
// exactly 1 is special-cased (spec ​§9 Open Questions) for performance,
// but produces the same scale as the general path.
func (z *BigDecimal) Quo(x, y *BigDecimal, p uint32, policy RoundingPolicy) *BigDecimal {
	if y.coeff.Sign() == 0 {
		panicf(DivisionByZero, "BigDecimal.Quo", "division by zero")
	}
	if x.coeff.Sign() == 0 {
		z.coeff = NewBigInt(0)
		z.scale = int32(p)
		return z
	}

	resultScale := int32(p)
	// x/y = (x.coeff/y.coeff) * 10^(y.scale-x.scale), so scaling the
	// coefficient quotient by 10^shift leaves exactly p fractional digits.
	shift := int32(p) + y.scale - x.scale

	if CmpBigInt(new(BigInt).Abs(y.coeff), NewBigInt(1)) == 0 && shift >= 0 {
		// special-cased unit-coefficient divisor: same scale formula
		// as the general path, computed directly without a long
		// division loop.
		num := scaleUpCoeff(x.coeff, shift)
		if y.coeff.neg {
			num.neg = !num.neg
			num.normSign()
		}
		z.coeff = num
		z.scale = resultScale
		return z
	}

	neg := x.coeff.neg != y.coeff.neg
	numAbs := new(BigInt).Abs(x.coeff)
	denAbs := new(BigInt).Abs(y.coeff)
	if shift >= 0 {
		numAbs = scaleUpCoeff(numAbs, shift)
	} else {
		denAbs = scaleUpCoeff(denAbs, -shift)
	}

	q, r := QuoRem(numAbs.mag, denAbs.mag)

	if !r.IsZero() {
		// one extra guard digit, then round.
		ten := NewBigUInt(10)
		numNext := new(BigUInt).Mul(r, ten)
		guardQ, guardR := QuoRem(numNext, denAbs.mag)
		guardDigit := byte(guardQ.toUint64Unsafe())
		rest := !guardR.IsZero()
		kept := digitsOf(NewBigIntFromBigUInt(q, false))
		if applyRounding(policy, roundingInput{kept: kept, discardedLeading: guardDigit, discardedRest: rest, neg: neg}) {
			q = new(BigUInt).Add(q, NewBigUInt(1))
		}
	}

	z.coeff = NewBigIntFromBigUInt(q, neg)
	z.scale = resultScale
	return z
}

// Round returns x rounded to n fractional digits under policy; x
// itself is not modified.
func (x *BigDecimal) Round(n int32, policy RoundingPolicy) *BigDecimal {
	if x.scale <= n {
		z := new(BigDecimal)
		return z.Set(x)
	}
	drop := x.scale - n
	digits := digitsOf(x.coeff)
	if int32(len(digits)) <= drop {
		// entire value is below the rounding place.
		zero := &BigDecimal{coeff: NewBigInt(0), scale: n}
		lead := byte(0)
		rest := false
		for _, d := range digits {
			if d != 0 {
				rest = true
			}
		}
		if int32(len(digits)) == drop {
			lead = digits[0]
			rest = false
			for _, d := range digits[1:] {
				if d != 0 {
					rest = true
				}
			}
		}
		if applyRounding(policy, roundingInput{kept: nil, discardedLeading: lead, discardedRest: rest, neg: x.coeff.neg}) {
			one := NewBigIntFromBigUInt(NewBigUInt(1), x.coeff.neg)
			return zero.Add(zero, &BigDecimal{coeff: one, scale: n})
		}
		return zero
	}
	cut := int32(len(digits)) - drop
	kept := digits[:cut]
	lead := digits[cut]
	rest := false
	for _, d := range digits[cut+1:] {
		if d != 0 {
			rest = true
		}
	}
	mag := ParseBigUIntDigits(kept)
	if applyRounding(policy, roundingInput{kept: kept, discardedLeading: lead, discardedRest: rest, neg: x.coeff.neg}) {
		mag.Add(mag, NewBigUInt(1))
	}
	return &BigDecimal{coeff: NewBigIntFromBigUInt(mag, x.coeff.neg), scale: n}
}

// String renders the canonical decimal form: a signed integer part,
// optional '.' followed by exactly Scale() fractional digits
// (trailing zeros preserved), or a plain large integer when scale <
// 0. No scientific notation is produced.
func (x *BigDecimal) String() string {
	digits := digitsOf(x.coeff)
	neg := x.coeff.neg
	s := x.scale

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case s <= 0:
		b.Write(digitsToASCII(digits))
		for i := int32(0); i < -s; i++ {
			b.WriteByte('0')
		}
	case int32(len(digits)) > s:
		intPart := digits[:int32(len(digits))-s]
		fracPart := digits[int32(len(digits))-s:]
		b.Write(digitsToASCII(intPart))
		b.WriteByte('.')
		b.Write(digitsToASCII(fracPart))
	default:
		b.WriteByte('0')
		b.WriteByte('.')
		for i := int32(0); i < s-int32(len(digits)); i++ {
			b.WriteByte('0')
		}
		b.Write(digitsToASCII(digits))
	}
	return b.String()
}

func digitsToASCII(d []byte) []byte {
	out := make([]byte, len(d))
	for i, v := range d {
		out[i] = '0' + v
	}
	return out
}

// ToStringWithSeparators groups the integer part's digits in threes
// from the right, joined by sep (defaults to "_" if sep is empty).
func (x *BigDecimal) ToStringWithSeparators(sep string) string {
	if sep == "" {
		sep = "_"
	}
	s := x.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	var grouped strings.Builder
	n := len(intPart)
	for i, c := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			grouped.WriteString(sep)
		}
		grouped.WriteRune(c)
	}
	out := grouped.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// ToDecimalString wraps x's String() output at lineWidth characters
// per line, joined by "\n".
func (x *BigDecimal) ToDecimalString(lineWidth int) string {
	s := x.String()
	if lineWidth <= 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += lineWidth {
		end := i + lineWidth
		if end > len(s) {
			end = len(s)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}
