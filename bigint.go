// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// BigInt is a signed arbitrary-precision integer: the pair
// (magnitude BigUInt, neg bool). By convention the canonical zero
// always has neg == false; negative zero is never produced by any
// operation in this package.
type BigInt struct {
	mag *BigUInt
	neg bool
}

// NewBigInt returns a new BigInt set to x.
func NewBigInt(x int64) *BigInt {
	z := &BigInt{mag: new(BigUInt)}
	if x < 0 {
		z.neg = true
		z.mag.SetUint64(uint64(-x))
	} else {
		z.mag.SetUint64(uint64(x))
	}
	return z
}

// NewBigIntFromBigUInt returns a BigInt with magnitude x and the given
// sign (sign is ignored when x == 0, per the no-negative-zero rule).
func NewBigIntFromBigUInt(x *BigUInt, neg bool) *BigInt {
	z := &BigInt{mag: new(BigUInt).Set(x)}
	z.neg = neg && !z.mag.IsZero()
	return z
}

// Set sets z to x and returns z.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z == x {
		return z
	}
	if z.mag == nil {
		z.mag = new(BigUInt)
	}
	z.mag.Set(x.mag)
	z.neg = x.neg
	return z
}

// normSign clears the sign flag whenever the magnitude is zero,
// enforcing the no-negative-zero invariant.
func (z *BigInt) normSign() *BigInt {
	if z.mag.IsZero() {
		z.neg = false
	}
	return z
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *BigInt) Sign() int {
	if x.mag.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg sets z = -x and returns z.
func (z *BigInt) Neg(x *BigInt) *BigInt {
	z.mag = new(BigUInt).Set(x.mag)
	z.neg = !x.neg
	return z.normSign()
}

// Abs sets z = |x| and returns z.
func (z *BigInt) Abs(x *BigInt) *BigInt {
	z.mag = new(BigUInt).Set(x.mag)
	z.neg = false
	return z
}

// CmpBigInt compares x and y and returns -1, 0 or +1.
func CmpBigInt(x, y *BigInt) int {
	switch {
	case x.neg && !y.neg:
		if x.mag.IsZero() && y.mag.IsZero() {
			return 0
		}
		return -1
	case !x.neg && y.neg:
		if x.mag.IsZero() && y.mag.IsZero() {
			return 0
		}
		return 1
	case !x.neg: // both non-negative
		return Cmp(x.mag, y.mag)
	default: // both negative
		return -Cmp(x.mag, y.mag)
	}
}

// Equal reports whether x and y denote the same value.
func Equal(x, y *BigInt) bool { return CmpBigInt(x, y) == 0 }

// Add sets z = x + y and returns z.
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	if x.neg == y.neg {
		z.mag = new(BigUInt).Add(x.mag, y.mag)
		z.neg = x.neg
		return z.normSign()
	}
	// opposite signs: subtract the smaller magnitude from the larger.
	if Cmp(x.mag, y.mag) >= 0 {
		z.mag = new(BigUInt).Sub(x.mag, y.mag)
		z.neg = x.neg
	} else {
		z.mag = new(BigUInt).Sub(y.mag, x.mag)
		z.neg = y.neg
	}
	return z.normSign()
}

// Sub sets z = x - y and returns z.
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	return z.Add(x, new(BigInt).Neg(y))
}

// Mul sets z = x * y and returns z.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	z.mag = new(BigUInt).Mul(x.mag, y.mag)
	z.neg = x.neg != y.neg
	return z.normSign()
}

// QuoRem computes truncated division: q = trunc(x/y), r = x - q*y.
// The remainder takes the sign of the dividend x (or is zero).
// Panics with ErrorKind DivisionByZero if y == 0.
func (z *BigInt) QuoRem(r, x, y *BigInt) *BigInt {
	if y.mag.IsZero() {
		panicf(DivisionByZero, "BigInt.QuoRem", "division by zero")
	}
	qmag, rmag := QuoRem(x.mag, y.mag)
	z.mag = qmag
	z.neg = x.neg != y.neg
	z.normSign()
	if r != nil {
		r.mag = rmag
		r.neg = x.neg
		r.normSign()
	}
	return z
}

// DivMod computes floor division: q = floor(x/y), r = x - q*y, with
// Python semantics: the remainder takes the sign of the divisor y (or
// is zero), and 0 <= r < |y| when y > 0 (|y| <= r < 0 when y < 0 is
// not possible since r always has y's sign and |r| < |y|).
// Panics with ErrorKind DivisionByZero if y == 0.
func (z *BigInt) DivMod(r, x, y *BigInt) *BigInt {
	if y.mag.IsZero() {
		panicf(DivisionByZero, "BigInt.DivMod", "division by zero")
	}
	qmag, rmag := QuoRem(x.mag, y.mag)
	q := &BigInt{mag: qmag, neg: x.neg != y.neg}
	q.normSign()
	rem := &BigInt{mag: rmag, neg: x.neg}
	rem.normSign()

	if x.neg != y.neg && !rem.mag.IsZero() {
		// Truncated quotient rounded toward zero; floor needs one
		// more step toward -infinity, with the remainder corrected
		// to take the divisor's sign: q += 1 (as magnitude then
		// flipped), r = y - r (in magnitude terms, since r's
		// magnitude is |x| mod |y|).
		q.mag = new(BigUInt).Add(q.mag, NewBigUInt(1))
		q.neg = true
		rem.mag = new(BigUInt).Sub(y.mag, rem.mag)
		rem.neg = y.neg
		rem.normSign()
	} else {
		rem.neg = y.neg && !rem.mag.IsZero()
	}

	z.mag, z.neg = q.mag, q.neg
	z.normSign()
	if r != nil {
		r.mag, r.neg = rem.mag, rem.neg
	}
	return z
}

// Pow sets z = x**n for n >= 0 using left-to-right binary
// exponentiation and returns z.
func (z *BigInt) Pow(x *BigInt, n uint64) *BigInt {
	if n == 0 {
		return z.Set(NewBigInt(1))
	}
	result := NewBigInt(1)
	base := new(BigInt).Set(x)
	// left-to-right: find the highest set bit, then square-and-
	// multiply scanning down.
	highBit := 63
	for highBit > 0 && n&(1<<uint(highBit)) == 0 {
		highBit--
	}
	for i := highBit; i >= 0; i-- {
		result.Mul(result, result)
		if n&(1<<uint(i)) != 0 {
			result.Mul(result, base)
		}
	}
	z.Set(result)
	return z
}

// String returns the canonical base-10 representation of x: an
// optional leading '-', then digits, with no leading zero except for
// the single digit "0".
func (x *BigInt) String() string {
	s := x.mag.String()
	if x.neg && s != "0" {
		return "-" + s
	}
	return s
}
