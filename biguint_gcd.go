// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Gcd sets z to the greatest common divisor of x and y using the
// binary GCD algorithm (Stein's algorithm): factor out the common
// power of two first via trailing_zero_bits, then repeatedly strip
// trailing zero bits from the (still-even) operand and subtract the
// smaller from the larger, until one operand reaches zero. The result
// is the other operand shifted back up by the common power of two.
func (z *BigUInt) Gcd(x, y *BigUInt) *BigUInt {
	if x.IsZero() {
		return z.Set(y)
	}
	if y.IsZero() {
		return z.Set(x)
	}

	a := new(BigUInt).Set(x)
	b := new(BigUInt).Set(y)

	shift := a.trailingZeroBits()
	if tzb := b.trailingZeroBits(); tzb < shift {
		shift = tzb
	}
	a.Shr(a, shift)
	b.Shr(b, shift)

	a.Shr(a, a.trailingZeroBits())
	for !b.IsZero() {
		b.Shr(b, b.trailingZeroBits())
		if Cmp(a, b) > 0 {
			a, b = b, a
		}
		b.Sub(b, a)
	}
	z.Shl(a, shift)
	return z
}
