// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Shl sets z = x << n (n in bits) and returns z. n is decomposed into
// a whole-limb part (n/limbBits) spliced in as leading zero limbs and
// a sub-limb remainder propagated with a two-limb accumulator.
func (z *BigUInt) Shl(x *BigUInt, n uint) *BigUInt {
	xl := norm(x.limbs)
	if len(xl) == 1 && xl[0] == 0 {
		z.limbs = []Word{0}
		return z
	}
	q, r := int(n/limbBits), uint(n%limbBits)
	zl := make([]Word, len(xl)+q+1)
	if r == 0 {
		copy(zl[q:], xl)
	} else {
		var carry uint64
		for i, w := range xl {
			v := uint64(w)<<r | carry
			zl[q+i] = Word(v & limbMask)
			carry = v >> limbBits
		}
		zl[q+len(xl)] = Word(carry)
	}
	z.limbs = norm(zl)
	return z
}

// Shr sets z = x >> n (n in bits, logical/floor shift) and returns z.
func (z *BigUInt) Shr(x *BigUInt, n uint) *BigUInt {
	xl := norm(x.limbs)
	q, r := int(n/limbBits), uint(n%limbBits)
	if q >= len(xl) {
		z.limbs = []Word{0}
		return z
	}
	src := xl[q:]
	zl := make([]Word, len(src))
	if r == 0 {
		copy(zl, src)
	} else {
		for i := 0; i < len(src); i++ {
			lo := uint64(src[i]) >> r
			var hi uint64
			if i+1 < len(src) {
				hi = uint64(src[i+1]) << (limbBits - r)
			}
			zl[i] = Word((lo | hi) & limbMask)
		}
	}
	z.limbs = norm(zl)
	return z
}

// trailingZeroBits returns the number of trailing zero bits of x;
// trailingZeroBits(0) == 0.
func (x *BigUInt) trailingZeroBits() uint {
	xl := norm(x.limbs)
	for i, w := range xl {
		if w != 0 {
			tz := uint(0)
			for w&1 == 0 {
				w >>= 1
				tz++
			}
			return uint(i)*limbBits + tz
		}
	}
	return 0
}

// Bit returns the value of the i'th bit of x (0 or 1).
func (x *BigUInt) Bit(i uint) uint {
	q, r := i/limbBits, i%limbBits
	xl := norm(x.limbs)
	if int(q) >= len(xl) {
		return 0
	}
	return uint((xl[q] >> r) & 1)
}

// widen pads x with zero limbs up to length n.
func widen(x []Word, n int) []Word {
	if len(x) >= n {
		return x
	}
	z := make([]Word, n)
	copy(z, x)
	return z
}

// And, Or, Xor implement bitwise operations on the unsigned magnitude
// representation limb-wise; BigInt layers Python-style two's
// complement semantics for negative operands on top of these.
func (z *BigUInt) And(x, y *BigUInt) *BigUInt {
	n := len(norm(x.limbs))
	if m := len(norm(y.limbs)); m > n {
		n = m
	}
	xl, yl := widen(norm(x.limbs), n), widen(norm(y.limbs), n)
	zl := make([]Word, n)
	for i := range zl {
		zl[i] = xl[i] & yl[i]
	}
	z.limbs = norm(zl)
	return z
}

func (z *BigUInt) Or(x, y *BigUInt) *BigUInt {
	n := len(norm(x.limbs))
	if m := len(norm(y.limbs)); m > n {
		n = m
	}
	xl, yl := widen(norm(x.limbs), n), widen(norm(y.limbs), n)
	zl := make([]Word, n)
	for i := range zl {
		zl[i] = xl[i] | yl[i]
	}
	z.limbs = norm(zl)
	return z
}

func (z *BigUInt) Xor(x, y *BigUInt) *BigUInt {
	n := len(norm(x.limbs))
	if m := len(norm(y.limbs)); m > n {
		n = m
	}
	xl, yl := widen(norm(x.limbs), n), widen(norm(y.limbs), n)
	zl := make([]Word, n)
	for i := range zl {
		zl[i] = xl[i] ^ yl[i]
	}
	z.limbs = norm(zl)
	return z
}
