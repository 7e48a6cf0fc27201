// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Bitwise operations follow Python's conceptual infinite two's
// complement: a negative BigInt behaves as if its magnitude were
// complemented with an implicit sign-extended all-ones prefix. Because
// limbBase (2^30) is a power of two, radix complementation at limb
// granularity produces exactly the same bit pattern as binary two's
// complement, so AND/OR/XOR can be computed limb-by-limb on a
// radix-complement buffer with two guard limbs (always pure 0 or
// pure limbMask, never touched by either operand's data) used to read
// back the sign of the result.

// radixComplement returns B^n - x for an n-limb magnitude slice x (x
// assumed < B^n). The all-zero input maps to all-zero output (there is
// no separate "negative zero" radix representation).
func radixComplement(x []Word, n int) []Word {
	xe := widen(x, n)
	allZero := true
	for _, w := range xe {
		if w != 0 {
			allZero = false
			break
		}
	}
	z := make([]Word, n)
	if allZero {
		return z
	}
	var c uint64 = 1
	for i := 0; i < n; i++ {
		v := uint64(limbMask-xe[i]) + c
		z[i] = Word(v & limbMask)
		c = v >> limbBits
	}
	return z
}

// toTwos returns x's n-limb radix-complement representation.
func toTwos(x *BigInt, n int) []Word {
	if x.neg {
		return radixComplement(norm(x.mag.limbs), n)
	}
	return widen(norm(x.mag.limbs), n)
}

// fromTwos interprets an n-limb radix-complement buffer (whose top
// limb is guaranteed to be a pure sign-extension guard) back into a
// BigInt.
func fromTwos(zl []Word, n int) *BigInt {
	if zl[n-1] == limbMask {
		mag := &BigUInt{limbs: norm(radixComplement(zl, n))}
		return NewBigIntFromBigUInt(mag, true)
	}
	return NewBigIntFromBigUInt(&BigUInt{limbs: norm(zl)}, false)
}

func twosOpLen(x, y *BigInt) int {
	n := len(norm(x.mag.limbs))
	if m := len(norm(y.mag.limbs)); m > n {
		n = m
	}
	return n + 2 // guard limbs for sign extension
}

// And sets z = x & y and returns z.
func (z *BigInt) And(x, y *BigInt) *BigInt {
	n := twosOpLen(x, y)
	xt, yt := toTwos(x, n), toTwos(y, n)
	r := make([]Word, n)
	for i := range r {
		r[i] = xt[i] & yt[i]
	}
	return z.Set(fromTwos(r, n))
}

// Or sets z = x | y and returns z.
func (z *BigInt) Or(x, y *BigInt) *BigInt {
	n := twosOpLen(x, y)
	xt, yt := toTwos(x, n), toTwos(y, n)
	r := make([]Word, n)
	for i := range r {
		r[i] = xt[i] | yt[i]
	}
	return z.Set(fromTwos(r, n))
}

// Xor sets z = x ^ y and returns z.
func (z *BigInt) Xor(x, y *BigInt) *BigInt {
	n := twosOpLen(x, y)
	xt, yt := toTwos(x, n), toTwos(y, n)
	r := make([]Word, n)
	for i := range r {
		r[i] = xt[i] ^ yt[i]
	}
	return z.Set(fromTwos(r, n))
}

// Not sets z = ~x = -(x+1) and returns z.
func (z *BigInt) Not(x *BigInt) *BigInt {
	one := NewBigInt(1)
	return z.Neg(new(BigInt).Add(x, one))
}

// Lsh sets z = x << n (arithmetic: magnitude shifts, sign preserved)
// and returns z.
func (z *BigInt) Lsh(x *BigInt, n uint) *BigInt {
	z.mag = new(BigUInt).Shl(x.mag, n)
	z.neg = x.neg
	return z.normSign()
}

// Rsh sets z = x >> n and returns z, rounding toward -infinity for
// negative x (so -1 >> k == -1 and -7 >> 1 == -4), matching Python's
// semantics rather than truncating shift.
func (z *BigInt) Rsh(x *BigInt, n uint) *BigInt {
	if !x.neg {
		z.mag = new(BigUInt).Shr(x.mag, n)
		z.neg = false
		return z
	}
	// For negative x, floor(x / 2^n) = -ceil(|x| / 2^n).
	shifted := new(BigUInt).Shr(x.mag, n)
	// Check whether any of the n low bits of |x| were nonzero; if so
	// the floor division needs the ceiling correction (+1).
	lost := false
	for i := uint(0); i < n; i++ {
		if x.mag.Bit(i) != 0 {
			lost = true
			break
		}
	}
	if lost {
		shifted.Add(shifted, NewBigUInt(1))
	}
	z.mag = shifted
	z.neg = true
	return z.normSign()
}
