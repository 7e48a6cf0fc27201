// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Word is a single limb of a BigUInt: an unsigned value in [0, limbBase).
// The top two bits of every Word are always clear.
type Word uint32

const (
	limbBits = 30
	limbBase = 1 << limbBits  // 2^30
	limbMask = limbBase - 1   // 2^30 - 1
)

// BigUInt is an arbitrary-precision unsigned integer represented as a
// little-endian sequence of base-2^30 limbs (limbs[0] is least
// significant). The zero value is ready to use and represents 0.
//
// Canonical form: limbs is never empty (zero is the single limb [0]),
// and no limb beyond the least-significant one is zero except for
// that canonical zero. Every public constructor and every mutating
// operation returns a value in canonical form. The one exception is
// the zero value itself, whose nil limbs every operation reads as 0.
//
// BigUInt values are independently owned; copying a BigUInt by value
// aliases the underlying limb slice, so callers that intend to mutate
// a copy independently should call Set on a fresh value instead of a
// plain Go assignment. No BigUInt is ever mutated concurrently from
// two goroutines; values may be freely copied and read concurrently.
type BigUInt struct {
	limbs []Word
}

// NewBigUInt returns a new BigUInt set to x.
func NewBigUInt(x uint64) *BigUInt {
	return new(BigUInt).SetUint64(x)
}

// make returns a limb slice of length n, reusing z's backing array
// when it has enough capacity.
func (z *BigUInt) make(n int) []Word {
	if n <= cap(z.limbs) {
		return z.limbs[:n]
	}
	const extra = 2
	return make([]Word, n, n+extra)
}

// norm trims trailing (most-significant) zero limbs, leaving the
// canonical single-limb zero [0] when the value is zero.
func norm(x []Word) []Word {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		if len(x) == 0 {
			return []Word{0}
		}
		return x[:1]
	}
	return x[:i]
}

// SetUint64 sets z to x and returns z.
func (z *BigUInt) SetUint64(x uint64) *BigUInt {
	switch {
	case x == 0:
		z.limbs = z.make(1)
		z.limbs[0] = 0
	case x < limbBase:
		z.limbs = z.make(1)
		z.limbs[0] = Word(x)
	case x < limbBase*limbBase:
		z.limbs = z.make(2)
		z.limbs[0] = Word(x & limbMask)
		z.limbs[1] = Word(x >> limbBits)
	default:
		z.limbs = z.make(3)
		z.limbs[0] = Word(x & limbMask)
		z.limbs[1] = Word((x >> limbBits) & limbMask)
		z.limbs[2] = Word(x >> (2 * limbBits))
		z.limbs = norm(z.limbs)
	}
	return z
}

// Set sets z to x and returns z. The receiver gets its own copy of
// x's limbs.
func (z *BigUInt) Set(x *BigUInt) *BigUInt {
	if z == x {
		return z
	}
	z.limbs = append(z.make(len(x.limbs))[:0], x.limbs...)
	return z
}

// IsZero reports whether x == 0.
func (x *BigUInt) IsZero() bool {
	return len(x.limbs) == 0 || (len(x.limbs) == 1 && x.limbs[0] == 0)
}

// Bits returns the number of bits required to represent x; Bits(0) == 0.
func (x *BigUInt) Bits() int {
	n := len(x.limbs)
	for n > 0 && x.limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return 0
	}
	top := x.limbs[n-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (n-1)*limbBits + bits
}

// NumLimbs returns len(x.limbs) in canonical form.
func (x *BigUInt) NumLimbs() int {
	if x.IsZero() {
		return 1
	}
	return len(x.limbs)
}

// Cmp compares x and y and returns -1, 0 or +1 depending on whether
// x < y, x == y or x > y.
func Cmp(x, y *BigUInt) int {
	xl, yl := norm(x.limbs), norm(y.limbs)
	if len(xl) != len(yl) {
		if len(xl) < len(yl) {
			return -1
		}
		return 1
	}
	for i := len(xl) - 1; i >= 0; i-- {
		if xl[i] != yl[i] {
			if xl[i] < yl[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// clone returns a fresh copy of x's limbs in canonical form.
func (x *BigUInt) clone() []Word {
	l := norm(x.limbs)
	c := make([]Word, len(l))
	copy(c, l)
	return c
}
