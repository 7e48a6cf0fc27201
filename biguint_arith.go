// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// addVV sets z = x + y for equal-length limb slices padded by the
// caller, propagating a carry in a 64-bit accumulator, and returns the
// final carry (0 or 1).
func addVV(z, x, y []Word) Word {
	var c uint64
	for i := range z {
		s := uint64(x[i]) + uint64(y[i]) + c
		z[i] = Word(s & limbMask)
		c = s >> limbBits
	}
	return Word(c)
}

// subVV sets z = x - y (x >= y assumed for equal-length slices) and
// returns the final borrow (0 or 1).
func subVV(z, x, y []Word) Word {
	var b uint64
	for i := range z {
		d := uint64(x[i]) - uint64(y[i]) - b
		if d>>63 != 0 { // underflowed
			z[i] = Word((d + limbBase) & limbMask)
			b = 1
		} else {
			z[i] = Word(d & limbMask)
			b = 0
		}
	}
	return Word(b)
}

// Add sets z = x + y and returns z.
func (z *BigUInt) Add(x, y *BigUInt) *BigUInt {
	xl, yl := norm(x.limbs), norm(y.limbs)
	if len(xl) < len(yl) {
		xl, yl = yl, xl
	}
	n := len(xl)
	zl := make([]Word, n+1)
	yl2 := make([]Word, n)
	copy(yl2, yl)
	c := addVV(zl[:n], xl, yl2)
	zl[n] = c
	z.limbs = norm(zl)
	return z
}

// cmpLimbs compares two normalized limb slices.
func cmpLimbs(x, y []Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Sub sets z = x - y and returns z. Precondition: x >= y. If x < y,
// Sub reports the violation via a panic carrying ErrorKind Underflow;
// BigInt never triggers this because it compares magnitudes first and
// swaps operands/sign as needed.
func (z *BigUInt) Sub(x, y *BigUInt) *BigUInt {
	xl, yl := norm(x.limbs), norm(y.limbs)
	if cmpLimbs(xl, yl) < 0 {
		panicf(Underflow, "BigUInt.Sub", "minuend smaller than subtrahend")
	}
	n := len(xl)
	yl2 := make([]Word, n)
	copy(yl2, yl)
	zl := make([]Word, n)
	subVV(zl, xl, yl2)
	z.limbs = norm(zl)
	return z
}

// IAdd is the in-place form of Add: z += x. It may reuse z's storage.
func (z *BigUInt) IAdd(x *BigUInt) *BigUInt { return z.Add(z, x) }

// ISub is the in-place form of Sub: z -= x.
func (z *BigUInt) ISub(x *BigUInt) *BigUInt { return z.Sub(z, x) }
