// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// bzThreshold is the divisor length (in limbs) above which DivMod
// hands the division to burnikelZieglerDivMod, the block-wise driver
// around Knuth Algorithm D.
const bzThreshold = 64

// divWVW divides the multi-limb value x by the single limb m and
// returns the quotient limbs (normalized) and the remainder limb.
func divWVW(x []Word, m Word) ([]Word, Word) {
	q := make([]Word, len(x))
	var r uint64
	mm := uint64(m)
	for i := len(x) - 1; i >= 0; i-- {
		cur := (r << limbBits) | uint64(x[i])
		q[i] = Word(cur / mm)
		r = cur % mm
	}
	return norm(q), Word(r)
}

// DivMod computes the quotient and remainder of x / y, satisfying
// x = q*y + r, 0 <= r < y. It panics with ErrorKind DivisionByZero
// if y == 0.
func (z *BigUInt) DivMod(r, x, y *BigUInt) *BigUInt {
	q, rem := divModLimbs(norm(x.limbs), norm(y.limbs))
	z.limbs = q
	if r != nil {
		r.limbs = rem
	}
	return z
}

// QuoRem is a convenience wrapper around DivMod returning fresh values.
func QuoRem(x, y *BigUInt) (q, r *BigUInt) {
	q, r = new(BigUInt), new(BigUInt)
	q.DivMod(r, x, y)
	return
}

func divModLimbs(x, y []Word) (q, r []Word) {
	if len(y) == 1 && y[0] == 0 {
		panicf(DivisionByZero, "BigUInt.DivMod", "division by zero")
	}
	if cmpLimbs(x, y) < 0 {
		return []Word{0}, append([]Word{}, x...)
	}
	if len(y) == 1 {
		qq, rr := divWVW(x, y[0])
		return qq, []Word{rr}
	}
	if len(y) <= bzThreshold {
		return knuthDivMod(x, y)
	}
	return burnikelZieglerDivMod(x, y)
}

// knuthDivMod implements Knuth's Algorithm D (TAOCP vol 2, 4.3.1):
// schoolbook long division with a 2-limb trial quotient digit and a
// correction step, operating on normalized (shifted so the divisor's
// top limb has its high bit set within the limb) operands.
func knuthDivMod(x, y []Word) (q, r []Word) {
	n := len(y)
	m := len(x) - n
	if m < 0 {
		m = 0
	}

	// Normalize: scale both operands by d so that y's top limb's
	// high bit (within the 30-bit limb) is set.
	var d Word = 1
	top := y[n-1]
	for top < limbBase/2 {
		top <<= 1
		d <<= 1
	}
	xn := mulByWord(x, d)
	if len(xn) == len(x) {
		xn = append(xn, 0)
	}
	yn := norm(mulByWord(y, d))

	qlen := m + 1
	qq := make([]Word, qlen)

	for j := m; j >= 0; j-- {
		// Estimate trial quotient digit qhat from the top two
		// limbs of the remaining dividend and the top limb of yn.
		num := uint64(xn[j+n])<<limbBits | uint64(xn[j+n-1])
		den := uint64(yn[n-1])
		qhat := num / den
		rhat := num % den
		if qhat >= limbBase {
			qhat = limbBase - 1
			rhat = num - qhat*den
		}
		for n >= 2 && rhat < limbBase && qhat*uint64(yn[n-2]) > rhat<<limbBits+uint64(xn[j+n-2]) {
			qhat--
			rhat += den
		}

		// Multiply and subtract.
		var borrow, carry uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(yn[i]) + carry
			carry = p >> limbBits
			sub := uint64(xn[j+i]) - (p & limbMask) - borrow
			if sub>>63 != 0 {
				xn[j+i] = Word((sub + limbBase) & limbMask)
				borrow = 1
			} else {
				xn[j+i] = Word(sub & limbMask)
				borrow = 0
			}
		}
		sub := uint64(xn[j+n]) - carry - borrow
		if sub>>63 != 0 {
			xn[j+n] = Word((sub + limbBase) & limbMask)
			// qhat was one too large: add back.
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(xn[j+i]) + uint64(yn[i]) + c
				xn[j+i] = Word(s & limbMask)
				c = s >> limbBits
			}
			xn[j+n] = Word((uint64(xn[j+n]) + c) & limbMask)
		} else {
			xn[j+n] = Word(sub & limbMask)
		}
		qq[j] = Word(qhat)
	}

	rem := norm(xn[:n])
	rem, _ = divWVW(rem, d)
	return norm(qq), norm(rem)
}

// mulByWord returns x * m as a fresh, un-normalized limb slice one
// limb longer than x.
func mulByWord(x []Word, m Word) []Word {
	z := make([]Word, len(x)+1)
	c := mulAddVWW(z[:len(x)], x, m, 0)
	z[len(x)] = c
	return z
}

// burnikelZieglerDivMod divides block by block: it splits the dividend
// into blocks of n limbs (n = len(y)) and, from the most significant
// block down, joins each block with the running remainder and divides
// that value (at most 2n limbs) by y with Knuth Algorithm D. A
// dividend of at most 2n limbs goes straight to Knuth Algorithm D.
// There is no recursive split into half-sized divisions, so the cost
// stays quadratic in the operand length, as with Knuth Algorithm D.
func burnikelZieglerDivMod(x, y []Word) (q, r []Word) {
	n := len(y)
	if len(x) <= 2*n {
		return knuthDivMod(x, y)
	}

	// Process x from the most significant end in blocks of n limbs,
	// folding each new block in with the running remainder via one
	// 2n-by-n division (divModLimbs, which reaches Knuth D for it).
	blocks := splitIntoBlocks(x, n)
	rem := []Word{0}
	qParts := make([][]Word, len(blocks))
	for i := len(blocks) - 1; i >= 0; i-- {
		num := shiftedAdd(blocks[i], rem, n)
		// num has up to 2n limbs; divide by y (n limbs).
		qi, ri := divModLimbs(norm(num), y)
		qParts[i] = qi
		rem = ri
	}
	result := []Word{0}
	for i, qi := range qParts {
		result = shiftedAdd(result, qi, i*n)
	}
	return norm(result), norm(rem)
}

// splitIntoBlocks splits x into ceil(len(x)/n) little-endian blocks of
// n limbs each (the most significant block may be shorter).
func splitIntoBlocks(x []Word, n int) [][]Word {
	var blocks [][]Word
	for i := 0; i < len(x); i += n {
		end := i + n
		if end > len(x) {
			end = len(x)
		}
		b := make([]Word, end-i)
		copy(b, x[i:end])
		blocks = append(blocks, norm(b))
	}
	if len(blocks) == 0 {
		blocks = [][]Word{{0}}
	}
	return blocks
}
