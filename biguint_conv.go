// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "strings"

// dcThreshold is the decimal-digit count above which String switches
// from iterated chunk division to the recursive divide-and-conquer
// conversion.
const dcThreshold = 10000

// bigUIntTenPow9 is 10^9, the chunk size used by the small-value path: each
// chunk's value fits comfortably below limbBase*limbBase so divWVW-style
// single-limb division stays in play when chunking by 10^9 against a
// BigUInt of arbitrary limb count.
var bigUIntTenPow9 = NewBigUInt(1000000000)

// String returns the canonical base-10 representation of x (no
// leading zeros, "0" for zero).
func (x *BigUInt) String() string {
	if x.IsZero() {
		return "0"
	}
	if x.digitCountEstimate() > dcThreshold {
		return dcToString(x)
	}
	return chunkedToString(x)
}

// digitCountEstimate returns an upper bound on the number of decimal
// digits in x, used only to pick a conversion strategy.
func (x *BigUInt) digitCountEstimate() int {
	bits := x.Bits()
	// log10(2) ~ 0.30103; add 1 for rounding safety.
	return int(float64(bits)*0.30103) + 1
}

// chunkedToString implements the small-value path: repeated division
// by 10^9, formatting each chunk as a fixed-width 9-digit group except
// for the most significant (unpadded) chunk.
func chunkedToString(x *BigUInt) string {
	cur := new(BigUInt).Set(x)
	var chunks []uint32
	for !cur.IsZero() {
		q, r := QuoRem(cur, bigUIntTenPow9)
		chunks = append(chunks, uint32(r.toUint64Unsafe()))
		cur = q
	}
	var b strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		if i == len(chunks)-1 {
			b.WriteString(itoaUint(uint64(chunks[i])))
		} else {
			s := itoaUint(uint64(chunks[i]))
			b.WriteString(strings.Repeat("0", 9-len(s)))
			b.WriteString(s)
		}
	}
	return b.String()
}

// toUint64Unsafe returns x's value as a uint64, assuming it fits in
// 64 bits; no check is made, and higher bits are lost.
func (x *BigUInt) toUint64Unsafe() uint64 {
	xl := norm(x.limbs)
	var v uint64
	for i := len(xl) - 1; i >= 0; i-- {
		v = v<<limbBits | uint64(xl[i])
	}
	return v
}

func itoaUint(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// dcToString implements the divide-and-conquer conversion for large
// values: split by 10^k at k ~= digits/2, convert each half
// recursively and concatenate, padding the low half to exactly k
// digits.
func dcToString(x *BigUInt) string {
	digits := x.digitCountEstimate()
	if digits <= dcThreshold {
		return chunkedToString(x)
	}
	k := digits / 2
	pow := pow10BigUInt(k)
	hi, lo := QuoRem(x, pow)
	hiStr := dcToString(hi)
	loStr := dcToString(lo)
	if len(loStr) < k {
		loStr = strings.Repeat("0", k-len(loStr)) + loStr
	}
	return hiStr + loStr
}

var pow10Cache = map[int]*BigUInt{}

// pow10BigUInt returns 10^k as a BigUInt, memoizing small powers.
func pow10BigUInt(k int) *BigUInt {
	if v, ok := pow10Cache[k]; ok {
		return v
	}
	ten := NewBigUInt(10)
	r := NewBigUInt(1)
	for i := 0; i < k; i++ {
		r = new(BigUInt).Mul(r, ten)
	}
	pow10Cache[k] = r
	return r
}

// ParseBigUIntDigits builds a BigUInt from a sequence of decimal digit
// values (each in [0,9], most significant first) via the inverse
// divide-and-conquer fold: acc = acc*10^k + chunk, halving k at each
// level. This mirrors dcToString's split and is the counterpart
// spec ​§4.2 calls from_decimal_string.
func ParseBigUIntDigits(digits []byte) *BigUInt {
	if len(digits) == 0 {
		return NewBigUInt(0)
	}
	return parseDigitsRec(digits)
}

func parseDigitsRec(digits []byte) *BigUInt {
	if len(digits) <= 18 {
		var v uint64
		for _, d := range digits {
			v = v*10 + uint64(d)
		}
		return NewBigUInt(v)
	}
	k := len(digits) / 2
	hi := parseDigitsRec(digits[:len(digits)-k])
	lo := parseDigitsRec(digits[len(digits)-k:])
	pow := pow10BigUInt(k)
	acc := new(BigUInt).Mul(hi, pow)
	acc.Add(acc, lo)
	return acc
}
