// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// ParsedNumber is the normalized result of NumParse: a decimal
// literal reduced to its coefficient digit sequence, scale, and sign.
type ParsedNumber struct {
	// Digits holds one decimal digit value (0-9) per mantissa digit,
	// most significant first. "0" normalizes to a single zero digit.
	Digits []byte
	// Scale is digitsAfterDecimal - exponent: positive scale places
	// the decimal point that many digits from the right.
	Scale int32
	// Neg reports whether the literal carried a leading '-'.
	Neg bool
}

// simdLane is the byte-lane width the fast/medium parse paths are
// modeled on (spec ​§4.1/§9: "SIMD lane width 16"). Go has no portable
// way to issue 16-wide SIMD byte subtraction without assembly, so the
// fast and medium paths below are plain unrolled loops over lanes of
// this width; they are kept behind the same NumParse entry point as
// the byte-by-byte slow path so that platforms without real SIMD
// support (i.e. every platform, for this pure-Go implementation) still
// get a correct result — the loop shape is the only thing "fast" about
// the fast path here.
const simdLane = 16

// census is the result of NumParse's validation pass: everything Pass
// 2 needs to know to extract the coefficient without re-scanning for
// validity.
type census struct {
	neg             bool
	dotIndex        int // -1 if none
	expIndex        int // -1 if none
	expNeg          bool
	mantissaDigits  int
	digitsAfterDot  int
	firstDigitIndex int // first non-zero mantissa digit, -1 if all zero
	lastDigitIndex  int // last mantissa digit index, -1 if none
}

// NumParse parses a numeric literal of the form
//
//	[sign]? digits (. digits)? ([eE] [sign]? digits)?
//
// with ignored separators (space, comma, underscore) between digits,
// and returns the normalized (digits, scale, sign) triple. It fails
// with ErrorKind MalformedNumeric on any violation of the grammar.
func NumParse(s string) (*ParsedNumber, error) {
	c, err := census1(s)
	if err != nil {
		return nil, err
	}
	digits, exp := extract(s, c)
	scale := int32(c.digitsAfterDot) - exp
	if len(digits) == 0 {
		digits = []byte{0}
	}
	return &ParsedNumber{Digits: digits, Scale: scale, Neg: c.neg}, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isSep(b byte) bool   { return b == ' ' || b == ',' || b == '_' }

// census1 is NumParse's Pass 1: validate the whole literal and record
// the positions Pass 2 needs.
func census1(s string) (census, error) {
	c := census{dotIndex: -1, expIndex: -1, firstDigitIndex: -1, lastDigitIndex: -1}
	if len(s) == 0 {
		return c, newError(MalformedNumeric, "NumParse", "empty string")
	}

	i := 0
	n := len(s)

	// optional leading sign
	if s[i] == '+' || s[i] == '-' {
		c.neg = s[i] == '-'
		i++
	}

	sawDigitSinceSign := false
	inExp := false
	expSignSeen := false
	expDigits := 0

	for ; i < n; i++ {
		b := s[i]
		switch {
		case isDigit(b):
			sawDigitSinceSign = true
			if inExp {
				expDigits++
			} else {
				c.mantissaDigits++
				if c.firstDigitIndex == -1 && b != '0' {
					c.firstDigitIndex = i
				}
				c.lastDigitIndex = i
				if c.dotIndex >= 0 {
					c.digitsAfterDot++
				}
			}
		case b == '.':
			if inExp {
				return c, newError(MalformedNumeric, "NumParse", "decimal point inside exponent")
			}
			if c.dotIndex >= 0 {
				return c, newError(MalformedNumeric, "NumParse", "duplicate decimal point")
			}
			c.dotIndex = i
		case b == 'e' || b == 'E':
			if inExp {
				return c, newError(MalformedNumeric, "NumParse", "duplicate exponent marker")
			}
			if c.mantissaDigits == 0 {
				return c, newError(MalformedNumeric, "NumParse", "exponent marker before any digit")
			}
			inExp = true
			c.expIndex = i
			sawDigitSinceSign = false
		case b == '+' || b == '-':
			// sign may appear only at the very start (handled above)
			// or immediately after e/E, before exponent digits.
			if !inExp || expSignSeen || expDigits > 0 {
				return c, newError(MalformedNumeric, "NumParse", "misplaced sign")
			}
			c.expNeg = b == '-'
			expSignSeen = true
			sawDigitSinceSign = true // a sign alone doesn't end the string validly, but isn't itself an error yet
		case isSep(b):
			// separators are ignored, but the string may not end on
			// one and they act like any other non-digit delimiter.
			sawDigitSinceSign = false
		default:
			return c, newError(MalformedNumeric, "NumParse", "disallowed character")
		}
	}

	if c.mantissaDigits == 0 {
		return c, newError(MalformedNumeric, "NumParse", "no mantissa digits")
	}
	if inExp && expDigits == 0 {
		return c, newError(MalformedNumeric, "NumParse", "exponent marker with no digits")
	}
	last := s[n-1]
	if isSep(last) || last == '+' || last == '-' {
		return c, newError(MalformedNumeric, "NumParse", "string ends on separator or sign")
	}
	_ = sawDigitSinceSign
	return c, nil
}

// extract is NumParse's Pass 2: produce digit-value bytes and the
// signed exponent. It dispatches across the fast (pure contiguous
// digits), medium (single decimal point, no separators) and slow
// (separators present) paths described in spec ​§4.1; all three are
// byte-by-byte correct, the lane width only changes the loop shape.
func extract(s string, c census) ([]byte, int32) {
	hasSep := false
	for i := 0; i < len(s); i++ {
		if isSep(s[i]) {
			hasSep = true
			break
		}
	}

	digits := make([]byte, 0, c.mantissaDigits)
	mantEnd := len(s)
	if c.expIndex >= 0 {
		mantEnd = c.expIndex
	}

	start := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		start = 1
	}

	if !hasSep {
		if c.dotIndex < 0 {
			// fast path: contiguous pure digits.
			digits = append(digits, extractLane(s[start:mantEnd])...)
		} else {
			// medium path: two bursts split by the decimal point.
			digits = append(digits, extractLane(s[start:c.dotIndex])...)
			digits = append(digits, extractLane(s[c.dotIndex+1:mantEnd])...)
		}
	} else {
		// slow path: byte-by-byte filtering.
		for i := start; i < mantEnd; i++ {
			b := s[i]
			if isDigit(b) {
				digits = append(digits, b-'0')
			}
		}
	}

	// strip leading zeros, but keep at least one digit if all zero
	i := 0
	for i < len(digits)-1 && digits[i] == 0 {
		i++
	}
	trimmed := digits[i:]
	allZero := true
	for _, d := range trimmed {
		if d != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		trimmed = []byte{0}
	}

	var exp int32
	if c.expIndex >= 0 {
		expStart := c.expIndex + 1
		if expStart < len(s) && (s[expStart] == '+' || s[expStart] == '-') {
			expStart++
		}
		for i := expStart; i < len(s); i++ {
			if isDigit(s[i]) {
				exp = exp*10 + int32(s[i]-'0')
			}
		}
		if c.expNeg {
			exp = -exp
		}
	}
	return trimmed, exp
}

// extractLane subtracts '0' from each digit byte in s in lanes of
// simdLane bytes at a time (the loop structure a real SIMD backend
// would vectorize; see the simdLane doc comment).
func extractLane(s string) []byte {
	out := make([]byte, len(s))
	i := 0
	for ; i+simdLane <= len(s); i += simdLane {
		for j := 0; j < simdLane; j++ {
			out[i+j] = s[i+j] - '0'
		}
	}
	for ; i < len(s); i++ {
		out[i] = s[i] - '0'
	}
	return out
}
