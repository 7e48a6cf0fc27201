// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseDec(t *testing.T, s string) *BigDecimal {
	t.Helper()
	v, err := ParseBigDecimal(s)
	require.NoError(t, err)
	return v
}

func TestBigDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "1.50", "-3.14159", "123456789.0001", "1000"} {
		v := mustParseDec(t, s)
		assert.Equal(t, s, v.String())
	}
}

func TestBigDecimalAddCommutative(t *testing.T) {
	a := mustParseDec(t, "12.34")
	b := mustParseDec(t, "1.002")
	ab := new(BigDecimal).Add(a, b)
	ba := new(BigDecimal).Add(b, a)
	assert.Equal(t, 0, CmpBigDecimal(ab, ba))
}

func TestBigDecimalMulDistributive(t *testing.T) {
	a := mustParseDec(t, "1.1")
	b := mustParseDec(t, "2.2")
	c := mustParseDec(t, "3.3")
	lhs := new(BigDecimal).Mul(a, new(BigDecimal).Add(b, c))
	rhs := new(BigDecimal).Add(new(BigDecimal).Mul(a, b), new(BigDecimal).Mul(a, c))
	assert.Equal(t, 0, CmpBigDecimal(lhs, rhs))
}

func TestBigDecimalRoundingMonotonicityHalfEven(t *testing.T) {
	cases := map[string]string{
		"0.5": "0", "1.5": "2", "2.5": "2", "3.5": "4", "-0.5": "0", "-1.5": "-2",
	}
	for in, want := range cases {
		v := mustParseDec(t, in)
		got := v.Round(0, HalfEven)
		assert.Equal(t, want, got.String(), "round(%s)", in)
	}
}

func TestBigDecimalDivisionByZeroPanics(t *testing.T) {
	a := mustParseDec(t, "1")
	zero := mustParseDec(t, "0")
	assert.PanicsWithValue(t, &DecimalError{Kind: DivisionByZero, Op: "BigDecimal.Quo", Msg: "division by zero"}, func() {
		new(BigDecimal).Quo(a, zero, 10, HalfEven)
	})
}

func TestBigDecimalEvaluateScenario(t *testing.T) {
	// 100 * 12 - 23/17 to 50 fractional digits.
	hundred := NewBigDecimalFromInt64(100)
	twelve := NewBigDecimalFromInt64(12)
	twentyThree := NewBigDecimalFromInt64(23)
	seventeen := NewBigDecimalFromInt64(17)

	mul := new(BigDecimal).Mul(hundred, twelve)
	div := new(BigDecimal).Quo(twentyThree, seventeen, 50, HalfEven)
	result := new(BigDecimal).Sub(mul, div)

	want := "1198.64705882352941176470588235294117647058823529411765"
	assert.Equal(t, want, result.String())
	assert.Equal(t, int32(50), result.Scale())
}

func TestBigDecimalSqrtBound(t *testing.T) {
	two := NewBigDecimalFromInt64(2)
	s := new(BigDecimal).Sqrt(two, 40)
	sq := new(BigDecimal).Mul(s, s)
	diff := new(BigDecimal).Sub(sq, two)
	assert.True(t, diff.Round(38, HalfEven).IsZero())
}

func TestBigDecimalLnOfTwo(t *testing.T) {
	two := NewBigDecimalFromInt64(2)
	ln2 := new(BigDecimal).Ln(two, 30)
	assert.Equal(t, "0.693147180559945309417232121458", ln2.String())
}
