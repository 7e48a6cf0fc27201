// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseDec128(t *testing.T, s string) Decimal128 {
	t.Helper()
	v, err := ParseDecimal128(s)
	require.NoError(t, err)
	return v
}

func TestDecimal128AdditionScenario(t *testing.T) {
	a := mustParseDec128(t, "123456789012345678901234567.89")
	b := mustParseDec128(t, "0.01")
	sum := a.Add(b)
	assert.Equal(t, "123456789012345678901234567.90", sum.String())
}

func TestDecimal128RoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "1.50", "-99.99", "100000000000000000000000000"} {
		v := mustParseDec128(t, s)
		assert.Equal(t, s, v.String())
	}
}

func TestDecimal128NoNegativeZero(t *testing.T) {
	a := mustParseDec128(t, "5")
	z := a.Sub(a)
	assert.False(t, z.neg96())
	assert.Equal(t, 0, z.Sign())
}

func TestDecimal128DivisionByZeroPanics(t *testing.T) {
	a := mustParseDec128(t, "1")
	var zero Decimal128
	assert.Panics(t, func() {
		a.Quo(zero)
	})
}

func TestDecimal128MulScaleAdds(t *testing.T) {
	a := mustParseDec128(t, "1.25")
	b := mustParseDec128(t, "2.5")
	p := a.Mul(b)
	assert.Equal(t, "3.125", p.String())
}

func TestDecimal128QuoUnitDivisor(t *testing.T) {
	a := mustParseDec128(t, "5")
	b := mustParseDec128(t, "0.1")
	assert.Equal(t, "50", a.Quo(b).String())

	c := mustParseDec128(t, "1.23456")
	d := mustParseDec128(t, "0.01")
	assert.Equal(t, "123.456", c.Quo(d).String())
}

func TestDecimal128QuoGeneralPath(t *testing.T) {
	a := mustParseDec128(t, "10")
	b := mustParseDec128(t, "4")
	got := a.Quo(b)
	assert.Equal(t, "2.5", got.Round(1).String())
}
