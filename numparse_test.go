// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumParseBasic(t *testing.T) {
	p, err := NumParse("123.45")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, p.Digits)
	assert.Equal(t, int32(2), p.Scale)
	assert.False(t, p.Neg)
}

func TestNumParseSignAndExponent(t *testing.T) {
	p, err := NumParse("-1.5e3")
	require.NoError(t, err)
	assert.True(t, p.Neg)
	assert.Equal(t, []byte{1, 5}, p.Digits)
	assert.Equal(t, int32(-2), p.Scale) // 1 digit after dot - exponent 3
}

func TestNumParseNegativeExponent(t *testing.T) {
	p, err := NumParse("2.5e-2")
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 5}, p.Digits)
	assert.Equal(t, int32(3), p.Scale) // 1 - (-2)
}

func TestNumParseSeparators(t *testing.T) {
	p, err := NumParse("1,234,567.89")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, p.Digits)
	assert.Equal(t, int32(2), p.Scale)
}

func TestNumParseLeadingZeros(t *testing.T) {
	p, err := NumParse("007")
	require.NoError(t, err)
	assert.Equal(t, []byte{7}, p.Digits)
}

func TestNumParseAllZero(t *testing.T) {
	p, err := NumParse("0.000")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, p.Digits)
	assert.Equal(t, int32(3), p.Scale)
}

func TestNumParseMalformedCases(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"1.2.3",
		"1e",
		"1ee2",
		".",
		"-",
		"1,",
		"1_",
		"1 ",
		"e5",
		"1-2",
	}
	for _, s := range cases {
		_, err := NumParse(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestNumParseExponentSign(t *testing.T) {
	p, err := NumParse("1e+10")
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, p.Digits)
	assert.Equal(t, int32(-10), p.Scale)
}
