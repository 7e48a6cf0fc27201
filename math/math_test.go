// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"testing"

	"github.com/arveldin/decnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPiCachesAcrossCalls(t *testing.T) {
	p1 := Pi(20)
	p2 := Pi(10)
	assert.Equal(t, decimal.CmpBigDecimal(p1.Round(10, decimal.HalfEven), p2), 0)
}

func TestSqrtProxy(t *testing.T) {
	x, err := decimal.ParseBigDecimal("2")
	require.NoError(t, err)
	z := new(decimal.BigDecimal).Sqrt(x, 30)
	got := Sqrt(new(decimal.BigDecimal), x, 30)
	assert.Equal(t, z.String(), got.String())
}

func TestLog10OfTen(t *testing.T) {
	x, err := decimal.ParseBigDecimal("10")
	require.NoError(t, err)
	got := Log10(new(decimal.BigDecimal), x, 10)
	assert.Equal(t, "1.0000000000", got.String())
}

func TestExpOfZero(t *testing.T) {
	x := decimal.NewBigDecimalFromInt64(0)
	got := Exp(new(decimal.BigDecimal), x, 5)
	assert.Equal(t, "1.00000", got.String())
}
