// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/arveldin/decnum"

// Sqrt sets z to the square root of x rounded to prec fractional
// digits, and returns z. It panics with an ErrorKind of DomainError
// if x is negative.
//
// This function is a proxy for z.Sqrt(x, prec).
func Sqrt(z, x *decimal.BigDecimal, prec uint32) *decimal.BigDecimal {
	return z.Sqrt(x, prec)
}

// Cbrt sets z to the cube root of x rounded to prec fractional
// digits, and returns z.
//
// This function is a proxy for z.Cbrt(x, prec).
func Cbrt(z, x *decimal.BigDecimal, prec uint32) *decimal.BigDecimal {
	return z.Cbrt(x, prec)
}

// Root sets z to the n-th root of x rounded to prec fractional
// digits, and returns z.
//
// This function is a proxy for z.Root(x, n, prec).
func Root(z, x *decimal.BigDecimal, n uint32, prec uint32) *decimal.BigDecimal {
	return z.Root(x, n, prec)
}
