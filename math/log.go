// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/arveldin/decnum"

// Ln sets z to the natural logarithm of x rounded to prec fractional
// digits, and returns z. It panics with an ErrorKind of DomainError if
// x <= 0.
func Ln(z, x *decimal.BigDecimal, prec uint32) *decimal.BigDecimal {
	return z.Ln(x, prec)
}

// Log10 sets z to log base 10 of x rounded to prec fractional digits,
// via ln(x)/ln(10), and returns z.
func Log10(z, x *decimal.BigDecimal, prec uint32) *decimal.BigDecimal {
	wp := prec + 10
	ln := new(decimal.BigDecimal).Ln(x, wp)
	return z.Quo(ln, decimal.Ln10(wp), prec, decimal.HalfEven)
}
