// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/arveldin/decnum"

// Exp sets z to e^x rounded to prec fractional digits, and returns z.
func Exp(z, x *decimal.BigDecimal, prec uint32) *decimal.BigDecimal {
	return z.Exp(x, prec)
}

// Pow sets z to b^e rounded to prec fractional digits, and returns z.
func Pow(z, b, e *decimal.BigDecimal, prec uint32) *decimal.BigDecimal {
	return z.Power(b, e, prec)
}
