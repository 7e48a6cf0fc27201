// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math mirrors the decimal package's transcendental methods as
// free functions taking a precision argument, for callers that prefer
// decimal.Pi(prec)-style calls over method chaining on a receiver.
package math

import "github.com/arveldin/decnum"

// Abs returns |x|.
func Abs(x *decimal.BigDecimal) *decimal.BigDecimal {
	return new(decimal.BigDecimal).Abs(x)
}
