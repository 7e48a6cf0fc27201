// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/arveldin/decnum"

// Pi returns the value of pi to prec fractional digits.
//
// Since several transcendental functions use pi internally, the
// underlying decimal.Pi caches the highest-precision value computed
// so far; access to that cache is not guarded by a mutex, so Pi must
// not be called concurrently from several goroutines until the cache
// has been filled to the needed precision from a single goroutine.
func Pi(prec uint32) *decimal.BigDecimal {
	return decimal.Pi(prec)
}

// E returns Euler's number to prec fractional digits.
func E(prec uint32) *decimal.BigDecimal {
	return decimal.E(prec)
}
