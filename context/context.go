// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a sticky-error wrapper around decimal.BigDecimal
// arithmetic.
//
// Operators of the form
//
//    func (c *Context) BinaryOp(z, x, y *decimal.BigDecimal) *decimal.BigDecimal
//    func (c *Context) UnaryOp(z, x *decimal.BigDecimal) *decimal.BigDecimal
//
// set z to the result of the operation and return z. Add, Sub, Mul, Quo
// and Round round to c's precision using c's rounding policy; Sqrt, Ln,
// Exp and Power round to c's precision half-even, whatever c's policy;
// Neg and Abs are not rounded.
//
// A Context catches the package's arithmetic panics (DivisionByZero,
// DomainError, Overflow, ...): once an operation panics, the Context
// records the error and every subsequent operation becomes a no-op
// (it returns its receiver z unchanged) until (*Context).Err is called
// to retrieve and clear the error state.
package context

import (
	"errors"

	"github.com/arveldin/decnum"
)

// A Context bundles a target precision and rounding policy for
// decimal.BigDecimal operations, along with sticky-error tracking.
type Context struct {
	prec   uint32
	policy decimal.RoundingPolicy
	err    error
}

// New creates a new Context with the given precision (fractional
// digits) and rounding policy.
func New(prec uint32, policy decimal.RoundingPolicy) *Context {
	return &Context{prec: prec, policy: policy}
}

// Policy returns c's rounding policy.
func (c *Context) Policy() decimal.RoundingPolicy { return c.policy }

// SetPolicy sets c's rounding policy and returns c.
func (c *Context) SetPolicy(policy decimal.RoundingPolicy) *Context {
	c.policy = policy
	return c
}

// Prec returns c's target precision in fractional digits.
func (c *Context) Prec() uint32 { return c.prec }

// SetPrec sets c's target precision and returns c.
func (c *Context) SetPrec(prec uint32) *Context {
	c.prec = prec
	return c
}

// Err returns the first error encountered since the last call to Err,
// and clears the error state.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// guard recovers from a *decimal.DecimalError panic raised by fn,
// recording it in c.err, and reports whether fn completed without
// panicking.
func (c *Context) guard(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			var derr *decimal.DecimalError
			if !errors.As(asError(r), &derr) {
				panic(r)
			}
			c.err = derr
			ok = false
		}
	}()
	fn()
	return true
}

func asError(r interface{}) error {
	if err, isErr := r.(error); isErr {
		return err
	}
	return nil
}

// Round sets z to x rounded to c's precision and policy, and returns z.
func (c *Context) Round(z, x *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	return z.Set(x.Round(int32(c.prec), c.policy))
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	c.guard(func() {
		z.Add(x, y)
		z.Set(z.Round(int32(c.prec), c.policy))
	})
	return z
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	c.guard(func() {
		z.Sub(x, y)
		z.Set(z.Round(int32(c.prec), c.policy))
	})
	return z
}

// Mul sets z to the rounded product x*y and returns z.
func (c *Context) Mul(z, x, y *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	c.guard(func() {
		z.Mul(x, y)
		z.Set(z.Round(int32(c.prec), c.policy))
	})
	return z
}

// Quo sets z to the rounded quotient x/y and returns z. On division
// by zero the error is recorded via Err and z is left unchanged.
func (c *Context) Quo(z, x, y *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	c.guard(func() {
		z.Quo(x, y, c.prec, c.policy)
	})
	return z
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	z.Neg(x)
	return z
}

// Abs sets z to |x| and returns z.
func (c *Context) Abs(z, x *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	z.Abs(x)
	return z
}

// Sqrt sets z to the rounded square root of x and returns z.
func (c *Context) Sqrt(z, x *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	c.guard(func() {
		z.Sqrt(x, c.prec)
	})
	return z
}

// Ln sets z to the rounded natural logarithm of x and returns z.
func (c *Context) Ln(z, x *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	c.guard(func() {
		z.Ln(x, c.prec)
	})
	return z
}

// Exp sets z to the rounded value of e^x and returns z.
func (c *Context) Exp(z, x *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	c.guard(func() {
		z.Exp(x, c.prec)
	})
	return z
}

// Power sets z to the rounded value of b^e and returns z.
func (c *Context) Power(z, b, e *decimal.BigDecimal) *decimal.BigDecimal {
	if c.err != nil {
		return z
	}
	c.guard(func() {
		z.Power(b, e, c.prec)
	})
	return z
}

// NewFromString parses s into a new BigDecimal rounded to c's
// precision and policy, and a boolean indicating success.
func (c *Context) NewFromString(s string) (d *decimal.BigDecimal, success bool) {
	v, err := decimal.ParseBigDecimal(s)
	if err != nil {
		c.err = err
		return nil, false
	}
	return v.Round(int32(c.prec), c.policy), true
}
