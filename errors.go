// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the ways an operation in this package can fail.
// It mirrors the taxonomy used throughout the package: parsing failures
// (including a literal that does not fit a Decimal128) are returned as
// errors; domain violations and Decimal128 overflow reached through an
// arithmetic operator are reported by panicking with a *DecimalError,
// the same way the standard library's math/big panics with ErrNaN.
type ErrorKind int

const (
	// MalformedNumeric reports that a numeric-string argument failed
	// NumParse validation.
	MalformedNumeric ErrorKind = iota
	// DivisionByZero reports a zero divisor.
	DivisionByZero
	// DomainError reports sqrt of a negative operand, ln of a
	// non-positive operand, a negative base raised to a non-integer
	// exponent, or 0 raised to a negative exponent.
	DomainError
	// Overflow reports that a Decimal128 result cannot be represented
	// in 96 bits / 29 significant digits.
	Overflow
	// Underflow reports a BigUInt subtraction where the minuend is
	// smaller than the subtrahend. Never surfaced to callers of
	// BigInt or above; BigInt intercepts it by comparing magnitudes
	// first.
	Underflow
	// NotInvertible reports that mod_inverse(a, m) has no solution
	// because gcd(a, m) != 1.
	NotInvertible
	// InvalidArgument reports a precondition violation that is not
	// better described by one of the other kinds (e.g. a negative
	// exponent passed to ModPow, or a non-positive modulus).
	InvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedNumeric:
		return "malformed numeric literal"
	case DivisionByZero:
		return "division by zero"
	case DomainError:
		return "domain error"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case NotInvertible:
		return "not invertible"
	case InvalidArgument:
		return "invalid argument"
	default:
		return "unknown error"
	}
}

// DecimalError is the error value carried by panics raised from
// arithmetic operators in this package (the equivalent of math/big's
// ErrNaN). Op names the operation that detected the failure.
type DecimalError struct {
	Kind ErrorKind
	Op   string
	Msg  string
}

func (e *DecimalError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("decimal: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("decimal: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

// newError builds a *DecimalError, wrapping it with github.com/pkg/errors
// so that callers further up the stack can still unwrap to the original
// *DecimalError with errors.Cause while getting a stack trace attached
// at the point of construction.
func newError(kind ErrorKind, op, msg string) error {
	return errors.WithStack(&DecimalError{Kind: kind, Op: op, Msg: msg})
}

func panicf(kind ErrorKind, op, format string, args ...interface{}) {
	panic(&DecimalError{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)})
}
