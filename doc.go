// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decimal implements a small family of numeric types used to
build fixed-point and arbitrary-precision decimal arithmetic on top of
a base-2^30 arbitrary-precision unsigned integer engine:

  - BigUInt: an arbitrary-precision unsigned integer stored as a
    little-endian slice of 30-bit Words, with Karatsuba multiplication,
    Knuth/Burnikel-Ziegler-style division, binary GCD and Newton's
    method square root.

  - BigInt: a signed wrapper around BigUInt with Python floor-division
    semantics (DivMod) alongside truncating division (QuoRem), and
    infinite two's-complement bitwise operations (And, Or, Xor, Not,
    Lsh, Rsh).

  - BigDecimal: a variable-precision decimal (coefficient * 10^-scale)
    with correctly-rounded arithmetic and transcendental functions
    (Sqrt, Ln, Exp, Power, Root, Cbrt) computed via convergent series
    to a caller-chosen number of fractional digits.

  - Decimal128: a fixed-width 96-bit-coefficient decimal for financial
    hot paths where BigDecimal's unbounded allocation is unwanted.

  - NumParse: a numeric-string scanner shared by BigDecimal and
    Decimal128's parsing paths.

  - RoundingPolicy: the rounding mode (DOWN, UP, HALF_UP, HALF_EVEN,
    CEILING, FLOOR) shared across BigDecimal and Decimal128.

The zero value for BigUInt is 0 and usable without further
initialization:

    var z BigUInt // z is a BigUInt of value 0

The zero values of BigInt and BigDecimal can be used as the receiver
of an operation, which sets them, but not as an operand until they have
been set; most code constructs them via NewBigInt, NewBigDecimal,
NewBigDecimalFromInt64 or ParseBigDecimal.

Setters, numeric operations and predicates follow the math/big
convention of methods of the form:

    func (z *T) Op(x, y *T) *T    // z = x op y
    func (x *T) Pred() bool       // p = pred(x)

For binary and unary operations the result is the receiver (named z);
if it aliases one of the operands (x or y) it may safely be
overwritten. Given three *BigInt values a, b and c:

    c.Add(a, b)

computes a + b and stores the result in c, overwriting whatever value
c held before; aliasing the receiver with an operand to accumulate a
running value (sum.Add(sum, x)) is always safe.

Transcendental BigDecimal methods additionally take an explicit
fractional-digit count and do not carry an ambient "precision" field:
there is no Decimal.SetPrec equivalent, since each call states how
many digits it wants rounded to.
*/
package decimal
