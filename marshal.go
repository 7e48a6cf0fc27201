// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements text marshaling for the package's numeric
// types, the way the teacher package marshaled its own Decimal type,
// adapted to BigInt, BigUInt, BigDecimal and Decimal128's
// representations, and fmt.Formatter for BigDecimal and Decimal128
// only (BigInt and BigUInt provide String but no Format).

package decimal

import "fmt"

// MarshalText implements encoding.TextMarshaler.
func (x *BigUInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *BigUInt) UnmarshalText(text []byte) error {
	digits := make([]byte, len(text))
	for i, c := range text {
		if c < '0' || c > '9' {
			return newError(MalformedNumeric, "BigUInt.UnmarshalText", "disallowed character")
		}
		digits[i] = c - '0'
	}
	z.Set(ParseBigUIntDigits(digits))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *BigInt) UnmarshalText(text []byte) error {
	neg := len(text) > 0 && text[0] == '-'
	if neg || (len(text) > 0 && text[0] == '+') {
		text = text[1:]
	}
	mag := new(BigUInt)
	if err := mag.UnmarshalText(text); err != nil {
		return err
	}
	z.Set(NewBigIntFromBigUInt(mag, neg))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *BigDecimal) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *BigDecimal) UnmarshalText(text []byte) error {
	v, err := ParseBigDecimal(string(text))
	if err != nil {
		return err
	}
	z.Set(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Decimal128) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Decimal128) UnmarshalText(text []byte) error {
	v, err := ParseDecimal128(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// Format implements fmt.Formatter. It supports 's' and 'v' verbs,
// rendering the same canonical text as String.
func (x *BigDecimal) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(f, x.String())
	default:
		fmt.Fprintf(f, "%%!%c(BigDecimal=%s)", verb, x.String())
	}
}

// Format implements fmt.Formatter for Decimal128.
func (x Decimal128) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(f, x.String())
	default:
		fmt.Fprintf(f, "%%!%c(Decimal128=%s)", verb, x.String())
	}
}
