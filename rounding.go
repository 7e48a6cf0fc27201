// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// RoundingPolicy selects how a decimal result is shortened when it
// carries more digits than the target precision allows. It is shared
// across BigDecimal and Decimal128.
type RoundingPolicy int

const (
	// DOWN truncates toward zero.
	DOWN RoundingPolicy = iota
	// UP rounds away from zero.
	UP
	// HalfUp rounds to nearest, ties away from zero.
	HalfUp
	// HalfEven rounds to nearest, ties to the even neighbor
	// (banker's rounding). This is the default for BigDecimal and
	// Decimal128 operations that must shorten a result.
	HalfEven
	// Ceiling rounds toward +infinity.
	Ceiling
	// Floor rounds toward -infinity.
	Floor
)

// DefaultRoundingPolicy is used whenever an operation needs to shorten
// a result and the caller has not selected a policy explicitly.
const DefaultRoundingPolicy = HalfEven

func (r RoundingPolicy) String() string {
	switch r {
	case DOWN:
		return "DOWN"
	case UP:
		return "UP"
	case HalfUp:
		return "HALF_UP"
	case HalfEven:
		return "HALF_EVEN"
	case Ceiling:
		return "CEILING"
	case Floor:
		return "FLOOR"
	default:
		return "UNKNOWN"
	}
}

// roundingInput is the tuple a RoundingPolicy decides over: the digits
// kept so far (most significant first, as digit values 0-9), whether
// the very next discarded digit is itself a 5 with everything after it
// zero (exactly half) or whether there is additional non-zero residue
// beyond it, the first discarded digit's value, and the sign of the
// value being rounded.
type roundingInput struct {
	kept             []byte
	discardedLeading byte // the first discarded digit, 0-9
	discardedRest    bool // true if anything nonzero follows discardedLeading
	neg              bool
}

// applyRounding decides whether kept must be incremented by one unit
// in its last place (round up) given the policy and the discarded
// tail. It returns true when an increment is required.
func applyRounding(policy RoundingPolicy, in roundingInput) bool {
	if in.discardedLeading == 0 && !in.discardedRest {
		return false // nothing discarded, or discarded tail is all zero
	}
	exactlyHalf := in.discardedLeading == 5 && !in.discardedRest
	switch policy {
	case DOWN:
		return false
	case UP:
		return true
	case HalfUp:
		return in.discardedLeading >= 5
	case HalfEven:
		if exactlyHalf {
			if len(in.kept) == 0 {
				return false // last kept digit is implicitly 0, even
			}
			return in.kept[len(in.kept)-1]%2 == 1
		}
		return in.discardedLeading >= 5
	case Ceiling:
		return !in.neg
	case Floor:
		return in.neg
	default:
		return in.discardedLeading >= 5
	}
}

// incrementDigits adds one unit in the last place to a big-endian
// digit-value slice, returning the (possibly one-digit-longer) result.
func incrementDigits(digits []byte) []byte {
	out := make([]byte, len(digits))
	copy(out, digits)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < 9 {
			out[i]++
			return out
		}
		out[i] = 0
	}
	return append([]byte{1}, out...)
}
