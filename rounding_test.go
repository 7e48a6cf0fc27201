// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundingPolicyString(t *testing.T) {
	cases := map[RoundingPolicy]string{
		DOWN: "DOWN", UP: "UP", HalfUp: "HALF_UP", HalfEven: "HALF_EVEN",
		Ceiling: "CEILING", Floor: "FLOOR",
	}
	for p, want := range cases {
		assert.Equal(t, want, p.String())
	}
}

func TestRoundingPolicyByPolicy(t *testing.T) {
	// 1.25 rounded to one fractional digit under every policy.
	cases := []struct {
		policy RoundingPolicy
		want   string
	}{
		{DOWN, "1.2"},
		{UP, "1.3"},
		{HalfUp, "1.3"},
		{HalfEven, "1.2"}, // ties to even: 2 is even, stays
		{Ceiling, "1.3"},
		{Floor, "1.2"},
	}
	for _, c := range cases {
		v := mustParseDec(t, "1.25")
		got := v.Round(1, c.policy)
		assert.Equal(t, c.want, got.String(), "policy=%s", c.policy)
	}
}

func TestRoundingPolicyNegativeByPolicy(t *testing.T) {
	// -1.25 rounded to one fractional digit.
	cases := []struct {
		policy RoundingPolicy
		want   string
	}{
		{DOWN, "-1.2"},
		{UP, "-1.3"},
		{HalfUp, "-1.3"},
		{HalfEven, "-1.2"},
		{Ceiling, "-1.2"},
		{Floor, "-1.3"},
	}
	for _, c := range cases {
		v := mustParseDec(t, "-1.25")
		got := v.Round(1, c.policy)
		assert.Equal(t, c.want, got.String(), "policy=%s", c.policy)
	}
}

func TestApplyRoundingNoDiscard(t *testing.T) {
	for _, p := range []RoundingPolicy{DOWN, UP, HalfUp, HalfEven, Ceiling, Floor} {
		got := applyRounding(p, roundingInput{kept: []byte{1, 2}, discardedLeading: 0, discardedRest: false})
		assert.False(t, got, "policy=%s", p)
	}
}

func TestApplyRoundingHalfEvenTieBreak(t *testing.T) {
	// exactly half, last kept digit even -> no increment
	even := applyRounding(HalfEven, roundingInput{kept: []byte{2}, discardedLeading: 5, discardedRest: false})
	assert.False(t, even)
	// exactly half, last kept digit odd -> increment
	odd := applyRounding(HalfEven, roundingInput{kept: []byte{3}, discardedLeading: 5, discardedRest: false})
	assert.True(t, odd)
	// not exactly half (residue beyond the 5) -> always increment
	residue := applyRounding(HalfEven, roundingInput{kept: []byte{2}, discardedLeading: 5, discardedRest: true})
	assert.True(t, residue)
}

func TestIncrementDigitsCarry(t *testing.T) {
	got := incrementDigits([]byte{9, 9})
	assert.Equal(t, []byte{1, 0, 0}, got)
}

func TestDefaultRoundingPolicyIsHalfEven(t *testing.T) {
	assert.Equal(t, HalfEven, RoundingPolicy(DefaultRoundingPolicy))
}
