// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateArithmeticPrecedence(t *testing.T) {
	v, err := Evaluate("2 + 3 * 4", 10)
	require.NoError(t, err)
	assert.Equal(t, "14", v.String())
}

func TestEvaluateParentheses(t *testing.T) {
	v, err := Evaluate("(2 + 3) * 4", 10)
	require.NoError(t, err)
	assert.Equal(t, "20", v.String())
}

func TestEvaluatePowerRightAssociative(t *testing.T) {
	// 2^3^2 = 2^(3^2) = 2^9 = 512
	v, err := Evaluate("2^3^2", 10)
	require.NoError(t, err)
	assert.Equal(t, "512", v.String())
}

func TestEvaluateUnaryMinus(t *testing.T) {
	v, err := Evaluate("-3 + 5", 10)
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
}

func TestEvaluateUnaryMinusBindsTighterThanPower(t *testing.T) {
	// Unary minus (precedence 4) binds tighter than ^ (precedence 3),
	// so -2^2 parses as (-2)^2 = 4, not -(2^2) = -4.
	v, err := Evaluate("-2^2", 10)
	require.NoError(t, err)
	assert.Equal(t, "4", v.String())
}

func TestEvaluateFunctionCall(t *testing.T) {
	v, err := Evaluate("sqrt(4)", 10)
	require.NoError(t, err)
	assert.Equal(t, "2.0000000000", v.String())
}

func TestEvaluateFunctionTwoArgs(t *testing.T) {
	v, err := Evaluate("root(8, 3)", 10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(v.String(), "2.000000"))
}

func TestEvaluateConstantPi(t *testing.T) {
	// Constants are pushed with extra guard digits (prec+15) rather
	// than rounded to prec, matching the fixed-point arithmetic's
	// precision-carries-through-the-stack behavior.
	v, err := Evaluate("pi", 10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(v.String(), "3.14159265358979"))
	assert.Equal(t, int32(25), v.Scale())
}

func TestEvaluateScenario(t *testing.T) {
	v, err := Evaluate("100 * 12 - 23/17", 50)
	require.NoError(t, err)
	assert.Equal(t, "1198.64705882352941176470588235294117647058823529411765", v.String())
}

func TestEvaluateDivisionByZeroError(t *testing.T) {
	_, err := Evaluate("1/0", 10)
	assert.Error(t, err)
}

func TestEvaluateUnmatchedParen(t *testing.T) {
	_, err := Evaluate("(1 + 2", 10)
	assert.Error(t, err)
	var evalErr *EvalError
	assert.ErrorAs(t, err, &evalErr)
}

func TestEvaluateUnknownIdentifier(t *testing.T) {
	_, err := Evaluate("foo(1)", 10)
	assert.Error(t, err)
}

func TestEvaluateEmptyExpression(t *testing.T) {
	_, err := Evaluate("", 10)
	assert.Error(t, err)
}

func TestEvaluateNestedFunctions(t *testing.T) {
	v, err := Evaluate("abs(-5) + sqrt(9)", 10)
	require.NoError(t, err)
	assert.Equal(t, "8.0000000000", v.String())
}
