package context_test

import (
	"errors"
	"fmt"

	"github.com/arveldin/decnum"
	"github.com/arveldin/decnum/context"
)

// solve solves the quadratic equation ax^2 + bx + c = 0 using ctx's
// precision and rounding policy. It can fail, for example a = 0 makes
// the formula divide by zero.
func solve(ctx *context.Context, a, b, c *decimal.BigDecimal) (x0, x1 *decimal.BigDecimal, err error) {
	four := decimal.NewBigDecimalFromInt64(4)
	two := decimal.NewBigDecimalFromInt64(2)

	d := new(decimal.BigDecimal)
	ctx.Mul(d, a, four)
	ctx.Mul(d, d, c)
	bSq := ctx.Mul(new(decimal.BigDecimal), b, b)
	ctx.Sub(d, bSq, d) // d = b*b - 4*a*c

	if d.Sign() < 0 {
		return nil, nil, errors.New("no real roots")
	}
	ctx.Sqrt(d, d)

	twoA := ctx.Mul(new(decimal.BigDecimal), a, two)
	negB := ctx.Neg(new(decimal.BigDecimal), b)

	x0 = ctx.Add(new(decimal.BigDecimal), negB, d)
	ctx.Quo(x0, x0, twoA)
	x1 = ctx.Sub(new(decimal.BigDecimal), negB, d)
	ctx.Quo(x1, x1, twoA)

	if err = ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("error computing roots: %w", err)
	}
	return x0, x1, nil
}

// Example demonstrates various features of Context.
func Example() {
	ctx := context.New(0, decimal.HalfEven)
	one, two, negThree := decimal.NewBigDecimalFromInt64(1), decimal.NewBigDecimalFromInt64(2), decimal.NewBigDecimalFromInt64(-3)

	x0, x1, err := solve(ctx, one, two, negThree)
	if err != nil {
		fmt.Printf("failed to solve x^2+2x-3: %v\n", err)
	} else {
		fmt.Printf("roots of x^2+2x-3: %s, %s\n", x0, x1)
	}

	zero := decimal.NewBigDecimalFromInt64(0)
	_, _, err = solve(ctx, zero, two, negThree)
	if err != nil {
		// a == 0 degenerates the formula to a division by zero.
		fmt.Printf("failed to solve 0x^2+2x-3: %v\n", err)
	}
	// Output:
	// roots of x^2+2x-3: 1, -3
	// failed to solve 0x^2+2x-3: error computing roots: decimal: BigDecimal.Quo: division by zero: division by zero
}
