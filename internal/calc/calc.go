// Package calc holds arithmetic routines that draw their scratch values
// from a bnctx.Context.
package calc

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/pavanmanishd/bnctx"
)

var (
	ErrModulus  = errors.New("calc: modulus must be positive")
	ErrExponent = errors.New("calc: exponent must not be negative")
)

// ModExp returns a^e mod m, computed by left-to-right square and multiply.
// The result is a fresh value owned by the caller.
func ModExp(ctx *bnctx.Context[big.Int], a, e, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrModulus
	}
	if e.Sign() < 0 {
		return nil, ErrExponent
	}

	ctx.Begin()
	defer ctx.End()

	base, err := ctx.Get()
	if err != nil {
		return nil, fmt.Errorf("calc: modexp: %w", err)
	}
	acc, err := ctx.Get()
	if err != nil {
		return nil, fmt.Errorf("calc: modexp: %w", err)
	}

	base.Mod(a, m)
	acc.SetInt64(1)
	acc.Mod(acc, m)
	for i := e.BitLen() - 1; i >= 0; i-- {
		if err := mulMod(ctx, acc, acc, acc, m); err != nil {
			return nil, err
		}
		if e.Bit(i) == 1 {
			if err := mulMod(ctx, acc, acc, base, m); err != nil {
				return nil, err
			}
		}
	}
	return new(big.Int).Set(acc), nil
}

// mulMod sets z = x*y mod m. z may alias x or y.
func mulMod(ctx *bnctx.Context[big.Int], z, x, y, m *big.Int) error {
	ctx.Begin()
	defer ctx.End()

	t, err := ctx.Get()
	if err != nil {
		return fmt.Errorf("calc: mulmod: %w", err)
	}
	t.Mul(x, y)
	z.Mod(t, m)
	return nil
}

// PolyEval evaluates the polynomial with the given coefficients, highest
// degree first, at x using Horner's rule under dc.
func PolyEval(ctx *bnctx.Context[apd.Decimal], dc *apd.Context, coeffs []*apd.Decimal, x *apd.Decimal) (*apd.Decimal, error) {
	ctx.Begin()
	defer ctx.End()

	acc, err := ctx.Get()
	if err != nil {
		return nil, fmt.Errorf("calc: polyeval: %w", err)
	}
	for _, c := range coeffs {
		err := ctx.Scoped(func() error {
			t, err := ctx.Get()
			if err != nil {
				return err
			}
			if _, err := dc.Mul(t, acc, x); err != nil {
				return err
			}
			_, err = dc.Add(acc, t, c)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("calc: polyeval: %w", err)
		}
	}
	return new(apd.Decimal).Set(acc), nil
}
