package fxnum

import (
	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/holiman/uint256"
)

// Exp returns e^x where x is an int256 with 18 decimals in [-41, 130] units.
func Exp(x *uint256.Int) (*uint256.Int, error) {
	mag, neg := abs(x)
	if neg && mag.Gt(minNaturalExponentAbs) {
		return nil, xerrors.ErrExpOutOfBounds
	}
	if !neg && mag.Gt(maxNaturalExponent) {
		return nil, xerrors.ErrExpOutOfBounds
	}
	return exp(mag, neg), nil
}

// exp computes e^(±x) for a bounded magnitude x.
func exp(x *uint256.Int, neg bool) *uint256.Int {
	if neg {
		// e^-x = 1 / e^x
		r := exp(x, false)
		return r.Div(one36, r)
	}

	x = x.Clone()
	firstAN := uint256.NewInt(1)
	if !x.Lt(x0) {
		x.Sub(x, x0)
		firstAN.Set(a0)
	} else if !x.Lt(x1) {
		x.Sub(x, x1)
		firstAN.Set(a1)
	}

	// continue at 20 decimals
	x.Mul(x, hundred)

	product := one20.Clone()
	for _, e := range expTable[:expReduceEntries] {
		if !x.Lt(e.x) {
			x.Sub(x, e.x)
			product.Mul(product, e.a)
			product.Div(product, one20)
		}
	}

	// x < 0.25 here; e^x = 1 + x + x^2/2! + ... + x^12/12!
	series := new(uint256.Int).Add(one20, x)
	term := x.Clone()
	for i := 2; i <= expTaylorTerms; i++ {
		term.Mul(term, x)
		term.Div(term, one20)
		term.Div(term, uint256.NewInt(uint64(i)))
		series.Add(series, term)
	}

	product.Mul(product, series)
	product.Div(product, one20)
	product.Mul(product, firstAN)
	return product.Div(product, hundred)
}
