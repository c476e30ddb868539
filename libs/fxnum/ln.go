package fxnum

import (
	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/holiman/uint256"
)

// Ln returns the natural logarithm of x, both as 18 decimal fixed-point numbers.
// x is read as int256 and must be strictly positive. The result is an int256
// (negative for x below one unit).
func Ln(x *uint256.Int) (*uint256.Int, error) {
	if x.IsZero() || x.Sign() < 0 {
		return nil, xerrors.ErrNonPositiveLn
	}
	if ln36LowerBound.Lt(x) && x.Lt(ln36UpperBound) {
		r, neg := ln36(x)
		r.Div(r, one18)
		return signed(r, neg), nil
	}
	r, neg := ln(x)
	return signed(r, neg), nil
}

// Ln36 returns ln(x) with 36 decimals for x in [0.9, 1.1].
func Ln36(x *uint256.Int) (*uint256.Int, error) {
	if x.Lt(ln36LowerBound) || x.Gt(ln36UpperBound) {
		return nil, xerrors.ErrLn36OutOfBand
	}
	r, neg := ln36(x)
	return signed(r, neg), nil
}

// ln returns |ln(a)| at 18 decimals and whether the logarithm is negative.
// a must be positive and below 2^255.
func ln(a *uint256.Int) (*uint256.Int, bool) {
	if a.Lt(one18) {
		// ln(a) = -ln(1/a); 1e36/a is above one unit here.
		inv := new(uint256.Int).Div(one36, a)
		r, _ := ln(inv)
		return r, !r.IsZero()
	}

	a = a.Clone()
	sum := new(uint256.Int)
	if !a.Lt(a0Scaled) {
		a.Div(a, a0)
		sum.Add(sum, x0)
	}
	if !a.Lt(a1Scaled) {
		a.Div(a, a1)
		sum.Add(sum, x1)
	}

	// continue at 20 decimals
	sum.Mul(sum, hundred)
	a.Mul(a, hundred)

	for _, e := range expTable {
		if !a.Lt(e.a) {
			a.Mul(a, one20)
			a.Div(a, e.a)
			sum.Add(sum, e.x)
		}
	}

	// a is now in [1, e^(1/16)); ln(a) = 2 * (z + z^3/3 + z^5/5 + ...) with z = (a-1)/(a+1)
	z := new(uint256.Int).Sub(a, one20)
	z.Mul(z, one20)
	z.Div(z, new(uint256.Int).Add(a, one20))
	z2 := new(uint256.Int).Mul(z, z)
	z2.Div(z2, one20)

	num := z.Clone()
	series := z.Clone()
	term := new(uint256.Int)
	for _, d := range lnSeriesDenoms {
		num.Mul(num, z2)
		num.Div(num, one20)
		series.Add(series, term.Div(num, uint256.NewInt(d)))
	}
	series.Lsh(series, 1)

	sum.Add(sum, series)
	return sum.Div(sum, hundred), false
}

// ln36 returns |ln(x)| at 36 decimals and whether the logarithm is negative.
// x is an 18 decimal value close to one unit.
func ln36(x *uint256.Int) (*uint256.Int, bool) {
	xs := new(uint256.Int).Mul(x, one18)

	neg := xs.Lt(one36)
	z := new(uint256.Int)
	if neg {
		z.Sub(one36, xs)
	} else {
		z.Sub(xs, one36)
	}
	z.Mul(z, one36)
	z.Div(z, xs.Add(xs, one36))

	z2 := new(uint256.Int).Mul(z, z)
	z2.Div(z2, one36)

	num := z.Clone()
	series := z.Clone()
	term := new(uint256.Int)
	for _, d := range ln36SeriesDenoms {
		num.Mul(num, z2)
		num.Div(num, one36)
		series.Add(series, term.Div(num, uint256.NewInt(d)))
	}
	series.Lsh(series, 1)

	return series, neg && !series.IsZero()
}

// signed folds a magnitude and a sign into an int256 two's complement value.
func signed(mag *uint256.Int, neg bool) *uint256.Int {
	if neg {
		return mag.Neg(mag)
	}
	return mag
}

// abs splits an int256 into its magnitude and sign.
func abs(x *uint256.Int) (*uint256.Int, bool) {
	if x.Sign() < 0 {
		return new(uint256.Int).Neg(x), true
	}
	return x.Clone(), false
}
