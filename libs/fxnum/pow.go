package fxnum

import (
	"strings"

	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/holiman/uint256"
)

// Rounding selects the direction a power result is pushed to.
type Rounding int

const (
	RoundingNone Rounding = iota
	RoundingDown
	RoundingUp
)

func (r Rounding) String() string {
	switch r {
	case RoundingDown:
		return "down"
	case RoundingUp:
		return "up"
	default:
		return "none"
	}
}

func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return RoundingUp, nil
	case "down":
		return RoundingDown, nil
	case "none", "raw", "":
		return RoundingNone, nil
	}
	return RoundingNone, xerrors.ErrInvalidInput.Wrapf("unknown rounding %q", s)
}

// Pow returns x^y truncated, without any directional margin.
// Both x and y are unsigned 18 decimal values.
func Pow(x, y *uint256.Int) (*uint256.Int, error) {
	return PowRounded(x, y, RoundingNone)
}

// PowUp returns a value greater than or equal to the exact x^y.
func PowUp(x, y *uint256.Int) (*uint256.Int, error) {
	return PowRounded(x, y, RoundingUp)
}

// PowDown returns a value less than or equal to the exact x^y.
// It is zero when the margin exceeds the raw result. When y·ln(x) is below -41 the
// exact result is under one wei, and PowDown still fails with ErrPowProductOutOfBounds
// rather than returning zero.
func PowDown(x, y *uint256.Int) (*uint256.Int, error) {
	return PowRounded(x, y, RoundingDown)
}

// PowRounded computes e^(y*ln(x)) and widens it by the maximum relative error
// in the direction given by r.
func PowRounded(x, y *uint256.Int, r Rounding) (*uint256.Int, error) {
	if y.IsZero() {
		// 0^0 is one unit as well
		return one18.Clone(), nil
	}
	if x.IsZero() {
		return new(uint256.Int), nil
	}

	raw, err := pow(x, y)
	if err != nil {
		return nil, err
	}

	switch r {
	case RoundingUp:
		return raw.Add(raw, maxPowError(raw)), nil
	case RoundingDown:
		e := maxPowError(raw)
		if raw.Lt(e) {
			return new(uint256.Int), nil
		}
		return raw.Sub(raw, e), nil
	}
	return raw, nil
}

// pow evaluates e^(y*ln(x)) for x, y > 0.
func pow(x, y *uint256.Int) (*uint256.Int, error) {
	if x.Sign() < 0 {
		// x >= 2^255
		return nil, xerrors.ErrPowBaseOutOfBounds
	}
	if !y.Lt(mildExponentBound) {
		return nil, xerrors.ErrPowExponentOutOfBounds
	}

	var (
		lxy *uint256.Int
		neg bool
	)
	if ln36LowerBound.Lt(x) && x.Lt(ln36UpperBound) {
		l, n := ln36(x)
		// (l / 1e18) * y + ((l % 1e18) * y) / 1e18 keeps the 36 decimals without overflowing
		q, m := new(uint256.Int).DivMod(l, one18, new(uint256.Int))
		q.Mul(q, y)
		m.Mul(m, y)
		m.Div(m, one18)
		lxy, neg = q.Add(q, m), n
	} else {
		l, n := ln(x)
		lxy, neg = l.Mul(l, y), n
	}
	lxy.Div(lxy, one18)

	if neg && lxy.Gt(minNaturalExponentAbs) {
		return nil, xerrors.ErrPowProductOutOfBounds
	}
	if !neg && lxy.Gt(maxNaturalExponent) {
		return nil, xerrors.ErrPowProductOutOfBounds
	}
	return exp(lxy, neg && !lxy.IsZero()), nil
}

// maxPowError returns ceil(p * 1e-14), at least one.
func maxPowError(p *uint256.Int) *uint256.Int {
	e := new(uint256.Int).Mul(p, maxPowRelativeError)
	if e.IsZero() {
		return uint256.NewInt(1)
	}
	e.SubUint64(e, 1)
	e.Div(e, one18)
	return e.AddUint64(e, 1)
}
