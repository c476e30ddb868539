// Package fxnum provides deterministic, fixed-point implementations of
// ln, exp and pow on 18 decimal uint256 values. Signed arguments and
// results use int256 two's complement.
package fxnum

import (
	"github.com/holiman/uint256"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// fixedScaleDigits represents the default scale (7 decimal places) used by robaho/fixed.
const fixedScaleDigits = 7

var (
	// 10^(18 - fixedScaleDigits)
	fixedDivisor = uint256.NewInt(100_000_000_000)
	// fixed.MAX at 7 decimals
	maxFixedRaw = uint256.NewInt(999_999_999_999_999_999)
)

// One returns one unit, 10^18.
func One() *uint256.Int {
	return one18.Clone()
}

// ToDecimal converts an int256 18 decimal value to a shopspring/decimal.Decimal.
func ToDecimal(x *uint256.Int) decimal.Decimal {
	mag, neg := abs(x)
	d := decimal.NewFromBigInt(mag.ToBig(), -18)
	if neg {
		return d.Neg()
	}
	return d
}

// ToFixed truncates an int256 18 decimal value to robaho/fixed's 7 decimals.
// Values that do not fit the int64 backing of fixed.Fixed yield fixed.NaN.
func ToFixed(x *uint256.Int) fixed.Fixed {
	mag, neg := abs(x)
	mag.Div(mag, fixedDivisor)
	if mag.Gt(maxFixedRaw) {
		return fixed.NaN
	}
	raw := int64(mag.Uint64())
	if neg {
		raw = -raw
	}
	return fixed.NewI(raw, fixedScaleDigits)
}
