package fxnum

import (
	"github.com/holiman/uint256"
)

// All fixed-point values carry 18 decimals unless noted. The decomposition
// tables carry 20 decimals except for the two largest entries, whose powers
// of e are stored as plain integers.
var (
	one18 = uint256.NewInt(1_000_000_000_000_000_000)
	one20 = uint256.MustFromDecimal("100000000000000000000")
	one36 = uint256.MustFromDecimal("1000000000000000000000000000000000000")

	hundred = uint256.NewInt(100)

	// [-41, 130] is the domain where e^x fits the 18 decimal representation.
	maxNaturalExponent    = uint256.MustFromDecimal("130000000000000000000")
	minNaturalExponentAbs = uint256.MustFromDecimal("41000000000000000000")

	// ln36 is used for bases inside this band.
	ln36LowerBound = uint256.NewInt(900_000_000_000_000_000)
	ln36UpperBound = uint256.MustFromDecimal("1100000000000000000")

	// 2^254 / 10^20; keeps y * ln(x) inside 255 bits.
	mildExponentBound = new(uint256.Int).Div(new(uint256.Int).Lsh(uint256.NewInt(1), 254), one20)

	// x0 = 2^7, a0 = e^(x0) as an integer
	x0 = uint256.MustFromDecimal("128000000000000000000")
	a0 = uint256.MustFromDecimal("38877084059945950922226736883574780727281750630829988857")
	// x1 = 2^6, a1 = e^(x1) as an integer
	x1 = uint256.MustFromDecimal("64000000000000000000")
	a1 = uint256.MustFromDecimal("6235149080811616882909238708")

	// a0 and a1 rescaled to 18 decimals, thresholds for ln
	a0Scaled = new(uint256.Int).Mul(a0, one18)
	a1Scaled = new(uint256.Int).Mul(a1, one18)

	// (2^k, e^(2^k)) for k = 5..-4, both at 20 decimals
	expTable = []tableEntry{
		{uint256.MustFromDecimal("3200000000000000000000"), uint256.MustFromDecimal("7896296018268069516097802263510822")},
		{uint256.MustFromDecimal("1600000000000000000000"), uint256.MustFromDecimal("888611052050787263676302374")},
		{uint256.MustFromDecimal("800000000000000000000"), uint256.MustFromDecimal("298095798704172827474359")},
		{uint256.MustFromDecimal("400000000000000000000"), uint256.MustFromDecimal("5459815003314423907811")},
		{uint256.MustFromDecimal("200000000000000000000"), uint256.MustFromDecimal("738905609893065022723")},
		{uint256.MustFromDecimal("100000000000000000000"), uint256.MustFromDecimal("271828182845904523536")},
		{uint256.MustFromDecimal("50000000000000000000"), uint256.MustFromDecimal("164872127070012814684")},
		{uint256.MustFromDecimal("25000000000000000000"), uint256.MustFromDecimal("128402541668774148407")},
		{uint256.MustFromDecimal("12500000000000000000"), uint256.MustFromDecimal("113314845306682631682")},
		{uint256.MustFromDecimal("6250000000000000000"), uint256.MustFromDecimal("106449445891785942956")},
	}

	// exp only reduces with entries down to 0.25; the residual goes into the Taylor series.
	expReduceEntries = 8
	expTaylorTerms   = 12

	lnSeriesDenoms   = []uint64{3, 5, 7, 9, 11}
	ln36SeriesDenoms = []uint64{3, 5, 7, 9, 11, 13, 15}

	// relative error margin of the rounded power functions, 1e-14 at 18 decimals
	maxPowRelativeError = uint256.NewInt(10_000)
)

type tableEntry struct {
	x *uint256.Int
	a *uint256.Int
}
