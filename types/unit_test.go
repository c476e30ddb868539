package types_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/beatoz/fxmath/types"
	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestConvertUnits(t *testing.T) {
	r := rand.Int63n(1 << 40)
	units := types.ToUnits(r)
	require.Equal(t, strconv.FormatInt(r, 10)+"000000000000000000", units.Dec())

	require.Equal(t, strconv.FormatInt(r, 10)+".000000000000000000", types.FormatUnits(units))

	neg := types.ToUnits(-r)
	require.True(t, neg.Sign() < 0 || r == 0)
	require.Equal(t, units, new(uint256.Int).Neg(neg))
}

func TestParseFormatUnits(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"1", "1.000000000000000000"},
		{"0.5", "0.500000000000000000"},
		{"-2.25", "-2.250000000000000000"},
		{"0.0000000000000000019", "0.000000000000000001"},
		{"130", "130.000000000000000000"},
	}
	for _, c := range cases {
		v, xerr := types.ParseUnits(c.in)
		require.NoError(t, xerr, c.in)
		require.Equal(t, c.out, types.FormatSignedUnits(v), c.in)
	}

	_, xerr := types.ParseUnits("abc")
	require.Error(t, xerr)
	require.True(t, xerr.Contains(xerrors.ErrInvalidInput))

	_, xerr = types.ParseUnits("1e80")
	require.Error(t, xerr)
	require.True(t, xerr.Contains(xerrors.ErrOverFlow))
}

func TestParseRaw(t *testing.T) {
	v, xerr := types.ParseRaw("1000000000000000000")
	require.NoError(t, xerr)
	require.Equal(t, types.Unit(), v)

	v, xerr = types.ParseRaw("0xde0b6b3a7640000")
	require.NoError(t, xerr)
	require.Equal(t, types.Unit(), v)

	v, xerr = types.ParseRaw("-1000000000000000000")
	require.NoError(t, xerr)
	require.Equal(t, types.ToUnits(-1), v)

	_, xerr = types.ParseRaw("1.5")
	require.Error(t, xerr)
}

func TestDecimalRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("-41.123456789012345678")
	v, xerr := types.DecimalToUnits(d)
	require.NoError(t, xerr)
	require.True(t, d.Equal(types.SignedUnitsToDecimal(v)))
	require.Equal(t, "-41.123456789012345678", types.FormatSignedUnits(v))
}

func TestIsHexByteString(t *testing.T) {
	require.True(t, types.IsHexByteString("0x0a"))
	require.True(t, types.IsHexByteString("0xABcd"))
	require.False(t, types.IsHexByteString("0x"))
	require.False(t, types.IsHexByteString("0xabc"))
	require.False(t, types.IsHexByteString("abcd"))
	require.False(t, types.IsHexByteString("0xzz"))

	require.True(t, types.IsNumericString("0123"))
	require.False(t, types.IsNumericString(""))
	require.False(t, types.IsNumericString("12a"))
}
