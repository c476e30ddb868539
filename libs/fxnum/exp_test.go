package fxnum

import (
	"math"
	"testing"

	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestExp_Golden(t *testing.T) {
	r, err := Exp(new(uint256.Int))
	require.NoError(t, err)
	require.Equal(t, One(), r)

	data := []struct {
		x    string
		want float64
	}{
		{"1", math.E},
		{"0.25", 1.2840254166877414},
		{"2.5", 12.182493960703473},
		{"64", 6.235149080811617e+27},
		{"128", 3.887708405994595e+55},
		{"130", 2.8729232500608906e+56},
		{"-1", 1 / math.E},
		{"-10", 4.5399929762484854e-05},
	}
	for _, d := range data {
		r, err := Exp(units(d.x))
		require.NoError(t, err, d.x)
		require.InEpsilon(t, d.want, toFloat(r), 1.0/20000, "exp(%s)", d.x)
	}
}

func TestExp_Bounds(t *testing.T) {
	_, err := Exp(units("130"))
	require.NoError(t, err)
	_, err = Exp(units("-41"))
	require.NoError(t, err)

	_, err = Exp(units("130.000000000000000001"))
	require.ErrorIs(t, err, xerrors.ErrExpOutOfBounds)
	_, err = Exp(units("-41.000000000000000001"))
	require.ErrorIs(t, err, xerrors.ErrExpOutOfBounds)
	_, err = Exp(units("1000000"))
	require.ErrorIs(t, err, xerrors.ErrExpOutOfBounds)

	// e^-41 is a single wei
	r, err := Exp(units("-41"))
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(1), r)
}

func TestExp_Random(t *testing.T) {
	for i := 0; i < 1000; i++ {
		// x in [0, 100] units
		x := new(uint256.Int).Mul(uint256.NewInt(uint64(rnd.Int63n(1_000_000_001))), uint256.NewInt(100_000_000_000))
		r, err := Exp(x)
		require.NoError(t, err)

		got := toFloat(r)
		want := math.Exp(toFloat(x))
		require.InDelta(t, want, got, got/20000, "exp(%s)", x.Dec())
	}
}

func TestExp_Negative(t *testing.T) {
	for i := 0; i < 1000; i++ {
		// x in [-41, 0] units
		mag := new(uint256.Int).Mul(uint256.NewInt(uint64(rnd.Int63n(410_000_001))), uint256.NewInt(100_000_000_000))
		x := new(uint256.Int).Neg(mag)
		r, err := Exp(x)
		require.NoError(t, err)

		// e^-x * e^x is one unit up to the truncation of the reciprocal
		p, err := Exp(mag)
		require.NoError(t, err)
		require.Equal(t, new(uint256.Int).Div(one36, p), r)

		got := toFloat(r)
		want := math.Exp(toFloat(x))
		// one wei of slack for the truncated reciprocal
		require.InDelta(t, want, got, got/20000+1e-18, "exp(%s)", ToDecimal(x))
	}
}

func TestLnExp_RoundTrip(t *testing.T) {
	for _, s := range []string{"0.5", "1", "2", "7.25", "42", "100"} {
		x := units(s)
		e, err := Exp(x)
		require.NoError(t, err)
		l, err := Ln(e)
		require.NoError(t, err)
		require.InEpsilon(t, toFloat(x), toFloat(l), 1e-15, s)
	}
}
