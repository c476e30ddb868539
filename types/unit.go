package types

import (
	"fmt"
	"strings"

	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	DECIMAL int32 = 18
)

var (
	oneUnit = uint256.NewInt(1_000_000_000_000_000_000)
	decUnit = decimal.New(1, DECIMAL)
)

// Unit returns a copy of the fixed-point scale, 10^18.
func Unit() *uint256.Int {
	return oneUnit.Clone()
}

// ToUnits returns n scaled to the fixed-point unit. Negative n yields an int256 two's
// complement value.
func ToUnits(n int64) *uint256.Int {
	if n < 0 {
		ret := new(uint256.Int).Mul(uint256.NewInt(uint64(-n)), oneUnit)
		return ret.Neg(ret)
	}
	return new(uint256.Int).Mul(uint256.NewInt(uint64(n)), oneUnit)
}

// FormatUnits renders an unsigned fixed-point value with all 18 decimals.
func FormatUnits(v *uint256.Int) string {
	r := new(uint256.Int)
	q, r := new(uint256.Int).DivMod(v, oneUnit, r)
	return fmt.Sprintf("%s.%018d", q.Dec(), r.Uint64())
}

// FormatSignedUnits renders an int256 fixed-point value.
func FormatSignedUnits(v *uint256.Int) string {
	if v.Sign() < 0 {
		return "-" + FormatUnits(new(uint256.Int).Neg(v))
	}
	return FormatUnits(v)
}

// ParseUnits converts a decimal string like "1.5" or "-0.25" into an int256 fixed-point value.
// Digits beyond the 18th decimal are truncated.
func ParseUnits(s string) (*uint256.Int, xerrors.XError) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, xerrors.ErrInvalidInput.Wrap(err)
	}
	return DecimalToUnits(d)
}

// ParseRaw converts a raw integer string (decimal or 0x-prefixed hex) into a uint256 value.
func ParseRaw(s string) (*uint256.Int, xerrors.XError) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var (
		v   *uint256.Int
		err error
	)
	switch {
	case IsHexByteString(s) || (strings.HasPrefix(s, "0x") && len(s) > 2):
		v, err = uint256.FromHex(s)
	case IsNumericString(s):
		v, err = uint256.FromDecimal(s)
	default:
		return nil, xerrors.ErrInvalidInput.Wrapf("not a number: %q", s)
	}
	if err != nil {
		return nil, xerrors.ErrInvalidInput.Wrap(err)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// DecimalToUnits converts d into an int256 fixed-point value.
func DecimalToUnits(d decimal.Decimal) (*uint256.Int, xerrors.XError) {
	scaled := d.Mul(decUnit).Truncate(0).BigInt()
	neg := scaled.Sign() < 0
	if neg {
		scaled.Neg(scaled)
	}
	v, overflow := uint256.FromBig(scaled)
	if overflow || v.Sign() < 0 {
		return nil, xerrors.ErrOverFlow.Wrapf("value %v does not fit in int256", d)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// UnitsToDecimal converts an unsigned fixed-point value into a decimal.
func UnitsToDecimal(v *uint256.Int) decimal.Decimal {
	return decimal.NewFromBigInt(v.ToBig(), -DECIMAL)
}

// SignedUnitsToDecimal converts an int256 fixed-point value into a decimal.
func SignedUnitsToDecimal(v *uint256.Int) decimal.Decimal {
	if v.Sign() < 0 {
		return UnitsToDecimal(new(uint256.Int).Neg(v)).Neg()
	}
	return UnitsToDecimal(v)
}

var (
	digitTab [256]byte
	hexTab   [256]byte
)

func init() {
	// 0-9
	for c := byte('0'); c <= '9'; c++ {
		digitTab[c] = 1
		hexTab[c] = 1
	}
	// a-f, A-F
	for c := byte('a'); c <= 'f'; c++ {
		hexTab[c] = 1
	}
	for c := byte('A'); c <= 'F'; c++ {
		hexTab[c] = 1
	}
}

// IsHexByteString returns true if the string is a hexadecimal string (satisfying the conditions above)
// and its length is even (i.e., represents bytes).
func IsHexByteString(s string) bool {
	if len(s) < 2 || !strings.HasPrefix(s, "0x") {
		return false
	}

	s = s[2:]

	// check even length
	if (len(s) & 1) != 0 {
		return false
	}
	if len(s) == 0 { // empty is not allowed
		return false
	}
	for i := 0; i < len(s); i++ {
		if hexTab[s[i]] == 0 {
			return false
		}
	}
	return true
}

// IsNumericString returns true if s contains only digits [0-9].
// An empty string returns false.
func IsNumericString(s string) bool {
	if len(s) == 0 { // empty is not allowed
		return false
	}
	for i := 0; i < len(s); i++ {
		if digitTab[s[i]] == 0 {
			return false
		}
	}
	return true
}
