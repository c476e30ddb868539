package commands

import (
	"fmt"
	"io"

	cfg "github.com/beatoz/fxmath/cmd/config"
	"github.com/beatoz/fxmath/libs/fxnum"
	"github.com/beatoz/fxmath/libs/jsonx"
	"github.com/beatoz/fxmath/types"
	"github.com/holiman/uint256"
)

type unsignedValue struct {
	Value *uint256.Int `json:"value,units"`
	Raw   string       `json:"raw"`
}

type signedValue struct {
	Value *uint256.Int `json:"value,sunits"`
	Raw   string       `json:"raw"`
}

// parseArg reads a command line value as decimal units, or as a raw integer when raw_input is set.
func parseArg(s string) (*uint256.Int, error) {
	if rootConfig.RawInput {
		v, xerr := types.ParseRaw(s)
		if xerr != nil {
			return nil, xerr
		}
		return v, nil
	}
	v, xerr := types.ParseUnits(s)
	if xerr != nil {
		return nil, xerr
	}
	return v, nil
}

func parseArgs(ss []string) ([]*uint256.Int, error) {
	ret := make([]*uint256.Int, len(ss))
	for i, s := range ss {
		v, err := parseArg(s)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func rawString(v *uint256.Int, signed bool) string {
	if signed && v.Sign() < 0 {
		return "-" + new(uint256.Int).Neg(v).Dec()
	}
	return v.Dec()
}

func formatValue(v *uint256.Int, signed bool) string {
	switch rootConfig.Output {
	case cfg.OutputRaw:
		return rawString(v, signed)
	case cfg.OutputFixed:
		if !signed && v.Sign() < 0 {
			// above the int256 range fixed.Fixed would misread the sign
			return types.FormatUnits(v)
		}
		return fxnum.ToFixed(v).String()
	}
	if signed {
		return types.FormatSignedUnits(v)
	}
	return types.FormatUnits(v)
}

func writeValue(w io.Writer, v *uint256.Int, signed bool) error {
	if rootConfig.Output == cfg.OutputJSON {
		var doc interface{} = &unsignedValue{Value: v, Raw: rawString(v, false)}
		if signed {
			doc = &signedValue{Value: v, Raw: rawString(v, true)}
		}
		bz, err := jsonx.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bz))
		return err
	}
	_, err := fmt.Fprintln(w, formatValue(v, signed))
	return err
}
