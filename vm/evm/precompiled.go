package evm

import (
	"math/big"
	"strings"

	"github.com/beatoz/fxmath/libs/fxnum"
	"github.com/beatoz/fxmath/libs/stableswap"
	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
)

var FxMathAddress = common.BytesToAddress([]byte{0x0f, 0x01})

func init() {
	vm.PrecompiledContractsHomestead[FxMathAddress] = &fxmath{}
	vm.PrecompiledContractsByzantium[FxMathAddress] = &fxmath{}
	vm.PrecompiledContractsIstanbul[FxMathAddress] = &fxmath{}
	vm.PrecompiledContractsBerlin[FxMathAddress] = &fxmath{}
	vm.PrecompiledContractsCancun[FxMathAddress] = &fxmath{}
}

const (
	LnGas          = 1500
	Ln36Gas        = 1200
	ExponentGas    = 1500
	PowGas         = 3600
	SolveDBaseGas  = 20000
	SolveDAssetGas = 400

	// solve_D never iterates more than this, whatever the caller asks
	MaxSolveBudget = 255
)

const FxMathABI = `[
	{"type":"function","name":"ln","stateMutability":"pure","inputs":[{"name":"x","type":"uint256"}],"outputs":[{"name":"","type":"int256"}]},
	{"type":"function","name":"ln36","stateMutability":"pure","inputs":[{"name":"x","type":"uint256"}],"outputs":[{"name":"","type":"int256"}]},
	{"type":"function","name":"exponent","stateMutability":"pure","inputs":[{"name":"x","type":"int256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"pow_up","stateMutability":"pure","inputs":[{"name":"x","type":"uint256"},{"name":"y","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"pow_down","stateMutability":"pure","inputs":[{"name":"x","type":"uint256"},{"name":"y","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"solve_D","stateMutability":"pure","inputs":[{"name":"A","type":"uint256"},{"name":"w","type":"uint256[]"},{"name":"x","type":"uint256[]"},{"name":"budget","type":"uint256"}],"outputs":[{"name":"D","type":"uint256"},{"name":"iterations","type":"uint256"},{"name":"delta","type":"uint256"}]}
]`

var fxmathABI = func() abi.ABI {
	ret, err := abi.JSON(strings.NewReader(FxMathABI))
	if err != nil {
		panic(err)
	}
	return ret
}()

// fxmath exposes the fixed-point math library to contracts.
type fxmath struct{}

func (c *fxmath) RequiredGas(input []byte) uint64 {
	method, args, err := unpackInput(input)
	if err != nil {
		return LnGas
	}
	switch method.Name {
	case "ln":
		return LnGas
	case "ln36":
		return Ln36Gas
	case "exponent":
		return ExponentGas
	case "pow_up", "pow_down":
		return PowGas
	case "solve_D":
		n := uint64(len(args[1].([]*big.Int)))
		budget := uint64(MaxSolveBudget)
		if b := args[3].(*big.Int); b.IsUint64() && b.Uint64() < budget {
			budget = b.Uint64()
		}
		return SolveDBaseGas + SolveDAssetGas*n*budget
	}
	return LnGas
}

func (c *fxmath) Run(input []byte) ([]byte, error) {
	method, args, err := unpackInput(input)
	if err != nil {
		return nil, err
	}

	var rets []interface{}
	switch method.Name {
	case "ln":
		r, err := fxnum.Ln(fromBig(args[0].(*big.Int)))
		if err != nil {
			return nil, err
		}
		rets = append(rets, toSignedBig(r))
	case "ln36":
		r, err := fxnum.Ln36(fromBig(args[0].(*big.Int)))
		if err != nil {
			return nil, err
		}
		rets = append(rets, toSignedBig(r))
	case "exponent":
		r, err := fxnum.Exp(fromBig(args[0].(*big.Int)))
		if err != nil {
			return nil, err
		}
		rets = append(rets, r.ToBig())
	case "pow_up", "pow_down":
		rounding := fxnum.RoundingUp
		if method.Name == "pow_down" {
			rounding = fxnum.RoundingDown
		}
		r, err := fxnum.PowRounded(fromBig(args[0].(*big.Int)), fromBig(args[1].(*big.Int)), rounding)
		if err != nil {
			return nil, err
		}
		rets = append(rets, r.ToBig())
	case "solve_D":
		budget := MaxSolveBudget
		if b := args[3].(*big.Int); b.IsUint64() && b.Uint64() < MaxSolveBudget {
			budget = int(b.Uint64())
		}
		d, it, delta, xerr := stableswap.SolveD(
			fromBig(args[0].(*big.Int)),
			fromBigs(args[1].([]*big.Int)),
			fromBigs(args[2].([]*big.Int)),
			budget,
		)
		if xerr != nil {
			return nil, xerr
		}
		rets = append(rets, d.ToBig(), new(big.Int).SetUint64(it), delta.ToBig())
	default:
		return nil, xerrors.ErrNotFoundMethod.Wrapf("method: %s", method.Name)
	}

	ret, err := method.Outputs.Pack(rets...)
	if err != nil {
		return nil, xerrors.ErrInvalidInput.Wrap(err)
	}
	return ret, nil
}

func unpackInput(input []byte) (*abi.Method, []interface{}, error) {
	if len(input) < 4 {
		return nil, nil, xerrors.ErrInvalidInput.Wrapf("input too short: %d bytes", len(input))
	}
	method, err := fxmathABI.MethodById(input[:4])
	if err != nil {
		return nil, nil, xerrors.ErrNotFoundMethod.Wrap(err)
	}
	args, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return nil, nil, xerrors.ErrInvalidInput.Wrap(err)
	}
	return method, args, nil
}

// fromBig reads an ABI integer as a 256-bit word; negative values become two's complement.
func fromBig(b *big.Int) *uint256.Int {
	ret, _ := uint256.FromBig(b)
	return ret
}

func fromBigs(bs []*big.Int) []*uint256.Int {
	ret := make([]*uint256.Int, len(bs))
	for i, b := range bs {
		ret[i] = fromBig(b)
	}
	return ret
}

// toSignedBig reads a two's complement word as an int256.
func toSignedBig(v *uint256.Int) *big.Int {
	if v.Sign() < 0 {
		return new(big.Int).Neg(new(uint256.Int).Neg(v).ToBig())
	}
	return v.ToBig()
}
