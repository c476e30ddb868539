package stableswap

import (
	"os"

	"github.com/beatoz/fxmath/libs/jsonx"
	"github.com/beatoz/fxmath/types"
	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/holiman/uint256"
)

const (
	MaxAssets     = 32
	DefaultBudget = 255
)

// Pool is the input of the invariant solver. All values are 18 decimal fixed-point numbers.
type Pool struct {
	Amplification *uint256.Int   `json:"amplification,units"`
	Weights       []*uint256.Int `json:"weights,units"`
	Balances      []*uint256.Int `json:"balances,units"`
	Budget        int            `json:"budget,omitempty"`
}

// Result is the output of the invariant solver.
type Result struct {
	D          *uint256.Int `json:"d,units"`
	Iterations uint64       `json:"iterations"`
	// Delta is the size of the last Newton step, |D_k - D_{k-1}|.
	Delta *uint256.Int `json:"delta,units"`
}

func (r *Result) Converged() bool {
	return r.Delta != nil && !r.Delta.Gt(uint256.NewInt(1))
}

func NewPool(amp *uint256.Int, weights, balances []*uint256.Int) *Pool {
	return &Pool{
		Amplification: amp,
		Weights:       weights,
		Balances:      balances,
		Budget:        DefaultBudget,
	}
}

// LoadPool reads a pool document from a JSON file.
func LoadPool(path string) (*Pool, xerrors.XError) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.ErrInvalidInput.Wrap(err)
	}
	return DecodePool(bz)
}

func DecodePool(bz []byte) (*Pool, xerrors.XError) {
	pool := &Pool{}
	if xerr := pool.Decode(bz); xerr != nil {
		return nil, xerr
	}
	return pool, nil
}

var _ types.IEncoder = (*Pool)(nil)

// Decode fills p from a JSON document. Missing amplification and budget take their defaults.
func (p *Pool) Decode(bz []byte) xerrors.XError {
	if err := jsonx.Unmarshal(bz, p); err != nil {
		return xerrors.ErrInvalidInput.Wrap(err)
	}
	if p.Amplification == nil {
		p.Amplification = new(uint256.Int)
	}
	if p.Budget == 0 {
		p.Budget = DefaultBudget
	}
	return nil
}

func (p *Pool) Encode() ([]byte, xerrors.XError) {
	bz, err := jsonx.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, xerrors.From(err)
	}
	return bz, nil
}

func (p *Pool) Sum() *uint256.Int {
	sum := new(uint256.Int)
	for _, x := range p.Balances {
		sum.Add(sum, x)
	}
	return sum
}

// Validate checks the structural constraints of the pool.
func (p *Pool) Validate() xerrors.XError {
	if len(p.Weights) != len(p.Balances) {
		return xerrors.ErrLengthMismatch.Wrapf("weights: %d, balances: %d", len(p.Weights), len(p.Balances))
	}
	if len(p.Weights) == 0 {
		return xerrors.ErrEmptyPool
	}
	if len(p.Weights) > MaxAssets {
		return xerrors.ErrTooManyAssets.Wrapf("%d assets, max %d", len(p.Weights), MaxAssets)
	}
	if p.Budget < 1 {
		return xerrors.ErrInvalidBudget
	}
	if p.Amplification == nil || p.Amplification.Sign() < 0 {
		return xerrors.ErrInvalidInput.Wrapf("amplification out of range")
	}

	one := types.Unit()
	sum := new(uint256.Int)
	for i, w := range p.Weights {
		if w == nil || w.IsZero() || w.Gt(one) {
			return xerrors.ErrInvalidWeight.Wrapf("asset %d", i)
		}
		sum.Add(sum, w)
	}
	if !sum.Eq(one) {
		return xerrors.ErrWeightSum.Wrapf("sum: %s", types.FormatUnits(sum))
	}

	total := new(uint256.Int)
	for i, x := range p.Balances {
		if x == nil || x.IsZero() {
			return xerrors.ErrZeroBalance.Wrapf("asset %d", i)
		}
		if _, overflow := total.AddOverflow(total, x); overflow || total.Sign() < 0 {
			return xerrors.ErrOverFlow.Wrapf("sum of balances")
		}
	}
	return nil
}
