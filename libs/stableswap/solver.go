package stableswap

import (
	"github.com/beatoz/fxmath/libs/fxnum"
	"github.com/beatoz/fxmath/types/xerrors"
	"github.com/holiman/uint256"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

var (
	one18 = fxnum.One()
	one36 = new(uint256.Int).Mul(one18, one18)
)

// Solver finds the invariant D of a weighted stableswap pool:
//
//	A·f^n·Σx_i + D = A·f^n·D + D·Π(D·w_i/x_i)^(n·w_i),  f^n = Π w_i^(-n·w_i)
//
// With equal weights f^n is n^n and the curve is the classic stableswap invariant.
type Solver struct {
	logger tmlog.Logger
}

func NewSolver(logger tmlog.Logger) *Solver {
	return &Solver{
		logger: logger.With("module", "fxmath_Solver"),
	}
}

// SolveD is Solve without logging.
func SolveD(amp *uint256.Int, weights, balances []*uint256.Int, budget int) (*uint256.Int, uint64, *uint256.Int, xerrors.XError) {
	pool := NewPool(amp, weights, balances)
	pool.Budget = budget

	ret, xerr := NewSolver(tmlog.NewNopLogger()).Solve(pool)
	if xerr != nil {
		return nil, 0, nil, xerr
	}
	return ret.D, ret.Iterations, ret.Delta, nil
}

// Solve runs Newton's method from D = Σx_i. It stops when a step moves D by at most one
// or when the pool's budget is used up; in the latter case the last estimate is returned.
func (s *Solver) Solve(pool *Pool) (*Result, xerrors.XError) {
	if xerr := pool.Validate(); xerr != nil {
		return nil, xerr
	}

	n := uint256.NewInt(uint64(len(pool.Weights)))
	ann, xerr := amplification(pool.Amplification, pool.Weights)
	if xerr != nil {
		return nil, xerr
	}

	sum := pool.Sum()
	d := sum.Clone()
	prod, xerr := productTerm(d, pool.Weights, pool.Balances)
	if xerr != nil {
		return nil, xerr
	}

	// A·f^n·S does not change between steps
	annS, overflow := new(uint256.Int).MulDivOverflow(ann, sum, one18)
	if overflow {
		return nil, xerrors.ErrOverFlow.Wrapf("A·f^n·S")
	}
	n1 := new(uint256.Int).AddUint64(n, 1)

	delta := new(uint256.Int)
	for it := 1; it <= pool.Budget; it++ {
		// num = A·f^n·S + n·P·D
		nP := new(uint256.Int).Mul(n, prod)
		num, overflow := new(uint256.Int).MulDivOverflow(nP, d, one18)
		if overflow {
			return nil, xerrors.ErrOverFlow.Wrapf("n·P·D at iteration %d", it)
		}
		if _, overflow = num.AddOverflow(num, annS); overflow {
			return nil, xerrors.ErrOverFlow.Wrapf("numerator at iteration %d", it)
		}

		den, xerr := newtonDenominator(n1, prod, ann)
		if xerr != nil {
			return nil, xerr.Wrapf("iteration %d", it)
		}

		next, overflow := new(uint256.Int).MulDivOverflow(num, one18, den)
		if overflow || next.IsZero() {
			return nil, xerrors.ErrOverFlow.Wrapf("D at iteration %d", it)
		}

		// P is proportional to D^n
		for i := uint64(0); i < n.Uint64(); i++ {
			if _, overflow = prod.MulDivOverflow(prod, next, d); overflow {
				return nil, xerrors.ErrOverFlow.Wrapf("P at iteration %d", it)
			}
		}

		if next.Gt(d) {
			delta.Sub(next, d)
		} else {
			delta.Sub(d, next)
		}
		d = next

		s.logger.Debug("newton step", "iteration", it, "D", d.Dec(), "delta", delta.Dec())

		if !delta.Gt(uint256.NewInt(1)) {
			return &Result{D: capD(d, sum), Iterations: uint64(it), Delta: delta}, nil
		}
	}

	s.logger.Info("budget exhausted before convergence", "budget", pool.Budget, "D", d.Dec(), "delta", delta.Dec())
	return &Result{D: capD(d, sum), Iterations: uint64(pool.Budget), Delta: delta}, nil
}

// capD keeps D <= Σx_i; truncated weights can leave D a wei above the sum.
// newtonDenominator returns A·f^n - 1 + (n+1)·P.
func newtonDenominator(n1, prod, ann *uint256.Int) (*uint256.Int, xerrors.XError) {
	den, overflow := new(uint256.Int).MulOverflow(n1, prod)
	if overflow {
		return nil, xerrors.ErrOverFlow.Wrapf("(n+1)·P")
	}
	if _, overflow = den.AddOverflow(den, ann); overflow {
		return nil, xerrors.ErrOverFlow.Wrapf("denominator")
	}
	if !den.Gt(one18) {
		return nil, xerrors.ErrDegenerateStep.Wrapf("A·f^n + (n+1)·P = %s", den.Dec())
	}
	return den.Sub(den, one18), nil
}

func capD(d, sum *uint256.Int) *uint256.Int {
	if d.Gt(sum) {
		return sum.Clone()
	}
	return d
}

// amplification returns A·f^n = A·Π(1/w_i)^(n·w_i).
func amplification(amp *uint256.Int, weights []*uint256.Int) (*uint256.Int, xerrors.XError) {
	n := uint256.NewInt(uint64(len(weights)))

	fn := one18.Clone()
	for _, w := range weights {
		inv := new(uint256.Int).Div(one36, w)
		exp := new(uint256.Int).Mul(n, w)
		p, err := fxnum.Pow(inv, exp)
		if err != nil {
			return nil, xerrors.From(err)
		}
		if _, overflow := fn.MulDivOverflow(fn, p, one18); overflow {
			return nil, xerrors.ErrOverFlow.Wrapf("f^n")
		}
	}

	ann, overflow := new(uint256.Int).MulDivOverflow(amp, fn, one18)
	if overflow {
		return nil, xerrors.ErrOverFlow.Wrapf("A·f^n")
	}
	return ann, nil
}

// productTerm returns P = Π(D·w_i/x_i)^(n·w_i).
func productTerm(d *uint256.Int, weights, balances []*uint256.Int) (*uint256.Int, xerrors.XError) {
	n := uint256.NewInt(uint64(len(weights)))

	prod := one18.Clone()
	for i, w := range weights {
		base, overflow := new(uint256.Int).MulDivOverflow(d, w, balances[i])
		if overflow {
			return nil, xerrors.ErrOverFlow.Wrapf("D·w/x of asset %d", i)
		}
		exp := new(uint256.Int).Mul(n, w)
		p, err := fxnum.Pow(base, exp)
		if err != nil {
			return nil, xerrors.From(err)
		}
		if _, overflow := prod.MulDivOverflow(prod, p, one18); overflow {
			return nil, xerrors.ErrOverFlow.Wrapf("P")
		}
	}
	if prod.IsZero() {
		return nil, xerrors.ErrOverFlow.Wrapf("P vanished")
	}
	return prod, nil
}
