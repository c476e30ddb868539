package commands

import (
	"fmt"

	cfg "github.com/beatoz/fxmath/cmd/config"
	"github.com/beatoz/fxmath/libs/jsonx"
	"github.com/beatoz/fxmath/libs/stableswap"
	"github.com/spf13/cobra"
)

var (
	poolFile string
	ampArg   string
	weights  []string
	balances []string
)

func NewSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "solve",
		Aliases: []string{"solve-d", "solve_D"},
		Short:   "Compute the invariant D of a weighted stableswap pool",
		Long: "Compute the invariant D of a weighted stableswap pool.\n" +
			"The pool is read from --pool or built from --amp, --weights and --balances.",
		Args: cobra.NoArgs,
		RunE: runSolve,
	}
	AddSolveFlags(cmd)
	return cmd
}

func AddSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&poolFile, "pool", "", "path of a pool JSON file")
	cmd.Flags().StringVar(&ampArg, "amp", "0", "amplification coefficient A")
	cmd.Flags().StringSliceVar(&weights, "weights", nil, "comma separated asset weights summing to one")
	cmd.Flags().StringSliceVar(&balances, "balances", nil, "comma separated asset balances")
	cmd.Flags().Int(
		"budget",
		rootConfig.Budget,
		"maximum number of Newton iterations.\n"+
			"when it is used up the last estimate is printed together with its step size")
}

func loadPool(cmd *cobra.Command) (*stableswap.Pool, error) {
	if poolFile != "" {
		pool, xerr := stableswap.LoadPool(poolFile)
		if xerr != nil {
			return nil, xerr
		}
		if cmd.Flags().Changed("budget") {
			pool.Budget = rootConfig.Budget
		}
		return pool, nil
	}

	amp, err := parseArg(ampArg)
	if err != nil {
		return nil, err
	}
	ws, err := parseArgs(weights)
	if err != nil {
		return nil, err
	}
	xs, err := parseArgs(balances)
	if err != nil {
		return nil, err
	}
	pool := stableswap.NewPool(amp, ws, xs)
	pool.Budget = rootConfig.Budget
	return pool, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	pool, err := loadPool(cmd)
	if err != nil {
		return err
	}

	ret, xerr := stableswap.NewSolver(logger).Solve(pool)
	if xerr != nil {
		return xerr
	}

	w := cmd.OutOrStdout()
	if rootConfig.Output == cfg.OutputJSON {
		bz, err := jsonx.MarshalIndent(ret, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bz))
		return err
	}

	fmt.Fprintf(w, "D: %s\n", formatValue(ret.D, false))
	fmt.Fprintf(w, "iterations: %d\n", ret.Iterations)
	fmt.Fprintf(w, "delta: %s\n", formatValue(ret.Delta, false))
	fmt.Fprintf(w, "converged: %v\n", ret.Converged())
	return nil
}
