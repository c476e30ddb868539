package commands

import (
	"github.com/beatoz/fxmath/libs/fxnum"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
)

func NewLnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ln <x>",
		Short: "Natural logarithm of a positive value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnary(cmd, args[0], fxnum.Ln, true)
		},
	}
}

func NewLn36Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ln36 <x>",
		Short: "Natural logarithm with 36 decimals for x in [0.9, 1.1]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnary(cmd, args[0], fxnum.Ln36, true)
		},
	}
}

func NewExpCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "exp <x>",
		Aliases: []string{"exponent"},
		Short:   "Natural exponentiation, x in [-41, 130]",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnary(cmd, args[0], fxnum.Exp, false)
		},
	}
}

func NewPowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pow <x> <y>",
		Short: "x raised to the power of y",
		Args:  cobra.ExactArgs(2),
		RunE:  runPow,
	}
	cmd.Flags().String(
		"rounding",
		fxnum.RoundingNone.String(),
		"bound the result from above (up), below (down) or print the raw approximation (none)")
	return cmd
}

func runUnary(cmd *cobra.Command, arg string, fn func(*uint256.Int) (*uint256.Int, error), signedResult bool) error {
	x, err := parseArg(arg)
	if err != nil {
		return err
	}
	ret, err := fn(x)
	if err != nil {
		return err
	}
	logger.Debug(cmd.Name(), "x", x.Dec(), "result", ret.Dec())
	return writeValue(cmd.OutOrStdout(), ret, signedResult)
}

func runPow(cmd *cobra.Command, args []string) error {
	rounding, err := fxnum.ParseRounding(cmd.Flag("rounding").Value.String())
	if err != nil {
		return err
	}
	xs, err := parseArgs(args)
	if err != nil {
		return err
	}
	ret, err := fxnum.PowRounded(xs[0], xs[1], rounding)
	if err != nil {
		return err
	}
	logger.Debug("pow", "x", xs[0].Dec(), "y", xs[1].Dec(), "rounding", rounding, "result", ret.Dec())
	return writeValue(cmd.OutOrStdout(), ret, false)
}
