package main

import (
	"os"
	"path/filepath"

	"github.com/beatoz/fxmath/cmd/commands"
	"github.com/tendermint/tendermint/libs/cli"
)

func main() {
	commands.RootCmd.AddCommand(
		commands.NewLnCmd(),
		commands.NewLn36Cmd(),
		commands.NewExpCmd(),
		commands.NewPowCmd(),
		commands.NewSolveCmd(),
		commands.VersionCmd,
	)

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	executor := cli.PrepareBaseCmd(commands.RootCmd, "FXMATH", filepath.Join(home, ".fxmath"))
	if err := executor.Execute(); err != nil {
		os.Exit(1)
	}
}
