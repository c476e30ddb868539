package commands

import (
	"fmt"

	"github.com/beatoz/fxmath/cmd/version"
	"github.com/beatoz/fxmath/libs/jsonx"
	"github.com/spf13/cobra"
)

// VersionCmd prints the fxmath version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	RunE: func(cmd *cobra.Command, args []string) error {
		if f := cmd.Flags().Lookup("output"); f != nil && f.Value.String() == "json" {
			bz, err := jsonx.Marshal(version.Get())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return err
	},
}
