package commands

import (
	"os"

	cfg "github.com/beatoz/fxmath/cmd/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	rootConfig = cfg.DefaultConfig()
	logger     = log.NewTMLogger(log.NewSyncWriter(os.Stderr))
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", rootConfig.LogLevel, "log level")
	cmd.PersistentFlags().String("log_format", rootConfig.LogFormat, "log format (plain | json)")
	cmd.PersistentFlags().StringP("output", "o", rootConfig.Output, "output format (raw | decimal | fixed | json)")
	cmd.PersistentFlags().Bool(
		"raw",
		rootConfig.RawInput,
		"read arguments as raw 18 decimal integers (decimal or 0x-hex) instead of decimal numbers")
}

// ParseConfig retrieves the default environment configuration,
// sets up the fxmath root and ensures that the values are valid.
func ParseConfig(cmd *cobra.Command) (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("raw"); f != nil && f.Changed {
		viper.Set("raw_input", f.Value.String() == "true")
	}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}
	if err := conf.ValidateBasic(); err != nil {
		return nil, err
	}
	return conf, nil
}

// RootCmd is the root command for fxmath.
var RootCmd = NewRootCmd()

func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fxmath",
		Short: "Deterministic 18 decimal fixed-point math",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if cmd.Name() == VersionCmd.Name() {
				return nil
			}

			rootConfig, err = ParseConfig(cmd)
			if err != nil {
				return err
			}

			if rootConfig.LogFormat == cfg.LogFormatJSON {
				logger = log.NewTMJSONLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
			} else {
				logger = log.NewTMLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
			}

			logger, err = tmflags.ParseLogLevel(rootConfig.LogLevel, logger, cfg.DefaultConfig().LogLevel)
			if err != nil {
				return err
			}

			if viper.GetBool(cli.TraceFlag) {
				logger = log.NewTracingLogger(logger)
			}

			logger = logger.With("module", "main")
			return nil
		},
	}
}
