package config

import (
	"fmt"

	"github.com/beatoz/fxmath/libs/stableswap"
	tmcfg "github.com/tendermint/tendermint/config"
)

const (
	OutputRaw     = "raw"
	OutputDecimal = "decimal"
	OutputFixed   = "fixed"
	OutputJSON    = "json"

	LogFormatPlain = tmcfg.LogFormatPlain
	LogFormatJSON  = tmcfg.LogFormatJSON
)

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Budget    int    `mapstructure:"budget"`
	Output    string `mapstructure:"output"`
	RawInput  bool   `mapstructure:"raw_input"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  tmcfg.DefaultLogLevel,
		LogFormat: LogFormatPlain,
		Budget:    stableswap.DefaultBudget,
		Output:    OutputDecimal,
		RawInput:  false,
	}
}

// ValidateBasic performs basic validation of the config values.
func (c *Config) ValidateBasic() error {
	switch c.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log_format (must be '%s' or '%s')", LogFormatPlain, LogFormatJSON)
	}
	switch c.Output {
	case OutputRaw, OutputDecimal, OutputFixed, OutputJSON:
	default:
		return fmt.Errorf("unknown output %q (must be one of raw, decimal, fixed, json)", c.Output)
	}
	if c.Budget < 1 {
		return fmt.Errorf("budget must be positive: %d", c.Budget)
	}
	return nil
}
