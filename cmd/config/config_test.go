package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.ValidateBasic())
	require.Equal(t, 255, cfg.Budget)
	require.Equal(t, OutputDecimal, cfg.Output)

	cfg.Output = "xml"
	require.Error(t, cfg.ValidateBasic())

	cfg = DefaultConfig()
	cfg.LogFormat = "yaml"
	require.Error(t, cfg.ValidateBasic())

	cfg = DefaultConfig()
	cfg.Budget = 0
	require.Error(t, cfg.ValidateBasic())
}
