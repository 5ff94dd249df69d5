package cli

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/server"
)

func serveCmdWithArgs(t *testing.T, args ...string) (*cobra.Command, *CLIContext) {
	t.Helper()
	serve, _, err := NewRootCommand().Find([]string{"serve"})
	require.NoError(t, err)
	require.NoError(t, serve.ParseFlags(args))

	engine := calculation.NewCalculationEngine()
	logger := zap.NewNop().Sugar()
	engine.SetLogger(logger)
	return serve, &CLIContext{Engine: engine, Logger: logger}
}

func TestApplyServeLogLevel_FromEnvironment(t *testing.T) {
	t.Setenv("COAST_LOG_LEVEL", "debug")
	cfg, err := server.LoadConfig()
	require.NoError(t, err)

	cmd, cliCtx := serveCmdWithArgs(t)
	require.NoError(t, applyServeLogLevel(cmd, cliCtx, cfg))

	assert.True(t, cliCtx.Logger.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.Same(t, cliCtx.Logger, cliCtx.Engine.Logger, "engine should log through the rebuilt logger")
}

func TestApplyServeLogLevel_DefaultIsInfo(t *testing.T) {
	t.Setenv("COAST_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("COAST_LOG_LEVEL"))
	cfg, err := server.LoadConfig()
	require.NoError(t, err)

	cmd, cliCtx := serveCmdWithArgs(t)
	require.NoError(t, applyServeLogLevel(cmd, cliCtx, cfg))

	core := cliCtx.Logger.Desugar().Core()
	assert.True(t, core.Enabled(zapcore.InfoLevel))
	assert.False(t, core.Enabled(zapcore.DebugLevel))
}

func TestApplyServeLogLevel_FlagWins(t *testing.T) {
	t.Setenv("COAST_LOG_LEVEL", "debug")
	cfg, err := server.LoadConfig()
	require.NoError(t, err)

	cmd, cliCtx := serveCmdWithArgs(t, "--log-level", "error")
	before := cliCtx.Logger
	require.NoError(t, applyServeLogLevel(cmd, cliCtx, cfg))

	assert.Same(t, before, cliCtx.Logger)
	assert.Same(t, before, cliCtx.Engine.Logger)
}
