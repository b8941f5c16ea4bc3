package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/chtlcheck/internal/cli/config"
	"github.com/leapstack-labs/chtlcheck/internal/cli/output"
	"github.com/leapstack-labs/chtlcheck/pkg/lint"
)

// ErrValidationFailed is returned when at least one file is invalid, so the
// process exits non-zero.
var ErrValidationFailed = errors.New("validation failed")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd. A non-empty format
// overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise the defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// buildLintConfig turns the configured disabled checks into a lint.Config.
func buildLintConfig(cfg *config.Config) *lint.Config {
	lintCfg := lint.NewConfig()
	for _, id := range cfg.Lint.Disabled {
		lintCfg.Disable(id)
	}
	return lintCfg
}
