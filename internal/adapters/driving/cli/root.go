// Package cli implements the deglyph command-line interface using cobra.
// Commands resolve a rule source (file or built-in preset), build the
// translator chain once, and hand it to the normalize service.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deglyph/deglyph/internal/adapters/driven/config/file"
	"github.com/deglyph/deglyph/internal/core/domain"
	"github.com/deglyph/deglyph/internal/core/services"
	"github.com/deglyph/deglyph/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "deglyph",
	Short: "Normalize confusable Unicode characters to their plain equivalents",
	Long: `deglyph substitutes confusable codepoints (homoglyphs, stylistic
Unicode variants of Latin letters) with canonical equivalents, driven by a
small set of declaratively-configured mapping rules.

Rules come from a TOML file (--config) or a built-in preset (--preset).
Each rule maps single codepoints; the first matching rule in the chain
wins, and unmatched codepoints pass through unchanged.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the CLI, cancelling command contexts on SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// buildRuleSet resolves the --config/--preset pair into a rule set.
// A rule file takes precedence; with neither, the default preset applies.
func buildRuleSet(ctx context.Context, configPath, preset string) (*domain.RuleSet, error) {
	if configPath != "" {
		return file.NewLoader(configPath).Load(ctx)
	}
	if preset == "" {
		preset = services.DefaultPreset
	}
	set, err := services.Preset(preset)
	if err != nil {
		return nil, err
	}
	logger.Info("using preset %q", preset)
	return &set, nil
}

// buildService builds the normalize service for the resolved rule set.
func buildService(ctx context.Context, configPath, preset string) (*services.NormalizeService, error) {
	set, err := buildRuleSet(ctx, configPath, preset)
	if err != nil {
		return nil, err
	}
	chain, err := set.Chain()
	if err != nil {
		return nil, err
	}
	logger.Debug("chain ready with %d translators", len(chain))
	return services.NewNormalizeService(chain), nil
}
