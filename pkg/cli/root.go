// Package cli provides the sitenav command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mchmarny/sitenav/pkg/config"
	"github.com/mchmarny/sitenav/pkg/logger"
	"github.com/mchmarny/sitenav/pkg/render"
)

const name = "sitenav"

// Version information, set at build time via -ldflags "-X .../pkg/cli.Version=v1.0.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type configKey struct{}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   name,
		Short: "Build and preview the site navigation bar",
		Long: `sitenav owns the navigation bar of a static documentation site.

The navbar is an ordered tree of leaves, link items and groups. Group prefixes
compose down the tree into effective link paths. sitenav resolves the tree,
checks it for authoring mistakes and writes the module the site framework loads.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger.SetDefault(logger.Options{
				Module:  name,
				Version: Version,
				Level:   cfg.LogLevel,
				Format:  cfg.LogFormat,
				Writer:  cmd.ErrOrStderr(),
			})

			if cfg.File != "" {
				slog.Debug("using config file", "path", cfg.File)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (commit %s, built %s)\n", Commit, Date))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./sitenav.yaml)")
	pf.StringP("source", "s", "", "navbar document (yaml or json); empty uses the built-in navbar")
	pf.Bool("validate", true, "validate the source document against the navbar schema")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.String("log-format", "", "log format (json|text)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newBuildCmd(),
		newShowCmd(),
		newLinksCmd(),
		newLintCmd(),
		newSchemaCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{Format: config.DefaultFormat, Framework: config.DefaultFramework}
}

func formatCompletion(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		out = append(out, string(f))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Main is the process entry point used by cmd/sitenav.
func Main(ctx context.Context) int {
	err := Execute(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}
