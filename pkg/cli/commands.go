package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mchmarny/sitenav/pkg/config"
	"github.com/mchmarny/sitenav/pkg/render"
	"github.com/mchmarny/sitenav/pkg/schema"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the navbar module consumed by the site framework",
		Long: `Build resolves the navbar and writes it to the output file, by default
src/.vuepress/navbar.ts. Check findings are logged as warnings; with --strict
any finding fails the build. Use --output - to write to stdout.`,
		Example: `  # Write src/.vuepress/navbar.ts from the built-in navbar
  sitenav build

  # Build from a yaml document as json
  sitenav build --source navbar.yaml --format json --output navbar.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)

			format, err := render.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			nb, err := loadNavbar(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			findings := nb.Check()
			for _, f := range findings {
				slog.Warn("navbar check", "location", f.Location, "severity", f.Severity, "message", f.Message)
			}
			if cfg.Strict {
				if err := findings.Err(); err != nil {
					return err
				}
			}

			opts := render.Options{Framework: cfg.Framework}

			if cfg.Output == "-" {
				return render.Write(cmd.OutOrStdout(), nb, format, opts)
			}

			if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			f, err := os.Create(cfg.Output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", cfg.Output, err)
			}

			if err := render.Write(f, nb, format, opts); err != nil {
				_ = f.Close()
				return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", cfg.Output, err)
			}

			slog.Info("navbar written",
				"source", sourceName(cfg),
				"output", cfg.Output,
				"format", format,
				"links", len(nb.Links()),
				"findings", len(findings))

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d links)\n", cfg.Output, len(nb.Links()))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file, - for stdout (default: "+config.DefaultOutput+")")
	cmd.Flags().StringP("format", "f", "", "output format (ts|json|yaml|tree|table|markdown)")
	cmd.Flags().String("framework", "", "module that exports navbar() in ts output")
	cmd.Flags().Bool("strict", false, "fail on any check finding")
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the navbar",
		Example: `  sitenav show
  sitenav show --as ts
  sitenav show --source navbar.yaml --as json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)

			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			nb, err := loadNavbar(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), nb, f, render.Options{Framework: cfg.Framework})
		},
	}

	cmd.Flags().StringVar(&format, "as", string(render.FormatTree), "output format (ts|json|yaml|tree|table|markdown)")
	_ = cmd.RegisterFlagCompletionFunc("as", formatCompletion)

	return cmd
}

func newLinksCmd() *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "links",
		Short: "List every link with its effective path",
		Long: `Links resolves the prefixes of all enclosing groups and prints the
effective path of every leaf and link item in menu order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nb, err := loadNavbar(cmd.Context(), configFrom(cmd))
			if err != nil {
				return err
			}
			return render.Table(cmd.OutOrStdout(), nb.Links(), markdown)
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "print a markdown table")

	return cmd
}

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the navbar for authoring mistakes",
		Long: `Lint reports empty labels and links, empty groups, prefixes that do not end
with a slash and links resolving to the same path. Errors fail the command;
warnings fail it only with --strict.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)

			nb, err := loadNavbar(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			findings := nb.Check()
			for _, f := range findings {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), f.String())
			}

			if findings.Errors() > 0 || (cfg.Strict && len(findings) > 0) {
				return findings.Err()
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d link(s), %d warning(s)\n",
				sourceName(cfg), len(nb.Links()), len(findings))
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "fail on warnings too")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [navbar|config]",
		Short:     "Print the JSON Schema of navbar documents or of sitenav.yaml",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"navbar", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := schema.Navbar()
			if len(args) == 1 && args[0] == "config" {
				s = schema.Config()
			}

			data, err := schema.Marshal(s)
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display sitenav version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sitenav %s\n", Version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit: %s, built: %s\n", Commit, Date)
		},
	}
}
