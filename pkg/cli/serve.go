package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mchmarny/sitenav/pkg/config"
	"github.com/mchmarny/sitenav/pkg/menu"
	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the navbar over HTTP for preview",
		Long: `Serve builds the navbar and serves it until interrupted:

  /             build summary
  /navbar.json  the array handed to navbar()
  /navbar.ts    the framework module
  /links        resolved links
  /lint         check findings
  /preview/...  link lookup by effective path
  /healthz      200 once a build exists
  /metrics      prometheus metrics

With --watch the source document is rebuilt whenever it changes. A failed
rebuild keeps the previous navbar in service.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)

			if cfg.Watch && cfg.Source == "" {
				return fmt.Errorf("--watch needs --source: the built-in navbar cannot change")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m := newMenu(cfg)
			return m.Run(ctx, server.WithPort(cfg.Port))
		},
	}

	cmd.Flags().IntP("port", "p", server.DefaultPort, "port to serve on")
	cmd.Flags().BoolP("watch", "w", false, "rebuild when the source document changes")
	cmd.Flags().Duration("debounce", config.DefaultDebounce, "delay before rebuilding after a change")
	cmd.Flags().String("framework", "", "module that exports navbar() in /navbar.ts")

	return cmd
}

func newMenu(cfg *config.Config) *menu.Menu {
	return menu.New(menu.Options{
		Title:       "sitenav",
		Description: "Site navigation bar preview",
		Version:     Version,
		Source:      sourceName(cfg),
		Framework:   cfg.Framework,
		Watch:       cfg.Watch && cfg.Source != "",
		Debounce:    cfg.Debounce,
		Load: func(ctx context.Context) (*nav.Navbar, error) {
			return loadNavbar(ctx, cfg)
		},
	})
}
