package menu

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/sitenav/pkg/logger"
	"github.com/mchmarny/sitenav/pkg/server"
)

// Run builds the navbar, then serves it until ctx is canceled. With Watch enabled the
// source file is watched on the same errgroup and every change triggers Reload.
// Extra options are applied after the menu's own, so they can override them.
func (m *Menu) Run(ctx context.Context, opt ...server.Option) error {
	if _, err := m.Reload(ctx); err != nil {
		return err
	}

	opts := []server.Option{
		server.WithRegistry(m.registry),
		server.WithHealthCheck(m),
		server.WithErrorLog(logger.NewLogLogger(slog.LevelError, false)),
	}

	m.RegisterHandlers(func(pattern string, h http.Handler) {
		opts = append(opts, server.WithHandler(pattern, h))
	})

	srv := server.New(append(opts, opt...)...)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Serve(gCtx)
	})

	if w := m.watcher(); w != nil {
		g.Go(func() error {
			return w.Run(gCtx)
		})
	}

	return g.Wait()
}
