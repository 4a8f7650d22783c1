package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mchmarny/sitenav/pkg/config"
	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/schema"
	"github.com/mchmarny/sitenav/pkg/site"
)

// builtinSource names the compiled-in navbar in logs and the preview index.
const builtinSource = "built-in"

func sourceName(cfg *config.Config) string {
	if cfg.Source == "" {
		return builtinSource
	}
	return cfg.Source
}

// loadNavbar builds the navbar named by cfg.Source, validating the raw document
// against the navbar schema first when cfg.ValidateSource is set.
func loadNavbar(_ context.Context, cfg *config.Config) (*nav.Navbar, error) {
	if cfg.Source == "" {
		return site.Navbar(), nil
	}

	format, err := nav.FormatFromPath(cfg.Source)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to read navbar %s: %w", cfg.Source, err)
	}

	if cfg.ValidateSource {
		v, err := schema.NewValidator()
		if err != nil {
			return nil, err
		}
		if err := v.ValidateDocument(data, format); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Source, err)
		}
	}

	nb, err := nav.Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode navbar %s: %w", cfg.Source, err)
	}

	slog.Debug("navbar loaded", "source", cfg.Source, "nodes", nb.Len())

	return nb, nil
}
