// Package menu holds the current navbar build and serves it for preview.
package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/sitenav/pkg/metric"
	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/watch"
)

// ErrNotBuilt is reported before the first successful build.
var ErrNotBuilt = errors.New("navbar not built yet")

// Loader produces a fresh navbar for each build.
type Loader func(ctx context.Context) (*nav.Navbar, error)

// Build is one immutable result of running the loader.
type Build struct {
	// ID is unique per build.
	ID string `json:"id"`

	// BuiltAt is when the loader returned.
	BuiltAt time.Time `json:"built_at"`

	// Source is where the navbar came from.
	Source string `json:"source"`

	// Navbar is the tree handed to the framework.
	Navbar *nav.Navbar `json:"navbar"`

	// Findings are the advisory check results for Navbar.
	Findings nav.Findings `json:"findings,omitempty"`
}

// Options configure a Menu.
type Options struct {
	Title       string
	Description string
	Version     string

	// Source names the navbar origin; when Watch is set it must be a file path.
	Source string

	// Framework is imported by the /navbar.ts endpoint.
	Framework string

	// Load builds the navbar. Required.
	Load Loader

	// Watch reloads when Source changes.
	Watch    bool
	Debounce time.Duration

	// Registry receives the menu metrics. A new registry is created when nil.
	Registry *prometheus.Registry
}

// Menu serves the current navbar build and replaces it on reload.
type Menu struct {
	opts    Options
	current atomic.Pointer[Build]

	registry  *prometheus.Registry
	requests  metric.IncrementalCounter
	builds    metric.IncrementalCounter
	links     *metric.Gauge
	lastBuild *metric.Gauge
}

// New creates a menu. Nothing is built until Reload or Run.
func New(opts Options) *Menu {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Menu{
		opts:      opts,
		registry:  reg,
		requests:  metric.NewCounterWithRegistry(reg, "requests_total", "Navbar endpoint requests.", "endpoint"),
		builds:    metric.NewCounterWithRegistry(reg, "builds_total", "Navbar builds by result.", "result"),
		links:     metric.NewGaugeWithRegistry(reg, "links", "Resolved links in the current build."),
		lastBuild: metric.NewGaugeWithRegistry(reg, "last_build_timestamp_seconds", "Unix time of the current build."),
	}
}

// Registry exposes the metrics registry, served on /metrics by Run.
func (m *Menu) Registry() *prometheus.Registry {
	return m.registry
}

// Current returns the latest successful build, or nil.
func (m *Menu) Current() *Build {
	return m.current.Load()
}

// Healthy implements server.HealthChecker.
func (m *Menu) Healthy(context.Context) error {
	if m.Current() == nil {
		return ErrNotBuilt
	}
	return nil
}

// Reload runs the loader and swaps in the new build. On failure the previous
// build keeps being served.
func (m *Menu) Reload(ctx context.Context) (*Build, error) {
	if m.opts.Load == nil {
		return nil, errors.New("menu has no loader")
	}

	nb, err := m.opts.Load(ctx)
	if err != nil {
		m.builds.Increment("error")
		return nil, fmt.Errorf("failed to build navbar from %s: %w", m.opts.Source, err)
	}

	b := &Build{
		ID:       uuid.NewString(),
		BuiltAt:  time.Now().UTC(),
		Source:   m.opts.Source,
		Navbar:   nb,
		Findings: nb.Check(),
	}

	m.current.Store(b)
	m.builds.Increment("ok")
	m.links.Set(float64(len(nb.Links())))
	m.lastBuild.SetToCurrentTime()

	slog.Info("navbar built",
		"id", b.ID,
		"source", b.Source,
		"nodes", nb.Len(),
		"findings", len(b.Findings))

	for _, f := range b.Findings {
		slog.Warn("navbar check", "location", f.Location, "severity", f.Severity, "message", f.Message)
	}

	return b, nil
}

// watcher returns the source watcher, or nil when watching is off.
func (m *Menu) watcher() *watch.Watcher {
	if !m.opts.Watch || m.opts.Source == "" {
		return nil
	}

	return &watch.Watcher{
		Path:     m.opts.Source,
		Debounce: m.opts.Debounce,
		OnChange: func(ctx context.Context) {
			if _, err := m.Reload(ctx); err != nil {
				slog.Error("reload failed, keeping previous build", "error", err)
			}
		},
	}
}
