// Package config loads sitenav settings from defaults, sitenav.yaml, SITENAV_*
// environment variables and explicitly set command-line flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix prefixes every environment override, e.g. SITENAV_SOURCE.
	EnvPrefix = "SITENAV_"

	DefaultOutput    = "src/.vuepress/navbar.ts"
	DefaultFormat    = "ts"
	DefaultFramework = "vuepress-theme-hope"
	DefaultPort      = 9876
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultDebounce  = 200 * time.Millisecond
)

// FileNames are looked up in the working directory when no config file is given.
var FileNames = []string{"sitenav.yaml", "sitenav.yml"}

// Config holds all sitenav settings.
type Config struct {
	// Source is the navbar document (yaml or json). Empty selects the built-in site navbar.
	Source string `koanf:"source" jsonschema:"description=Navbar document; empty uses the built-in navbar"`

	// Output is where build writes the rendered navbar.
	Output string `koanf:"output" jsonschema:"description=File written by build"`

	// Format of the build output and of show.
	Format string `koanf:"format" jsonschema:"description=Output format,enum=ts,enum=json,enum=yaml,enum=tree,enum=table,enum=markdown"`

	// Framework is the module exporting the navbar builder in ts output.
	Framework string `koanf:"framework" jsonschema:"description=Module that exports navbar()"`

	// Port of the preview server.
	Port int `koanf:"port" jsonschema:"description=Preview server port"`

	// Watch rebuilds the served navbar when Source changes.
	Watch bool `koanf:"watch" jsonschema:"description=Rebuild on source changes"`

	// Strict turns check findings into build errors.
	Strict bool `koanf:"strict" jsonschema:"description=Fail the build on check findings"`

	// ValidateSource runs schema validation on Source before decoding.
	ValidateSource bool `koanf:"validate" jsonschema:"description=Validate the source document against the navbar schema"`

	// Debounce collapses bursts of file events into one rebuild.
	Debounce time.Duration `koanf:"debounce" jsonschema:"type=string,description=Watch debounce (e.g. 200ms)"`

	LogLevel  string `koanf:"log_level" jsonschema:"description=debug|info|warn|error"`
	LogFormat string `koanf:"log_format" jsonschema:"description=json|text"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-" jsonschema:"-"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"source":     "",
		"output":     DefaultOutput,
		"format":     DefaultFormat,
		"framework":  DefaultFramework,
		"port":       DefaultPort,
		"watch":      false,
		"strict":     false,
		"validate":   true,
		"debounce":   DefaultDebounce.String(),
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
	}
}

// FindFile returns explicit when set, otherwise the first of FileNames present in dir.
func FindFile(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load resolves the configuration. cfgFile may be empty; flags may be nil.
// Relative Source and Output paths read from the config file are resolved against
// the file's directory. Values from env vars, flags and defaults are left as is.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	fileK := koanf.New(".")
	used := FindFile(cfgFile, cwd)
	if used != "" {
		if err := fileK.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
		if err := k.Merge(fileK); err != nil {
			return nil, fmt.Errorf("failed to merge config file %s: %w", used, err)
		}
	}

	over := koanf.New(".")

	// SITENAV_LOG_LEVEL -> log_level
	if err := over.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := over.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := k.Merge(over); err != nil {
		return nil, fmt.Errorf("failed to merge overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if used != "" {
		cfg.File = used
		base := filepath.Dir(used)
		fromFile := func(key string) bool { return fileK.Exists(key) && !over.Exists(key) }
		if fromFile("source") {
			cfg.Source = resolveRelativeTo(cfg.Source, base)
		}
		if fromFile("output") {
			cfg.Output = resolveRelativeTo(cfg.Output, base)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that koanf cannot express.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("invalid debounce %s", c.Debounce)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

// resolveRelativeTo anchors a relative path to baseDir.
func resolveRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
