// Package config resolves the cascade CLI configuration.
//
// Priority order: CASCADE_* env > config file > built-in defaults. The config
// file is the --config path, or cascade.yaml in the working directory.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/go-drift/cascade/pkg/animation"
	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/errors"
)

// EnvPrefix prefixes environment overrides: CASCADE_ENGINE_MAX_BINDINGS
// sets engine.max_bindings.
const EnvPrefix = "CASCADE_"

// DefaultFile is read from the working directory when present.
const DefaultFile = "cascade.yaml"

// Config is the resolved CLI configuration.
type Config struct {
	Engine     EngineConfig     `koanf:"engine"`
	Transition TransitionConfig `koanf:"transition"`
	Log        LogConfig        `koanf:"log"`
}

// EngineConfig maps onto cascade.Options.
type EngineConfig struct {
	MaxBindings int  `koanf:"max_bindings"`
	Refresh     bool `koanf:"refresh"`
}

// TransitionConfig times transitions the sheet does not describe.
type TransitionConfig struct {
	Duration time.Duration `koanf:"duration"`
	Delay    time.Duration `koanf:"delay"`
	Path     string        `koanf:"path"`
}

// LogConfig contains logging settings. The -v flag adds to Verbosity.
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// Defaults returns the built-in configuration tree.
func Defaults() map[string]any {
	return map[string]any{
		"engine.max_bindings": cascade.DefaultMaxBindings,
		"engine.refresh":      true,
		"transition.duration": "200ms",
		"transition.delay":    "0s",
		"transition.path":     "linear",
		"log.verbosity":       0,
	}
}

// Load resolves the configuration. An empty path falls back to DefaultFile
// when it exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, configError(fmt.Errorf("failed to load defaults: %w", err))
	}

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, configError(fmt.Errorf("failed to load %s: %w", path, err))
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		// Only the first underscore separates the section.
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, configError(fmt.Errorf("failed to load env vars: %w", err))
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, configError(fmt.Errorf("failed to decode config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, configError(err)
	}
	return &cfg, nil
}

func configError(err error) error {
	return errors.New("config.Load", errors.KindConfig, err)
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.Engine.MaxBindings <= 0 {
		return fmt.Errorf("engine.max_bindings must be positive, got %d", c.Engine.MaxBindings)
	}
	if c.Transition.Duration < 0 || c.Transition.Delay < 0 {
		return fmt.Errorf("transition times must not be negative")
	}
	if _, ok := animation.CurveByName(c.Transition.Path); !ok {
		return fmt.Errorf("unknown transition.path %q (want one of %s)",
			c.Transition.Path, strings.Join(animation.CurveNames(), ", "))
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative")
	}
	return nil
}

// Options returns engine options for the given scheduler and logger.
func (c *Config) Options(sched *animation.Scheduler, logger *zerolog.Logger) cascade.Options {
	return cascade.Options{
		MaxBindings: c.Engine.MaxBindings,
		Scheduler:   sched,
		Logger:      logger,
	}
}

// NewEngine creates an engine with refreshing set from the config.
func (c *Config) NewEngine(sched *animation.Scheduler, logger *zerolog.Logger) *cascade.Engine {
	eng := cascade.NewEngine(c.Options(sched, logger))
	eng.EnableStyleRefresh(c.Engine.Refresh)
	return eng
}

// TransitionSpec returns the configured timing.
func (c *Config) TransitionSpec() cascade.TransitionSpec {
	// Validate rejected unknown names.
	path, _ := animation.CurveByName(c.Transition.Path)
	return cascade.TransitionSpec{
		Duration: c.Transition.Duration,
		Delay:    c.Transition.Delay,
		Path:     path,
	}
}
