package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvConfigPath = "SEATBENCH_CONFIG"
	envPrefix     = "SEATBENCH_"

	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultColorMode    = "random"
	defaultWindowWidth  = 480
	defaultWindowHeight = 360
	defaultPlotWidth    = 900
	defaultPlotHeight   = 640
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel     string `koanf:"log_level"`
	LogFormat    string `koanf:"log_format"`
	ColorMode    string `koanf:"color_mode"`
	WindowWidth  int    `koanf:"window_width"`
	WindowHeight int    `koanf:"window_height"`
	PlotWidth    int    `koanf:"plot_width"`
	PlotHeight   int    `koanf:"plot_height"`
}

func Default() Config {
	return Config{
		LogLevel:     defaultLogLevel,
		LogFormat:    defaultLogFormat,
		ColorMode:    defaultColorMode,
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
		PlotWidth:    defaultPlotWidth,
		PlotHeight:   defaultPlotHeight,
	}
}

// Resolve loads the file named by explicit, which must exist. With no
// explicit path it falls back to SEATBENCH_CONFIG, whose file may be absent.
func Resolve(explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	return load(os.Getenv(EnvConfigPath), true)
}

// Load layers defaults, the YAML file at path, and SEATBENCH_* environment
// variables, in increasing precedence. An empty path skips the file.
func Load(path string) (Config, error) {
	return load(path, false)
}

func load(path string, missingOK bool) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !missingOK || !errors.Is(err, os.ErrNotExist) {
				return Default(), fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Default(), fmt.Errorf("load config env: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
	if c.ColorMode == "" {
		c.ColorMode = defaultColorMode
	}
	if c.WindowWidth == 0 {
		c.WindowWidth = defaultWindowWidth
	}
	if c.WindowHeight == 0 {
		c.WindowHeight = defaultWindowHeight
	}
	if c.PlotWidth == 0 {
		c.PlotWidth = defaultPlotWidth
	}
	if c.PlotHeight == 0 {
		c.PlotHeight = defaultPlotHeight
	}
}

func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.ColorMode != "random" && c.ColorMode != "stable" {
		return fmt.Errorf("%w: color_mode %q", ErrInvalidConfig, c.ColorMode)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalidConfig, c.PlotWidth, c.PlotHeight)
	}
	return nil
}
