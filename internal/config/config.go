// Package config loads semisim settings from a YAML file, a .env file and
// the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/edp1096/semisim/pkg/curve"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "semisim.yaml"

type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// Output
	Format string       `yaml:"format"`
	Render RenderConfig `yaml:"render"`

	// Form server
	Addr string `yaml:"addr"`

	// Device defaults shown in the form and used by the CLI
	Diode DiodeConfig `yaml:"diode"`
	BJT   BJTConfig   `yaml:"bjt"`
	JFET  JFETConfig  `yaml:"jfet"`
	Nano  NanoConfig  `yaml:"nano"`
}

type RenderConfig struct {
	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
}

type DiodeConfig struct {
	Sweep curve.Sweep `yaml:"sweep"`
	Temp  float64     `yaml:"temp"`
	Is    float64     `yaml:"is"`
}

type BJTConfig struct {
	Sweep curve.Sweep `yaml:"sweep"`
	Beta  float64     `yaml:"beta"`
	Ib    []float64   `yaml:"ib"`
}

type JFETConfig struct {
	Sweep curve.Sweep `yaml:"sweep"`
	Vgs   []float64   `yaml:"vgs"`
	Idss  float64     `yaml:"idss"`
	Vp    float64     `yaml:"vp"`
}

type NanoConfig struct {
	Sweep  curve.Sweep `yaml:"sweep"`
	EgBulk float64     `yaml:"eg_bulk"`
	Alpha  float64     `yaml:"alpha"`
}

// Default matches the values the interactive form starts with.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Format:   "table",
		Render:   RenderConfig{Width: 8, Height: 5},
		Addr:     ":8080",
		Diode: DiodeConfig{
			Sweep: curve.NewSweep(-1, 1, 500),
			Temp:  300,
			Is:    1e-12,
		},
		BJT: BJTConfig{
			Sweep: curve.NewSweep(0, 5, 200),
			Beta:  100,
			Ib:    []float64{10, 20, 30, 40},
		},
		JFET: JFETConfig{
			Sweep: curve.NewSweep(0, 5, 200),
			Vgs:   []float64{-1, -2, -3},
			Idss:  10e-3,
			Vp:    -4,
		},
		Nano: NanoConfig{
			Sweep:  curve.NewSweep(1, 6, 200),
			EgBulk: 1.1,
			Alpha:  1.5,
		},
	}
}

// Load reads path over the defaults. A missing file is only an error
// when the path was chosen explicitly.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	// 3. Override with Environment Variables if present
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SEMISIM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SEMISIM_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("SEMISIM_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("SEMISIM_FORMAT"); v != "" {
		c.Format = v
	}
}

func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %gx%g", c.Render.Width, c.Render.Height)
	}
	return nil
}

// Level returns the parsed log level; Validate has already checked it.
func (c *Config) Level() slog.Level {
	level, _ := ParseLogLevel(c.LogLevel)
	return level
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
