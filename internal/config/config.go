package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 400
	DefaultHeight       = 400
	DefaultIntervalMS   = 50
	DefaultRevealMS     = 500
	DefaultTheme        = "classroom"
	DefaultLogLevel     = "info"
	DefaultFrameDelayCS = 5
	DefaultStride       = 3
)

// ErrInvalid is wrapped by Validate for every rejected field.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Render  RenderConfig `yaml:"render"`
	Reveal  int          `yaml:"reveal_delay_ms"`
	Theme   string       `yaml:"theme"`
	Log     LogConfig    `yaml:"log"`
	Export  ExportConfig `yaml:"export"`
	Subject string       `yaml:"subject"`
}

type RenderConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	IntervalMS int `yaml:"interval_ms"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ExportConfig controls GIF capture. FrameDelayCS is the per-frame delay in
// hundredths of a second; Stride keeps every n-th step.
type ExportConfig struct {
	FrameDelayCS int `yaml:"frame_delay_cs"`
	Stride       int `yaml:"stride"`
}

func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			IntervalMS: DefaultIntervalMS,
		},
		Reveal: DefaultRevealMS,
		Theme:  DefaultTheme,
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  filepath.Join(os.TempDir(), "paaviz.log"),
		},
		Export: ExportConfig{
			FrameDelayCS: DefaultFrameDelayCS,
			Stride:       DefaultStride,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the hosts cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: render size %dx%d", ErrInvalid, c.Render.Width, c.Render.Height))
	}
	if c.Render.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("%w: render.interval_ms %d", ErrInvalid, c.Render.IntervalMS))
	}
	if c.Reveal < 0 {
		errs = append(errs, fmt.Errorf("%w: reveal_delay_ms %d", ErrInvalid, c.Reveal))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}
	if c.Export.FrameDelayCS <= 0 {
		errs = append(errs, fmt.Errorf("%w: export.frame_delay_cs %d", ErrInvalid, c.Export.FrameDelayCS))
	}
	if c.Export.Stride <= 0 {
		errs = append(errs, fmt.Errorf("%w: export.stride %d", ErrInvalid, c.Export.Stride))
	}
	return errors.Join(errs...)
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.Render.IntervalMS) * time.Millisecond
}

func (c *Config) RevealDelay() time.Duration {
	return time.Duration(c.Reveal) * time.Millisecond
}

// LogLevel is the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
