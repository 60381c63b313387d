package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the engine configuration, loaded from a TOML file with
// per-field defaults.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Render  RenderConfig  `toml:"render"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

// Duration decodes TOML strings like "33ms" into a time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type EngineConfig struct {
	TickRate    Duration `toml:"tick_rate"`
	FrameBudget Duration `toml:"frame_budget"` // per-system warn threshold
}

type RenderConfig struct {
	ColorMode string `toml:"color_mode"` // "auto", "truecolor", "256"
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the config at path over the defaults. A missing file is an
// error; use Defaults directly when no file is expected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			TickRate:    Duration(33 * time.Millisecond),
			FrameBudget: Duration(8 * time.Millisecond),
		},
		Render: RenderConfig{
			ColorMode: "auto",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.7,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
