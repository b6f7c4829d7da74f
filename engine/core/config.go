package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LogConfig struct {
	Level string `toml:"level"`
}

type MathConfig struct {
	// Tolerance used when comparing values for display and tests.
	Epsilon float32 `toml:"epsilon"`
}

type TweenConfig struct {
	FPS       int     `toml:"fps"`
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
	Frames    int     `toml:"frames"`
}

// Config is the on-disk configuration of the kinema tools.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Math  MathConfig  `toml:"math"`
	Tween TweenConfig `toml:"tween"`
}

func DefaultConfig() Config {
	return Config{
		Log:  LogConfig{Level: "info"},
		Math: MathConfig{Epsilon: 0.0001},
		Tween: TweenConfig{
			FPS:       60,
			Frequency: 6.0,
			Damping:   0.5,
			Frames:    60,
		},
	}
}

// LoadConfig reads a TOML file on top of the defaults. A missing file is not
// an error and yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			LogDebug("config %s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Math.Epsilon <= 0 {
		return fmt.Errorf("math.epsilon must be positive, got %g", c.Math.Epsilon)
	}
	if c.Tween.FPS <= 0 {
		return fmt.Errorf("tween.fps must be positive, got %d", c.Tween.FPS)
	}
	if c.Tween.Frames < 0 {
		return fmt.Errorf("tween.frames must not be negative, got %d", c.Tween.Frames)
	}
	return nil
}
