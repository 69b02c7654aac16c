package utils

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	PatternFile    string   `json:"pattern_file"`
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	RandomDensity  float64  `json:"random_density"`
	Seed           int64    `json:"seed"`
	AliveGlyph     string   `json:"alive_glyph"`
	DeadGlyph      string   `json:"dead_glyph"`
	FrameRate      Duration `json:"frame_rate"`
	MaxGenerations int      `json:"max_generations"`
	StopOnCycle    bool     `json:"stop_on_cycle"`
	HistorySize    int      `json:"history_size"`
	Render         bool     `json:"render"`
	LogLevel       string   `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         30,
		RandomDensity:  0.15,
		AliveGlyph:     "•",
		DeadGlyph:      " ",
		FrameRate:      Duration{150 * time.Millisecond},
		MaxGenerations: 100,
		StopOnCycle:    true,
		HistorySize:    5,
		Render:         true,
		LogLevel:       "info",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.AliveGlyph) != 1 {
		return errors.Wrapf(ErrInvalidConfig, "alive_glyph must be a single character, got %q", c.AliveGlyph)
	}
	if utf8.RuneCountInString(c.DeadGlyph) != 1 {
		return errors.Wrapf(ErrInvalidConfig, "dead_glyph must be a single character, got %q", c.DeadGlyph)
	}
	if c.AliveGlyph == c.DeadGlyph {
		return errors.Wrapf(ErrInvalidConfig, "alive_glyph and dead_glyph are both %q", c.AliveGlyph)
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.Wrapf(ErrInvalidConfig, "width and height must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.FrameRate.Duration < 0 {
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %s", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.HistorySize < 1 {
		return errors.Wrapf(ErrInvalidConfig, "history_size must be at least 1, got %d", c.HistorySize)
	}
	if _, err := c.Level(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log_level: %v", err)
	}
	return nil
}

// AliveRune returns the glyph marking a living cell
func (c Config) AliveRune() rune {
	r, _ := utf8.DecodeRuneInString(c.AliveGlyph)
	return r
}

// DeadRune returns the glyph marking a dead cell
func (c Config) DeadRune() rune {
	r, _ := utf8.DecodeRuneInString(c.DeadGlyph)
	return r
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// Duration is a time.Duration that reads JSON as either "150ms" or nanoseconds
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "invalid duration %q", value)
		}
		d.Duration = parsed
	default:
		return errors.Errorf("invalid duration %s", string(data))
	}
	return nil
}
