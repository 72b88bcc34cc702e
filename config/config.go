// Package config loads the tunable parameters of a session from TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/plus3/dodge/spawn"
	"go.uber.org/zap/zapcore"
)

// Spawn placement variants.
const (
	VariantPool    = "pool"
	VariantUniform = "uniform"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// maxIntervalSeconds is the longest interval a time.Duration can hold.
var maxIntervalSeconds = float64(math.MaxInt64) / float64(time.Second)

// Config is the full set of session parameters.
type Config struct {
	Screen  ScreenConfig  `toml:"screen"`
	Player  PlayerConfig  `toml:"player"`
	Blocks  BlocksConfig  `toml:"blocks"`
	Logging LoggingConfig `toml:"logging"`
	Seed    uint64        `toml:"seed"` // 0 picks a random seed at startup
}

// ScreenConfig is the play area, centred on the origin.
type ScreenConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Title  string  `toml:"title"`
}

// PlayerConfig tunes the player entity and its controls.
type PlayerConfig struct {
	Speed             float64 `toml:"speed"` // units per second
	TeleportDistance  float64 `toml:"teleport_distance"`
	Width             float64 `toml:"width"`
	Height            float64 `toml:"height"`
	Color             RGB     `toml:"color"`
	WrapAfterTeleport bool    `toml:"wrap_after_teleport"`
}

// BlocksConfig tunes block size, speed and spawning.
type BlocksConfig struct {
	Speed                float64 `toml:"speed"` // units per second
	Width                float64 `toml:"width"`
	Height               float64 `toml:"height"`
	InitialCount         int     `toml:"initial_count"`
	SpawnIntervalSeconds float64 `toml:"spawn_interval_seconds"`
	Variant              string  `toml:"variant"`       // "pool" or "uniform"
	TrackSpawned         bool    `toml:"track_spawned"` // consume pool slots once
	InitialColor         RGB     `toml:"initial_color"`
	RuntimeColor         RGB     `toml:"runtime_color"`
}

// LoggingConfig selects the zap logger level and encoding.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// RGB is an opaque colour written as [r, g, b] in TOML.
type RGB [3]uint8

// RGBA converts c to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// SpawnInterval returns the periodic spawn interval as a duration.
func (b BlocksConfig) SpawnInterval() time.Duration {
	return time.Duration(b.SpawnIntervalSeconds * float64(time.Second))
}

// Load reads the TOML file at path on top of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the stock game: a 500x900 screen, five starting blocks and
// a new block every two seconds.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  500,
			Height: 900,
			Title:  "Dodge",
		},
		Player: PlayerConfig{
			Speed:            600,
			TeleportDistance: 150,
			Width:            40,
			Height:           40,
			Color:            RGB{128, 128, 255},
		},
		Blocks: BlocksConfig{
			Speed:                300,
			Width:                80,
			Height:               80,
			InitialCount:         5,
			SpawnIntervalSeconds: 120.0 / 60.0,
			Variant:              VariantPool,
			InitialColor:         RGB{255, 128, 255},
			RuntimeColor:         RGB{51, 128, 255},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges. It does not know the spawn pool, so pool
// capacity is checked when a session is built.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalid, name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be finite and not negative, got %v", ErrInvalid, name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	nonNegative("player.speed", c.Player.Speed)
	nonNegative("player.teleport_distance", c.Player.TeleportDistance)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	nonNegative("blocks.speed", c.Blocks.Speed)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)
	positive("blocks.spawn_interval_seconds", c.Blocks.SpawnIntervalSeconds)
	nonNegative("blocks.initial_count", float64(c.Blocks.InitialCount))

	if secs := c.Blocks.SpawnIntervalSeconds; secs > 0 && (secs >= maxIntervalSeconds || c.Blocks.SpawnInterval() <= 0) {
		errs = append(errs, fmt.Errorf("%w: blocks.spawn_interval_seconds must be between 1ns and %.0fs, got %v",
			ErrInvalid, maxIntervalSeconds, secs))
	}

	switch c.Blocks.Variant {
	case VariantPool:
		for _, axis := range []struct {
			name          string
			extent, block float64
		}{
			{"width", c.Screen.Width, c.Blocks.Width},
			{"height", c.Screen.Height, c.Blocks.Height},
		} {
			if axis.block > 0 && axis.extent/axis.block > spawn.MaxEdgeSlots {
				errs = append(errs, fmt.Errorf("%w: screen.%s / blocks.%s allows at most %d spawn slots per edge, got %v",
					ErrInvalid, axis.name, axis.name, spawn.MaxEdgeSlots, math.Floor(axis.extent/axis.block)))
			}
		}
	case VariantUniform:
	default:
		errs = append(errs, fmt.Errorf("%w: blocks.variant must be %q or %q, got %q",
			ErrInvalid, VariantPool, VariantUniform, c.Blocks.Variant))
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("%w: logging.level: %w", ErrInvalid, err))
	}
	switch c.Logging.Format {
	case FormatConsole, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format must be %q or %q, got %q",
			ErrInvalid, FormatConsole, FormatJSON, c.Logging.Format))
	}

	return errors.Join(errs...)
}
