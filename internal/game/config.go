package game

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"blockfall/internal/core"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls the playfield dimensions and falling cadence.
type Config struct {
	Columns   int
	Rows      int
	BlockSize int
	Gravity   time.Duration

	// Seed drives piece selection. Zero lets the caller pick a time-based seed.
	Seed int64

	SpawnX int
	SpawnY int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Columns:   10,
		Rows:      18,
		BlockSize: 8,
		Gravity:   core.DefaultGravity,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["block"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BlockSize = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Gravity = parsed
		} else if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.Gravity = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spawn_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SpawnX = parsed
		}
	}
	if v, ok := cfg["spawn_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SpawnY = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Columns, "cols", c.Columns, "playfield width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "playfield height in cells")
	fs.IntVar(&c.BlockSize, "block", c.BlockSize, "cell size in pixels")
	fs.DurationVar(&c.Gravity, "gravity", c.Gravity, "interval between automatic drops")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "piece sequence seed (0 picks one from the clock)")
	fs.IntVar(&c.SpawnX, "spawn-x", c.SpawnX, "spawn column")
	fs.IntVar(&c.SpawnY, "spawn-y", c.SpawnY, "spawn row")
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	switch {
	case c.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidConfig, c.Columns)
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidConfig, c.BlockSize)
	case c.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %s", ErrInvalidConfig, c.Gravity)
	}
	return nil
}

// Size returns the playfield dimensions in cells.
func (c Config) Size() core.Size { return core.Size{W: c.Columns, H: c.Rows} }

// PixelSize returns the canvas dimensions in pixels.
func (c Config) PixelSize() (int, int) {
	return c.Columns * c.BlockSize, c.Rows * c.BlockSize
}

// Spawn returns the position new pieces appear at.
func (c Config) Spawn() core.Position { return core.Position{X: c.SpawnX, Y: c.SpawnY} }
