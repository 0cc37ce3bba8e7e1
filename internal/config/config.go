// Package config holds the static settings of a maze session.
//
// Values are layered: NewConfig defaults, then an optional .env file and the
// process environment (LoadEnv), then command-line flags (Bind).
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"mazewalk/internal/core"

	"github.com/joho/godotenv"
)

// Environment keys understood by ApplyMap and LoadEnv.
const (
	EnvWindowWidth  = "MAZE_WINDOW_WIDTH"
	EnvWindowHeight = "MAZE_WINDOW_HEIGHT"
	EnvTileSize     = "MAZE_TILE_SIZE"
	EnvTPS          = "MAZE_TPS"
	EnvSeed         = "MAZE_SEED"
	EnvTitle        = "MAZE_TITLE"
)

var envKeys = []string{EnvWindowWidth, EnvWindowHeight, EnvTileSize, EnvTPS, EnvSeed, EnvTitle}

// Config represents the settings for one run.
type Config struct {
	WindowWidth  int
	WindowHeight int
	TileSize     int
	TPS          int
	Seed         int64 // 0 picks a seed from the wall clock at startup
	Title        string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		WindowWidth:  800,
		WindowHeight: 600,
		TileSize:     20,
		TPS:          60,
		Title:        "mazewalk",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "tile size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "maze seed (0 = time based)")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
}

// ApplyMap overrides fields from environment-style key/value pairs. Values
// that fail to parse or are out of range are ignored.
func (c *Config) ApplyMap(values map[string]string) {
	if values == nil {
		return
	}
	if v, ok := values[EnvWindowWidth]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WindowWidth = parsed
		}
	}
	if v, ok := values[EnvWindowHeight]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WindowHeight = parsed
		}
	}
	if v, ok := values[EnvTileSize]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := values[EnvTPS]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := values[EnvSeed]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := values[EnvTitle]; ok && v != "" {
		c.Title = v
	}
}

// LoadEnv reads the given dotenv files, or ./.env when none are named, and
// applies them followed by the process environment, which wins. A missing
// default .env is not an error.
func (c *Config) LoadEnv(files ...string) error {
	values, err := godotenv.Read(files...)
	if err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env: %w", err)
		}
		values = map[string]string{}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}
	c.ApplyMap(values)
	return nil
}

// Validate reports settings that cannot produce a window.
func (c *Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.WindowWidth < c.TileSize || c.WindowHeight < c.TileSize {
		return fmt.Errorf("window %dx%d smaller than one %dpx tile", c.WindowWidth, c.WindowHeight, c.TileSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// GridSize returns how many whole tiles fit in the window.
func (c *Config) GridSize() core.Size {
	if c.TileSize <= 0 {
		return core.Size{}
	}
	return core.Size{W: c.WindowWidth / c.TileSize, H: c.WindowHeight / c.TileSize}
}
