package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"mazewalk/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.Size{W: 40, H: 30}, cfg.GridSize())
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestBindFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-window-width", "420", "-window-height", "300", "-tile", "10", "-seed", "99", "-tps", "30"}))

	assert.Equal(t, core.Size{W: 42, H: 30}, cfg.GridSize())
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, "mazewalk", cfg.Title)
}

func TestApplyMapIgnoresInvalid(t *testing.T) {
	cfg := NewConfig()
	cfg.ApplyMap(map[string]string{
		EnvWindowWidth: "-5",
		EnvTileSize:    "abc",
		EnvTPS:         "0",
		EnvSeed:        "12",
		EnvTitle:       "",
	})
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 20, cfg.TileSize)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, int64(12), cfg.Seed)
	assert.Equal(t, "mazewalk", cfg.Title)
}

func TestLoadEnvFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.env")
	content := "MAZE_WINDOW_WIDTH=210\nMAZE_WINDOW_HEIGHT=210\nMAZE_TILE_SIZE=10\nMAZE_SEED=5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(EnvSeed, "77")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(path))

	assert.Equal(t, core.Size{W: 21, H: 21}, cfg.GridSize())
	assert.Equal(t, int64(77), cfg.Seed, "process environment wins over the file")
}

func TestLoadEnvMissingFiles(t *testing.T) {
	cfg := NewConfig()
	assert.Error(t, cfg.LoadEnv(filepath.Join(t.TempDir(), "missing.env")))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(EnvTitle, "from env")
	require.NoError(t, cfg.LoadEnv(), "missing default .env is tolerated")
	assert.Equal(t, "from env", cfg.Title)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero tile":     func(c *Config) { c.TileSize = 0 },
		"narrow window": func(c *Config) { c.WindowWidth = 10 },
		"short window":  func(c *Config) { c.WindowHeight = 19 },
		"zero tps":      func(c *Config) { c.TPS = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	cfg := NewConfig()
	cfg.TileSize = 0
	assert.Equal(t, core.Size{}, cfg.GridSize())
}
