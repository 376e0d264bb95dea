package server

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/df-mc/cubicbiome/server/world/generator/layer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWritesDefault(t *testing.T) {
	for _, name := range []string{"biomes.toml", "biomes.yaml", "nested/biomes.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			c, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, DefaultConfig(), c)

			_, err = os.Stat(path)
			require.NoError(t, err, "expected the default config to be written")

			again, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, c, again)
		})
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biomes.toml")
	data := `
[World]
  Seed = -42
  Type = "largeBiomes"

[Cache]
  Capacity = 64
  TileTTL = "1m"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), c.World.Seed)
	assert.Equal(t, "largeBiomes", c.World.Type)
	assert.Equal(t, 64, c.Cache.Capacity)
	assert.Equal(t, "1m", c.Cache.TileTTL)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, "7.5s", c.Cache.SweepInterval)
	assert.Equal(t, "info", c.Log.Level)

	conf, wt, err := c.Config(slog.Default())
	require.NoError(t, err)
	assert.Equal(t, layer.LargeBiomes, wt)
	assert.Equal(t, time.Minute, conf.TileTTL)
	assert.Equal(t, 7500*time.Millisecond, conf.SweepInterval)
	assert.Equal(t, 64, conf.CacheCapacity)
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biomes.yaml")
	data := "world:\n  seed: 7\n  type: flat\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.World.Seed)

	r, err := c.New(slog.Default())
	require.NoError(t, err)
	assert.Equal(t, int64(7), r.Seed())
	assert.Equal(t, layer.Flat, r.WorldType())

	lvl, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "biomes.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadConfig(" ")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[World\nSeed = "), 0644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "decode config")
}

func TestUserConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *UserConfig)
	}{
		{"world type", func(c *UserConfig) { c.World.Type = "customized" }},
		{"tile ttl", func(c *UserConfig) { c.Cache.TileTTL = "soon" }},
		{"negative sweep interval", func(c *UserConfig) { c.Cache.SweepInterval = "-1s" }},
		{"negative capacity", func(c *UserConfig) { c.Cache.Capacity = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			_, err := c.New(slog.Default())
			assert.Error(t, err)
		})
	}

	c := DefaultConfig()
	c.Log.Level = "loud"
	_, err := c.LogLevel()
	assert.Error(t, err)
}
