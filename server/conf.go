package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df-mc/cubicbiome/server/world/biomemap"
	"github.com/df-mc/cubicbiome/server/world/generator/layer"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by LoadConfig when the extension of the path is neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// UserConfig is the user configuration of a biome resolver. It holds the world settings, the cache limits and
// the log level. UserConfig may be serialised to TOML or YAML and can be converted to a biomemap.Config by
// calling UserConfig.Config().
type UserConfig struct {
	World struct {
		// Seed is the world seed that the layer stack is initialised with.
		Seed int64 `toml:"Seed" yaml:"seed"`
		// Type is the world type. Valid values are "default", "flat", "largeBiomes" and "amplified".
		Type string `toml:"Type" yaml:"type"`
	} `toml:"World" yaml:"world"`
	Cache struct {
		// Capacity is the number of tiles a sweep trims the cache down to.
		Capacity int `toml:"Capacity" yaml:"capacity"`
		// TileTTL is how long a tile may go unused before it is dropped, such as "30s".
		TileTTL string `toml:"TileTTL" yaml:"tile_ttl"`
		// SweepInterval is the minimum time between two sweeps of the cache, such as "7.5s".
		SweepInterval string `toml:"SweepInterval" yaml:"sweep_interval"`
	} `toml:"Cache" yaml:"cache"`
	Log struct {
		// Level is the minimum level of log messages: "debug", "info", "warn" or "error".
		Level string `toml:"Level" yaml:"level"`
	} `toml:"Log" yaml:"log"`
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Type = layer.Default.String()
	c.Cache.Capacity = 1024
	c.Cache.TileTTL = "30s"
	c.Cache.SweepInterval = "7.5s"
	c.Log.Level = "info"
	return c
}

// LoadConfig reads the configuration at path. TOML is used for files ending in .toml and YAML for files
// ending in .yaml or .yml. If the file does not exist yet, it is created with DefaultConfig.
func LoadConfig(path string) (UserConfig, error) {
	if strings.TrimSpace(path) == "" {
		return UserConfig{}, errors.New("config path must not be empty")
	}
	var (
		marshal   func(any) ([]byte, error)
		unmarshal func([]byte, any) error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		marshal, unmarshal = toml.Marshal, toml.Unmarshal
	case ".yaml", ".yml":
		marshal, unmarshal = yaml.Marshal, yaml.Unmarshal
	default:
		return UserConfig{}, fmt.Errorf("load config %v: %w", path, ErrUnknownFormat)
	}

	c := DefaultConfig()
	contents, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("read config: %w", err)
		}
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0777); err != nil {
				return c, fmt.Errorf("create config directory: %w", err)
			}
		}
		encoded, err := marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode config: %w", err)
		}
		if err := os.WriteFile(path, encoded, 0644); err != nil {
			return c, fmt.Errorf("write config: %w", err)
		}
		return c, nil
	}
	var read UserConfig
	if len(contents) != 0 {
		if err := unmarshal(contents, &read); err != nil {
			return c, fmt.Errorf("decode config: %w", err)
		}
	}
	return read.withDefaults(), nil
}

// withDefaults fills the fields left empty in the file with the values of DefaultConfig.
func (uc UserConfig) withDefaults() UserConfig {
	def := DefaultConfig()
	if strings.TrimSpace(uc.World.Type) == "" {
		uc.World.Type = def.World.Type
	}
	if uc.Cache.Capacity == 0 {
		uc.Cache.Capacity = def.Cache.Capacity
	}
	if strings.TrimSpace(uc.Cache.TileTTL) == "" {
		uc.Cache.TileTTL = def.Cache.TileTTL
	}
	if strings.TrimSpace(uc.Cache.SweepInterval) == "" {
		uc.Cache.SweepInterval = def.Cache.SweepInterval
	}
	if strings.TrimSpace(uc.Log.Level) == "" {
		uc.Log.Level = def.Log.Level
	}
	return uc
}

// Config converts a UserConfig to a biomemap.Config and the world type to resolve biomes for. An error is
// returned if the world type or one of the durations could not be parsed.
func (uc UserConfig) Config(log *slog.Logger) (biomemap.Config, layer.WorldType, error) {
	conf := biomemap.Config{Log: log, CacheCapacity: uc.Cache.Capacity}
	t := layer.Default
	if name := strings.TrimSpace(uc.World.Type); name != "" {
		var err error
		if t, err = layer.ParseWorldType(name); err != nil {
			return conf, t, fmt.Errorf("parse world type: %w", err)
		}
	}
	var err error
	if conf.TileTTL, err = parseDuration(uc.Cache.TileTTL); err != nil {
		return conf, t, fmt.Errorf("parse tile ttl: %w", err)
	}
	if conf.SweepInterval, err = parseDuration(uc.Cache.SweepInterval); err != nil {
		return conf, t, fmt.Errorf("parse sweep interval: %w", err)
	}
	if conf.CacheCapacity < 0 {
		return conf, t, fmt.Errorf("cache capacity must not be negative, got %d", conf.CacheCapacity)
	}
	return conf, t, nil
}

// New creates a biomemap.Resolver for the seed and world type of the UserConfig.
func (uc UserConfig) New(log *slog.Logger) (*biomemap.Resolver, error) {
	conf, t, err := uc.Config(log)
	if err != nil {
		return nil, err
	}
	return conf.New(uc.World.Seed, t), nil
}

// LogLevel parses the configured log level. An empty level is treated as info.
func (uc UserConfig) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	name := strings.TrimSpace(uc.Log.Level)
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}

// parseDuration parses s as a time.Duration. Empty strings result in 0, which leaves the default in place.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %v must not be negative", d)
	}
	return d, nil
}
