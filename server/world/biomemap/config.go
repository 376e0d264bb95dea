package biomemap

import (
	"log/slog"
	"time"

	"github.com/df-mc/cubicbiome/server/world/biome"
	"github.com/df-mc/cubicbiome/server/world/generator/layer"
)

// Config holds the options of a Resolver. The zero value is usable; defaults are applied by New.
type Config struct {
	// Log is the Logger used for cache sweeps and failed queries. If nil, slog.Default() is used.
	Log *slog.Logger
	// Registry resolves layer identifiers to descriptors. If nil, biome.Vanilla() is used.
	Registry *biome.Registry
	// Layers builds the layer stack from the seed and world type. If nil, layer.Initialise is used.
	Layers layer.Initialiser
	// CacheCapacity is the number of tiles a sweep trims the cache down to. Defaults to 1024.
	CacheCapacity int
	// TileTTL is how long a tile may go unused before a sweep drops it. Defaults to 30 seconds.
	TileTTL time.Duration
	// SweepInterval is the minimum time between two sweeps. Defaults to 7.5 seconds.
	SweepInterval time.Duration
	// Clock returns the current time. If nil, time.Now is used.
	Clock func() time.Time
	// Sink, if set, receives the diagnostic record of every failed query.
	Sink DiagnosticSink
	// Metrics counts cache and layer activity. If nil, a new Metrics is created.
	Metrics *Metrics
}

func (c Config) withDefaults() Config {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.Registry == nil {
		c.Registry = biome.Vanilla()
	}
	if c.Layers == nil {
		c.Layers = layer.Initialise
	}
	if c.CacheCapacity <= 0 {
		c.CacheCapacity = 1024
	}
	if c.TileTTL <= 0 {
		c.TileTTL = 30 * time.Second
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = 7500 * time.Millisecond
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Metrics == nil {
		c.Metrics = NewMetrics()
	}
	return c
}

// World is implemented by worlds a Resolver may be created from.
type World interface {
	Seed() int64
	WorldType() layer.WorldType
}

// FromWorld creates a Resolver for the seed and world type of w.
func (c Config) FromWorld(w World) *Resolver {
	return c.New(w.Seed(), w.WorldType())
}

// NewResolver creates a Resolver with the default configuration.
func NewResolver(seed int64, t layer.WorldType) *Resolver {
	return Config{}.New(seed, t)
}
