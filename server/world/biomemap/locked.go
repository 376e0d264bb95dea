package biomemap

import (
	"context"
	"sync"
	"time"

	"github.com/df-mc/cubicbiome/server/world/biome"
)

// Locked is a thread-safe wrapper around a Resolver. Every method holds a single lock for the duration of
// the query, so queries from different goroutines run one after another.
type Locked struct {
	mu sync.Mutex
	r  *Resolver
}

// NewLocked wraps r. r must not be used directly afterwards.
func NewLocked(r *Resolver) *Locked {
	return &Locked{r: r}
}

// Region calls Resolver.Region under the lock.
func (l *Locked) Region(dst []biome.Descriptor, q Region, useCache bool) ([]biome.Descriptor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Region(dst, q, useCache)
}

// ColumnBiomes calls Resolver.ColumnBiomes under the lock.
func (l *Locked) ColumnBiomes(dst []biome.Descriptor, chunkX, chunkZ int) ([]biome.Descriptor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.ColumnBiomes(dst, chunkX, chunkZ)
}

// Raw calls Resolver.Raw under the lock.
func (l *Locked) Raw(dst []biome.Descriptor, q Region) ([]biome.Descriptor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Raw(dst, q)
}

// BiomeAt calls Resolver.BiomeAt under the lock.
func (l *Locked) BiomeAt(x, z int) (biome.Descriptor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.BiomeAt(x, z)
}

// Rainfall calls Resolver.Rainfall under the lock.
func (l *Locked) Rainfall(dst []float64, q Region) ([]float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Rainfall(dst, q)
}

// TemperatureAt ...
func (l *Locked) TemperatureAt(temp float64, y int) float64 {
	return l.r.TemperatureAt(temp, y)
}

// Homogeneous calls Resolver.Homogeneous under the lock.
func (l *Locked) Homogeneous(x, z, radius int, allowed CategorySet) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Homogeneous(x, z, radius, allowed)
}

// FindPosition calls Resolver.FindPosition under the lock. rng is only used while the lock is held.
func (l *Locked) FindPosition(x, z, radius int, allowed CategorySet, rng Rand) (Pos, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.FindPosition(x, z, radius, allowed, rng)
}

// SpawnBiomes ...
func (l *Locked) SpawnBiomes() []biome.Category {
	return l.r.SpawnBiomes()
}

// EvictStale calls Resolver.EvictStale under the lock.
func (l *Locked) EvictStale() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.EvictStale()
}

// CachedTiles calls Resolver.CachedTiles under the lock.
func (l *Locked) CachedTiles() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.CachedTiles()
}

// Sweep calls EvictStale every interval until ctx is cancelled. It blocks, so it is usually run in its own
// goroutine.
func (l *Locked) Sweep(ctx context.Context, interval time.Duration) {
	tc := time.NewTicker(interval)
	defer tc.Stop()
	for {
		select {
		case <-tc.C:
			l.EvictStale()
		case <-ctx.Done():
			l.r.conf.Log.Debug("biome cache sweeper stopped", "tiles", l.CachedTiles())
			return
		}
	}
}
