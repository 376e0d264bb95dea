// Package biomemap resolves world coordinates to biomes. A Resolver owns the generation layers of a world
// and caches the biomes of 16x16 tiles, so that repeated per-chunk queries do not run the layers again.
package biomemap

import (
	"fmt"

	"github.com/df-mc/cubicbiome/server/world/biome"
	"github.com/df-mc/cubicbiome/server/world/generator/layer"
	"github.com/google/uuid"
)

// Resolver resolves biomes for a single world. The same seed and world type always resolve to the same
// biomes.
//
// A Resolver is not safe for concurrent use: its layers share one scratch pool, which every top-level
// method resets on entry. Use Locked to share a Resolver between goroutines.
type Resolver struct {
	id        uuid.UUID
	seed      int64
	worldType layer.WorldType
	conf      Config

	raw, index layer.Layer
	scratch    *layer.Scratch
	cache      *TileCache
	spawn      []biome.Category
}

// New creates a Resolver for the seed and world type passed.
func (c Config) New(seed int64, t layer.WorldType) *Resolver {
	c = c.withDefaults()
	stack := c.Layers(seed, t)
	r := &Resolver{
		id:        uuid.New(),
		seed:      seed,
		worldType: t,
		conf:      c,
		raw:       stack.Raw,
		index:     stack.Index,
		scratch:   layer.NewScratch(),
		spawn:     biome.SpawnCategories(),
	}
	r.cache = newTileCache(c, func(x, z int, dst []biome.Descriptor) error {
		return r.resolveIndex(Region{X: x, Z: z, Width: TileSize, Length: TileSize}, dst, CategoryCacheBlock)
	})
	return r
}

// ID returns the identity of the resolver, as found in its diagnostics.
func (r *Resolver) ID() uuid.UUID { return r.id }

// Seed returns the seed the resolver's layers were built from.
func (r *Resolver) Seed() int64 { return r.seed }

// WorldType returns the world type the resolver's layers were built for.
func (r *Resolver) WorldType() layer.WorldType { return r.worldType }

// Metrics returns the counters of the resolver.
func (r *Resolver) Metrics() *Metrics { return r.conf.Metrics }

// SpawnBiomes returns the categories a player may initially spawn in: forest, plains, taiga, taiga hills,
// forest hills, jungle and jungle hills, in that order.
func (r *Resolver) SpawnBiomes() []biome.Category {
	return append([]biome.Category(nil), r.spawn...)
}

// SpawnSet returns SpawnBiomes as a CategorySet.
func (r *Resolver) SpawnSet() CategorySet {
	return NewCategorySet(r.spawn...)
}

// Region resolves the biomes of every block in q. If useCache is true and q covers exactly one aligned tile,
// the tile is served from the cache, filling it first if needed. Any other region is resolved from the index
// layer directly.
//
// The result is written to dst if it is large enough, or to a new slice otherwise. If the layer produces an
// identifier that is not registered, an *InvalidBiomeError is returned along with a nil slice and the
// contents of dst are undefined.
func (r *Resolver) Region(dst []biome.Descriptor, q Region, useCache bool) ([]biome.Descriptor, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	r.scratch.Reset()
	dst = grow(dst, q.Area())

	if useCache && q.Aligned() {
		t, err := r.cache.Get(q.X, q.Z)
		if err != nil {
			return nil, err
		}
		t.CopyTo(dst)
		return dst, nil
	}
	if err := r.resolveIndex(q, dst, CategoryBiomeBlock); err != nil {
		return nil, err
	}
	return dst, nil
}

// ColumnBiomes resolves the 16x16 biomes of the chunk column at chunkX, chunkZ through the cache. It is the
// query terrain generation issues for every column it generates.
func (r *Resolver) ColumnBiomes(dst []biome.Descriptor, chunkX, chunkZ int) ([]biome.Descriptor, error) {
	return r.Region(dst, Region{X: chunkX << 4, Z: chunkZ << 4, Width: TileSize, Length: TileSize}, true)
}

// BiomeAt returns the biome of the block at x, z. The whole tile holding the block is resolved and cached,
// so that neighbouring lookups are served from the cache.
func (r *Resolver) BiomeAt(x, z int) (biome.Descriptor, error) {
	r.scratch.Reset()
	t, err := r.cache.Get(x, z)
	if err != nil {
		return biome.Descriptor{}, err
	}
	return t.At(x&(TileSize-1), z&(TileSize-1)), nil
}

// Raw resolves q against the coarse raw layer, in which every cell covers 4x4 blocks. Raw results are never
// cached. Failures are reported as in Region.
func (r *Resolver) Raw(dst []biome.Descriptor, q Region) ([]biome.Descriptor, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	r.scratch.Reset()
	dst = grow(dst, q.Area())

	r.conf.Metrics.IncRawCalls()
	ids := r.raw.Grid(r.scratch, q.X, q.Z, q.Width, q.Length)
	for i, id := range ids[:q.Area()] {
		d, err := r.conf.Registry.Lookup(biome.ID(id))
		if err != nil {
			return nil, r.fail(&InvalidBiomeError{
				Category: CategoryRawBiomeBlock, Layer: layerName(r.raw),
				X: q.X, Z: q.Z, Width: q.Width, Length: q.Length,
				BufferSize: len(dst), Index: i, ID: biome.ID(id), Err: err,
			})
		}
		dst[i] = d
	}
	return dst, nil
}

// EvictStale sweeps the tile cache. It is meant to be called periodically by the host and is never called
// by the resolver itself.
func (r *Resolver) EvictStale() int {
	return r.cache.EvictStale()
}

// CachedTiles returns the number of tiles currently cached.
func (r *Resolver) CachedTiles() int {
	return r.cache.Len()
}

// resolveIndex resolves q from the index layer into dst using the scratch pool of the running query.
func (r *Resolver) resolveIndex(q Region, dst []biome.Descriptor, category string) error {
	r.conf.Metrics.IncIndexCalls()
	ids := r.index.Grid(r.scratch, q.X, q.Z, q.Width, q.Length)
	for i, id := range ids[:q.Area()] {
		d, err := r.conf.Registry.Lookup(biome.ID(id))
		if err != nil {
			return r.fail(&InvalidBiomeError{
				Category: category, Layer: layerName(r.index),
				X: q.X, Z: q.Z, Width: q.Width, Length: q.Length,
				BufferSize: len(dst), Index: i, ID: biome.ID(id), Err: err,
			})
		}
		dst[i] = d
	}
	return nil
}

// fail completes e with the resolver's identity and reports it to the sink.
func (r *Resolver) fail(e *InvalidBiomeError) error {
	e.Resolver = r.id
	if r.conf.Sink != nil {
		r.conf.Sink.Report(e.Record())
	}
	r.conf.Log.Debug("biome query failed", "err", e)
	return e
}

// grow returns dst resliced to n elements, or a new slice if dst cannot hold n.
func grow[T any](dst []T, n int) []T {
	if cap(dst) < n {
		return make([]T, n)
	}
	return dst[:n]
}

func layerName(l layer.Layer) string {
	if s, ok := l.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", l)
}
