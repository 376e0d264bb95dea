package biomemap

import (
	"log/slog"
	"slices"
	"time"

	"github.com/brentp/intintmap"
	"github.com/df-mc/cubicbiome/server/world/biome"
)

const tileArea = TileSize * TileSize

// Tile holds the resolved biomes of a 16x16 block area whose origin X, Z is aligned to 16. Biomes are
// stored row-major, index = dz*16 + dx.
type Tile struct {
	X, Z int

	biomes     [tileArea]biome.Descriptor
	lastAccess time.Time
}

// At returns the biome at the offset lx, lz from the tile origin. Both must lie in [0, 16).
func (t *Tile) At(lx, lz int) biome.Descriptor {
	return t.biomes[lz*TileSize+lx]
}

// Biomes returns a copy of all biomes in the tile.
func (t *Tile) Biomes() []biome.Descriptor {
	return slices.Clone(t.biomes[:])
}

// CopyTo copies the biomes of the tile into dst, which must hold at least 256 elements.
func (t *Tile) CopyTo(dst []biome.Descriptor) {
	copy(dst, t.biomes[:])
}

// tileLoader fills dst with the biomes of the 16x16 area at x, z.
type tileLoader func(x, z int, dst []biome.Descriptor) error

// TileCache caches resolved tiles by their origin. Tiles are filled on first access and dropped by
// EvictStale once they have gone unused for the TTL, or when the cache holds more tiles than its capacity.
// A TileCache belongs to exactly one Resolver: its tiles mean nothing outside the layers that produced
// them. It is not safe for concurrent use.
type TileCache struct {
	load     tileLoader
	now      func() time.Time
	ttl      time.Duration
	interval time.Duration
	capacity int
	log      *slog.Logger
	metrics  *Metrics

	// index maps packed tile keys to slots in tiles.
	index *intintmap.Map
	tiles []*Tile
	free  []int

	lastSweep time.Time
}

func newTileCache(conf Config, load tileLoader) *TileCache {
	return &TileCache{
		load:     load,
		now:      conf.Clock,
		ttl:      conf.TileTTL,
		interval: conf.SweepInterval,
		capacity: conf.CacheCapacity,
		log:      conf.Log,
		metrics:  conf.Metrics,
		index:    intintmap.New(conf.CacheCapacity, 0.6),
	}
}

// tileKey packs the tile coordinates of block x, z into a single key.
func tileKey(x, z int) int64 {
	return int64(uint64(uint32(int32(x>>4)))<<32 | uint64(uint32(int32(z>>4))))
}

// Get returns the tile holding block x, z. The coordinates are masked to tile alignment first. If the tile
// is not cached, it is loaded and stored. Nothing is stored if loading fails.
func (c *TileCache) Get(x, z int) (*Tile, error) {
	x, z = x&^(TileSize-1), z&^(TileSize-1)
	key := tileKey(x, z)
	now := c.now()
	if slot, ok := c.index.Get(key); ok {
		t := c.tiles[slot]
		t.lastAccess = now
		c.metrics.IncHits()
		return t, nil
	}
	c.metrics.IncMisses()

	t := &Tile{X: x, Z: z, lastAccess: now}
	if err := c.load(x, z, t.biomes[:]); err != nil {
		c.metrics.IncFillFailures()
		return nil, err
	}
	c.store(key, t)
	return t, nil
}

func (c *TileCache) store(key int64, t *Tile) {
	var slot int
	if n := len(c.free); n > 0 {
		slot, c.free = c.free[n-1], c.free[:n-1]
		c.tiles[slot] = t
	} else {
		slot = len(c.tiles)
		c.tiles = append(c.tiles, t)
	}
	c.index.Put(key, int64(slot))
}

func (c *TileCache) remove(slot int) {
	t := c.tiles[slot]
	c.index.Del(tileKey(t.X, t.Z))
	c.tiles[slot] = nil
	c.free = append(c.free, slot)
}

// Len returns the number of cached tiles.
func (c *TileCache) Len() int {
	return c.index.Size()
}

// EvictStale drops tiles that have not been accessed for the TTL and then, if the cache still holds more
// tiles than its capacity, the least recently accessed ones. Calls within the sweep interval of the last
// sweep do nothing. EvictStale returns the number of tiles dropped.
func (c *TileCache) EvictStale() int {
	now := c.now()
	if !c.lastSweep.IsZero() && now.Sub(c.lastSweep) < c.interval {
		return 0
	}
	c.lastSweep = now

	evicted := 0
	for slot, t := range c.tiles {
		if t != nil && now.Sub(t.lastAccess) > c.ttl {
			c.remove(slot)
			evicted++
		}
	}
	if over := c.Len() - c.capacity; over > 0 {
		live := make([]int, 0, c.Len())
		for slot, t := range c.tiles {
			if t != nil {
				live = append(live, slot)
			}
		}
		slices.SortFunc(live, func(a, b int) int {
			return c.tiles[a].lastAccess.Compare(c.tiles[b].lastAccess)
		})
		for _, slot := range live[:over] {
			c.remove(slot)
		}
		evicted += over
	}
	c.metrics.AddEvictions(evicted)
	if evicted > 0 {
		c.log.Debug("biome cache swept", "evicted", evicted, "remaining", c.Len())
	}
	return evicted
}
