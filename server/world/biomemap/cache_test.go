package biomemap

import (
	"testing"
	"time"

	"github.com/df-mc/cubicbiome/server/world/biome"
)

func newClockedResolver(t *testing.T, clock *fakeClock, capacity int) (*Resolver, *stubLayer) {
	t.Helper()
	index := &stubLayer{at: stripes}
	conf := Config{
		Clock:         clock.Now,
		CacheCapacity: capacity,
		TileTTL:       30 * time.Second,
		SweepInterval: 7500 * time.Millisecond,
	}
	return newStubResolver(t, conf, &stubLayer{at: uniform(1)}, index), index
}

func TestTileKey(t *testing.T) {
	seen := map[int64][2]int{}
	for x := -64; x < 64; x += 16 {
		for z := -64; z < 64; z += 16 {
			k := tileKey(x, z)
			if prev, ok := seen[k]; ok {
				t.Fatalf("tiles %v and %v share key %d", prev, [2]int{x, z}, k)
			}
			seen[k] = [2]int{x, z}
			if tileKey(x+15, z+15) != k {
				t.Fatalf("blocks of tile %d,%d map to different keys", x, z)
			}
		}
	}
}

func TestTileCacheGetMasksCoordinates(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r, index := newClockedResolver(t, clock, 16)

	a, err := r.cache.Get(-1, -20)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.X != -16 || a.Z != -32 {
		t.Fatalf("expected tile origin (-16, -32), got (%d, %d)", a.X, a.Z)
	}
	b, err := r.cache.Get(-16, -32)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a != b || index.calls != 1 {
		t.Fatalf("expected the second get to hit the cache, got %d layer calls", index.calls)
	}
	if got := a.At(15, 12); got.ID != biome.ID(stripes(-1, -20)) {
		t.Fatalf("At(15, 12) = %d, want %d", got.ID, stripes(-1, -20))
	}
	all := a.Biomes()
	all[0] = biome.Descriptor{}
	if a.At(0, 0).ID != biome.ID(stripes(-16, -32)) {
		t.Fatalf("expected Biomes to return a copy")
	}
}

func TestEvictStaleTTL(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r, index := newClockedResolver(t, clock, 16)

	for _, p := range [][2]int{{0, 0}, {16, 0}, {0, 16}} {
		if _, err := r.BiomeAt(p[0], p[1]); err != nil {
			t.Fatalf("biome at %v: %v", p, err)
		}
	}
	clock.Advance(20 * time.Second)
	if _, err := r.BiomeAt(3, 3); err != nil {
		t.Fatalf("biome at: %v", err)
	}
	if n := r.EvictStale(); n != 0 {
		t.Fatalf("expected nothing to expire yet, evicted %d", n)
	}

	clock.Advance(15 * time.Second)
	// The previous sweep ran 15 seconds ago, and tiles (16, 0) and (0, 16) have been idle for 35.
	if n := r.EvictStale(); n != 2 {
		t.Fatalf("expected 2 expired tiles, evicted %d", n)
	}
	if r.CachedTiles() != 1 {
		t.Fatalf("expected 1 tile left, got %d", r.CachedTiles())
	}
	calls := index.calls
	if _, err := r.BiomeAt(1, 1); err != nil || index.calls != calls {
		t.Fatalf("expected the recently used tile to survive")
	}
	if _, err := r.BiomeAt(17, 1); err != nil || index.calls != calls+1 {
		t.Fatalf("expected an evicted tile to be loaded again")
	}
	m := r.Metrics().Snapshot()
	if m.Evictions != 2 || m.Sweeps != 2 {
		t.Fatalf("unexpected metrics %+v", m)
	}
}

func TestEvictStaleInterval(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r, _ := newClockedResolver(t, clock, 16)
	if _, err := r.BiomeAt(0, 0); err != nil {
		t.Fatalf("biome at: %v", err)
	}
	r.EvictStale()

	clock.Advance(31 * time.Second)
	r.EvictStale()
	if r.CachedTiles() != 0 {
		t.Fatalf("expected the idle tile to be evicted")
	}
	if _, err := r.BiomeAt(0, 0); err != nil {
		t.Fatalf("biome at: %v", err)
	}
	clock.Advance(6 * time.Second)
	// Only 6 seconds passed since the last sweep, which is within the interval.
	if n := r.EvictStale(); n != 0 || r.CachedTiles() != 1 {
		t.Fatalf("expected the sweep to be skipped, evicted %d", n)
	}
}

func TestEvictStaleCapacity(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r, _ := newClockedResolver(t, clock, 2)

	origins := [][2]int{{0, 0}, {16, 0}, {32, 0}, {48, 0}}
	for _, p := range origins {
		if _, err := r.BiomeAt(p[0], p[1]); err != nil {
			t.Fatalf("biome at %v: %v", p, err)
		}
		clock.Advance(time.Second)
	}
	if r.CachedTiles() != 4 {
		t.Fatalf("expected inserts not to evict, got %d tiles", r.CachedTiles())
	}
	// Touch the oldest tile so that the second and third become the least recently used.
	if _, err := r.BiomeAt(0, 0); err != nil {
		t.Fatalf("biome at: %v", err)
	}
	if n := r.EvictStale(); n != 2 {
		t.Fatalf("expected 2 tiles over capacity to be evicted, got %d", n)
	}
	for _, p := range [][2]int{{0, 0}, {48, 0}} {
		if _, ok := r.cache.index.Get(tileKey(p[0], p[1])); !ok {
			t.Fatalf("expected tile %v to survive", p)
		}
	}

	// Freed slots are reused by later inserts.
	if _, err := r.BiomeAt(64, 0); err != nil {
		t.Fatalf("biome at: %v", err)
	}
	if len(r.cache.tiles) != 4 {
		t.Fatalf("expected a freed slot to be reused, got %d slots", len(r.cache.tiles))
	}
}
