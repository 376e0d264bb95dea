package biomemap

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/df-mc/cubicbiome/server/world/biome"
	"github.com/df-mc/cubicbiome/server/world/generator/layer"
)

// TestLockedConcurrentQueries runs queries from many goroutines at once and checks that they resolve the same
// biomes as a resolver used from a single goroutine.
func TestLockedConcurrentQueries(t *testing.T) {
	t.Parallel()

	serial := Config{Log: quietLogger()}.New(2024, layer.Default)
	l := NewLocked(Config{Log: quietLogger()}.New(2024, layer.Default))

	var wg sync.WaitGroup
	errCh := make(chan error, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(uint64(g), 1))
			var buf []biome.Descriptor
			for i := 0; i < 50; i++ {
				x, z := rng.IntN(2048)-1024, rng.IntN(2048)-1024
				if _, err := l.BiomeAt(x, z); err != nil {
					errCh <- err
					return
				}
				var err error
				if buf, err = l.ColumnBiomes(buf, x>>4, z>>4); err != nil {
					errCh <- err
					return
				}
				if _, err := l.Rainfall(nil, Region{X: x, Z: z, Width: 5, Length: 3}); err != nil {
					errCh <- err
					return
				}
				if _, err := l.Homogeneous(x, z, 16, NewCategorySet(biome.Forest)); err != nil {
					errCh <- err
					return
				}
				if _, _, err := l.FindPosition(x, z, 32, NewCategorySet(biome.Plains), rng); err != nil {
					errCh <- err
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent query failed: %v", err)
	}

	for _, p := range [][2]int{{0, 0}, {-500, 700}, {1023, -1024}} {
		want, err := serial.BiomeAt(p[0], p[1])
		if err != nil {
			t.Fatalf("serial biome at %v: %v", p, err)
		}
		got, err := l.BiomeAt(p[0], p[1])
		if err != nil {
			t.Fatalf("locked biome at %v: %v", p, err)
		}
		if got != want {
			t.Fatalf("%v: locked resolver returned %v, serial %v", p, got, want)
		}
	}
}

func TestLockedSweep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	var mu sync.Mutex
	conf := Config{
		Log: quietLogger(),
		Clock: func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return clock.Now()
		},
		TileTTL:       time.Second,
		SweepInterval: time.Millisecond,
	}
	l := NewLocked(conf.New(7, layer.Default))
	if _, err := l.BiomeAt(0, 0); err != nil {
		t.Fatalf("biome at: %v", err)
	}
	mu.Lock()
	clock.Advance(time.Minute)
	mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Sweep(ctx, time.Millisecond)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for l.CachedTiles() != 0 {
		select {
		case <-deadline:
			t.Fatalf("sweeper did not evict the idle tile")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("sweeper did not stop after cancellation")
	}
}
