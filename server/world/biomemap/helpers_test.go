package biomemap

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/df-mc/cubicbiome/server/world/generator/layer"
)

// stubLayer is a layer computing every cell with at and counting the grids requested from it.
type stubLayer struct {
	at    func(x, z int) int
	calls int
	rects []Region
}

func (l *stubLayer) Grid(s *layer.Scratch, x, z, width, length int) []int {
	l.calls++
	l.rects = append(l.rects, Region{X: x, Z: z, Width: width, Length: length})
	out := s.Ints(width * length)
	for dz := 0; dz < length; dz++ {
		for dx := 0; dx < width; dx++ {
			out[dz*width+dx] = l.at(x+dx, z+dz)
		}
	}
	return out
}

func uniform(id int) func(x, z int) int {
	return func(int, int) int { return id }
}

// countingLayer wraps another layer and counts the grids requested from it.
type countingLayer struct {
	layer.Layer
	calls int
}

func (l *countingLayer) Grid(s *layer.Scratch, x, z, width, length int) []int {
	l.calls++
	return l.Layer.Grid(s, x, z, width, length)
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newStubResolver creates a Resolver backed by the layers passed instead of the reference stack.
func newStubResolver(t *testing.T, conf Config, raw, index layer.Layer) *Resolver {
	t.Helper()
	conf.Log = quietLogger()
	conf.Layers = func(int64, layer.WorldType) layer.Stack {
		return layer.Stack{Raw: raw, Index: index}
	}
	return conf.New(12345, layer.Default)
}

// stripes returns a vanilla id depending on x and z, so that neighbouring blocks differ.
func stripes(x, z int) int {
	return ((x+3*z)%40 + 40) % 40
}
