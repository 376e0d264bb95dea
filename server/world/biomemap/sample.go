package biomemap

import (
	"github.com/df-mc/cubicbiome/server/world/biome"
)

// Rand is the source of randomness used by FindPosition. *rand.Rand from math/rand/v2 implements it.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

// Homogeneous reports if every biome in the square of blocks [x-radius, x+radius] x [z-radius, z+radius]
// has a category in allowed. The square is sampled from the raw layer, so only every fourth block is
// checked. Homogeneous returns false as soon as a sample fails.
func (r *Resolver) Homogeneous(x, z, radius int, allowed CategorySet) (bool, error) {
	if radius < 0 {
		return false, ErrNegativeRadius
	}
	r.scratch.Reset()
	area := sampleArea(x, z, radius)

	r.conf.Metrics.IncRawCalls()
	ids := r.raw.Grid(r.scratch, area.X, area.Z, area.Width, area.Length)
	for i, id := range ids[:area.Area()] {
		d, err := r.conf.Registry.Lookup(biome.ID(id))
		if err != nil {
			return false, r.fail(r.searchError(CategoryLayer, x, z, radius, allowed, i, id, err))
		}
		if !allowed.Contains(d.Category) {
			return false, nil
		}
	}
	return true, nil
}

// FindPosition picks a random position in the square of blocks [x-radius, x+radius] x [z-radius, z+radius]
// whose biome has a category in allowed. Like Homogeneous it samples every fourth block from the raw layer.
// Every matching sample is equally likely to be picked. The position returned lies on a sample point and
// has a Y of 0. False is returned if no sample matched.
func (r *Resolver) FindPosition(x, z, radius int, allowed CategorySet, rng Rand) (Pos, bool, error) {
	if radius < 0 {
		return Pos{}, false, ErrNegativeRadius
	}
	r.scratch.Reset()
	area := sampleArea(x, z, radius)

	r.conf.Metrics.IncRawCalls()
	ids := r.raw.Grid(r.scratch, area.X, area.Z, area.Width, area.Length)

	var (
		pos     Pos
		matches int
	)
	for i, id := range ids[:area.Area()] {
		d, err := r.conf.Registry.Lookup(biome.ID(id))
		if err != nil {
			return Pos{}, false, r.fail(r.searchError(CategorySpawnSearch, x, z, radius, allowed, i, id, err))
		}
		if !allowed.Contains(d.Category) {
			continue
		}
		// Reservoir sampling: the k-th match replaces the current pick with a probability of 1/k.
		matches++
		if matches == 1 || rng.IntN(matches) == 0 {
			pos = Pos{(area.X + i%area.Width) << 2, 0, (area.Z + i/area.Width) << 2}
		}
	}
	return pos, matches > 0, nil
}

func (r *Resolver) searchError(category string, x, z, radius int, allowed CategorySet, i, id int, err error) *InvalidBiomeError {
	return &InvalidBiomeError{
		Category: category, Layer: layerName(r.raw),
		X: x, Z: z, Radius: radius, Allowed: allowed,
		Index: i, ID: biome.ID(id), Err: err,
	}
}
