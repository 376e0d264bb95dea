package biomemap

import "github.com/df-mc/cubicbiome/server/world/biome"

// Rainfall returns the rainfall of every block in q as a fraction in [0, 1]. Rainfall is always resolved from
// the index layer and never cached. The result is written to dst if it is large enough, or to a new slice
// otherwise.
func (r *Resolver) Rainfall(dst []float64, q Region) ([]float64, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	r.scratch.Reset()
	dst = grow(dst, q.Area())

	r.conf.Metrics.IncIndexCalls()
	ids := r.index.Grid(r.scratch, q.X, q.Z, q.Width, q.Length)
	for i, id := range ids[:q.Area()] {
		d, err := r.conf.Registry.Lookup(biome.ID(id))
		if err != nil {
			return nil, r.fail(&InvalidBiomeError{
				Category: CategoryDownfallBlock, Layer: layerName(r.index),
				X: q.X, Z: q.Z, Width: q.Width, Length: q.Length,
				BufferSize: len(dst), Index: i, ID: biome.ID(id), Err: err,
			})
		}
		dst[i] = downfall(d)
	}
	return dst, nil
}

// downfall returns the rainfall fraction of d as stored in fixed point, clamped to [0, 1].
func downfall(d biome.Descriptor) float64 {
	return min(max(float64(d.IntRainfall())/65536, 0), 1)
}

// TemperatureAt returns the temperature at height y for a biome with the base temperature temp. Height does
// not currently affect temperature, so temp is returned unchanged.
func (r *Resolver) TemperatureAt(temp float64, y int) float64 {
	return temp
}
