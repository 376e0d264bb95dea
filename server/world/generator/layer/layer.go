// Package layer defines the generation layers that turn a seed and a rectangle into a grid of biome
// identifiers, and a reference implementation of them.
package layer

// Layer produces biome identifiers for a rectangle. Grid returns width*length identifiers in row-major
// order, index = dz*width + dx. The result may be backed by s and is only valid until s is reset.
// Implementations must be deterministic functions of their seed, world type and the rectangle.
type Layer interface {
	Grid(s *Scratch, x, z, width, length int) []int
}

// Stack holds the two layers a world resolves biomes from. Raw is the coarse layer, sampled at a
// resolution of 4 blocks, used for broad classification. Index is the fine layer, sampled per block.
type Stack struct {
	Raw, Index Layer
}

// Initialiser builds the layer stack for a seed and world type.
type Initialiser func(seed int64, t WorldType) Stack

// LayerFunc is a function implementing Layer.
type LayerFunc func(s *Scratch, x, z, width, length int) []int

// Grid ...
func (f LayerFunc) Grid(s *Scratch, x, z, width, length int) []int {
	return f(s, x, z, width, length)
}
