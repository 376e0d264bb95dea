package biomemap

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/df-mc/cubicbiome/server/world/biome"
	"github.com/go-gl/mathgl/mgl64"
)

// TileSize is the edge length of a cached tile in blocks.
const TileSize = 16

var (
	// ErrEmptyRegion is returned for regions with a width or length below 1.
	ErrEmptyRegion = errors.New("region must be at least 1x1")
	// ErrNegativeRadius is returned by the spatial searches for a radius below 0.
	ErrNegativeRadius = errors.New("radius must not be negative")
)

// Region is a rectangle of blocks, or of raw layer cells for Resolver.Raw, starting at X, Z and extending
// Width blocks along the x-axis and Length blocks along the z-axis. Results for a Region are row-major:
// the element for X+dx, Z+dz is at index dz*Width + dx.
type Region struct {
	X, Z          int
	Width, Length int
}

// Area returns the number of blocks in the region.
func (r Region) Area() int {
	return r.Width * r.Length
}

// Aligned reports if the region covers exactly one tile, that is, if it is 16x16 and both origin
// coordinates are multiples of 16. Negative multiples are aligned too.
func (r Region) Aligned() bool {
	return r.Width == TileSize && r.Length == TileSize && r.X&(TileSize-1) == 0 && r.Z&(TileSize-1) == 0
}

// Validate returns ErrEmptyRegion if the region holds no blocks.
func (r Region) Validate() error {
	if r.Width < 1 || r.Length < 1 {
		return fmt.Errorf("region %v: %w", r, ErrEmptyRegion)
	}
	return nil
}

// String ...
func (r Region) String() string {
	return fmt.Sprintf("(%d, %d) %dx%d", r.X, r.Z, r.Width, r.Length)
}

// sampleArea returns the raw layer rectangle covering the square of blocks [x-radius, x+radius] x
// [z-radius, z+radius]. Shifting by 2 floors towards negative infinity, so the rectangle is correct for
// negative coordinates too, at the price of sampling only every fourth block.
func sampleArea(x, z, radius int) Region {
	x0, z0 := (x-radius)>>2, (z-radius)>>2
	return Region{X: x0, Z: z0, Width: ((x+radius)>>2) - x0 + 1, Length: ((z+radius)>>2) - z0 + 1}
}

// Pos is a block position. Positions returned by the spatial searches always have a Y of 0.
type Pos [3]int

// X returns the x coordinate of the position.
func (p Pos) X() int { return p[0] }

// Y returns the y coordinate of the position.
func (p Pos) Y() int { return p[1] }

// Z returns the z coordinate of the position.
func (p Pos) Z() int { return p[2] }

// Vec3 returns the position as a vector.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// Vec3Centre returns the centre of the block at the position.
func (p Pos) Vec3Centre() mgl64.Vec3 {
	return p.Vec3().Add(mgl64.Vec3{0.5, 0.5, 0.5})
}

// CategorySet is a set of biome categories. The zero value is an empty set.
type CategorySet struct {
	bits [4]uint64
}

// NewCategorySet returns a set holding the categories passed.
func NewCategorySet(cs ...biome.Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s.Add(c)
	}
	return s
}

// Add adds c to the set.
func (s *CategorySet) Add(c biome.Category) {
	s.bits[c>>6] |= 1 << (c & 63)
}

// Contains reports if c is in the set.
func (s CategorySet) Contains(c biome.Category) bool {
	return s.bits[c>>6]&(1<<(c&63)) != 0
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	n := 0
	for _, b := range s.bits {
		n += bits.OnesCount64(b)
	}
	return n
}

// Slice returns the categories in the set in ascending order.
func (s CategorySet) Slice() []biome.Category {
	cs := make([]biome.Category, 0, s.Len())
	for i := 0; i < 256; i++ {
		if c := biome.Category(i); s.Contains(c) {
			cs = append(cs, c)
		}
	}
	return cs
}

// String ...
func (s CategorySet) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Slice() {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
