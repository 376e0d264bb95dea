package layer

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/segmentio/fasthash/fnv1a"
	"golang.org/x/exp/constraints"
)

// weighted is an entry of a biome table, chosen with a probability proportional to its weight.
type weighted struct {
	id     int
	weight uint64
}

// defaultTable holds the biomes of the Default, LargeBiomes and Amplified world types. Identifiers are the
// vanilla biome identifiers.
var defaultTable = []weighted{
	{0, 6},   // ocean
	{1, 10},  // plains
	{2, 4},   // desert
	{3, 4},   // extreme hills
	{4, 8},   // forest
	{5, 5},   // taiga
	{6, 3},   // swampland
	{12, 2},  // ice plains
	{18, 2},  // forest hills
	{19, 1},  // taiga hills
	{21, 3},  // jungle
	{22, 1},  // jungle hills
	{27, 3},  // birch forest
	{29, 2},  // roofed forest
	{32, 2},  // mega taiga
	{35, 3},  // savanna
	{37, 1},  // mesa
}

const (
	// plainsID is the single biome of flat worlds.
	plainsID = 1
	// cellSize is the edge length of a biome cell in raw layer units, that is, 4 blocks each.
	cellSize = 64
)

// Initialise is the reference Initialiser. It is not a noise pipeline: the raw layer divides the coarse
// grid into square cells and assigns each cell a biome picked from a weighted table by hashing the seed and
// the cell position. The index layer zooms the raw layer by 4 and jitters the sample point of every block.
// Flat worlds are plains everywhere.
func Initialise(seed int64, t WorldType) Stack {
	if t == Flat {
		c := constant{id: plainsID}
		return Stack{Raw: c, Index: c}
	}
	size := cellSize
	if t == LargeBiomes {
		size *= 4
	}
	salt := fnv1a.AddString64(fnv1a.HashUint64(uint64(seed)), t.String())

	raw := cells{salt: fnv1a.AddString64(salt, "raw"), size: size, table: defaultTable, name: t.String()}
	for _, w := range raw.table {
		raw.total += w.weight
	}
	return Stack{
		Raw:   raw,
		Index: zoom{parent: raw, seed: int64(fnv1a.AddString64(salt, "index"))},
	}
}

// constant is a layer returning a single identifier everywhere.
type constant struct {
	id int
}

// Grid ...
func (c constant) Grid(s *Scratch, _, _, width, length int) []int {
	out := s.Ints(width * length)
	for i := range out {
		out[i] = c.id
	}
	return out
}

// String ...
func (c constant) String() string {
	return fmt.Sprintf("constant(%d)", c.id)
}

// cells is the raw layer of the reference stack.
type cells struct {
	salt  uint64
	size  int
	table []weighted
	total uint64
	name  string
}

// Grid ...
func (l cells) Grid(s *Scratch, x, z, width, length int) []int {
	out := s.Ints(width * length)
	for dz := 0; dz < length; dz++ {
		cz := floorDiv(z+dz, l.size)
		for dx := 0; dx < width; dx++ {
			out[dz*width+dx] = l.pick(floorDiv(x+dx, l.size), cz)
		}
	}
	return out
}

// pick returns the biome of the cell at cx, cz.
func (l cells) pick(cx, cz int) int {
	var b [24]byte
	binary.LittleEndian.PutUint64(b[0:], l.salt)
	binary.LittleEndian.PutUint64(b[8:], uint64(int64(cx)))
	binary.LittleEndian.PutUint64(b[16:], uint64(int64(cz)))

	n := xxhash.Sum64(b[:]) % l.total
	for _, w := range l.table {
		if n < w.weight {
			return w.id
		}
		n -= w.weight
	}
	return l.table[len(l.table)-1].id
}

// String ...
func (l cells) String() string {
	return "raw(" + l.name + ")"
}

// zoom is the index layer of the reference stack. Every block samples the parent at its own position
// shifted by -1, 0 or 1 on both axes, which frays the otherwise straight cell borders.
type zoom struct {
	parent Layer
	seed   int64
}

// Grid ...
func (l zoom) Grid(s *Scratch, x, z, width, length int) []int {
	// Sample points lie in [x-1, x+width] and [z-1, z+length].
	px, pz := (x-1)>>2, (z-1)>>2
	pw, pl := ((x+width)>>2)-px+1, ((z+length)>>2)-pz+1
	parent := l.parent.Grid(s, px, pz, pw, pl)

	out := s.Ints(width * length)
	for dz := 0; dz < length; dz++ {
		for dx := 0; dx < width; dx++ {
			bx, bz := int64(x+dx), int64(z+dz)
			jx, jz := l.jitter(bx, bz)
			sx, sz := int(bx+jx-1), int(bz+jz-1)
			out[dz*width+dx] = parent[((sz>>2)-pz)*pw+(sx>>2)-px]
		}
	}
	return out
}

// jitter returns the per-block offsets, each in [0, 2].
func (l zoom) jitter(x, z int64) (int64, int64) {
	hash := x*2345803 ^ z*9236449 ^ l.seed
	hash *= hash + 223
	xNoise, zNoise := hash>>20&3, hash>>22&3
	if xNoise == 3 {
		xNoise = 1
	}
	if zNoise == 3 {
		zNoise = 1
	}
	return xNoise, zNoise
}

// String ...
func (l zoom) String() string {
	return fmt.Sprintf("index(%v)", l.parent)
}

// floorDiv divides a by b, rounding towards negative infinity.
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
