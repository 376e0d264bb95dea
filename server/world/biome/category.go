package biome

import "fmt"

// Category is the semantic kind of a biome, such as a forest or plains. Spawn and viability checks test
// membership of categories rather than of individual descriptors, so that several identifiers may share
// a kind.
type Category uint8

// The vanilla categories. Their numeric values match the vanilla biome identifiers that carry them.
const (
	Ocean Category = iota
	Plains
	Desert
	ExtremeHills
	Forest
	Taiga
	Swampland
	River
	Hell
	Sky
	FrozenOcean
	FrozenRiver
	IcePlains
	IceMountains
	MushroomIsland
	MushroomIslandShore
	Beach
	DesertHills
	ForestHills
	TaigaHills
	ExtremeHillsEdge
	Jungle
	JungleHills
	JungleEdge
	DeepOcean
	StoneBeach
	ColdBeach
	BirchForest
	BirchForestHills
	RoofedForest
	ColdTaiga
	ColdTaigaHills
	MegaTaiga
	MegaTaigaHills
	ExtremeHillsPlus
	Savanna
	SavannaPlateau
	Mesa
	MesaPlateauF
	MesaPlateau

	categoryCount
)

var categoryNames = [categoryCount]string{
	"ocean", "plains", "desert", "extreme_hills", "forest", "taiga", "swampland", "river", "hell", "sky",
	"frozen_ocean", "frozen_river", "ice_plains", "ice_mountains", "mushroom_island",
	"mushroom_island_shore", "beach", "desert_hills", "forest_hills", "taiga_hills", "extreme_hills_edge",
	"jungle", "jungle_hills", "jungle_edge", "deep_ocean", "stone_beach", "cold_beach", "birch_forest",
	"birch_forest_hills", "roofed_forest", "cold_taiga", "cold_taiga_hills", "mega_taiga",
	"mega_taiga_hills", "extreme_hills_plus", "savanna", "savanna_plateau", "mesa", "mesa_plateau_f",
	"mesa_plateau",
}

// String returns the snake case name of the category.
func (c Category) String() string {
	if c < categoryCount {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Valid reports if c is one of the known categories.
func (c Category) Valid() bool {
	return c < categoryCount
}

// ParseCategory returns the category with the snake case name passed.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// Categories returns all known categories in ascending order.
func Categories() []Category {
	all := make([]Category, categoryCount)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}
