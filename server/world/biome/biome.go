// Package biome holds the biome descriptor table that generation layers resolve into. Descriptors are plain
// immutable values looked up by the integer identifiers the layers produce.
package biome

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ID is a raw biome identifier as produced by a generation layer. An ID is not guaranteed to be
// registered and must be resolved through a Registry before use.
type ID int

// Descriptor describes a resolved biome. Descriptors are owned by a Registry and are handed out by value,
// so holders can never change the registry's copy.
type Descriptor struct {
	ID       ID
	Category Category
	// Name is the snake case name of the biome, for example "forest_hills".
	Name string
	// Temperature is the base temperature of the biome. Snowfall happens below 0.15.
	Temperature float64
	// Rainfall is the downfall fraction of the biome. Vanilla values lie in [0, 1], custom registries may
	// exceed that.
	Rainfall float64
	// MinHeight and MaxHeight are the root height and height variation used by terrain shaping.
	MinHeight, MaxHeight float64
	// Snowy is set for biomes that are covered in snow instead of receiving rain.
	Snowy bool
	// SpawnEligible is set for biomes a player may initially spawn in.
	SpawnEligible bool
}

// IntRainfall returns the rainfall scaled to a 16.16 fixed point integer, the way biome rainfall is stored
// for downfall lookups.
func (d Descriptor) IntRainfall() int {
	return int(d.Rainfall * 65536)
}

// DisplayName returns the human-readable name of the biome, for example "Forest Hills".
func (d Descriptor) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(d.Name, "_", " "))
}

// String ...
func (d Descriptor) String() string {
	return d.Name
}
