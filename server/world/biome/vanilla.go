package biome

import "sync"

// vanilla lists the 1.7 overworld, nether and end biomes. The identifier of each equals its category.
var vanilla = []Descriptor{
	{Name: "ocean", Temperature: 0.5, Rainfall: 0.5, MinHeight: -1, MaxHeight: 0.1},
	{Name: "plains", Temperature: 0.8, Rainfall: 0.4, MinHeight: 0.125, MaxHeight: 0.05},
	{Name: "desert", Temperature: 2, Rainfall: 0, MinHeight: 0.125, MaxHeight: 0.05},
	{Name: "extreme_hills", Temperature: 0.2, Rainfall: 0.3, MinHeight: 1, MaxHeight: 0.5},
	{Name: "forest", Temperature: 0.7, Rainfall: 0.8, MinHeight: 0.1, MaxHeight: 0.2},
	{Name: "taiga", Temperature: 0.25, Rainfall: 0.8, MinHeight: 0.2, MaxHeight: 0.2},
	{Name: "swampland", Temperature: 0.8, Rainfall: 0.9, MinHeight: -0.2, MaxHeight: 0.1},
	{Name: "river", Temperature: 0.5, Rainfall: 0.5, MinHeight: -0.5, MaxHeight: 0},
	{Name: "hell", Temperature: 2, Rainfall: 0, MinHeight: 0.1, MaxHeight: 0.2},
	{Name: "sky", Temperature: 0.5, Rainfall: 0.5, MinHeight: 0.1, MaxHeight: 0.2},
	{Name: "frozen_ocean", Temperature: 0, Rainfall: 0.5, MinHeight: -1, MaxHeight: 0.1, Snowy: true},
	{Name: "frozen_river", Temperature: 0, Rainfall: 0.5, MinHeight: -0.5, MaxHeight: 0, Snowy: true},
	{Name: "ice_plains", Temperature: 0, Rainfall: 0.5, MinHeight: 0.125, MaxHeight: 0.05, Snowy: true},
	{Name: "ice_mountains", Temperature: 0, Rainfall: 0.5, MinHeight: 0.45, MaxHeight: 0.3, Snowy: true},
	{Name: "mushroom_island", Temperature: 0.9, Rainfall: 1, MinHeight: 0.2, MaxHeight: 0.3},
	{Name: "mushroom_island_shore", Temperature: 0.9, Rainfall: 1, MinHeight: 0, MaxHeight: 0.025},
	{Name: "beach", Temperature: 0.8, Rainfall: 0.4, MinHeight: 0, MaxHeight: 0.025},
	{Name: "desert_hills", Temperature: 2, Rainfall: 0, MinHeight: 0.45, MaxHeight: 0.3},
	{Name: "forest_hills", Temperature: 0.7, Rainfall: 0.8, MinHeight: 0.45, MaxHeight: 0.3},
	{Name: "taiga_hills", Temperature: 0.25, Rainfall: 0.8, MinHeight: 0.45, MaxHeight: 0.3},
	{Name: "extreme_hills_edge", Temperature: 0.2, Rainfall: 0.3, MinHeight: 0.8, MaxHeight: 0.3},
	{Name: "jungle", Temperature: 0.95, Rainfall: 0.9, MinHeight: 0.1, MaxHeight: 0.2},
	{Name: "jungle_hills", Temperature: 0.95, Rainfall: 0.9, MinHeight: 0.45, MaxHeight: 0.3},
	{Name: "jungle_edge", Temperature: 0.95, Rainfall: 0.8, MinHeight: 0.1, MaxHeight: 0.2},
	{Name: "deep_ocean", Temperature: 0.5, Rainfall: 0.5, MinHeight: -1.8, MaxHeight: 0.1},
	{Name: "stone_beach", Temperature: 0.2, Rainfall: 0.3, MinHeight: 0.1, MaxHeight: 0.8},
	{Name: "cold_beach", Temperature: 0.05, Rainfall: 0.3, MinHeight: 0, MaxHeight: 0.025, Snowy: true},
	{Name: "birch_forest", Temperature: 0.6, Rainfall: 0.6, MinHeight: 0.1, MaxHeight: 0.2},
	{Name: "birch_forest_hills", Temperature: 0.6, Rainfall: 0.6, MinHeight: 0.45, MaxHeight: 0.3},
	{Name: "roofed_forest", Temperature: 0.7, Rainfall: 0.8, MinHeight: 0.1, MaxHeight: 0.2},
	{Name: "cold_taiga", Temperature: -0.5, Rainfall: 0.4, MinHeight: 0.2, MaxHeight: 0.2, Snowy: true},
	{Name: "cold_taiga_hills", Temperature: -0.5, Rainfall: 0.4, MinHeight: 0.45, MaxHeight: 0.3, Snowy: true},
	{Name: "mega_taiga", Temperature: 0.3, Rainfall: 0.8, MinHeight: 0.2, MaxHeight: 0.2},
	{Name: "mega_taiga_hills", Temperature: 0.3, Rainfall: 0.8, MinHeight: 0.45, MaxHeight: 0.3},
	{Name: "extreme_hills_plus", Temperature: 0.2, Rainfall: 0.3, MinHeight: 1, MaxHeight: 0.5},
	{Name: "savanna", Temperature: 1.2, Rainfall: 0, MinHeight: 0.125, MaxHeight: 0.05},
	{Name: "savanna_plateau", Temperature: 1, Rainfall: 0, MinHeight: 1.5, MaxHeight: 0.025},
	{Name: "mesa", Temperature: 2, Rainfall: 0, MinHeight: 0.1, MaxHeight: 0.2},
	{Name: "mesa_plateau_f", Temperature: 2, Rainfall: 0, MinHeight: 1.5, MaxHeight: 0.025},
	{Name: "mesa_plateau", Temperature: 2, Rainfall: 0, MinHeight: 1.5, MaxHeight: 0.025},
}

// spawnable are the categories a player may initially spawn in.
var spawnable = [...]Category{Forest, Plains, Taiga, TaigaHills, ForestHills, Jungle, JungleHills}

// SpawnCategories returns the categories eligible for player spawn in their fixed order: forest, plains,
// taiga, taiga hills, forest hills, jungle and jungle hills.
func SpawnCategories() []Category {
	return append([]Category(nil), spawnable[:]...)
}

// Vanilla returns the registry of the vanilla biomes. The registry is built once and shared.
var Vanilla = sync.OnceValue(func() *Registry {
	ds := make([]Descriptor, len(vanilla))
	for i, d := range vanilla {
		d.ID, d.Category = ID(i), Category(i)
		for _, c := range spawnable {
			if c == d.Category {
				d.SpawnEligible = true
			}
		}
		ds[i] = d
	}
	r, err := NewRegistry(ds...)
	if err != nil {
		panic(err)
	}
	return r
})
