package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/df-mc/cubicbiome/server"
	"github.com/df-mc/cubicbiome/server/world/biome"
	"github.com/df-mc/cubicbiome/server/world/biomemap"
)

const symbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func main() {
	var (
		configPath = flag.String("config", "", "path to a .toml or .yaml config, created with defaults if missing")
		seed       = flag.Int64("seed", 0, "world seed, overrides the config")
		worldType  = flag.String("type", "", "world type, overrides the config")
		x          = flag.Int("x", 0, "block x coordinate of the centre")
		z          = flag.Int("z", 0, "block z coordinate of the centre")
		radius     = flag.Int("radius", 64, "radius in blocks of the printed map and the spawn search")
	)
	flag.Parse()

	uc := server.DefaultConfig()
	if *configPath != "" {
		var err error
		if uc, err = server.LoadConfig(*configPath); err != nil {
			fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			uc.World.Seed = *seed
		case "type":
			uc.World.Type = *worldType
		}
	})

	lvl, err := uc.LogLevel()
	if err != nil {
		fatal(err)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	r, err := uc.New(log)
	if err != nil {
		fatal(err)
	}
	log.Info("Resolver created.", "id", r.ID(), "seed", r.Seed(), "type", r.WorldType())

	if err := printMap(r, *x, *z, *radius); err != nil {
		fatal(err)
	}

	rain, err := r.Rainfall(nil, biomemap.Region{X: *x &^ 15, Z: *z &^ 15, Width: biomemap.TileSize, Length: biomemap.TileSize})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("\nrainfall of tile %d,%d: min %.3f, max %.3f\n", *x&^15, *z&^15, slices.Min(rain), slices.Max(rain))

	spawn := r.SpawnSet()
	ok, err := r.Homogeneous(*x, *z, *radius, spawn)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("only spawn biomes %v within %d blocks: %v\n", spawn, *radius, ok)

	pos, found, err := r.FindPosition(*x, *z, *radius, spawn, rand.New(rand.NewPCG(uint64(r.Seed()), 0)))
	if err != nil {
		fatal(err)
	}
	if found {
		fmt.Printf("spawn position: %v\n", pos.Vec3Centre())
	} else {
		fmt.Println("spawn position: none found")
	}
	m := r.Metrics().Snapshot()
	log.Debug("Done.", "hits", m.CacheHits, "misses", m.CacheMisses, "index calls", m.IndexLayerCalls, "raw calls", m.RawLayerCalls)
}

// printMap prints one symbol per tile around x, z, using the biome at the centre of the tile.
func printMap(r *biomemap.Resolver, x, z, radius int) error {
	legend := map[biome.Category]byte{}
	var order []biome.Descriptor
	var sb strings.Builder
	for tz := (z - radius) &^ 15; tz <= z+radius; tz += biomemap.TileSize {
		for tx := (x - radius) &^ 15; tx <= x+radius; tx += biomemap.TileSize {
			d, err := r.BiomeAt(tx+8, tz+8)
			if err != nil {
				return err
			}
			sym, ok := legend[d.Category]
			if !ok {
				sym = '?'
				if len(legend) < len(symbols) {
					sym = symbols[len(legend)]
				}
				legend[d.Category] = sym
				order = append(order, d)
			}
			sb.WriteByte(sym)
		}
		sb.WriteByte('\n')
	}
	fmt.Printf("biomes around %d,%d (%s world, one symbol per %dx%d tile):\n%s\n", x, z, r.WorldType(), biomemap.TileSize, biomemap.TileSize, sb.String())
	for _, d := range order {
		fmt.Printf("  %c %v\n", legend[d.Category], d.DisplayName())
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "biomeinspect:", err)
	os.Exit(1)
}
