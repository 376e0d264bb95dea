package layer

import (
	"fmt"
	"strings"
)

// WorldType selects the layer configuration a world is generated with.
type WorldType uint8

const (
	Default WorldType = iota
	Flat
	LargeBiomes
	Amplified
)

var worldTypeNames = [...]string{"default", "flat", "largeBiomes", "amplified"}

// String returns the name of the world type as it is stored in level data.
func (t WorldType) String() string {
	if int(t) < len(worldTypeNames) {
		return worldTypeNames[t]
	}
	return fmt.Sprintf("worldType(%d)", uint8(t))
}

// ParseWorldType returns the world type with the name passed. Names are matched case-insensitively.
func ParseWorldType(name string) (WorldType, error) {
	name = strings.TrimSpace(name)
	for i, n := range worldTypeNames {
		if strings.EqualFold(n, name) {
			return WorldType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown world type %q", name)
}
