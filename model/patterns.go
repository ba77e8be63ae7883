package model

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a set of live cells relative to its top-left corner
type Pattern []Coord

var patterns = map[string]Pattern{
	// .#.
	// ..#
	// ###
	"glider": {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	// ###
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	// ##
	// ##
	"block": {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	// .###
	// ###.
	"toad": {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// LookupPattern returns the named pattern
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("[LookupPattern] unknown pattern: %q", name)
	}
	return p, nil
}

// PatternNames lists the known pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At translates the pattern so its top-left corner sits at (x, y). It fails
// if any cell would overflow uint instead of wrapping it back onto the grid.
func (p Pattern) At(x, y uint) ([]Coord, error) {
	coords := make([]Coord, len(p))
	for i, c := range p {
		if x > math.MaxUint-c.X || y > math.MaxUint-c.Y {
			return nil, errors.Errorf("[Pattern.At] placement (%d,%d) overflows at offset %v", x, y, c)
		}
		coords[i] = Coord{X: x + c.X, Y: y + c.Y}
	}
	return coords, nil
}
