package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Neighborhood selects which surrounding cells count as neighbors
type Neighborhood int

const (
	// Moore counts the 8 orthogonal and diagonal cells (standard Conway)
	Moore Neighborhood = iota
	// Orthogonal counts only the 4 cells above, below, left and right
	Orthogonal
)

// Offset is a relative position in signed arithmetic so that probing
// west of column 0 yields -1 instead of wrapping
type Offset struct {
	DX, DY int
}

var (
	mooreOffsets = []Offset{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	orthogonalOffsets = []Offset{
		{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	}
)

// Offsets returns the relative positions making up the neighborhood.
// The returned slice must not be modified.
func (n Neighborhood) Offsets() []Offset {
	if n == Orthogonal {
		return orthogonalOffsets
	}
	return mooreOffsets
}

// MaxNeighbors returns how many neighbors an interior cell has
func (n Neighborhood) MaxNeighbors() int {
	return len(n.Offsets())
}

func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "moore"
	case Orthogonal:
		return "orthogonal"
	default:
		return "unknown"
	}
}

// ParseNeighborhood maps a configuration value to a Neighborhood. An empty
// string selects Moore.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "moore", "8":
		return Moore, nil
	case "orthogonal", "von_neumann", "vonneumann", "4":
		return Orthogonal, nil
	default:
		return Moore, errors.Errorf("[ParseNeighborhood] unknown neighborhood: %q", s)
	}
}
