package model

import (
	"crypto/md5"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Grid holds one generation of liveness bits, indexed [y][x].
// A zero width or height is allowed and yields a grid with no cells.
type Grid struct {
	width  uint
	height uint
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height uint) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  allocCells(width, height),
	}
}

func allocCells(width, height uint) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// NewRand returns a deterministic random source for SeedRandom
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() uint {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() uint {
	return g.height
}

// Size returns the number of cells
func (g *Grid) Size() uint {
	return g.width * g.height
}

// reset gives a pooled grid new dimensions, all cells dead
func (g *Grid) reset(width, height uint) {
	g.width = width
	g.height = height

	if uint(len(g.cells)) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if uint(len(g.cells[i])) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y uint) bool {
	return x < g.width && y < g.height
}

// InBoundsSigned is InBounds for coordinates computed with signed offsets.
// Negative values are out of bounds; they are never converted to uint first.
func (g *Grid) InBoundsSigned(x, y int) bool {
	return x >= 0 && y >= 0 && uint(x) < g.width && uint(y) < g.height
}

func (g *Grid) mustInBounds(op string, x, y uint) {
	if !g.InBounds(x, y) {
		panic(errors.Errorf("[%s] cell (%d,%d) out of bounds for %dx%d grid", op, x, y, g.width, g.height))
	}
}

// Get returns the state of a cell. It panics if (x, y) is out of bounds.
func (g *Grid) Get(x, y uint) bool {
	g.mustInBounds("Grid.Get", x, y)
	return g.cells[y][x]
}

// Set sets a cell to alive (true) or dead (false). It panics if (x, y) is out of bounds.
func (g *Grid) Set(x, y uint, alive bool) {
	g.mustInBounds("Grid.Set", x, y)
	g.cells[y][x] = alive
}

// SeedFromList marks every in-bounds coordinate live. Out-of-bounds
// coordinates are skipped with a warning and do not stop seeding.
// It returns the number of skipped coordinates.
func (g *Grid) SeedFromList(coords []Coord, logger *slog.Logger) (skipped int) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, c := range coords {
		if !g.InBounds(c.X, c.Y) {
			logger.Warn("seed coordinate out of bounds, skipping",
				"x", c.X, "y", c.Y, "width", g.width, "height", g.height)
			skipped++
			continue
		}
		g.cells[c.Y][c.X] = true
	}
	return skipped
}

// DefaultLiveProbability is the chance of a cell starting alive under SeedRandom
const DefaultLiveProbability = 0.5

// SeedRandom overwrites every cell with an independent draw that is live
// with the given probability.
func (g *Grid) SeedRandom(rng *rand.Rand, probability float64) error {
	if probability < 0 || probability > 1 {
		return errors.Errorf("[SeedRandom] probability %v outside [0,1]", probability)
	}
	if rng == nil {
		return errors.New("[SeedRandom] nil random source")
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = rng.Float64() < probability
		}
	}
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.cells {
		for _, alive := range g.cells[y] {
			if alive {
				count++
			}
		}
	}
	return
}

// LivingCells returns the coordinates of all living cells in row-major order
func (g *Grid) LivingCells() []Coord {
	var living []Coord
	for y := range g.cells {
		for x, alive := range g.cells[y] {
			if alive {
				living = append(living, Coord{X: uint(x), Y: uint(y)})
			}
		}
	}
	return living
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.cells {
		for x, alive := range g.cells[y] {
			row[x] = 0
			if alive {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
