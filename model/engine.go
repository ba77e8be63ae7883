package model

import (
	"github.com/sheikhrachel/go-life/rules"
)

// Generation is what observers receive after each step
type Generation struct {
	Number uint64
	// Grid is a snapshot; observers may keep it
	Grid *Grid
	Born []Coord
	Died []Coord
}

// Observer is implemented by rendering layers that want to see every generation
type Observer interface {
	OnGeneration(gen Generation)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(gen Generation)

func (f ObserverFunc) OnGeneration(gen Generation) { f(gen) }

// Engine advances a Grid one generation at a time.
//
// Engine is not safe for concurrent use; callers that step from several
// goroutines must serialize access themselves. When to call Step (key press,
// timer) is the caller's decision.
type Engine struct {
	grid         *Grid
	next         *Grid
	pool         *GridPool
	neighborhood rules.Neighborhood
	generation   uint64
	observers    []Observer
}

// NewEngine wraps grid. A nil pool makes the engine keep its own back buffer.
func NewEngine(grid *Grid, neighborhood rules.Neighborhood, pool *GridPool) *Engine {
	return &Engine{
		grid:         grid,
		pool:         pool,
		neighborhood: neighborhood,
	}
}

// Grid returns the current generation. Callers should treat it as read-only.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Generation returns how many steps have been applied
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Neighborhood returns the neighbor policy in use
func (e *Engine) Neighborhood() rules.Neighborhood {
	return e.neighborhood
}

// AddObserver registers o to be notified after every step and on Publish
func (e *Engine) AddObserver(o Observer) {
	if o == nil {
		return
	}
	e.observers = append(e.observers, o)
}

// NeighborsOf returns the in-bounds neighbors of (x, y). Corner cells have 3
// Moore neighbors (2 orthogonal), edge cells 5 (3).
func (e *Engine) NeighborsOf(x, y uint) []Coord {
	if !e.grid.InBounds(x, y) {
		return nil
	}
	offsets := e.neighborhood.Offsets()
	neighbors := make([]Coord, 0, len(offsets))
	for _, o := range offsets {
		nx, ny := int(x)+o.DX, int(y)+o.DY
		if !e.grid.InBoundsSigned(nx, ny) {
			continue
		}
		neighbors = append(neighbors, Coord{X: uint(nx), Y: uint(ny)})
	}
	return neighbors
}

// CountLivingNeighbors counts the live cells among NeighborsOf(x, y).
// It panics if (x, y) is out of bounds.
func (e *Engine) CountLivingNeighbors(x, y uint) uint {
	e.grid.mustInBounds("Engine.CountLivingNeighbors", x, y)
	return countLiving(e.grid, e.neighborhood, x, y)
}

func countLiving(g *Grid, neighborhood rules.Neighborhood, x, y uint) uint {
	var count uint
	for _, o := range neighborhood.Offsets() {
		nx, ny := int(x)+o.DX, int(y)+o.DY
		if g.InBoundsSigned(nx, ny) && g.cells[ny][nx] {
			count++
		}
	}
	return count
}

// Step replaces the grid with the next generation. Every cell of the next
// generation is computed from the current one before anything is written back.
func (e *Engine) Step() {
	next := e.backBuffer()

	var born, died []Coord
	for y := range e.grid.height {
		for x := range e.grid.width {
			alive := e.grid.cells[y][x]
			nextAlive := rules.ApplyConwayRules(countLiving(e.grid, e.neighborhood, x, y), alive)
			next.cells[y][x] = nextAlive

			switch {
			case nextAlive && !alive:
				born = append(born, Coord{X: x, Y: y})
			case alive && !nextAlive:
				died = append(died, Coord{X: x, Y: y})
			}
		}
	}

	// swap rows so callers holding e.grid see the new generation
	e.grid.cells, next.cells = next.cells, e.grid.cells
	e.releaseBackBuffer(next)
	e.generation++

	e.notify(born, died)
}

// Publish notifies observers of the current generation without stepping
func (e *Engine) Publish() {
	e.notify(nil, nil)
}

func (e *Engine) notify(born, died []Coord) {
	if len(e.observers) == 0 {
		return
	}
	gen := Generation{
		Number: e.generation,
		Grid:   e.grid.Clone(),
		Born:   born,
		Died:   died,
	}
	for _, o := range e.observers {
		o.OnGeneration(gen)
	}
}

func (e *Engine) backBuffer() *Grid {
	if e.pool != nil {
		return e.pool.Get(e.grid.width, e.grid.height)
	}
	if e.next == nil || e.next.width != e.grid.width || e.next.height != e.grid.height {
		e.next = NewGrid(e.grid.width, e.grid.height)
	}
	return e.next
}

func (e *Engine) releaseBackBuffer(next *Grid) {
	if e.pool != nil {
		e.pool.Put(next)
	}
}
