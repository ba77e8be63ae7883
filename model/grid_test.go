package model

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewGridAllDead(t *testing.T) {
	g := NewGrid(4, 3)
	if g.GetWidth() != 4 || g.GetHeight() != 3 || g.Size() != 12 {
		t.Fatalf("dims = %dx%d size %d", g.GetWidth(), g.GetHeight(), g.Size())
	}
	for y := range uint(3) {
		for x := range uint(4) {
			if g.Get(x, y) {
				t.Fatalf("cell (%d,%d) alive in new grid", x, y)
			}
		}
	}
}

func TestZeroSizeGrid(t *testing.T) {
	for _, dims := range [][2]uint{{0, 0}, {0, 5}, {5, 0}} {
		g := NewGrid(dims[0], dims[1])
		if g.Size() != 0 {
			t.Fatalf("%v: size = %d", dims, g.Size())
		}
		if g.InBounds(0, 0) {
			t.Fatalf("%v: (0,0) reported in bounds", dims)
		}
		if skipped := g.SeedFromList([]Coord{{0, 0}}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))); skipped != 1 {
			t.Fatalf("%v: skipped = %d, want 1", dims, skipped)
		}
		if err := g.SeedRandom(NewRand(1), 1); err != nil {
			t.Fatalf("%v: SeedRandom: %v", dims, err)
		}
		if g.CountLivingCells() != 0 {
			t.Fatalf("%v: living = %d", dims, g.CountLivingCells())
		}
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(3, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
		{-1, -1, false},
	}
	for _, tt := range tests {
		if got := g.InBoundsSigned(tt.x, tt.y); got != tt.want {
			t.Fatalf("InBoundsSigned(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		if tt.x >= 0 && tt.y >= 0 {
			if got := g.InBounds(uint(tt.x), uint(tt.y)); got != tt.want {
				t.Fatalf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		}
	}
	// a wrapped 0-1 must never be treated as in bounds
	var zero uint
	if g.InBounds(zero-1, 0) {
		t.Fatal("wrapped coordinate reported in bounds")
	}
}

func TestGetSet(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 1, true)
	if !g.Get(2, 1) {
		t.Fatal("Set(2,1,true) not visible")
	}
	if g.Get(1, 2) {
		t.Fatal("row/column swapped")
	}
	g.Set(2, 1, false)
	if g.Get(2, 1) {
		t.Fatal("Set(2,1,false) not visible")
	}
}

func TestOutOfBoundsAccessPanics(t *testing.T) {
	g := NewGrid(2, 2)
	for name, fn := range map[string]func(){
		"get x": func() { g.Get(2, 0) },
		"get y": func() { g.Get(0, 2) },
		"set":   func() { g.Set(5, 5, true) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if err, ok := r.(error); !ok || !strings.Contains(err.Error(), "out of bounds") {
					t.Fatalf("unexpected panic value: %v", r)
				}
			}()
			fn()
		})
	}
}

func TestSeedFromListSkipsOutOfBounds(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	g := NewGrid(3, 3)
	skipped := g.SeedFromList([]Coord{{3, 0}, {1, 1}, {0, 7}, {2, 2}}, logger)
	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}
	if !g.Get(1, 1) || !g.Get(2, 2) {
		t.Fatal("in-bounds coordinates after a bad one were not seeded")
	}
	if g.CountLivingCells() != 2 {
		t.Fatalf("living = %d, want 2", g.CountLivingCells())
	}

	out := buf.String()
	if strings.Count(out, "level=WARN") != 2 {
		t.Fatalf("expected 2 warnings, got:\n%s", out)
	}
	if !strings.Contains(out, "x=3 y=0") || !strings.Contains(out, "x=0 y=7") {
		t.Fatalf("warning does not identify coordinate:\n%s", out)
	}
}

func TestSeedFromListOnePastWidthDoesNotMutate(t *testing.T) {
	g := NewGrid(4, 2)
	before := g.GetGridHash()
	g.SeedFromList([]Coord{{X: g.GetWidth(), Y: 0}}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	if g.GetGridHash() != before {
		t.Fatal("grid mutated by out-of-bounds seed")
	}
}

func TestSeedRandom(t *testing.T) {
	g := NewGrid(100, 100)

	if err := g.SeedRandom(NewRand(7), 0); err != nil {
		t.Fatal(err)
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("p=0 living = %d", n)
	}

	if err := g.SeedRandom(NewRand(7), 1); err != nil {
		t.Fatal(err)
	}
	if n := g.CountLivingCells(); n != 10000 {
		t.Fatalf("p=1 living = %d", n)
	}

	if err := g.SeedRandom(NewRand(7), DefaultLiveProbability); err != nil {
		t.Fatal(err)
	}
	if n := g.CountLivingCells(); n < 4000 || n > 6000 {
		t.Fatalf("p=0.5 living = %d, expected near 5000", n)
	}

	other := NewGrid(100, 100)
	if err := other.SeedRandom(NewRand(7), DefaultLiveProbability); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(other) {
		t.Fatal("same seed produced different grids")
	}
}

func TestSeedRandomRejectsBadInput(t *testing.T) {
	g := NewGrid(2, 2)
	for _, p := range []float64{-0.1, 1.5} {
		if err := g.SeedRandom(NewRand(1), p); err == nil {
			t.Fatalf("probability %v accepted", p)
		}
	}
	if err := g.SeedRandom(nil, 0.5); err == nil {
		t.Fatal("nil rng accepted")
	}
}

func TestCloneEqualHash(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 1, true)
	c := g.Clone()
	if !g.Equal(c) || g.GetGridHash() != c.GetGridHash() {
		t.Fatal("clone differs from original")
	}
	c.Set(2, 0, true)
	if g.Get(2, 0) {
		t.Fatal("clone shares cells with original")
	}
	if g.Equal(c) || g.GetGridHash() == c.GetGridHash() {
		t.Fatal("modified clone still equal")
	}
	if g.Equal(NewGrid(2, 3)) {
		t.Fatal("grids of different shape reported equal")
	}
}

func TestLivingCellsRowMajor(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 0, true)
	g.Set(0, 2, true)
	g.Set(1, 1, true)
	got := g.LivingCells()
	want := []Coord{{2, 0}, {1, 1}, {0, 2}}
	if len(got) != len(want) {
		t.Fatalf("LivingCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LivingCells = %v, want %v", got, want)
		}
	}
}

func TestGridPoolReset(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(3, 3)
	g.Set(1, 1, true)
	pool.Put(g)

	g = pool.Get(4, 2)
	if g.GetWidth() != 4 || g.GetHeight() != 2 {
		t.Fatalf("pooled grid dims = %dx%d", g.GetWidth(), g.GetHeight())
	}
	if g.CountLivingCells() != 0 {
		t.Fatal("pooled grid not cleared")
	}
}
