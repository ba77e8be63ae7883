//go:build ebiten

package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	hudHeight   = 18
	minHUDWidth = 320
)

// Game adapts an engine to the ebiten.Game interface and observes its generations
type Game struct {
	engine  *model.Engine
	advance advancer
	palette Palette

	latest model.Generation
	img    *ebiten.Image
	buf    []byte
	dirty  bool

	scale int
}

// New constructs a Game for engine and registers it as an observer
func New(engine *model.Engine, config utils.Config, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		engine:  engine,
		advance: advancer{
			stepper: utils.NewFixedStep(time.Duration(config.AutoProgressionTime)),
			auto:    config.AutoProgress,
			maxGens: config.MaxGenerations,
		},
		palette: DefaultPalette,
		scale:   scale,
	}
	grid := engine.Grid()
	if grid.Size() > 0 {
		g.img = ebiten.NewImage(int(grid.GetWidth()), int(grid.GetHeight()))
		g.buf = make([]byte, 4*grid.Size())
	}
	engine.AddObserver(g)
	engine.Publish()
	return g
}

// OnGeneration keeps the latest generation for the next Draw
func (g *Game) OnGeneration(gen model.Generation) {
	g.latest = gen
	g.dirty = true
}

// Update handles input: Enter steps once, Space toggles auto-progress, Q quits
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.advance.toggleAuto()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.advance.requestStep()
	}

	if g.advance.shouldStep(g.engine.Generation()) {
		g.engine.Step()
	}
	return nil
}

// Draw renders the latest generation and a status line
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})
	if g.img != nil {
		if g.dirty {
			fillGenerationRGBA(g.buf, g.latest, g.palette)
			g.img.WritePixels(g.buf)
			g.dirty = false
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.scale), float64(g.scale))
		op.GeoM.Translate(0, hudHeight)
		screen.DrawImage(g.img, op)
	}

	mode := "manual"
	if g.advance.auto {
		mode = "auto"
	}
	status := fmt.Sprintf("gen %d  living %d  +%d -%d  [%s]",
		g.latest.Number, g.latest.Grid.CountLivingCells(), len(g.latest.Born), len(g.latest.Died), mode)
	text.Draw(screen, status, basicfont.Face7x13, 4, 13, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.engine.Grid()
	w := max(int(grid.GetWidth())*g.scale, minHUDWidth)
	h := int(grid.GetHeight())*g.scale + hudHeight
	return w, h
}
