package gui

import (
	"image/color"

	"github.com/sheikhrachel/go-life/model"
)

// Palette holds the colors used to paint a generation
type Palette struct {
	Live color.Color
	Dead color.Color
	// Born marks cells that came alive in this generation
	Born color.Color
}

// DefaultPalette is white on black with newly born cells in green
var DefaultPalette = Palette{
	Live: color.White,
	Dead: color.Black,
	Born: color.RGBA{R: 90, G: 220, B: 120, A: 255},
}

func putRGBA(buf []byte, base int, c color.Color) {
	r, g, b, a := c.RGBA()
	buf[base+0] = uint8(r >> 8)
	buf[base+1] = uint8(g >> 8)
	buf[base+2] = uint8(b >> 8)
	buf[base+3] = uint8(a >> 8)
}

// fillGenerationRGBA converts a generation into row-major RGBA pixels in buf,
// one pixel per cell. buf must hold 4*width*height bytes.
func fillGenerationRGBA(buf []byte, gen model.Generation, p Palette) {
	g := gen.Grid
	w := int(g.GetWidth())
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			base := (int(y)*w + int(x)) * 4
			if g.Get(x, y) {
				putRGBA(buf, base, p.Live)
			} else {
				putRGBA(buf, base, p.Dead)
			}
		}
	}
	if p.Born == nil {
		return
	}
	for _, c := range gen.Born {
		putRGBA(buf, (int(c.Y)*w+int(c.X))*4, p.Born)
	}
}
