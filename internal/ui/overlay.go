//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridScale is the smallest cell size, in pixels, that still gets lines.
const minGridScale = 4

// Overlay draws optional cell grid lines on top of the simulation.
type Overlay struct {
	scale    int
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay for a rows x cols grid.
func (o *Overlay) Draw(screen *ebiten.Image, rows, cols int) {
	if !o.showGrid || o.scale < minGridScale {
		return
	}
	w := float64(cols * o.scale)
	h := float64(rows * o.scale)
	col := color.RGBA{R: 48, G: 48, B: 56, A: 255}
	for c := 1; c < cols; c++ {
		x := float64(c * o.scale)
		o.drawRect(screen, x, 0, 1, h, col)
	}
	for r := 1; r < rows; r++ {
		y := float64(r * o.scale)
		o.drawRect(screen, 0, y, w, 1, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
