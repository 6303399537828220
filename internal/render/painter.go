//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image in step with a rows x cols cell grid.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit samples every cell through alive, uploads the pixels and draws the
// image scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, alive CellFunc, on, off color.Color, scale int) {
	fillCellsRGBA(gp.buf, gp.rows, gp.cols, alive, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
