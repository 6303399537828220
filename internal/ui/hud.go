//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 12
	lineSpacing    = 16
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the given panel width. A non-positive width
// disables the panel.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, status Status) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Life", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineSpacing + 4
	for _, line := range status.Lines() {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineSpacing
	}
	y += lineSpacing
	for _, line := range HelpLines {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
