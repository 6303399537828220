//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// HUDWidth is the width in pixels of the status panel.
	HUDWidth = 200

	resizeStep = 8
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, scale int) *Game {
	rows, cols := ctl.Engine().Dimensions()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(rows, cols),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(HUDWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.ctl.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reseed(g.ctl.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctl.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.ctl.NextPattern()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		if err := g.ctl.NextRule(); err != nil {
			log.Printf("rule: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.ctl.ResizeBy(resizeStep, resizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.ctl.ResizeBy(-resizeStep, -resizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.ctl.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.ctl.Slower()
	}

	g.syncSize()
	g.handleMouse()
	g.overlay.Update()

	if g.ctl.Paused() || g.ctl.Due() {
		g.ctl.Tick()
	}
	return nil
}

// syncSize rebuilds the painter and window after the grid was resized.
func (g *Game) syncSize() {
	rows, cols := g.ctl.Engine().Dimensions()
	if pr, pc := g.painter.Size(); pr == rows && pc == cols {
		return
	}
	g.painter = render.NewGridPainter(rows, cols)
	ebiten.SetWindowSize(g.ctl.ScreenSize(g.hud.Width()))
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctl.BeginStroke(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.ctl.Drawing():
		g.ctl.ContinueStroke(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctl.EndStroke()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if err := g.ctl.StampAt(x, y); err != nil {
			log.Printf("stamp: %v", err)
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	e := g.ctl.Engine()
	rows, cols := e.Dimensions()
	g.painter.Blit(screen, e.Cell, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, rows, cols)
	g.hud.Draw(screen, cols*g.scale, rows*g.scale, g.ctl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctl.ScreenSize(g.hud.Width())
}
