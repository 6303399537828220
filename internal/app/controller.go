package app

import (
	"fmt"

	"mad-life/internal/core"
	"mad-life/internal/ui"
	"mad-life/pkg/life"
)

const (
	minTPS = 1
	maxTPS = 240
)

// Controller drives a life.Engine: it owns play/pause state, the generation
// counter, tick pacing and the mapping from screen pixels to cells.
type Controller struct {
	engine *life.Engine
	scale  int
	timer  *core.FixedStep

	generation int
	paused     bool
	stepOnce   bool
	seed       int64
	density    float64

	patterns []string
	pattern  int

	stroke *stroke
}

// stroke tracks one press-drag-release of the draw button.
type stroke struct {
	alive    bool
	last     [2]int
	touched  map[[2]int]bool
	hasStart bool
}

// NewController wraps engine. scale is the cell size in pixels.
func NewController(engine *life.Engine, scale, tps int) *Controller {
	if scale <= 0 {
		scale = 1
	}
	return &Controller{
		engine:   engine,
		scale:    scale,
		timer:    core.NewFixedStep(tps),
		density:  life.DefaultDensity,
		patterns: life.PatternNames(),
	}
}

// Engine returns the engine being driven.
func (c *Controller) Engine() *life.Engine { return c.engine }

// Generation returns the number of generations advanced since the last reset.
func (c *Controller) Generation() int { return c.generation }

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// SetPaused suspends or resumes automatic stepping.
func (c *Controller) SetPaused(p bool) { c.paused = p }

// TogglePause flips the paused state.
func (c *Controller) TogglePause() { c.paused = !c.paused }

// RequestStep asks for exactly one generation on the next Tick, even while
// paused.
func (c *Controller) RequestStep() { c.stepOnce = true }

// Due reports whether the tick pacer allows a step now.
func (c *Controller) Due() bool { return c.timer.ShouldStep() }

// Tick advances one generation when running or when a step was requested and
// reports whether it did.
func (c *Controller) Tick() bool {
	if c.paused && !c.stepOnce {
		return false
	}
	c.engine.NextGeneration()
	c.generation++
	c.stepOnce = false
	return true
}

// TPS returns the current generations-per-second target.
func (c *Controller) TPS() int { return c.timer.TPS() }

// Faster doubles the tick rate up to maxTPS.
func (c *Controller) Faster() { c.timer.SetTPS(min(c.timer.TPS()*2, maxTPS)) }

// Slower halves the tick rate down to minTPS.
func (c *Controller) Slower() { c.timer.SetTPS(max(c.timer.TPS()/2, minTPS)) }

// SetDensity sets the live-cell probability used by Randomize.
func (c *Controller) SetDensity(p float64) { c.density = p }

// Clear kills every cell and resets the generation counter.
func (c *Controller) Clear() {
	c.engine.Clear()
	c.generation = 0
}

// Randomize refills the grid with fresh randomness at the configured density.
func (c *Controller) Randomize() {
	c.engine.Randomize(c.density)
	c.generation = 0
}

// Reseed refills the grid reproducibly from seed.
func (c *Controller) Reseed(seed int64) {
	c.seed = seed
	c.engine.Reset(seed)
	c.generation = 0
}

// Seed returns the last seed passed to Reseed.
func (c *Controller) Seed() int64 { return c.seed }

// SetRule parses and applies a rulestring or preset name. The change takes
// effect on the next generation.
func (c *Controller) SetRule(s string) error {
	r, err := life.ParseRule(s)
	if err != nil {
		return fmt.Errorf("set rule: %w", err)
	}
	c.engine.SetRule(r)
	return nil
}

// NextRule switches to the preset after the active rule in RulePresets
// order, or to the first preset when the active rule is not a preset.
func (c *Controller) NextRule() error {
	names := life.RulePresets()
	next := 0
	for i, name := range names {
		if r, err := life.ParseRule(name); err == nil && r.Equal(c.engine.Rule()) {
			next = (i + 1) % len(names)
			break
		}
	}
	return c.SetRule(names[next])
}

// ResizeBy grows or shrinks the grid by the given deltas, never below 1x1.
func (c *Controller) ResizeBy(drows, dcols int) {
	rows, cols := c.engine.Dimensions()
	c.Resize(max(rows+drows, 1), max(cols+dcols, 1))
}

// Resize replaces the engine with one of the new size, keeping the overlapping
// cells and the rule. Any stroke in progress is dropped.
func (c *Controller) Resize(rows, cols int) {
	c.engine = c.engine.Resize(rows, cols)
	c.stroke = nil
}

// ScreenSize returns the window size in pixels for the current grid with a
// side panel of the given width.
func (c *Controller) ScreenSize(panel int) (w, h int) {
	rows, cols := c.engine.Dimensions()
	return cols*c.scale + panel, rows * c.scale
}

// CellAt maps a pixel position to a cell. ok is false outside the grid.
func (c *Controller) CellAt(px, py int) (row, col int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	row, col = py/c.scale, px/c.scale
	rows, cols := c.engine.Dimensions()
	return row, col, row < rows && col < cols
}

// BeginStroke starts a drawing gesture at a pixel. The first cell is
// toggled; the rest of the stroke paints that resulting state.
func (c *Controller) BeginStroke(px, py int) {
	c.stroke = &stroke{touched: map[[2]int]bool{}}
	row, col, ok := c.CellAt(px, py)
	if !ok {
		return
	}
	c.stroke.alive = !c.engine.Cell(row, col)
	c.paint(row, col)
}

// ContinueStroke extends the current stroke to a pixel, filling any cells the
// pointer skipped since the last sample.
func (c *Controller) ContinueStroke(px, py int) {
	if c.stroke == nil {
		return
	}
	row, col, ok := c.CellAt(px, py)
	if !ok {
		return
	}
	if !c.stroke.hasStart {
		c.stroke.alive = !c.engine.Cell(row, col)
		c.paint(row, col)
		return
	}
	for _, rc := range line(c.stroke.last, [2]int{row, col}) {
		c.paint(rc[0], rc[1])
	}
}

// EndStroke finishes the current stroke.
func (c *Controller) EndStroke() { c.stroke = nil }

// Drawing reports whether a stroke is in progress.
func (c *Controller) Drawing() bool { return c.stroke != nil }

func (c *Controller) paint(row, col int) {
	key := [2]int{row, col}
	c.stroke.last = key
	c.stroke.hasStart = true
	if c.stroke.touched[key] {
		return
	}
	c.stroke.touched[key] = true
	c.engine.SetCell(row, col, c.stroke.alive)
}

// line returns the cells from a to b inclusive using Bresenham's algorithm.
func line(a, b [2]int) [][2]int {
	r0, c0 := a[0], a[1]
	r1, c1 := b[0], b[1]
	dr, dc := abs(r1-r0), -abs(c1-c0)
	sr, sc := sign(r1-r0), sign(c1-c0)
	err := dr + dc
	var out [][2]int
	for {
		out = append(out, [2]int{r0, c0})
		if r0 == r1 && c0 == c1 {
			return out
		}
		e2 := 2 * err
		if e2 >= dc {
			err += dc
			r0 += sr
		}
		if e2 <= dr {
			err += dr
			c0 += sc
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Pattern returns the selected stamp name.
func (c *Controller) Pattern() string {
	if len(c.patterns) == 0 {
		return ""
	}
	return c.patterns[c.pattern]
}

// SelectPattern chooses the stamp used by StampAt.
func (c *Controller) SelectPattern(name string) error {
	for i, p := range c.patterns {
		if p == name {
			c.pattern = i
			return nil
		}
	}
	return fmt.Errorf("select pattern: unknown pattern %q", name)
}

// NextPattern cycles the stamp selection.
func (c *Controller) NextPattern() {
	if len(c.patterns) == 0 {
		return
	}
	c.pattern = (c.pattern + 1) % len(c.patterns)
}

// Stamp places the named pattern with its top-left corner at (row, col).
func (c *Controller) Stamp(name string, row, col int) error {
	p, err := life.PatternByName(name)
	if err != nil {
		return fmt.Errorf("stamp: %w", err)
	}
	c.engine.Stamp(p, row, col)
	return nil
}

// StampAt places the selected pattern at the cell under a pixel. Clicks
// outside the grid are ignored.
func (c *Controller) StampAt(px, py int) error {
	row, col, ok := c.CellAt(px, py)
	if !ok {
		return nil
	}
	return c.Stamp(c.Pattern(), row, col)
}

// Status snapshots the controller for display.
func (c *Controller) Status() ui.Status {
	rows, cols := c.engine.Dimensions()
	return ui.Status{
		Generation: c.generation,
		Population: c.engine.Population(),
		Rule:       c.engine.Rule().String(),
		Pattern:    c.Pattern(),
		Rows:       rows,
		Cols:       cols,
		TPS:        c.timer.TPS(),
		Paused:     c.paused,
	}
}
