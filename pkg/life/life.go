package life

import (
	"mad-life/pkg/core"
)

// DefaultDensity is the live-cell probability used when no other is given.
const DefaultDensity = 0.3

// Engine runs a Life-like automaton on a bounded grid. Cells beyond the edge
// are permanently dead. An Engine is not safe for concurrent use.
type Engine struct {
	cur, nxt grid
	rule     Rule
	density  float64
}

// New returns an all-dead rows x cols engine running B3/S23. Non-positive
// dimensions are raised to 1.
func New(rows, cols int) *Engine {
	cur := newGrid(rows, cols)
	return &Engine{
		cur:     cur,
		nxt:     newGrid(cur.rows, cur.cols),
		rule:    Conway,
		density: DefaultDensity,
	}
}

// NewWithConfig returns an engine sized and ruled by cfg.
func NewWithConfig(cfg Config) *Engine {
	e := New(cfg.Rows, cfg.Cols)
	e.rule = cfg.Rule
	e.density = cfg.Density
	return e
}

// Dimensions returns the fixed grid size.
func (e *Engine) Dimensions() (rows, cols int) { return e.cur.rows, e.cur.cols }

// Cell reports whether (row, col) is alive. Out-of-bounds cells are dead.
func (e *Engine) Cell(row, col int) bool {
	if !e.cur.inBounds(row, col) {
		return false
	}
	return e.cur.data[e.cur.index(row, col)]
}

// SetCell sets a single cell. Out-of-bounds writes are dropped.
func (e *Engine) SetCell(row, col int, alive bool) {
	if !e.cur.inBounds(row, col) {
		return
	}
	e.cur.data[e.cur.index(row, col)] = alive
}

// ToggleCell flips a single cell. Out-of-bounds writes are dropped.
func (e *Engine) ToggleCell(row, col int) {
	if !e.cur.inBounds(row, col) {
		return
	}
	idx := e.cur.index(row, col)
	e.cur.data[idx] = !e.cur.data[idx]
}

// SetBirthRule replaces the birth set.
func (e *Engine) SetBirthRule(counts ...int) { e.rule.Birth = NewRuleSet(counts...) }

// SetSurvivalRule replaces the survival set.
func (e *Engine) SetSurvivalRule(counts ...int) { e.rule.Survival = NewRuleSet(counts...) }

// BirthRule returns the birth counts in ascending order.
func (e *Engine) BirthRule() []int { return e.rule.Birth.Counts() }

// SurvivalRule returns the survival counts in ascending order.
func (e *Engine) SurvivalRule() []int { return e.rule.Survival.Counts() }

// SetRule replaces both sets.
func (e *Engine) SetRule(r Rule) { e.rule = r }

// Rule returns the active rule.
func (e *Engine) Rule() Rule { return e.rule }

// neighbors counts live cells in the Moore neighborhood of (row, col).
func (e *Engine) neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if e.Cell(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// NextGeneration advances the grid by one step. Every cell is computed from
// the pre-step state into the spare buffer before the buffers swap.
func (e *Engine) NextGeneration() {
	rows, cols := e.cur.rows, e.cur.cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := e.cur.index(r, c)
			n := e.neighbors(r, c)
			if e.cur.data[idx] {
				e.nxt.data[idx] = e.rule.Survival.Has(n)
			} else {
				e.nxt.data[idx] = e.rule.Birth.Has(n)
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// Clear kills every cell. Rules are kept.
func (e *Engine) Clear() { e.cur.clear() }

// Randomize sets each cell alive with the given probability using fresh
// randomness. The probability is not validated.
func (e *Engine) Randomize(probability float64) {
	core.NewTimeRNG().FillChance(e.cur.data, probability)
}

// Stamp ORs p onto the grid with its top-left corner at (row, col). Dead
// template cells leave the grid untouched and cells past the edge are dropped.
func (e *Engine) Stamp(p Pattern, row, col int) {
	for dr, line := range p {
		for dc, alive := range line {
			if alive {
				e.SetCell(row+dr, col+dc, true)
			}
		}
	}
}

// AddGlider stamps a glider at (row, col).
func (e *Engine) AddGlider(row, col int) { e.Stamp(glider, row, col) }

// AddGliderGun stamps a Gosper glider gun at (row, col).
func (e *Engine) AddGliderGun(row, col int) { e.Stamp(gliderGun, row, col) }

// Population counts live cells.
func (e *Engine) Population() int {
	n := 0
	for _, alive := range e.cur.data {
		if alive {
			n++
		}
	}
	return n
}

// Grid returns a deep copy of the current state indexed [row][col].
func (e *Engine) Grid() [][]bool { return e.cur.matrix() }

// Clone returns an independent engine with the same cells and rule.
func (e *Engine) Clone() *Engine {
	return &Engine{
		cur:     e.cur.clone(),
		nxt:     newGrid(e.cur.rows, e.cur.cols),
		rule:    e.rule,
		density: e.density,
	}
}

// Resize returns a new rows x cols engine carrying over the rule and the
// overlapping top-left region. The receiver is unchanged.
func (e *Engine) Resize(rows, cols int) *Engine {
	out := New(rows, cols)
	out.rule = e.rule
	out.density = e.density
	for r := 0; r < min(e.cur.rows, out.cur.rows); r++ {
		for c := 0; c < min(e.cur.cols, out.cur.cols); c++ {
			out.cur.data[out.cur.index(r, c)] = e.cur.data[e.cur.index(r, c)]
		}
	}
	return out
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cur.cols, H: e.cur.rows} }

// Reset clears the board and refills it at the configured density from seed.
// Unlike Randomize the fill is reproducible.
func (e *Engine) Reset(seed int64) {
	core.NewRNG(seed).FillChance(e.cur.data, e.density)
}

// Step advances the simulation by one generation.
func (e *Engine) Step() { e.NextGeneration() }

// Cells returns a fresh row-major copy of the grid as 0/1 values.
func (e *Engine) Cells() []uint8 {
	out := make([]uint8, len(e.cur.data))
	for i, alive := range e.cur.data {
		if alive {
			out[i] = 1
		}
	}
	return out
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
