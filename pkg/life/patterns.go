package life

import (
	"fmt"
	"slices"
	"strings"
)

// Pattern is a fixed 2-D template of cell states, indexed [row][col].
type Pattern [][]bool

// ParsePattern builds a Pattern from literal rows. 'O', 'o', '*' and '#' mark
// live cells; any other rune is dead. Short rows are padded with dead cells.
func ParsePattern(rows ...string) Pattern {
	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}
	p := make(Pattern, len(rows))
	for i, r := range rows {
		line := make([]bool, width)
		for j, ch := range []rune(r) {
			switch ch {
			case 'O', 'o', '*', '#':
				line[j] = true
			}
		}
		p[i] = line
	}
	return p
}

// Size returns the template's row and column extent.
func (p Pattern) Size() (rows, cols int) {
	rows = len(p)
	for _, line := range p {
		if len(line) > cols {
			cols = len(line)
		}
	}
	return rows, cols
}

// Population counts live cells in the template.
func (p Pattern) Population() int {
	n := 0
	for _, line := range p {
		for _, alive := range line {
			if alive {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (p Pattern) Clone() Pattern {
	out := make(Pattern, len(p))
	for i, line := range p {
		out[i] = slices.Clone(line)
	}
	return out
}

// String renders the template with 'O' and '.' rows separated by newlines.
func (p Pattern) String() string {
	var b strings.Builder
	for i, line := range p {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, alive := range line {
			if alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

var glider = ParsePattern(
	".O.",
	"..O",
	"OOO",
)

// Gosper glider gun, 9x36.
var gliderGun = ParsePattern(
	"........................O...........",
	"......................O.O...........",
	"............OO......OO............OO",
	"...........O...O....OO............OO",
	"OO........O.....O...OO..............",
	"OO........O...O.OO....O.O...........",
	"..........O.....O.......O...........",
	"...........O...O....................",
	"............OO......................",
)

var patterns = map[string]Pattern{
	"glider":    glider,
	"glidergun": gliderGun,
	"block": ParsePattern(
		"OO",
		"OO",
	),
	"blinker": ParsePattern("OOO"),
	"toad": ParsePattern(
		".OOO",
		"OOO.",
	),
	"beacon": ParsePattern(
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	),
	"lwss": ParsePattern(
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	),
	"rpentomino": ParsePattern(
		".OO",
		"OO.",
		".O.",
	),
}

// Glider returns the 3x3 glider, which travels one cell down and right every
// four generations.
func Glider() Pattern { return glider.Clone() }

// GliderGun returns the 9x36 Gosper glider gun.
func GliderGun() Pattern { return gliderGun.Clone() }

// PatternNames lists the built-in templates in ascending order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PatternByName returns a copy of a built-in template.
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (have %s)", name, strings.Join(PatternNames(), ", "))
	}
	return p.Clone(), nil
}
