package ui

import "fmt"

// Status is the controller state shown in the side panel.
type Status struct {
	Generation int
	Population int
	Rule       string
	Pattern    string
	Rows, Cols int
	TPS        int
	Paused     bool
}

// Lines formats the status for display, one entry per panel row.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("Generation %d", s.Generation),
		fmt.Sprintf("Population %d", s.Population),
		fmt.Sprintf("Rule       %s", s.Rule),
		fmt.Sprintf("Grid       %dx%d", s.Rows, s.Cols),
		fmt.Sprintf("Speed      %d tps", s.TPS),
		fmt.Sprintf("State      %s", state),
		fmt.Sprintf("Stamp      %s", s.Pattern),
	}
}

// HelpLines lists the key bindings.
var HelpLines = []string{
	"space  pause/resume",
	"n      single step",
	"c      clear",
	"x      randomize",
	"r/s    reseed same/new",
	"p      next stamp",
	"k      next rule",
	"[/]    shrink/grow",
	"+/-    speed",
	"g      grid lines",
	"lmb    draw",
	"rmb    stamp",
	"q      quit",
}
