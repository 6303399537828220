package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Text draws a grid snapshot as one line per row using the given runes.
func Text(grid [][]bool, alive, dead rune) string {
	var b strings.Builder
	for _, row := range grid {
		for _, cell := range row {
			if cell {
				b.WriteRune(alive)
			} else {
				b.WriteRune(dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFrame writes a titled text frame of grid to w.
func WriteFrame(w io.Writer, title string, grid [][]bool) error {
	bw := bufio.NewWriter(w)
	if title != "" {
		if _, err := fmt.Fprintf(bw, "%s\n", title); err != nil {
			return fmt.Errorf("write frame title: %w", err)
		}
	}
	if _, err := bw.WriteString(Text(grid, 'O', '.')); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
