package render

import "image/color"

// CellFunc reports whether the cell at (row, col) is alive.
type CellFunc func(row, col int) bool

// rgba8 returns c as four 8-bit channels.
func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
}

// fillCellsRGBA writes one RGBA pixel per cell of a rows x cols grid into buf,
// row-major. buf must hold 4*rows*cols bytes.
func fillCellsRGBA(buf []byte, rows, cols int, alive CellFunc, on, off color.Color) {
	onPx, offPx := rgba8(on), rgba8(off)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			px := offPx
			if alive(r, c) {
				px = onPx
			}
			copy(buf[(r*cols+c)*4:], px[:])
		}
	}
}
