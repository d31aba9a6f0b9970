package render

import "math"

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground palette index (0-15)
	BG    uint8 // Background palette index (0-15)
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorVoid}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// SetFG changes glyph and foreground but keeps the cell's background.
func (b *CellBuffer) SetFG(x, y int, glyph byte, fg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		c := &b.Cells[y*b.Cols+x]
		c.Glyph, c.FG = glyph, fg
	}
}

// SetIfBlank writes only over empty cells, so overlays never hide text.
func (b *CellBuffer) SetIfBlank(x, y int, glyph byte, fg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		c := &b.Cells[y*b.Cols+x]
		if c.Glyph == ' ' || c.Glyph == 0 {
			c.Glyph, c.FG = glyph, fg
		}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on the void color).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// Resize reallocates the buffer if the size changed.
func (b *CellBuffer) Resize(cols, rows int) {
	if cols == b.Cols && rows == b.Rows {
		return
	}
	b.Cols, b.Rows = cols, rows
	b.Cells = make([]Cell, cols*rows)
	b.Clear()
}

// WriteString writes s starting at (x, y), one rune per cell, keeping the
// background of the cells it covers. It returns the number of cells used.
func (b *CellBuffer) WriteString(x, y int, s string, fg uint8) int {
	n := 0
	for _, ch := range s {
		b.SetFG(x+n, y, ToCP437(ch), fg)
		n++
	}
	return n
}

// WriteClipped writes at most width runes of s.
func (b *CellBuffer) WriteClipped(x, y, width int, s string, fg uint8) int {
	n := 0
	for _, ch := range s {
		if n >= width {
			break
		}
		b.SetFG(x+n, y, ToCP437(ch), fg)
		n++
	}
	return n
}

// WriteRight writes s so that it ends just before column right.
func (b *CellBuffer) WriteRight(right, y int, s string, fg uint8) {
	b.WriteString(right-len([]rune(s)), y, s, fg)
}

// Fill paints r's background.
func (b *CellBuffer) Fill(r Rect, bg uint8) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.Set(x, y, ' ', ColorWhite, bg)
		}
	}
}

// Frame draws a single-line border around r with an optional title.
func (b *CellBuffer) Frame(r Rect, fg uint8, title string) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		b.SetFG(x, r.Y, 196, fg)
		b.SetFG(x, y1, 196, fg)
	}
	for y := r.Y + 1; y < y1; y++ {
		b.SetFG(r.X, y, 179, fg)
		b.SetFG(x1, y, 179, fg)
	}
	b.SetFG(r.X, r.Y, 218, fg)
	b.SetFG(x1, r.Y, 191, fg)
	b.SetFG(r.X, y1, 192, fg)
	b.SetFG(x1, y1, 217, fg)
	if title != "" && r.W > 4 {
		b.WriteClipped(r.X+2, r.Y, r.W-4, " "+title+" ", fg)
	}
}

// Line plots a straight line between two cell positions.
func (b *CellBuffer) Line(x0, y0, x1, y1 float64, glyph byte, fg uint8) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		b.SetFG(int(math.Round(x0)), int(math.Round(y0)), glyph, fg)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t
		b.SetFG(int(math.Round(x)), int(math.Round(y)), glyph, fg)
	}
}

// Bar draws a horizontal fill of width cells, frac of it solid.
func (b *CellBuffer) Bar(x, y, width int, frac float64, fg uint8) {
	filled := int(math.Round(math.Max(0, math.Min(1, frac)) * float64(width)))
	for i := 0; i < width; i++ {
		if i < filled {
			b.SetFG(x+i, y, GlyphFull, fg)
		} else {
			b.SetFG(x+i, y, GlyphLightShade, ColorPanel)
		}
	}
}
