package core

import "strings"

// Cell is one character position with its color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a grid of cells the game logic draws into. The terminal front
// end turns it into styled text; nothing here knows about terminals.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen returns a blank screen. Negative sizes are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.width }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions. Cells that remain inside the new bounds
// keep their content; new cells are blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	keepW, keepH := min(width, s.width), min(height, s.height)
	for y := 0; y < keepH; y++ {
		copy(cells[y*width:y*width+keepW], s.cells[y*s.width:y*s.width+keepW])
	}
	s.width, s.height, s.cells = width, height, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill sets every cell to r in the default color.
func (s *Screen) Fill(r rune) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: r, Color: ColorDefault}
	}
}

// Set places r in the default color. Writes outside the screen are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places r in color c. Writes outside the screen are dropped.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text from (x, y) rightwards, one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text from (x, y) in color c, clipped to the screen.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-runeLen(text))/2, y, text)
}

// DrawHLine draws length copies of r from (x, y) to the right.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := range length {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawVLine draws length copies of r from (x, y) downwards.
func (s *Screen) DrawVLine(x, y, length int, r rune, c Color) {
	for i := range length {
		s.SetColored(x, y+i, r, c)
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	s.DrawHLine(r.X+1, r.Y, r.W-2, '─', ColorDefault)
	s.DrawHLine(r.X+1, bottom, r.W-2, '─', ColorDefault)
	s.DrawVLine(r.X, r.Y+1, r.H-2, '│', ColorDefault)
	s.DrawVLine(right, r.Y+1, r.H-2, '│', ColorDefault)
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// DrawMessageBox draws a framed dialog in the middle of the screen with
// each line centered, and returns the frame.
func (s *Screen) DrawMessageBox(lines ...string) Rect {
	inner := 0
	for _, l := range lines {
		inner = max(inner, runeLen(l))
	}
	box := NewRect(0, 0, inner+4, len(lines)+2)
	box.X, box.Y = (s.width-box.W)/2, (s.height-box.H)/2

	for y := box.Y; y < box.Bottom(); y++ {
		s.DrawHLine(box.X, y, box.W, ' ', ColorDefault)
	}
	s.DrawBox(box)
	for i, l := range lines {
		s.DrawText(box.X+(box.W-runeLen(l))/2, box.Y+1+i, l)
	}
	return box
}

// String returns the runes row by row, separated by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as text, or spaces outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func runeLen(s string) int {
	return len([]rune(s))
}
