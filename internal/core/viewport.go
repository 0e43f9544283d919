package core

// Viewport maps a logical playfield onto a region of the character grid.
// Rectangles are scaled independently per axis and always cover at least
// one cell, so small entities stay visible on small terminals.
type Viewport struct {
	FieldW, FieldH float64 // Logical playfield size
	X, Y           int     // Top-left cell of the region
	W, H           int     // Region size in cells
}

// NewViewport fits a fieldW x fieldH playfield into the screen below the
// first hudRows rows.
func NewViewport(fieldW, fieldH float64, screenW, screenH, hudRows int) Viewport {
	return Viewport{
		FieldW: fieldW,
		FieldH: fieldH,
		X:      0,
		Y:      hudRows,
		W:      max(1, screenW),
		H:      max(1, screenH-hudRows),
	}
}

// Col converts a logical x-coordinate to a screen column.
func (v Viewport) Col(x float64) int {
	return v.X + int(x*float64(v.W)/v.FieldW)
}

// Row converts a logical y-coordinate to a screen row.
func (v Viewport) Row(y float64) int {
	return v.Y + int(y*float64(v.H)/v.FieldH)
}

// Cells returns the screen cells covered by r.
func (v Viewport) Cells(r Rect) (x, y, w, h int) {
	x, y = v.Col(r.X), v.Row(r.Y)
	w = max(1, v.Col(r.Right())-x)
	h = max(1, v.Row(r.Bottom())-y)
	return x, y, w, h
}

// Fill draws r onto dst with rune ch in color c.
func (v Viewport) Fill(dst *Screen, r Rect, ch rune, c Color) {
	x, y, w, h := v.Cells(r)
	dst.FillRect(x, y, w, h, ch, c)
}
