package core

import "testing"

func TestViewportCells(t *testing.T) {
	v := NewViewport(640, 480, 80, 25, 1)

	tests := []struct {
		name       string
		r          Rect
		x, y, w, h int
	}{
		{"origin", NewRect(0, 0, 80, 48), 0, 1, 10, 2},
		{"far corner", NewRect(560, 432, 80, 48), 70, 22, 10, 3},
		{"tiny entity keeps one cell", NewRect(320, 240, 1, 1), 40, 13, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := v.Cells(tt.r)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("Cells(%v) = (%d,%d,%d,%d), expected (%d,%d,%d,%d)",
					tt.r, x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestViewportFill(t *testing.T) {
	s := NewScreen(8, 5)
	v := NewViewport(80, 40, 8, 5, 1)

	v.Fill(s, NewRect(20, 10, 20, 10), '#', ColorGreen)

	// x 2..3, y 1 + 1 = 2
	if got := s.GetCell(2, 2); got.Rune != '#' || got.Color != ColorGreen {
		t.Errorf("GetCell(2,2) = %+v, expected green #", got)
	}
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, expected #", got)
	}
	if got := s.Get(4, 2); got != ' ' {
		t.Errorf("Get(4,2) = %q, expected blank", got)
	}
	if got := s.Get(2, 0); got != ' ' {
		t.Errorf("HUD row touched: Get(2,0) = %q", got)
	}
}
