package render

import (
	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/vmath"
)

// hudRows is the number of terminal rows above the playfield
const hudRows = 1

// Viewport maps playfield units onto a rectangle of terminal cells
// A cell is roughly twice as tall as wide, so a 1:2 field is drawn square in cells
type Viewport struct {
	X, Y       int // top-left cell of the playfield
	Cols, Rows int
}

// NewViewport centers the playfield horizontally in a screen of the given size
func NewViewport(screenW, screenH int) Viewport {
	rows := max(screenH-hudRows, 1)
	cols := rows
	// Leave one column on each side for the border
	if cols > screenW-2 {
		cols = max(screenW-2, 1)
	}
	return Viewport{
		X:    max((screenW-cols)/2, 0),
		Y:    hudRows,
		Cols: cols,
		Rows: rows,
	}
}

// ToCell converts a field position to a cell; ok is false outside the field
func (v Viewport) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	if p.X < 0 || p.Y < 0 || p.X >= constants.FieldWidth || p.Y >= constants.FieldHeight {
		return 0, 0, false
	}
	cx := int(p.X / constants.FieldWidth * float64(v.Cols))
	cy := int(p.Y / constants.FieldHeight * float64(v.Rows))
	return v.X + cx, v.Y + cy, true
}

// UnitsPerCol is the horizontal field distance covered by one terminal column
func (v Viewport) UnitsPerCol() float64 {
	return constants.FieldWidth / float64(v.Cols)
}

// UnitsPerRow is the vertical field distance covered by one terminal row
func (v Viewport) UnitsPerRow() float64 {
	return constants.FieldHeight / float64(v.Rows)
}

// Contains reports whether the cell lies inside the playfield
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Cols && y >= v.Y && y < v.Y+v.Rows
}
