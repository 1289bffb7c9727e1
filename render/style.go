package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-shooter/constants"
)

func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c).Background(constants.ColorBackground)
}

// dim scales a color toward black by factor in [0,1]
func dim(c tcell.Color, factor float64) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	return tcell.NewRGBColor(
		int32(float64(r)*factor),
		int32(float64(g)*factor),
		int32(float64(b)*factor),
	)
}
