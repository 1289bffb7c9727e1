package render

import (
	"math/rand"

	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/vmath"
)

const (
	starCount = 48
	// starSeed fixes the pattern so it is identical across runs and restarts
	starSeed = 2463534242
)

// StarfieldRenderer scrolls a fixed star pattern by the frame's background offset
type StarfieldRenderer struct {
	stars []vmath.Vec2
}

func (r *StarfieldRenderer) init() {
	rng := rand.New(rand.NewSource(starSeed))
	r.stars = make([]vmath.Vec2, starCount)
	for i := range r.stars {
		r.stars[i] = vmath.V2(rng.Float64()*constants.FieldWidth, rng.Float64()*constants.FieldHeight)
	}
}

// Render draws stars shifted down by the background offset, wrapping at the field bottom
func (r *StarfieldRenderer) Render(ctx Context, buf *Buffer) {
	if r.stars == nil {
		r.init()
	}
	style := fg(constants.ColorStar)
	for _, s := range r.stars {
		p := vmath.V2(s.X, vmath.Wrap(s.Y+ctx.Frame.BackgroundOffset, constants.FieldHeight))
		if x, y, ok := ctx.View.ToCell(p); ok {
			buf.Set(x, y, constants.GlyphStar, style)
		}
	}
}

// BorderRenderer frames the playfield columns
type BorderRenderer struct{}

// Render draws the left and right field edges
func (BorderRenderer) Render(ctx Context, buf *Buffer) {
	v := ctx.View
	style := fg(constants.ColorBorder)
	for y := v.Y; y < v.Y+v.Rows; y++ {
		buf.Set(v.X-1, y, constants.GlyphBorder, style)
		buf.Set(v.X+v.Cols, y, constants.GlyphBorder, style)
	}
}
