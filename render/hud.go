package render

import (
	"fmt"

	"github.com/lixenwraith/space-shooter/constants"
)

// HUDRenderer draws score, power-ups and pause state above the playfield
type HUDRenderer struct{}

// Render shows the high score only once the round is over
func (HUDRenderer) Render(ctx Context, buf *Buffer) {
	v := ctx.View
	f := ctx.Frame
	y := v.Y - hudRows

	buf.SetString(v.X, y, fmt.Sprintf("Score: %d", f.Score), fg(constants.ColorScore).Bold(true))

	if f.GameOver {
		hs := fmt.Sprintf("High Score: %d", f.HighScore)
		buf.SetString(v.X+v.Cols-len(hs), y, hs, fg(constants.ColorHighScore).Bold(true))
		return
	}

	status := ""
	if f.Player.Shield {
		status += "S"
	}
	if f.Player.TripleShot {
		status += "T"
	}
	if f.Paused {
		status = constants.TextPaused
	}
	if status != "" {
		buf.SetString(v.X+v.Cols-len(status), y, status, fg(constants.ColorReward))
	}
}

// StatsRenderer lists runtime counters beside the playfield
type StatsRenderer struct {
	Enabled bool
}

// IsVisible implements VisibilityToggle
func (r *StatsRenderer) IsVisible() bool {
	return r.Enabled
}

// Render draws one counter per row to the right of the border
func (r *StatsRenderer) Render(ctx Context, buf *Buffer) {
	v := ctx.View
	style := fg(constants.ColorBorder)
	x := v.X + v.Cols + 2
	for i, line := range ctx.Stats {
		buf.SetString(x, v.Y+i, line, style)
	}
}

// GameOverRenderer draws the end-of-round dialog with its two buttons
type GameOverRenderer struct{}

// Render draws nothing while the round is running
func (GameOverRenderer) Render(ctx Context, buf *Buffer) {
	if !ctx.Frame.GameOver {
		return
	}
	v := ctx.View
	cy := v.Y + v.Rows/2

	title := constants.TextGameOver
	buf.SetString(v.X+(v.Cols-len(title))/2, cy-1, title, fg(constants.ColorGameOver).Bold(true))

	play := "[ " + constants.TextPlayAgain + " ]"
	exit := "[ " + constants.TextExit + " ]"
	playStyle := fg(constants.ColorScore)
	exitStyle := fg(constants.ColorScore)
	if ctx.PlayAgainSelected {
		playStyle = playStyle.Reverse(true)
	} else {
		exitStyle = exitStyle.Reverse(true)
	}
	buf.SetString(v.X+(v.Cols-len(play))/2, cy+1, play, playStyle)
	buf.SetString(v.X+(v.Cols-len(exit))/2, cy+2, exit, exitStyle)
}
