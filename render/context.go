package render

import "github.com/lixenwraith/space-shooter/engine"

// Context carries one frame's inputs to every renderer
type Context struct {
	Frame engine.Snapshot
	View  Viewport

	// PlayAgainSelected highlights the "Play Again" button on the game-over overlay
	PlayAgainSelected bool

	// Stats, when non-empty, is drawn beside the playfield
	Stats []string
}
