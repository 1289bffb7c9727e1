// Package input translates terminal events into engine intents
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-shooter/engine"
)

// Button is a game-over dialog choice
type Button uint8

const (
	ButtonPlayAgain Button = iota
	ButtonExit
)

// Handler maps key and mouse events to intents
// Not safe for concurrent use; owned by the main event goroutine
type Handler struct {
	keyStep     float64
	unitsPerCol float64

	selected Button

	// Mouse drag tracking
	mouseDown bool
	dragged   bool
	lastX     int
}

// NewHandler creates a handler moving keyStep field units per arrow press
func NewHandler(keyStep float64) *Handler {
	return &Handler{
		keyStep:     keyStep,
		unitsPerCol: 1,
	}
}

// SetScale sets the field distance of one terminal column for mouse drags
func (h *Handler) SetScale(unitsPerCol float64) {
	if unitsPerCol > 0 {
		h.unitsPerCol = unitsPerCol
	}
}

// Selected returns the highlighted game-over button
func (h *Handler) Selected() Button {
	return h.selected
}

// HandleEvent dispatches a terminal event; gameOver selects the dialog key map
func (h *Handler) HandleEvent(ev tcell.Event, gameOver bool) []engine.Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune(), gameOver)
	case *tcell.EventMouse:
		x, _ := ev.Position()
		return h.HandleMouse(x, ev.Buttons(), gameOver)
	}
	return nil
}

// HandleKey maps one key press
func (h *Handler) HandleKey(key tcell.Key, r rune, gameOver bool) []engine.Intent {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return one(engine.IntentExit)
	}
	if key == tcell.KeyRune && r == 'q' {
		return one(engine.IntentExit)
	}

	if gameOver {
		return h.dialogKey(key, r)
	}

	switch key {
	case tcell.KeyLeft:
		return []engine.Intent{engine.Move(-h.keyStep)}
	case tcell.KeyRight:
		return []engine.Intent{engine.Move(h.keyStep)}
	case tcell.KeyUp:
		return one(engine.IntentFire)
	case tcell.KeyRune:
		switch r {
		case 'h', 'a':
			return []engine.Intent{engine.Move(-h.keyStep)}
		case 'l', 'd':
			return []engine.Intent{engine.Move(h.keyStep)}
		case ' ', 'k', 'w':
			return one(engine.IntentFire)
		case 'p':
			return one(engine.IntentPause)
		}
	}
	return nil
}

func (h *Handler) dialogKey(key tcell.Key, r rune) []engine.Intent {
	switch key {
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown, tcell.KeyTab, tcell.KeyBacktab:
		h.toggle()
	case tcell.KeyEnter:
		return h.activate()
	case tcell.KeyRune:
		switch r {
		case 'h', 'l', 'j', 'k':
			h.toggle()
		case 'r':
			h.selected = ButtonPlayAgain
			return one(engine.IntentRestart)
		case ' ':
			return h.activate()
		}
	}
	return nil
}

func (h *Handler) toggle() {
	if h.selected == ButtonPlayAgain {
		h.selected = ButtonExit
	} else {
		h.selected = ButtonPlayAgain
	}
}

func (h *Handler) activate() []engine.Intent {
	if h.selected == ButtonExit {
		return one(engine.IntentExit)
	}
	return one(engine.IntentRestart)
}

// HandleMouse maps drags on the primary button to moves and clicks to fire
// Clicks during game over activate the highlighted button
func (h *Handler) HandleMouse(x int, buttons tcell.ButtonMask, gameOver bool) []engine.Intent {
	pressed := buttons&tcell.Button1 != 0

	switch {
	case pressed && !h.mouseDown:
		h.mouseDown = true
		h.dragged = false
		h.lastX = x
		return nil

	case pressed && h.mouseDown:
		if x == h.lastX || gameOver {
			return nil
		}
		dx := float64(x-h.lastX) * h.unitsPerCol
		h.lastX = x
		h.dragged = true
		return []engine.Intent{engine.Move(dx)}

	case !pressed && h.mouseDown:
		h.mouseDown = false
		if h.dragged {
			return nil
		}
		if gameOver {
			return h.activate()
		}
		return one(engine.IntentFire)
	}
	return nil
}

func one(k engine.IntentKind) []engine.Intent {
	return []engine.Intent{{Kind: k}}
}
