package engine

// IntentKind identifies a player request produced by the input layer
type IntentKind uint8

const (
	IntentMove IntentKind = iota
	IntentFire
	IntentRestart
	IntentPause
	IntentExit
)

// String returns the intent name for logging
func (k IntentKind) String() string {
	switch k {
	case IntentMove:
		return "move"
	case IntentFire:
		return "fire"
	case IntentRestart:
		return "restart"
	case IntentPause:
		return "pause"
	case IntentExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Intent is a request applied by the Loop between ticks
// DX is the horizontal displacement in field units, used by IntentMove only
type Intent struct {
	Kind IntentKind
	DX   float64
}

// Move builds a horizontal move intent
func Move(dx float64) Intent {
	return Intent{Kind: IntentMove, DX: dx}
}
