package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/vmath"
)

// EntityID identifies a spawned entity for the lifetime of the process
// IDs are never reused, so collections cannot hold duplicates
type EntityID uint64

// Player is the ship; X is clamped, Y is fixed
type Player struct {
	X          float64
	Shield     bool
	TripleShot bool
}

// Pos returns the player's collision reference point
func (p Player) Pos() vmath.Vec2 {
	return vmath.V2(p.X, constants.PlayerHitY)
}

// Bullet is a player projectile travelling up
type Bullet struct {
	ID    EntityID
	Pos   vmath.Vec2
	Size  float64
	Color tcell.Color
	Glow  bool
}

// Enemy descends with horizontal jitter
type Enemy struct {
	ID  EntityID
	Pos vmath.Vec2
}

// Projectile is fired by the boss toward the bottom of the field
type Projectile struct {
	ID  EntityID
	Pos vmath.Vec2
}

// Reward is a falling power-up
type Reward struct {
	ID  EntityID
	Pos vmath.Vec2
}

// Explosion is a transient marker left by a kill or a boss hit
type Explosion struct {
	ID  EntityID
	Pos vmath.Vec2
}

// Boss replaces regular enemy spawns while active
// Pos is the boss's top-left anchor; hits are measured from its top-center
type Boss struct {
	Pos    vmath.Vec2
	Health int
	Active bool
}

// Session is the per-process scoreboard
type Session struct {
	Score            int
	HighScore        int
	GameOver         bool
	BackgroundOffset float64
	Round            int
	Tick             uint64
}

// compact keeps elements for which keep returns true, reusing the backing array
func compact[T any](s []T, keep func(*T) bool) []T {
	out := s[:0]
	for i := range s {
		if keep(&s[i]) {
			out = append(out, s[i])
		}
	}
	return out
}
