package engine

import "slices"

// Snapshot is an immutable copy of everything a renderer draws for one frame
type Snapshot struct {
	Player      Player
	Bullets     []Bullet
	Enemies     []Enemy
	Projectiles []Projectile
	Rewards     []Reward
	Explosions  []Explosion
	Boss        Boss

	Score            int
	HighScore        int
	GameOver         bool
	BackgroundOffset float64
	Round            int
	Tick             uint64

	// Paused is set by the Loop, the simulation itself has no pause state
	Paused bool
}

// Snapshot copies the current state; the result shares no memory with the simulation
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Player:           s.player,
		Bullets:          slices.Clone(s.bullets),
		Enemies:          slices.Clone(s.enemies),
		Projectiles:      slices.Clone(s.projectiles),
		Rewards:          slices.Clone(s.rewards),
		Explosions:       slices.Clone(s.explosions),
		Boss:             s.boss,
		Score:            s.session.Score,
		HighScore:        s.session.HighScore,
		GameOver:         s.session.GameOver,
		BackgroundOffset: s.session.BackgroundOffset,
		Round:            s.session.Round,
		Tick:             s.session.Tick,
	}
}
