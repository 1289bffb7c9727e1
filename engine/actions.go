package engine

import (
	"log"

	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/vmath"
)

// Fire launches one bullet, or three when triple shot is active
func (s *Simulation) Fire() {
	s.FireWith(s.player.TripleShot)
}

// FireWith launches bullets from the player's current position
// tripleShot spreads three bullets at -spread, 0, +spread
func (s *Simulation) FireWith(tripleShot bool) {
	if tripleShot {
		s.addBullet(s.player.X - constants.TripleShotSpread)
		s.addBullet(s.player.X)
		s.addBullet(s.player.X + constants.TripleShotSpread)
		return
	}
	s.addBullet(s.player.X)
}

func (s *Simulation) addBullet(x float64) {
	palette := constants.BulletPalette
	s.bullets = append(s.bullets, Bullet{
		ID:    s.newID(),
		Pos:   vmath.V2(x, constants.FireY),
		Size:  constants.BulletSize,
		Color: palette[s.rng.Intn(len(palette))],
		Glow:  true,
	})
	s.statShots.Add(1)
}

// MovePlayer shifts the ship horizontally by dx and clamps it inside the field
func (s *Simulation) MovePlayer(dx float64) {
	s.player.X = clampPlayerX(s.player.X + dx)
}

func clampPlayerX(x float64) float64 {
	return vmath.Clamp(x, constants.PlayerSize/2, constants.FieldWidth-constants.PlayerSize/2)
}

// Restart begins a new round
// Rewards, explosions, boss state and power-ups carry over into the new round
// Repeated calls leave the same state as a single call
func (s *Simulation) Restart() {
	wasOver := s.session.GameOver

	s.session.GameOver = false
	s.session.Score = 0
	s.enemies = s.enemies[:0]
	s.bullets = s.bullets[:0]
	s.projectiles = s.projectiles[:0]
	s.player.X = constants.FieldWidth / 2

	if wasOver {
		s.session.Round++
		s.statRounds.Add(1)
		log.Printf("round %d started", s.session.Round)
	}
}
