package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/space-shooter/config"
	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/status"
	"github.com/lixenwraith/space-shooter/vmath"
)

// Simulation owns all mutable game state and advances it one fixed step per Tick
// Not safe for concurrent use: exactly one goroutine (the Loop) may call it
type Simulation struct {
	rng   Random
	rates config.Rates

	nextID EntityID

	player      Player
	bullets     []Bullet
	enemies     []Enemy
	projectiles []Projectile
	rewards     []Reward
	explosions  []Explosion
	boss        Boss
	session     Session

	// Cached metric pointers
	statTicks   *atomic.Int64
	statShots   *atomic.Int64
	statKills   *atomic.Int64
	statBosses  *atomic.Int64
	statBossKO  *atomic.Int64
	statPowerUp *atomic.Int64
	statRounds  *atomic.Int64
}

// NewSimulation creates a simulation ready for its first round
// reg may be nil when counters are not wanted
func NewSimulation(cfg config.Config, rng Random, reg *status.Registry) *Simulation {
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &Simulation{
		rng:         rng,
		rates:       cfg.Rates,
		player:      Player{X: constants.FieldWidth / 2, Shield: cfg.StartShielded},
		bullets:     make([]Bullet, 0, 64),
		enemies:     make([]Enemy, 0, 32),
		projectiles: make([]Projectile, 0, 16),
		rewards:     make([]Reward, 0, 8),
		explosions:  make([]Explosion, 0, 16),
		session:     Session{Round: 1},
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statShots:   reg.Ints.Get(status.KeyShotsFired),
		statKills:   reg.Ints.Get(status.KeyEnemiesKilled),
		statBosses:  reg.Ints.Get(status.KeyBossesSpawned),
		statBossKO:  reg.Ints.Get(status.KeyBossesKilled),
		statPowerUp: reg.Ints.Get(status.KeyPowerUps),
		statRounds:  reg.Ints.Get(status.KeyRounds),
	}
	s.statRounds.Add(1)
	return s
}

// GameOver reports whether the current round has ended
func (s *Simulation) GameOver() bool {
	return s.session.GameOver
}

// Score returns the current round's score
func (s *Simulation) Score() int {
	return s.session.Score
}

// HighScore returns the best score over all finished rounds
func (s *Simulation) HighScore() int {
	return s.session.HighScore
}

func (s *Simulation) newID() EntityID {
	s.nextID++
	return s.nextID
}

// Tick advances the world by one fixed step; no-op once the round is over
func (s *Simulation) Tick() {
	if s.session.GameOver {
		return
	}
	s.session.Tick++
	s.statTicks.Add(1)

	s.session.BackgroundOffset = vmath.Wrap(
		s.session.BackgroundOffset+constants.BackgroundScrollSpeed,
		constants.BackgroundWrap,
	)

	s.moveBullets()
	s.moveEnemies()
	s.moveProjectiles()
	s.moveRewards()
	s.decayExplosions()

	s.activateBoss()
	s.spawnEnemy()
	s.spawnReward()
	s.bossFire()

	s.resolveEnemyHits()
	s.resolveBossHit()
	s.collectReward()
	s.checkPlayerHit()
}

func (s *Simulation) moveBullets() {
	s.bullets = compact(s.bullets, func(b *Bullet) bool {
		b.Pos.Y -= constants.BulletSpeed
		return b.Pos.Y > 0
	})
}

func (s *Simulation) moveEnemies() {
	lo, hi := constants.EnemySize, constants.FieldWidth-constants.EnemySize
	s.enemies = compact(s.enemies, func(e *Enemy) bool {
		jitter := s.rng.Intn(2*constants.EnemyJitter+1) - constants.EnemyJitter
		e.Pos.X = vmath.Clamp(e.Pos.X+float64(jitter), lo, hi)
		e.Pos.Y += constants.EnemySpeed
		return e.Pos.Y < constants.FieldHeight
	})
}

func (s *Simulation) moveProjectiles() {
	s.projectiles = compact(s.projectiles, func(p *Projectile) bool {
		p.Pos.Y += constants.EnemyProjectileSpeed
		return p.Pos.Y < constants.FieldHeight
	})
}

func (s *Simulation) moveRewards() {
	s.rewards = compact(s.rewards, func(r *Reward) bool {
		r.Pos.Y += constants.RewardSpeed
		return r.Pos.Y < constants.FieldHeight
	})
}

// decayExplosions removes each explosion independently with the decay probability
func (s *Simulation) decayExplosions() {
	s.explosions = compact(s.explosions, func(*Explosion) bool {
		return s.rng.Float64() >= s.rates.ExplosionDecay
	})
}

// activateBoss checks the score value itself, not the number of kills
func (s *Simulation) activateBoss() {
	score := s.session.Score
	if score <= 0 || score%constants.BossTriggerModulus != 0 || s.boss.Active {
		return
	}
	s.boss = Boss{
		Pos:    vmath.V2(s.rng.Float64()*(constants.FieldWidth-constants.BossSize), constants.BossSpawnY),
		Health: constants.BossHealth,
		Active: true,
	}
	s.statBosses.Add(1)
	log.Printf("boss spawned at x=%.0f, score=%d", s.boss.Pos.X, score)
}

func (s *Simulation) spawnEnemy() {
	if s.boss.Active || s.rng.Float64() >= s.rates.EnemySpawn {
		return
	}
	x := s.rng.Float64()*(constants.FieldWidth-2*constants.EnemySize) + constants.EnemySize
	s.enemies = append(s.enemies, Enemy{ID: s.newID(), Pos: vmath.V2(x, 0)})
}

func (s *Simulation) spawnReward() {
	if s.rng.Float64() >= s.rates.RewardSpawn {
		return
	}
	x := s.rng.Float64() * constants.FieldWidth
	s.rewards = append(s.rewards, Reward{ID: s.newID(), Pos: vmath.V2(x, 0)})
}

func (s *Simulation) bossFire() {
	if !s.boss.Active || s.rng.Float64() >= s.rates.BossFire {
		return
	}
	origin := s.boss.Pos.Add(vmath.V2(constants.BossSize/2, constants.BossSize))
	s.projectiles = append(s.projectiles, Projectile{ID: s.newID(), Pos: origin})
}

func (s *Simulation) spawnExplosion(at vmath.Vec2) {
	s.explosions = append(s.explosions, Explosion{ID: s.newID(), Pos: at})
}

// resolveEnemyHits lets each bullet kill at most one enemy, first in list order
func (s *Simulation) resolveEnemyHits() {
	s.bullets = compact(s.bullets, func(b *Bullet) bool {
		radius := constants.EnemySize + b.Size/2
		for i := range s.enemies {
			if !vmath.Within(b.Pos, s.enemies[i].Pos, radius) {
				continue
			}
			s.spawnExplosion(s.enemies[i].Pos)
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			s.session.Score += constants.EnemyScore
			s.statKills.Add(1)
			return false
		}
		return true
	})
}

// resolveBossHit consumes at most one bullet per tick
func (s *Simulation) resolveBossHit() {
	if !s.boss.Active {
		return
	}
	center := s.boss.Pos.Add(vmath.V2(constants.BossSize/2, 0))
	for i := range s.bullets {
		if !vmath.Within(s.bullets[i].Pos, center, constants.BossHitRadius) {
			continue
		}
		s.bullets = append(s.bullets[:i], s.bullets[i+1:]...)
		s.boss.Health--
		s.spawnExplosion(s.boss.Pos)
		if s.boss.Health <= 0 {
			s.boss.Active = false
			s.session.Score += constants.BossScore
			s.statBossKO.Add(1)
			log.Printf("boss defeated, score=%d", s.session.Score)
		}
		return
	}
}

func (s *Simulation) collectReward() {
	at := s.player.Pos()
	for i := range s.rewards {
		if !vmath.Within(s.rewards[i].Pos, at, constants.PickupRadius) {
			continue
		}
		s.rewards = append(s.rewards[:i], s.rewards[i+1:]...)
		if s.rng.Float64() < constants.ShieldChance {
			s.player.Shield = true
		} else {
			s.player.TripleShot = true
		}
		s.statPowerUp.Add(1)
		return
	}
}

// checkPlayerHit ends the round; an active shield blocks every hit and is never consumed
func (s *Simulation) checkPlayerHit() {
	if s.player.Shield {
		return
	}
	at := s.player.Pos()
	for i := range s.projectiles {
		if vmath.Within(s.projectiles[i].Pos, at, constants.PlayerHitRadius) {
			s.session.GameOver = true
			s.session.HighScore = max(s.session.HighScore, s.session.Score)
			log.Printf("round %d over, score=%d, high=%d", s.session.Round, s.session.Score, s.session.HighScore)
			return
		}
	}
}
