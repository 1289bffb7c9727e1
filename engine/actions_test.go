package engine

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/lixenwraith/space-shooter/config"
	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/status"
	"github.com/lixenwraith/space-shooter/vmath"
)

func TestFireSingle(t *testing.T) {
	sim, reg := newTestSim(NewQuietRandom())

	sim.Fire()

	if len(sim.bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(sim.bullets))
	}
	b := sim.bullets[0]
	if b.Pos != vmath.V2(constants.FieldWidth/2, constants.FireY) {
		t.Errorf("unexpected bullet position %+v", b.Pos)
	}
	if b.Size != constants.BulletSize || !b.Glow {
		t.Errorf("unexpected bullet attributes %+v", b)
	}
	if got := reg.Ints.Get(status.KeyShotsFired).Load(); got != 1 {
		t.Errorf("expected shot counter 1, got %d", got)
	}
}

func TestFireTripleShot(t *testing.T) {
	rng := NewQuietRandom()
	rng.Ints = []int{0, 1, 3}
	sim, _ := newTestSim(rng)
	sim.player.TripleShot = true

	sim.Fire()

	if len(sim.bullets) != 3 {
		t.Fatalf("expected 3 bullets, got %d", len(sim.bullets))
	}
	offsets := []float64{-15, 0, 15}
	colors := []int{0, 1, 3}
	for i, b := range sim.bullets {
		want := vmath.V2(sim.player.X+offsets[i], constants.FireY)
		if b.Pos != want {
			t.Errorf("bullet %d: expected %+v, got %+v", i, want, b.Pos)
		}
		if b.Color != constants.BulletPalette[colors[i]] {
			t.Errorf("bullet %d: expected palette color %d", i, colors[i])
		}
	}
}

func TestFireWithOverridesPlayerFlag(t *testing.T) {
	sim, _ := newTestSim(NewQuietRandom())

	sim.FireWith(true)
	if len(sim.bullets) != 3 {
		t.Fatalf("expected 3 bullets, got %d", len(sim.bullets))
	}

	sim.player.TripleShot = true
	sim.FireWith(false)
	if len(sim.bullets) != 4 {
		t.Errorf("expected 4 bullets, got %d", len(sim.bullets))
	}
}

func TestBulletColorsComeFromPalette(t *testing.T) {
	sim := NewSimulation(config.Default(), NewRandom(1), nil)
	for range 50 {
		sim.Fire()
	}
	for _, b := range sim.bullets {
		if !slices.Contains(constants.BulletPalette, b.Color) {
			t.Fatalf("bullet color %v not in palette", b.Color)
		}
	}
}

func TestMovePlayerClamps(t *testing.T) {
	lo := constants.PlayerSize / 2
	hi := constants.FieldWidth - constants.PlayerSize/2

	tests := []struct {
		name string
		dx   float64
		want float64
	}{
		{"small right", 10, 210},
		{"small left", -10, 190},
		{"far right", 10000, hi},
		{"far left", -10000, lo},
		{"not a number", math.NaN(), lo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, _ := newTestSim(NewQuietRandom())
			sim.MovePlayer(tt.dx)
			if sim.player.X != tt.want {
				t.Errorf("expected %v, got %v", tt.want, sim.player.X)
			}
		})
	}
}

func TestPlayerStaysInBoundsAcrossTicks(t *testing.T) {
	sim := NewSimulation(config.Default(), NewRandom(7), nil)
	rng := NewRandom(99)
	lo := constants.PlayerSize / 2
	hi := constants.FieldWidth - constants.PlayerSize/2

	for range 2000 {
		sim.MovePlayer((rng.Float64() - 0.5) * 600)
		sim.Tick()
		if sim.GameOver() {
			sim.Restart()
		}
		if x := sim.player.X; x < lo || x > hi {
			t.Fatalf("player out of bounds: %v", x)
		}
	}
}

func TestRestartPartialReset(t *testing.T) {
	sim, reg := newTestSim(NewQuietRandom())
	sim.session.Score = 70
	sim.session.HighScore = 70
	sim.session.GameOver = true
	sim.player = Player{X: 50, Shield: true, TripleShot: true}
	sim.bullets = []Bullet{{ID: 1}}
	sim.enemies = []Enemy{{ID: 2}}
	sim.projectiles = []Projectile{{ID: 3}}
	sim.rewards = []Reward{{ID: 4}}
	sim.explosions = []Explosion{{ID: 5}}
	sim.boss = Boss{Pos: vmath.V2(1, 50), Health: 4, Active: true}

	sim.Restart()

	if sim.GameOver() || sim.Score() != 0 {
		t.Errorf("expected fresh round, got over=%v score=%d", sim.GameOver(), sim.Score())
	}
	if sim.HighScore() != 70 {
		t.Errorf("high score must persist, got %d", sim.HighScore())
	}
	if len(sim.bullets) != 0 || len(sim.enemies) != 0 || len(sim.projectiles) != 0 {
		t.Error("bullets, enemies and projectiles must be cleared")
	}
	if sim.player.X != constants.FieldWidth/2 {
		t.Errorf("expected player recentered, got %v", sim.player.X)
	}

	// Carried over into the new round
	if len(sim.rewards) != 1 || len(sim.explosions) != 1 {
		t.Error("rewards and explosions are not cleared by restart")
	}
	if !sim.boss.Active || sim.boss.Health != 4 {
		t.Error("boss state is not reset by restart")
	}
	if !sim.player.Shield || !sim.player.TripleShot {
		t.Error("power-ups are not reset by restart")
	}
	if sim.session.Round != 2 {
		t.Errorf("expected round 2, got %d", sim.session.Round)
	}
	if got := reg.Ints.Get(status.KeyRounds).Load(); got != 2 {
		t.Errorf("expected rounds counter 2, got %d", got)
	}
}

func TestRestartIdempotent(t *testing.T) {
	sim, _ := newTestSim(NewQuietRandom())
	sim.session.Score = 30
	sim.session.GameOver = true
	sim.bullets = []Bullet{{ID: 1}}
	sim.MovePlayer(-100)

	sim.Restart()
	once := sim.Snapshot()
	sim.Restart()
	twice := sim.Snapshot()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second restart changed state:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
