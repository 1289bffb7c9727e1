package render

import (
	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/vmath"
)

// EntityRenderer draws bullets, enemies, boss projectiles and rewards
type EntityRenderer struct{}

// Render draws every small entity as a single glyph
func (EntityRenderer) Render(ctx Context, buf *Buffer) {
	v := ctx.View
	f := ctx.Frame

	for _, b := range f.Bullets {
		x, y, ok := v.ToCell(b.Pos)
		if !ok {
			continue
		}
		if b.Glow {
			glow := fg(dim(b.Color, 0.4))
			for _, dy := range []int{-1, 1} {
				if v.Contains(x, y+dy) && buf.Get(x, y+dy).Rune == ' ' {
					buf.Set(x, y+dy, constants.GlyphGlow, glow)
				}
			}
		}
		buf.Set(x, y, constants.GlyphBullet, fg(b.Color).Bold(true))
	}

	enemyStyle := fg(constants.ColorEnemy)
	for _, e := range f.Enemies {
		if x, y, ok := v.ToCell(e.Pos); ok {
			buf.Set(x, y, constants.GlyphEnemy, enemyStyle)
		}
	}

	projStyle := fg(constants.ColorEnemyProjectile)
	for _, p := range f.Projectiles {
		if x, y, ok := v.ToCell(p.Pos); ok {
			buf.Set(x, y, constants.GlyphEnemyProjectile, projStyle)
		}
	}

	rewardStyle := fg(constants.ColorReward).Bold(true)
	rewardReach := int(constants.RewardRadius / v.UnitsPerCol())
	for _, r := range f.Rewards {
		x, y, ok := v.ToCell(r.Pos)
		if !ok {
			continue
		}
		buf.Set(x, y, constants.GlyphReward, rewardStyle)
		if rewardReach > 0 {
			if v.Contains(x-rewardReach, y) {
				buf.Set(x-rewardReach, y, constants.GlyphRewardLeft, rewardStyle)
			}
			if v.Contains(x+rewardReach, y) {
				buf.Set(x+rewardReach, y, constants.GlyphRewardRight, rewardStyle)
			}
		}
	}
}

// ExplosionRenderer draws explosion markers spanning their radius horizontally
type ExplosionRenderer struct{}

// Render draws each explosion as a short burst of cells
func (ExplosionRenderer) Render(ctx Context, buf *Buffer) {
	v := ctx.View
	reach := int(constants.ExplosionRadius / v.UnitsPerCol())
	style := fg(constants.ColorExplosion)
	for _, e := range ctx.Frame.Explosions {
		x, y, ok := v.ToCell(e.Pos)
		if !ok {
			continue
		}
		for dx := -reach; dx <= reach; dx++ {
			if v.Contains(x+dx, y) {
				buf.Set(x+dx, y, constants.GlyphExplosion, style)
			}
		}
	}
}

// BossRenderer draws the active boss across its width with a health bar beneath
type BossRenderer struct{}

// Render draws nothing while no boss is active
func (BossRenderer) Render(ctx Context, buf *Buffer) {
	boss := ctx.Frame.Boss
	if !boss.Active {
		return
	}
	v := ctx.View

	left, y, ok := v.ToCell(boss.Pos)
	if !ok {
		return
	}
	right, _, ok := v.ToCell(boss.Pos.Add(vmath.V2(constants.BossSize, 0)))
	if !ok {
		right = v.X + v.Cols
	}

	style := fg(constants.ColorBoss).Bold(true)
	for x := left; x < max(right, left+1); x++ {
		buf.Set(x, y, constants.GlyphBoss, style)
	}

	healthStyle := fg(constants.ColorBossHealth)
	for i := 0; i < boss.Health && v.Contains(left+i, y+1); i++ {
		buf.Set(left+i, y+1, '=', healthStyle)
	}
}

// PlayerRenderer draws the ship at its firing height
type PlayerRenderer struct{}

// Render dims the ship and draws a ring while the shield is up
func (PlayerRenderer) Render(ctx Context, buf *Buffer) {
	p := ctx.Frame.Player
	x, y, ok := ctx.View.ToCell(vmath.V2(p.X, constants.FireY))
	if !ok {
		return
	}

	color := constants.ColorPlayer
	if p.Shield {
		color = constants.ColorPlayerShielded
	}
	style := fg(color).Bold(true)
	buf.Set(x-1, y, '/', style)
	buf.Set(x, y, constants.GlyphPlayer, style)
	buf.Set(x+1, y, '\\', style)

	if p.Shield {
		ring := fg(constants.ColorShieldRing)
		buf.Set(x-2, y, '(', ring)
		buf.Set(x+2, y, ')', ring)
	}
}
