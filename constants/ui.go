package constants

import "github.com/gdamore/tcell/v2"

// BulletPalette is the set of colors a fired bullet is drawn from
var BulletPalette = []tcell.Color{
	tcell.NewHexColor(0xFF0000), // Red
	tcell.NewHexColor(0xFF3366), // Pink
	tcell.NewHexColor(0xFF6600), // Orange
	tcell.NewHexColor(0xFFCC00), // Yellow
}

// Entity colors
var (
	ColorBackground      = tcell.ColorBlack
	ColorStar            = tcell.NewRGBColor(90, 90, 110)
	ColorPlayer          = tcell.NewHexColor(0x7AA2F7)
	ColorPlayerShielded  = tcell.NewHexColor(0x3D5180)
	ColorShieldRing      = tcell.NewHexColor(0x00FFFF)
	ColorEnemy           = tcell.NewHexColor(0x9ECE6A)
	ColorBoss            = tcell.NewHexColor(0xBB9AF7)
	ColorBossHealth      = tcell.NewHexColor(0xF7768E)
	ColorEnemyProjectile = tcell.ColorYellow
	ColorReward          = tcell.NewHexColor(0x00FFFF)
	ColorExplosion       = tcell.NewHexColor(0xFF4444)
	ColorScore           = tcell.ColorWhite
	ColorHighScore       = tcell.ColorYellow
	ColorGameOver        = tcell.ColorRed
	ColorBorder          = tcell.NewRGBColor(60, 60, 80)
)

// Glyphs
const (
	GlyphPlayer          = 'A'
	GlyphEnemy           = 'V'
	GlyphBoss            = 'W'
	GlyphBullet          = '|'
	GlyphGlow            = '.'
	GlyphEnemyProjectile = '*'
	GlyphReward          = '+'
	GlyphRewardLeft      = '['
	GlyphRewardRight     = ']'
	GlyphExplosion       = '#'
	GlyphStar            = '.'
	GlyphBorder          = '│'
)

// UI strings
const (
	TextGameOver  = "Game Over!"
	TextPlayAgain = "Play Again"
	TextExit      = "Exit"
	TextPaused    = "PAUSED"
)
