package constants

// Playfield geometry in simulation units
const (
	FieldWidth  = 400.0
	FieldHeight = 800.0

	// BackgroundScrollSpeed is added to the background offset every tick
	BackgroundScrollSpeed = 3.0
	// BackgroundWrap is the modulus of the background offset
	BackgroundWrap = 800.0
)

// Entity sizes
const (
	PlayerSize = 40.0
	EnemySize  = 16.0
	BulletSize = 12.0
	BossSize   = 50.0

	// RewardRadius and ExplosionRadius are visual only
	RewardRadius    = 10.0
	ExplosionRadius = 20.0
)

// Player placement
const (
	// FireY is where bullets leave the ship and where the ship is drawn
	FireY = 720.0

	// PlayerHitY is the reference height for pickups and projectile hits
	PlayerHitY = 750.0

	// TripleShotSpread is the horizontal offset of the side bullets
	TripleShotSpread = 15.0
)

// Speeds in units per tick
const (
	BulletSpeed          = 25.0
	EnemySpeed           = 2.0
	EnemyProjectileSpeed = 5.0
	RewardSpeed          = 3.0

	// EnemyJitter is the maximum horizontal drift of an enemy per tick
	EnemyJitter = 1
)

// Spawn and decay probabilities per tick
const (
	EnemySpawnRate       = 0.015
	RewardSpawnRate      = 0.02
	BossFireRate         = 0.03
	ExplosionDecayChance = 0.1
	ShieldChance         = 0.5
)

// Boss
const (
	// BossTriggerModulus activates a boss when score is a positive multiple of it
	BossTriggerModulus = 15

	BossHealth = 8
	BossSpawnY = 50.0

	// BossHitRadius is measured from the top-center of the boss
	BossHitRadius = BossSize / 1.5
)

// Collision radii
const (
	// PickupRadius is the reward pickup distance from the player
	PickupRadius = 25.0

	// PlayerHitRadius is the projectile hit distance from the player
	PlayerHitRadius = PlayerSize / 3
)

// Scoring
const (
	EnemyScore = 10
	BossScore  = 100
)
