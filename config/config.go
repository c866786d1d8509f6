package config

import (
	"image/color"
	"math"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64
	JumpForce float64
	StartX    float64
	StartY    float64

	// Combat
	MaxHealth      float64
	InvulnDuration time.Duration

	// Lives
	StartingLives int

	// Abilities
	SplatCooldown   time.Duration
	MaxChargeTime   time.Duration
	GlobalCooldown  time.Duration
	BarrageInterval time.Duration
	ContactDuration time.Duration
	ContactCooldown time.Duration
	ContactDamage   float64

	// Dimensions
	Width  float64
	Height float64
}

// CharacterConfig describes the abilities granted by a selectable character.
type CharacterConfig struct {
	Name             string
	CanShoot         bool
	CanSplat         bool
	CanCharge        bool
	HasContactDamage bool
	ShootCooldown    time.Duration
	Color            color.RGBA
	InkColor         color.RGBA
}

// ShotConfig contains straight player shot values
type ShotConfig struct {
	Width  float64
	Height float64
	Speed  float64
	Damage float64
}

// SplatConfig contains melee splat particle values
type SplatConfig struct {
	Count             int
	AirborneCount     int
	Spread            float64 // radians either side of the facing direction
	MinSize           float64
	SizeRange         float64
	MinSpeed          float64
	SpeedRange        float64
	AirborneSpeedMult float64
	Lift              float64 // vertical bias added to every particle
	AirborneLift      float64
	Gravity           float64
	MinLifespan       int // ticks
	LifespanRange     int
	AirborneRange     int
	MaxSpawnDelay     float64 // ticks a particle may start "in the past"
	Damage            float64
	AirborneDamageMul float64
}

// BarrageStep maps a minimum charge level to a barrage duration.
type BarrageStep struct {
	MinLevel float64
	Duration time.Duration
}

// MultiplierStep maps a minimum barrage duration to a damage multiplier.
type MultiplierStep struct {
	MinDuration time.Duration
	Multiplier  float64
}

// ChargeConfig contains charged shot and barrage values
type ChargeConfig struct {
	Width      float64
	Height     float64
	Speed      float64
	BaseDamage float64

	// Ordered by descending threshold; the first match wins.
	DurationSteps   []BarrageStep
	MinBarrage      time.Duration // any charge above zero
	MultiplierSteps []MultiplierStep
}

// OctoSlobConfig contains the stationary shooter's values
type OctoSlobConfig struct {
	Width             float64
	Height            float64
	Health            float64
	ShootCooldown     time.Duration
	DetectionRange    float64
	ProjectileSpeed   float64
	ProjectileSize    float64
	ProjectileDamage  float64
	ProjectileGravity float64
	Color             color.RGBA
	InkColor          color.RGBA
}

// OctolingConfig contains the mobile patrol/chase enemy's values
type OctolingConfig struct {
	Width     float64
	Height    float64
	Health    float64
	Speed     float64
	JumpForce float64

	// Perception
	DetectionRange float64
	VerticalBand   float64

	// Patrol
	MovementRange    float64
	EdgeMargin       float64
	JumpCooldown     time.Duration
	RandomJumpChance float64 // per tick

	// Mode switching
	ModeSwitchMin    time.Duration
	ModeSwitchJitter time.Duration
	ChaseChance      float64

	// Chase
	ChaseSpeedMult  float64
	HigherThreshold float64
	HigherJumpMult  float64
	HopThreshold    float64
	HopJumpMult     float64

	// Ranged combat
	ShootCooldown     time.Duration
	ShootRange        float64
	ProjectileSpeed   float64
	ProjectileSize    float64
	ProjectileDamage  float64
	ProjectileGravity float64

	Color    color.RGBA
	InkColor color.RGBA
}

// EnemyConfig contains values shared by every enemy type
type EnemyConfig struct {
	Count            int
	OctolingChance   float64
	HitFlash         time.Duration
	SpawnBuffer      float64
	ArmorDropChance  float64 // Octoling only, checked first
	HealthDropChance float64
}

// ProjectileConfig contains projectile system limits and splash values
type ProjectileConfig struct {
	Capacity          int
	CullMargin        float64
	VerticalLimit     float64 // below the viewport bottom
	SideHitMinSpeed   float64
	SplashBase        int
	SplashMax         int
	SplashMinSpeed    float64
	SplashSpeedRange  float64
	SplashMinLifespan int
	SplashLifeRange   int
	SplashMinSize     float64
	SplashSizeRange   float64
	SplashGravity     float64
	PlayerHitCount    int
	ContactCount      int
	ContactMinSpeed   float64
	ContactSpeedRange float64
}

// PickupKindConfig contains values for one pickup kind
type PickupKindConfig struct {
	Width    float64
	Height   float64
	Amount   float64
	LaunchVY float64
	Damping  float64
	Color    color.RGBA
}

// PickupConfig contains pickup physics values
type PickupConfig struct {
	Health        PickupKindConfig
	Armor         PickupKindConfig
	GravityScale  float64
	RestThreshold float64
	PulsePeriod   float32       // ticks per pulse cycle
	Lifetime      time.Duration // zero keeps pickups forever
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// DamageNumberConfig contains floating number values
type DamageNumberConfig struct {
	Lifespan      int // ticks
	RiseSpeed     float64
	DriftRange    float64
	HighThreshold float64
	MidThreshold  float64
}

// WorldConfig contains world generation values
type WorldConfig struct {
	GroundY     float64
	LeftMargin  float64
	RightMargin float64
	CellSize    int
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	Gravity float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Characters map[string]CharacterConfig
var Shot ShotConfig
var Splat SplatConfig
var Charge ChargeConfig
var OctoSlob OctoSlobConfig
var Octoling OctolingConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Pickup PickupConfig
var Camera CameraConfig
var DamageNumber DamageNumberConfig
var World WorldConfig

// Character identifiers
const (
	CharacterSharpshooter = "sharpshooter"
	CharacterSplatter     = "splatter"
	CharacterCharger      = "charger"
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Teal         = color.RGBA{R: 0, G: 200, B: 180, A: 255}
	Brown        = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	Slate        = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	Physics = PhysicsConfig{
		Gravity: 0.8,
	}

	World = WorldConfig{
		GroundY:     550,
		LeftMargin:  100,
		RightMargin: 200,
		CellSize:    32,
	}

	Player = PlayerConfig{
		Speed:     5,
		JumpForce: 15,
		StartX:    100,
		StartY:    300,

		MaxHealth:      75,
		InvulnDuration: time.Second,

		StartingLives: 3,

		SplatCooldown:   800 * time.Millisecond,
		MaxChargeTime:   3 * time.Second,
		GlobalCooldown:  time.Second,
		BarrageInterval: 100 * time.Millisecond,
		ContactDuration: 500 * time.Millisecond,
		ContactCooldown: 1500 * time.Millisecond,
		ContactDamage:   10,

		Width:  70,
		Height: 70,
	}

	Characters = map[string]CharacterConfig{
		CharacterSharpshooter: {
			Name:          "Sharpshooter",
			CanShoot:      true,
			ShootCooldown: 350 * time.Millisecond,
			Color:         Blue,
			InkColor:      Blue,
		},
		CharacterSplatter: {
			Name:             "Splatter",
			CanSplat:         true,
			HasContactDamage: true,
			ShootCooldown:    500 * time.Millisecond,
			Color:            Magenta,
			InkColor:         Magenta,
		},
		CharacterCharger: {
			Name:          "Charger",
			CanCharge:     true,
			ShootCooldown: 500 * time.Millisecond,
			Color:         Orange,
			InkColor:      Orange,
		},
	}

	Shot = ShotConfig{
		Width:  15,
		Height: 15,
		Speed:  10,
		Damage: 15,
	}

	Splat = SplatConfig{
		Count:             8,
		AirborneCount:     10,
		Spread:            math.Pi / 4,
		MinSize:           10,
		SizeRange:         10,
		MinSpeed:          3,
		SpeedRange:        5,
		AirborneSpeedMult: 1.75,
		Lift:              -2,
		AirborneLift:      -3,
		Gravity:           0.2,
		MinLifespan:       20,
		LifespanRange:     20,
		AirborneRange:     30,
		MaxSpawnDelay:     5,
		Damage:            5,
		AirborneDamageMul: 1.5,
	}

	Charge = ChargeConfig{
		Width:      18,
		Height:     18,
		Speed:      12,
		BaseDamage: 10,
		DurationSteps: []BarrageStep{
			{MinLevel: 1.0, Duration: 1500 * time.Millisecond},
			{MinLevel: 0.5, Duration: 750 * time.Millisecond},
			{MinLevel: 0.25, Duration: 500 * time.Millisecond},
		},
		MinBarrage: 250 * time.Millisecond,
		MultiplierSteps: []MultiplierStep{
			{MinDuration: 1500 * time.Millisecond, Multiplier: 1.5},
			{MinDuration: 750 * time.Millisecond, Multiplier: 1.25},
			{MinDuration: 500 * time.Millisecond, Multiplier: 1.1},
		},
	}

	OctoSlob = OctoSlobConfig{
		Width:             50,
		Height:            50,
		Health:            100,
		ShootCooldown:     3 * time.Second,
		DetectionRange:    400,
		ProjectileSpeed:   7,
		ProjectileSize:    12,
		ProjectileDamage:  5,
		ProjectileGravity: 0.05,
		Color:             Purple,
		InkColor:          Purple,
	}

	Octoling = OctolingConfig{
		Width:     46,
		Height:    46,
		Health:    60,
		Speed:     2,
		JumpForce: 13,

		DetectionRange: 450,
		VerticalBand:   200,

		MovementRange:    150,
		EdgeMargin:       10,
		JumpCooldown:     1200 * time.Millisecond,
		RandomJumpChance: 0.01,

		ModeSwitchMin:    3 * time.Second,
		ModeSwitchJitter: 2 * time.Second,
		ChaseChance:      0.7,

		ChaseSpeedMult:  1.2,
		HigherThreshold: 60,
		HigherJumpMult:  1.2,
		HopThreshold:    100,
		HopJumpMult:     1.1,

		ShootCooldown:     1500 * time.Millisecond,
		ShootRange:        350,
		ProjectileSpeed:   6,
		ProjectileSize:    10,
		ProjectileDamage:  5,
		ProjectileGravity: 0.05,

		Color:    Teal,
		InkColor: Teal,
	}

	Enemy = EnemyConfig{
		Count:            8,
		OctolingChance:   0.4,
		HitFlash:         200 * time.Millisecond,
		SpawnBuffer:      20,
		ArmorDropChance:  0.5,
		HealthDropChance: 0.5,
	}

	Projectile = ProjectileConfig{
		Capacity:          100,
		CullMargin:        100,
		VerticalLimit:     100,
		SideHitMinSpeed:   2,
		SplashBase:        3,
		SplashMax:         8,
		SplashMinSpeed:    1,
		SplashSpeedRange:  2,
		SplashMinLifespan: 8,
		SplashLifeRange:   8,
		SplashMinSize:     4,
		SplashSizeRange:   4,
		SplashGravity:     0.2,
		PlayerHitCount:    6,
		ContactCount:      5,
		ContactMinSpeed:   2,
		ContactSpeedRange: 3,
	}

	Pickup = PickupConfig{
		Health: PickupKindConfig{
			Width:    20,
			Height:   20,
			Amount:   20,
			LaunchVY: -6,
			Damping:  0.5,
			Color:    Green,
		},
		Armor: PickupKindConfig{
			Width:    20,
			Height:   20,
			Amount:   15,
			LaunchVY: -7,
			Damping:  0.6,
			Color:    White,
		},
		GravityScale:  0.5,
		RestThreshold: 1,
		PulsePeriod:   60,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	DamageNumber = DamageNumberConfig{
		Lifespan:      40,
		RiseSpeed:     -1.5,
		DriftRange:    1.5,
		HighThreshold: 20,
		MidThreshold:  10,
	}
}

// Character returns the configuration for id.
func Character(id string) (CharacterConfig, bool) {
	c, ok := Characters[id]
	return c, ok
}
