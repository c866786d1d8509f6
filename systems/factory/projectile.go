package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
)

// ProjectileSpec describes a projectile to spawn.
type ProjectileSpec struct {
	Kind      components.ProjectileKind
	Rect      gamemath.Rect
	VX, VY    float64
	Gravity   float64
	Damage    float64
	CanDamage bool
	Hostile   bool
	Color     color.RGBA
	Age       float64
	Lifespan  float64
}

// CreateProjectile spawns spec into the projectile set.
func CreateProjectile(w donburi.World, spec ProjectileSpec) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)
	components.Bounds.Set(p, &components.BoundsData{Rect: spec.Rect})
	components.Projectile.Set(p, &components.ProjectileData{
		Kind:      spec.Kind,
		VX:        spec.VX,
		VY:        spec.VY,
		Gravity:   spec.Gravity,
		Damage:    spec.Damage,
		CanDamage: spec.CanDamage,
		Hostile:   spec.Hostile,
		Color:     spec.Color,
		Age:       spec.Age,
		Lifespan:  spec.Lifespan,
	})
	attachObject(w, p, tags.ResolvProjectile)
	return p
}

// muzzle returns the spawn point in front of the shooter at mid height.
func muzzle(shooter gamemath.Rect, facing float64) (x, y float64) {
	x = shooter.X
	if facing > 0 {
		x = shooter.Right()
	}
	return x, shooter.CenterY()
}

// CreateShot fires a straight player shot in the facing direction.
func CreateShot(w donburi.World, shooter gamemath.Rect, facing float64, c color.RGBA) *donburi.Entry {
	x, y := muzzle(shooter, facing)
	return CreateProjectile(w, ProjectileSpec{
		Kind:      components.ProjectileStraight,
		Rect:      gamemath.Rect{X: x, Y: y, W: config.Shot.Width, H: config.Shot.Height},
		VX:        config.Shot.Speed * facing,
		Damage:    config.Shot.Damage,
		CanDamage: true,
		Color:     c,
	})
}

// CreateChargedShot fires one barrage projectile.
func CreateChargedShot(w donburi.World, shooter gamemath.Rect, facing, multiplier float64, c color.RGBA) *donburi.Entry {
	x, y := muzzle(shooter, facing)
	return CreateProjectile(w, ProjectileSpec{
		Kind:      components.ProjectileStraight,
		Rect:      gamemath.Rect{X: x, Y: y, W: config.Charge.Width, H: config.Charge.Height},
		VX:        config.Charge.Speed * facing,
		Damage:    config.Charge.BaseDamage * multiplier,
		CanDamage: true,
		Color:     c,
	})
}

// CreateSplat throws a cone of damaging particles in front of the shooter.
// Airborne splats are larger, faster and stronger.
func CreateSplat(w donburi.World, rng *rand.Rand, shooter gamemath.Rect, facing float64, airborne bool, c color.RGBA) int {
	cfg := config.Splat
	count, speedMult, damage, lift, lifeRange := cfg.Count, 1.0, cfg.Damage, cfg.Lift, cfg.LifespanRange
	if airborne {
		count = cfg.AirborneCount
		speedMult = cfg.AirborneSpeedMult
		damage *= cfg.AirborneDamageMul
		lift = cfg.AirborneLift
		lifeRange = cfg.AirborneRange
	}

	x := shooter.X - 50
	if facing > 0 {
		x = shooter.Right() + 10
	}
	y := shooter.CenterY()

	for i := 0; i < count; i++ {
		angle := rng.Float64()*2*cfg.Spread - cfg.Spread
		speed := (cfg.MinSpeed + rng.Float64()*cfg.SpeedRange) * speedMult
		vx, vy := gamemath.Cone(facing, angle, speed)
		CreateProjectile(w, ProjectileSpec{
			Kind: components.ProjectileSplat,
			Rect: gamemath.Rect{
				X: x,
				Y: y,
				W: cfg.MinSize + rng.Float64()*cfg.SizeRange,
				H: cfg.MinSize + rng.Float64()*cfg.SizeRange,
			},
			VX:        vx,
			VY:        vy + lift,
			Gravity:   cfg.Gravity,
			Damage:    damage,
			CanDamage: true,
			Color:     c,
			Age:       -cfg.MaxSpawnDelay * rng.Float64(),
			Lifespan:  float64(cfg.MinLifespan) + rng.Float64()*float64(lifeRange),
		})
	}
	return count
}

// CreateEnemyShot fires an arcing projectile from the shooter's center at
// the target's center.
func CreateEnemyShot(w donburi.World, shooter, target gamemath.Rect, speed, size, damage, gravity float64, c color.RGBA) *donburi.Entry {
	vx, vy := gamemath.Aim(shooter.CenterX(), shooter.CenterY(), target.CenterX(), target.CenterY(), speed)
	return CreateProjectile(w, ProjectileSpec{
		Kind:      components.ProjectileArcing,
		Rect:      gamemath.Rect{X: shooter.CenterX(), Y: shooter.CenterY(), W: size, H: size},
		VX:        vx,
		VY:        vy,
		Gravity:   gravity,
		Damage:    damage,
		CanDamage: true,
		Hostile:   true,
		Color:     c,
	})
}

// Burst describes a ring of cosmetic splat particles.
type Burst struct {
	X, Y       float64
	Count      int
	MinSpeed   float64
	SpeedRange float64
	MinSize    float64
	SizeRange  float64
	MinLife    float64
	LifeRange  float64
	Lift       float64
	Color      color.RGBA
}

// CreateBurst spawns non-damaging particles flying out in random directions.
func CreateBurst(w donburi.World, rng *rand.Rand, b Burst) {
	for i := 0; i < b.Count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := b.MinSpeed + rng.Float64()*b.SpeedRange
		CreateProjectile(w, ProjectileSpec{
			Kind: components.ProjectileSplat,
			Rect: gamemath.Rect{
				X: b.X,
				Y: b.Y,
				W: b.MinSize + rng.Float64()*b.SizeRange,
				H: b.MinSize + rng.Float64()*b.SizeRange,
			},
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle)*speed + b.Lift,
			Gravity:  config.Projectile.SplashGravity,
			Color:    b.Color,
			Lifespan: b.MinLife + rng.Float64()*b.LifeRange,
		})
	}
}

// SurfaceSplash is the burst left by a projectile hitting ground or a
// platform. Wider projectiles splash more, up to the configured maximum.
func SurfaceSplash(p gamemath.Rect, c color.RGBA) Burst {
	cfg := config.Projectile
	count := cfg.SplashBase + int(math.Floor(p.W/5))
	if count > cfg.SplashMax {
		count = cfg.SplashMax
	}
	return Burst{
		X:          p.X,
		Y:          p.Y,
		Count:      count,
		MinSpeed:   cfg.SplashMinSpeed,
		SpeedRange: cfg.SplashSpeedRange,
		SizeRange:  p.W * 0.6,
		MinLife:    float64(cfg.SplashMinLifespan),
		LifeRange:  float64(cfg.SplashLifeRange),
		Lift:       -1,
		Color:      c,
	}
}

// ImpactBurst is the burst shown where the player is hit or where the
// contact aura touches an enemy.
func ImpactBurst(x, y float64, count int, c color.RGBA) Burst {
	cfg := config.Projectile
	return Burst{
		X:          x,
		Y:          y,
		Count:      count,
		MinSpeed:   cfg.ContactMinSpeed,
		SpeedRange: cfg.ContactSpeedRange,
		MinSize:    8,
		SizeRange:  8,
		MinLife:    10,
		LifeRange:  10,
		Color:      c,
	}
}
