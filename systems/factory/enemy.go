package factory

import (
	"time"

	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
)

// EnemyFootprint returns the size of an enemy kind.
func EnemyFootprint(kind components.EnemyKind) (w, h float64) {
	if kind == components.EnemyOctoling {
		return config.Octoling.Width, config.Octoling.Height
	}
	return config.OctoSlob.Width, config.OctoSlob.Height
}

// CreateOctoSlob spawns a stationary shooter. Its first shot is staggered by
// a random part of the cooldown.
func CreateOctoSlob(w donburi.World, x, y float64) *donburi.Entry {
	now, rng, index := spawnContext(w)

	e := archetypes.OctoSlob.Spawn(w)
	components.Bounds.Set(e, &components.BoundsData{Rect: gamemath.Rect{
		X: x, Y: y, W: config.OctoSlob.Width, H: config.OctoSlob.Height,
	}})
	components.Enemy.Set(e, &components.EnemyData{
		Kind:       components.EnemyOctoSlob,
		Facing:     randomFacing(rng.Float64()),
		SpawnIndex: index,
		DamagedAt:  components.Never,
		LastShot:   now - time.Duration(rng.Float64()*float64(config.OctoSlob.ShootCooldown)),
	})
	components.Health.Set(e, &components.HealthData{
		Current: config.OctoSlob.Health,
		Max:     config.OctoSlob.Health,
	})

	attachObject(w, e, tags.ResolvEnemy)
	return e
}

// CreateOctoling spawns a mobile enemy patrolling around x. platform is the
// index of the platform it stands on, or -1.
func CreateOctoling(w donburi.World, x, y float64, platform int) *donburi.Entry {
	now, rng, index := spawnContext(w)

	e := archetypes.Octoling.Spawn(w)
	components.Bounds.Set(e, &components.BoundsData{Rect: gamemath.Rect{
		X: x, Y: y, W: config.Octoling.Width, H: config.Octoling.Height,
	}})
	facing := randomFacing(rng.Float64())
	components.Enemy.Set(e, &components.EnemyData{
		Kind:       components.EnemyOctoling,
		Facing:     facing,
		SpawnIndex: index,
		DamagedAt:  components.Never,
		LastShot:   now - time.Duration(rng.Float64()*float64(config.Octoling.ShootCooldown)),
	})
	components.Octoling.Set(e, &components.OctolingData{
		Platform:        platform,
		PatrolAnchorX:   x,
		PatrolDirection: facing,
		MovementRange:   config.Octoling.MovementRange,
		LastJump:        components.Never,
		Mode:            components.ModePatrolling,
		NextModeSwitch:  now + NextModeSwitchDelay(rng.Float64()),
	})
	components.Health.Set(e, &components.HealthData{
		Current: config.Octoling.Health,
		Max:     config.Octoling.Health,
	})

	attachObject(w, e, tags.ResolvEnemy)
	return e
}

// NextModeSwitchDelay maps a uniform roll to the Octoling's mode timer.
func NextModeSwitchDelay(roll float64) time.Duration {
	return config.Octoling.ModeSwitchMin + time.Duration(roll*float64(config.Octoling.ModeSwitchJitter))
}

func randomFacing(roll float64) float64 {
	if roll > 0.5 {
		return config.DirectionRight
	}
	return config.DirectionLeft
}

func spawnContext(w donburi.World) (now time.Duration, rng *components.RNGData, index int) {
	game := components.Session.MustFirst(w)
	session := components.Session.Get(game)
	index = session.NextSpawnIndex
	session.NextSpawnIndex++
	return components.Clock.Get(game).Now, components.RNG.Get(game), index
}
