package systems

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// aiContext is everything an enemy brain may read about the world in one
// tick.
type aiContext struct {
	w      donburi.World
	now    time.Duration
	rng    *rand.Rand
	level  *components.LevelData
	player gamemath.Rect
}

// enemyState bundles the components of the enemy being updated.
type enemyState struct {
	entry    *donburi.Entry
	enemy    *components.EnemyData
	bounds   *components.BoundsData
	octoling *components.OctolingData // nil for stationary enemies
}

// brain is one enemy type's behavior.
type brain interface {
	// detect reports whether the player is perceived this tick.
	detect(ctx *aiContext, s *enemyState) bool
	// decideMove updates facing, position and movement state.
	decideMove(ctx *aiContext, s *enemyState, detected bool)
	// maybeAttack fires at the player when ready.
	maybeAttack(ctx *aiContext, s *enemyState, detected bool)
}

var brains = map[components.EnemyKind]brain{
	components.EnemyOctoSlob: octoSlobBrain{},
	components.EnemyOctoling: octolingBrain{},
}

// UpdateEnemies removes dead enemies, dropping their pickups, then runs
// every surviving enemy's brain.
func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	removeDeadEnemies(w)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	ctx := &aiContext{
		w:      w,
		now:    now(w),
		rng:    random(w),
		level:  level(w),
		player: components.Bounds.Get(playerEntry).Rect,
	}

	components.Enemy.Each(w, func(e *donburi.Entry) {
		s := &enemyState{
			entry:  e,
			enemy:  components.Enemy.Get(e),
			bounds: components.Bounds.Get(e),
		}
		if e.HasComponent(components.Octoling) {
			s.octoling = components.Octoling.Get(e)
		}

		if s.enemy.Damaged && ctx.now-s.enemy.DamagedAt > config.Enemy.HitFlash {
			s.enemy.Damaged = false
		}

		b, ok := brains[s.enemy.Kind]
		if !ok {
			return
		}
		detected := b.detect(ctx, s)
		b.decideMove(ctx, s, detected)
		b.maybeAttack(ctx, s, detected)
		SyncObject(w, e)
	})
}

// removeDeadEnemies destroys enemies at zero health. Each may leave at most
// one pickup at its center.
func removeDeadEnemies(w donburi.World) {
	var dead []*donburi.Entry
	components.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Health.Get(e).Current <= 0 {
			dead = append(dead, e)
		}
	})
	if len(dead) == 0 {
		return
	}

	t := now(w)
	rng := random(w)
	s := session(w)
	for _, e := range dead {
		kind := components.Enemy.Get(e).Kind
		b := components.Bounds.Get(e).Rect
		if pickup, ok := RollDrop(kind, rng); ok {
			factory.CreatePickup(w, pickup, b.CenterX(), b.CenterY(), t)
		}
		s.Kills++
		EnemyKilled.Publish(w, EnemyKilledEvent{Kind: kind, X: b.CenterX(), Y: b.CenterY()})
		destroy(w, e)
	}
}

// RollDrop decides what a dead enemy leaves behind. Octolings roll for armor
// first; only if that fails does any enemy roll for health.
func RollDrop(kind components.EnemyKind, rng *rand.Rand) (components.PickupKind, bool) {
	if kind == components.EnemyOctoling && rng.Float64() < config.Enemy.ArmorDropChance {
		return components.PickupArmor, true
	}
	if rng.Float64() < config.Enemy.HealthDropChance {
		return components.PickupHealth, true
	}
	return components.PickupHealth, false
}

// shootAt fires an arcing enemy projectile at the player's center and turns
// the shooter toward it.
func shootAt(ctx *aiContext, s *enemyState, speed, size, damage, gravity float64, ink color.RGBA) {
	factory.CreateEnemyShot(ctx.w, s.bounds.Rect, ctx.player, speed, size, damage, gravity, ink)
	s.enemy.Facing = facingToward(s.bounds.CenterX(), ctx.player.CenterX())
	s.enemy.LastShot = ctx.now
}

func facingToward(from, to float64) float64 {
	if to > from {
		return config.DirectionRight
	}
	return config.DirectionLeft
}
