package systems

import (
	"math"
	"sort"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every projectile one tick. Per projectile the
// order is: move, damage hit, surface hit, cull. Particles spawned by hits are
// created after the pass so they first move next tick.
func UpdateProjectiles(ecs *ecs.ECS) {
	w := ecs.World
	EnforceProjectileCapacity(w, config.Projectile.Capacity)

	lvl := level(w)
	camX := cameraX(w)
	playerEntry, hasPlayer := tags.Player.First(w)

	var toRemove []*donburi.Entry
	var bursts []factory.Burst

	components.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		b := components.Bounds.Get(e)

		if p.Kind == components.ProjectileSplat && !p.CanDamage && outsideView(b.Rect, camX, lvl) {
			toRemove = append(toRemove, e)
			return
		}

		advanceProjectile(p, &b.Rect)
		SyncObject(w, e)

		if p.CanDamage {
			var hit bool
			if p.Hostile {
				if hasPlayer {
					var burst *factory.Burst
					hit, burst = hitPlayer(w, playerEntry, p, b.Rect)
					if burst != nil {
						bursts = append(bursts, *burst)
					}
				}
			} else {
				hit = hitEnemy(w, e, p, b.Rect)
			}
			if hit {
				toRemove = append(toRemove, e)
				return
			}
		}

		if hitSurface(e, p, b.Rect, lvl.GroundY) {
			// Cosmetic particles vanish quietly, so splashes never splash.
			if p.CanDamage {
				bursts = append(bursts, factory.SurfaceSplash(b.Rect, p.Color))
			}
			toRemove = append(toRemove, e)
			return
		}

		if outsideView(b.Rect, camX, lvl) || (p.Kind == components.ProjectileSplat && p.Age > p.Lifespan) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroy(w, e)
	}
	rng := random(w)
	for _, burst := range bursts {
		factory.CreateBurst(w, rng, burst)
	}
}

func advanceProjectile(p *components.ProjectileData, b *gamemath.Rect) {
	switch p.Kind {
	case components.ProjectileStraight:
		b.X += p.VX
		b.Y += p.VY
	case components.ProjectileArcing:
		p.VY += p.Gravity
		b.X += p.VX
		b.Y += p.VY
	case components.ProjectileSplat:
		p.VY += p.Gravity
		b.X += p.VX
		b.Y += p.VY
		p.Age++
	}
}

// hitEnemy resolves a player projectile against enemies. Only the first
// overlapping enemy in tie-break order takes the hit.
func hitEnemy(w donburi.World, e *donburi.Entry, p *components.ProjectileData, b gamemath.Rect) bool {
	for _, enemy := range nearbyEnemies(e, tags.ResolvEnemy) {
		if !b.Overlaps(components.Bounds.Get(enemy).Rect) {
			continue
		}
		ApplyEnemyDamage(w, enemy, p.Damage, b.X, b.Y)
		return true
	}
	return false
}

// hitPlayer resolves an enemy projectile against the player. An invulnerable
// player still absorbs the projectile but takes no damage.
func hitPlayer(w donburi.World, playerEntry *donburi.Entry, p *components.ProjectileData, b gamemath.Rect) (bool, *factory.Burst) {
	if !b.Overlaps(components.Bounds.Get(playerEntry).Rect) {
		return false, nil
	}
	if components.Player.Get(playerEntry).Invulnerable {
		return true, nil
	}
	ApplyPlayerDamage(w, playerEntry, p.Damage)
	burst := factory.ImpactBurst(b.X, b.Y, config.Projectile.PlayerHitCount, p.Color)
	return true, &burst
}

// hitSurface reports whether a projectile struck the ground or a platform.
// A platform stops it when it crosses the top edge, or when it moves fast
// enough to count as a side or bottom hit.
func hitSurface(e *donburi.Entry, p *components.ProjectileData, b gamemath.Rect, groundY float64) bool {
	if b.Bottom() >= groundY {
		return true
	}
	minSpeed := config.Projectile.SideHitMinSpeed
	for _, platform := range nearby(e, tags.ResolvPlatform) {
		pr := components.Bounds.Get(platform).Rect
		if !b.Overlaps(pr) {
			continue
		}
		if b.Bottom() > pr.Y && b.Y < pr.Y {
			return true
		}
		if math.Abs(p.VX) > minSpeed || math.Abs(p.VY) > minSpeed {
			return true
		}
	}
	return false
}

// outsideView reports whether r left the margin around the camera viewport
// or fell below the cosmetic vertical limit.
func outsideView(r gamemath.Rect, camX float64, lvl *components.LevelData) bool {
	margin := config.Projectile.CullMargin
	return r.X > camX+lvl.ViewportWidth+margin ||
		r.X < camX-margin ||
		r.Y > lvl.ViewportHeight+config.Projectile.VerticalLimit
}

// EnforceProjectileCapacity culls the oldest cosmetic particles until at most
// capacity projectiles remain. Projectiles that can deal damage are never
// culled here, so the set may stay above capacity.
func EnforceProjectileCapacity(w donburi.World, capacity int) {
	total := 0
	var cosmetic []*donburi.Entry
	components.Projectile.Each(w, func(e *donburi.Entry) {
		total++
		p := components.Projectile.Get(e)
		if p.Kind == components.ProjectileSplat && !p.CanDamage {
			cosmetic = append(cosmetic, e)
		}
	})
	if total <= capacity {
		return
	}

	sort.SliceStable(cosmetic, func(i, j int) bool {
		return components.Projectile.Get(cosmetic[i]).Age > components.Projectile.Get(cosmetic[j]).Age
	})
	excess := total - capacity
	if excess > len(cosmetic) {
		excess = len(cosmetic)
	}
	for _, e := range cosmetic[:excess] {
		destroy(w, e)
	}
}
