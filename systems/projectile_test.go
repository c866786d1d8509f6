package systems

import (
	"testing"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func shotAt(w donburi.World, x, y, vx, vy float64, hostile bool) *donburi.Entry {
	return factory.CreateProjectile(w, factory.ProjectileSpec{
		Kind:      components.ProjectileStraight,
		Rect:      gamemath.Rect{X: x, Y: y, W: 15, H: 15},
		VX:        vx,
		VY:        vy,
		Damage:    5,
		CanDamage: true,
		Hostile:   hostile,
		Color:     config.Red,
	})
}

func cosmeticAt(w donburi.World, x, y, age, lifespan float64) *donburi.Entry {
	return factory.CreateProjectile(w, factory.ProjectileSpec{
		Kind:     components.ProjectileSplat,
		Rect:     gamemath.Rect{X: x, Y: y, W: 5, H: 5},
		Color:    config.White,
		Age:      age,
		Lifespan: lifespan,
	})
}

func isCosmetic(p *components.ProjectileData) bool {
	return !p.CanDamage
}

func TestProjectileCulledOutsideView(t *testing.T) {
	w := newTestWorld(t)
	gone := shotAt(w, testViewportW+config.Projectile.CullMargin-5, 200, 10, 0, false)
	goneID := gone.Entity()
	kept := shotAt(w, 500, 200, 10, 0, false)
	keptID := kept.Entity()

	run(w, UpdateProjectiles)

	assert.False(t, w.Valid(goneID))
	require.True(t, w.Valid(keptID))
	assert.Equal(t, 510.0, components.Bounds.Get(kept).X)
}

func TestOutsideView(t *testing.T) {
	w := newTestWorld(t)
	lvl := level(w)
	margin := config.Projectile.CullMargin

	tests := []struct {
		name string
		r    gamemath.Rect
		want bool
	}{
		{"inside", gamemath.Rect{X: 400, Y: 300}, false},
		{"right margin edge", gamemath.Rect{X: testViewportW + margin}, false},
		{"past right margin", gamemath.Rect{X: testViewportW + margin + 1}, true},
		{"past left margin", gamemath.Rect{X: -margin - 1}, true},
		{"below vertical limit", gamemath.Rect{X: 400, Y: testViewportH + config.Projectile.VerticalLimit + 1}, true},
		{"high above is kept", gamemath.Rect{X: 400, Y: -1000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outsideView(tt.r, 0, lvl))
		})
	}
}

func TestSplatExpiresAfterLifespan(t *testing.T) {
	w := newTestWorld(t)
	p := cosmeticAt(w, 150, 100, 10, 10)
	pID := p.Entity()

	run(w, UpdateProjectiles)

	assert.False(t, w.Valid(pID))
}

func TestEnforceProjectileCapacityKeepsDamaging(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 90; i++ {
		shotAt(w, 500, 100, 0, 0, false)
	}
	for i := 0; i < 30; i++ {
		cosmeticAt(w, 500, 100, float64(i), 100)
	}

	EnforceProjectileCapacity(w, config.Projectile.Capacity)

	assert.Equal(t, 100, countProjectiles(w, nil))
	assert.Equal(t, 90, countProjectiles(w, func(p *components.ProjectileData) bool { return p.CanDamage }))
	components.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if !p.CanDamage {
			assert.Less(t, p.Age, 10.0, "the oldest particles go first")
		}
	})
}

func TestEnforceProjectileCapacityNeverCullsDamaging(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 120; i++ {
		shotAt(w, 500, 100, 0, 0, false)
	}

	EnforceProjectileCapacity(w, config.Projectile.Capacity)

	assert.Equal(t, 120, countProjectiles(w, nil))
}

func TestInvulnerablePlayerIgnoresHostileProjectiles(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	standOnGround(w, player, 120)
	p := components.Player.Get(player)
	p.Invulnerable = true
	p.InvulnerableUntil = testStart + config.Player.InvulnDuration
	components.Health.Get(player).Armor = 5

	pb := components.Bounds.Get(player).Rect
	for i := 0; i < 5; i++ {
		shotAt(w, pb.CenterX(), pb.CenterY(), 0, 0, true)
	}

	run(w, UpdateProjectiles)

	hp := components.Health.Get(player)
	assert.Equal(t, config.Player.MaxHealth, hp.Current)
	assert.Equal(t, 5.0, hp.Armor)
	assert.Zero(t, countProjectiles(w, nil), "projectiles are consumed even without damage")
}

func TestHostileHitStartsInvulnerability(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	standOnGround(w, player, 120)

	pb := components.Bounds.Get(player).Rect
	for i := 0; i < 3; i++ {
		shotAt(w, pb.CenterX(), pb.CenterY(), 0, 0, true)
	}

	run(w, UpdateProjectiles)

	assert.Equal(t, config.Player.MaxHealth-5, components.Health.Get(player).Current, "only the first hit lands")
	assert.True(t, components.Player.Get(player).Invulnerable)
	assert.Equal(t, config.Projectile.PlayerHitCount, countProjectiles(w, isCosmetic))
	assert.Equal(t, 0, countProjectiles(w, func(p *components.ProjectileData) bool { return p.Hostile }))
}

func TestOverlappingEnemiesOnlyOneTakesTheHit(t *testing.T) {
	w := newTestWorld(t)
	first := createOctoSlobForTest(t, w, 300)
	second := createOctoSlobForTest(t, w, 300)
	shot := shotAt(w, 310, 510, 0, 0, false)
	shotID := shot.Entity()

	run(w, UpdateProjectiles)

	assert.False(t, w.Valid(shotID))
	assert.Equal(t, config.OctoSlob.Health, components.Health.Get(first).Current)
	assert.Equal(t, config.OctoSlob.Health-5, components.Health.Get(second).Current, "the latest spawn wins the tie")
}

func TestPlayerProjectilesIgnorePlayer(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, config.CharacterSharpshooter)
	standOnGround(w, player, 120)
	pb := components.Bounds.Get(player).Rect
	shot := shotAt(w, pb.CenterX(), pb.CenterY(), 0, 0, false)
	shotID := shot.Entity()

	run(w, UpdateProjectiles)

	assert.True(t, w.Valid(shotID))
	assert.Equal(t, config.Player.MaxHealth, components.Health.Get(player).Current)
}

func TestGroundHitSplashes(t *testing.T) {
	w := newTestWorld(t)
	shot := shotAt(w, 150, config.World.GroundY-20, 0, 10, false)
	shotID := shot.Entity()

	run(w, UpdateProjectiles)

	assert.False(t, w.Valid(shotID))
	assert.Equal(t, config.Projectile.SplashBase+3, countProjectiles(w, isCosmetic))
}

func TestCosmeticParticlesDoNotSplash(t *testing.T) {
	w := newTestWorld(t)
	p := cosmeticAt(w, 150, config.World.GroundY-6, 0, 100)
	pID := p.Entity()
	components.Projectile.Get(p).VY = 5

	run(w, UpdateProjectiles)

	assert.False(t, w.Valid(pID))
	assert.Zero(t, countProjectiles(w, nil))
}

func TestFastProjectileStopsAtPlatformSide(t *testing.T) {
	w := newTestWorld(t)
	platform := level(w).Platforms[3]
	shot := shotAt(w, platform.X-14, platform.Y+2, 10, 0, false)
	shotID := shot.Entity()

	run(w, UpdateProjectiles)

	assert.False(t, w.Valid(shotID))
}
