package systems

import (
	"math"

	"github.com/automoto/inkbrawl/config"
)

// octoSlobBrain is a stationary shooter that fires on a fixed cooldown while
// the player is within horizontal range.
type octoSlobBrain struct{}

func (octoSlobBrain) detect(ctx *aiContext, s *enemyState) bool {
	return math.Abs(s.bounds.X-ctx.player.X) < config.OctoSlob.DetectionRange
}

func (octoSlobBrain) decideMove(ctx *aiContext, s *enemyState, detected bool) {
	if detected {
		s.enemy.Facing = facingToward(s.bounds.X, ctx.player.X)
	}
}

func (octoSlobBrain) maybeAttack(ctx *aiContext, s *enemyState, detected bool) {
	cfg := config.OctoSlob
	if !detected || ctx.now-s.enemy.LastShot <= cfg.ShootCooldown {
		return
	}
	shootAt(ctx, s, cfg.ProjectileSpeed, cfg.ProjectileSize, cfg.ProjectileDamage, cfg.ProjectileGravity, cfg.InkColor)
}
