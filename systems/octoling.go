package systems

import (
	"math"
	"time"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/systems/factory"
)

// octolingBrain patrols around its spawn point or chases the player, jumping
// between platforms, and shoots when the player is close.
type octolingBrain struct{}

func (octolingBrain) detect(ctx *aiContext, s *enemyState) bool {
	dx := math.Abs(ctx.player.CenterX() - s.bounds.CenterX())
	dy := math.Abs(ctx.player.CenterY() - s.bounds.CenterY())
	return dx < config.Octoling.DetectionRange && dy < config.Octoling.VerticalBand
}

func (octolingBrain) decideMove(ctx *aiContext, s *enemyState, detected bool) {
	o := s.octoling

	if ctx.now >= o.NextModeSwitch {
		switchOctolingMode(o, s.bounds.X, detected, ctx.rng.Float64())
		o.NextModeSwitch = ctx.now + factory.NextModeSwitchDelay(ctx.rng.Float64())
	}

	switch o.Mode {
	case components.ModeChasing:
		chase(ctx, s)
	default:
		patrol(ctx, s)
	}

	integrateGravity(&s.bounds.Rect, &o.VelocityY, config.Physics.Gravity)
	landed, platform := landBody(&s.bounds.Rect, &o.VelocityY, ctx.level.Platforms, ctx.level.GroundY)
	o.Airborne = !landed
	if landed {
		o.Platform = platform
	} else {
		o.Platform = -1
	}

	bounds := ctx.level.Boundaries
	if s.bounds.X < bounds.Left {
		s.bounds.X = bounds.Left
		o.PatrolDirection = config.DirectionRight
	}
	if s.bounds.Right() > bounds.Right {
		s.bounds.X = bounds.Right - s.bounds.W
		o.PatrolDirection = config.DirectionLeft
	}
}

// switchOctolingMode rolls the next mode. Chasing needs the player in sight.
// Returning to patrol re-centers the patrol on the current position.
func switchOctolingMode(o *components.OctolingData, x float64, detected bool, roll float64) {
	if detected && roll < config.Octoling.ChaseChance {
		o.Mode = components.ModeChasing
		return
	}
	if o.Mode == components.ModeChasing {
		o.PatrolAnchorX = x
	}
	o.Mode = components.ModePatrolling
}

func patrol(ctx *aiContext, s *enemyState) {
	o := s.octoling
	cfg := config.Octoling
	b := &s.bounds.Rect

	b.X += cfg.Speed * o.PatrolDirection
	if b.X > o.PatrolAnchorX+o.MovementRange {
		o.PatrolDirection = config.DirectionLeft
	} else if b.X < o.PatrolAnchorX-o.MovementRange {
		o.PatrolDirection = config.DirectionRight
	}

	if !o.Airborne && o.Platform >= 0 && o.Platform < len(ctx.level.Platforms) {
		p := ctx.level.Platforms[o.Platform]
		if o.PatrolDirection > 0 && b.Right()+cfg.EdgeMargin >= p.Right() {
			o.PatrolDirection = config.DirectionLeft
		} else if o.PatrolDirection < 0 && b.X-cfg.EdgeMargin <= p.X {
			o.PatrolDirection = config.DirectionRight
		}
	}
	s.enemy.Facing = o.PatrolDirection

	if canJump(o, ctx.now, cfg.JumpCooldown) && ctx.rng.Float64() < cfg.RandomJumpChance {
		jump(o, ctx.now, cfg.JumpForce)
	}
}

func chase(ctx *aiContext, s *enemyState) {
	o := s.octoling
	cfg := config.Octoling
	b := &s.bounds.Rect

	dx := ctx.player.CenterX() - b.CenterX()
	step := cfg.Speed * cfg.ChaseSpeedMult
	if math.Abs(dx) > step {
		b.X += math.Copysign(step, dx)
	}
	s.enemy.Facing = facingToward(b.CenterX(), ctx.player.CenterX())
	o.PatrolDirection = s.enemy.Facing

	playerHigher := ctx.player.Bottom() < b.Bottom()-cfg.HigherThreshold
	farVertically := math.Abs(ctx.player.CenterY()-b.CenterY()) > cfg.HopThreshold
	switch {
	case playerHigher && canJump(o, ctx.now, cfg.JumpCooldown):
		jump(o, ctx.now, cfg.JumpForce*cfg.HigherJumpMult)
	case o.Platform >= 0 && farVertically && canJump(o, ctx.now, cfg.JumpCooldown/2):
		jump(o, ctx.now, cfg.JumpForce*cfg.HopJumpMult)
	}
}

func canJump(o *components.OctolingData, now, cooldown time.Duration) bool {
	return !o.Airborne && now-o.LastJump > cooldown
}

func jump(o *components.OctolingData, now time.Duration, force float64) {
	o.VelocityY = -force
	o.Airborne = true
	o.LastJump = now
}

func (octolingBrain) maybeAttack(ctx *aiContext, s *enemyState, detected bool) {
	cfg := config.Octoling
	if !detected || ctx.now-s.enemy.LastShot <= cfg.ShootCooldown {
		return
	}
	if math.Abs(ctx.player.CenterX()-s.bounds.CenterX()) >= cfg.ShootRange {
		return
	}
	shootAt(ctx, s, cfg.ProjectileSpeed, cfg.ProjectileSize, cfg.ProjectileDamage, cfg.ProjectileGravity, cfg.InkColor)
}
