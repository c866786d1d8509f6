package systems

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups drops and bounces pickups, advances their pulse, and hands
// the ones the player touches to the health pipeline.
func UpdatePickups(ecs *ecs.ECS) {
	w := ecs.World
	t := now(w)
	lvl := level(w)
	lifetime := config.Pickup.Lifetime

	var expired []*donburi.Entry
	components.Pickup.Each(w, func(e *donburi.Entry) {
		p := components.Pickup.Get(e)
		if lifetime > 0 && t-p.SpawnedAt >= lifetime {
			expired = append(expired, e)
			return
		}

		b := components.Bounds.Get(e)
		if !p.Resting {
			stepPickup(p, &b.Rect, lvl)
		}

		if p.PulseTween != nil {
			var done bool
			p.Pulse, done = p.PulseTween.Update(1)
			if done {
				p.PulseTween.Reset()
			}
		}
		SyncObject(w, e)
	})
	for _, e := range expired {
		destroy(w, e)
	}

	collectPickups(w)
}

// stepPickup integrates one tick of damped gravity. A pickup bounces off the
// first platform top it falls onto, or the ground.
func stepPickup(p *components.PickupData, b *gamemath.Rect, lvl *components.LevelData) {
	p.VelocityY += config.Physics.Gravity * config.Pickup.GravityScale
	b.Y += p.VelocityY

	if p.VelocityY < 0 {
		return
	}
	top, hit := lvl.GroundY, b.Bottom() > lvl.GroundY
	if !hit {
		for _, plat := range lvl.Platforms {
			if gamemath.LandsOn(*b, p.VelocityY, plat.Rect) {
				top, hit = plat.Y, true
				break
			}
		}
	}
	if !hit {
		return
	}
	b.Y = top - b.H
	p.VelocityY, p.Resting = gamemath.Bounce(p.VelocityY, p.Damping, config.Pickup.RestThreshold)
}

func collectPickups(w donburi.World) {
	player, ok := tags.Player.First(w)
	if !ok || components.Lives.Get(player).Lives <= 0 {
		return
	}
	pb := components.Bounds.Get(player).Rect

	for _, e := range nearby(player, tags.ResolvPickup) {
		if !pb.Overlaps(components.Bounds.Get(e).Rect) {
			continue
		}
		p := components.Pickup.Get(e)
		amount := p.Amount
		switch p.Kind {
		case components.PickupArmor:
			AddArmor(w, player, amount)
		default:
			amount = HealPlayer(w, player, amount)
		}
		PickupCollected.Publish(w, PickupCollectedEvent{Kind: p.Kind, Amount: amount})
		destroy(w, e)
	}
}
