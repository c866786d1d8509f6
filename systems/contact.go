package systems

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
)

// updateContactAura cycles the aura on and off without input and, while it
// is on, damages every overlapping enemy once per tick.
func updateContactAura(w donburi.World, playerEntry *donburi.Entry, p *components.PlayerData) {
	t := now(w)
	aura := &p.Contact

	if !aura.Active && t-aura.LastActive > config.Player.ContactCooldown {
		aura.Active = true
		aura.Start = t
	}
	if aura.Active && t-aura.Start > config.Player.ContactDuration {
		aura.Active = false
		aura.LastActive = t
	}
	if !aura.Active {
		return
	}

	pb := components.Bounds.Get(playerEntry).Rect
	rng := random(w)
	for _, enemy := range nearbyEnemies(playerEntry, tags.ResolvEnemy) {
		eb := components.Bounds.Get(enemy).Rect
		if !pb.Overlaps(eb) {
			continue
		}
		x, y := pb.Midpoint(eb)
		ApplyEnemyDamage(w, enemy, config.Player.ContactDamage, x, y)
		factory.CreateBurst(w, rng, factory.ImpactBurst(x, y, config.Projectile.ContactCount, p.Abilities.InkColor))
	}
}
