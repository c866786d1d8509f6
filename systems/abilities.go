package systems

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/systems/factory"
	"github.com/yohamta/donburi"
)

// updateAbilities dispatches every ability the character has. Flags are not
// exclusive; a character with several runs each of them.
func updateAbilities(w donburi.World, playerEntry *donburi.Entry, p *components.PlayerData, b gamemath.Rect, intent *components.IntentData) {
	t := now(w)
	abilities := p.Abilities

	if abilities.CanShoot && intent.Action && t-p.LastShot > abilities.ShootCooldown {
		factory.CreateShot(w, b, p.Facing, abilities.InkColor)
		p.LastShot = t
	}

	if abilities.CanSplat && intent.Action && t-p.LastShot > config.Player.SplatCooldown {
		factory.CreateSplat(w, random(w), b, p.Facing, p.Airborne, abilities.InkColor)
		p.LastShot = t
	}

	if abilities.CanCharge {
		if fire, multiplier := StepCharge(&p.Charge, intent.Action, t, p.LastShot); fire {
			factory.CreateChargedShot(w, b, p.Facing, multiplier, abilities.InkColor)
			p.LastShot = t
		}
	}

	if abilities.HasContactDamage {
		updateContactAura(w, playerEntry, p)
	}
}
