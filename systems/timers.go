package systems

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers ends the player's invulnerability window once it has passed.
func UpdateTimers(ecs *ecs.ECS) {
	w := ecs.World
	t := now(w)
	components.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		if p.Invulnerable && t > p.InvulnerableUntil {
			p.Invulnerable = false
		}
	})
}
