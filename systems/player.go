package systems

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/shared/leveldata"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the player controller for one tick: horizontal movement,
// jump, abilities, gravity, then platform and ground landing.
func UpdatePlayer(ecs *ecs.ECS) {
	w := ecs.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	intent := components.Intent.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	bounds := components.Bounds.Get(playerEntry)
	lvl := level(w)

	movePlayer(player, &bounds.Rect, intent, lvl.Boundaries)
	if intent.Up && !player.Airborne {
		player.VelocityY = -player.JumpForce
		player.Airborne = true
	}
	SyncObject(w, playerEntry)

	updateAbilities(w, playerEntry, player, bounds.Rect, intent)

	integrateGravity(&bounds.Rect, &player.VelocityY, config.Physics.Gravity)
	landed, _ := landBody(&bounds.Rect, &player.VelocityY, lvl.Platforms, lvl.GroundY)
	player.Airborne = !landed
	SyncObject(w, playerEntry)
}

// movePlayer applies horizontal intent, clamping at the world boundaries.
// When both directions are held the left input is applied last and wins the
// facing.
func movePlayer(p *components.PlayerData, b *gamemath.Rect, intent *components.IntentData, bounds leveldata.Boundaries) {
	if intent.Right {
		if b.Right()+p.Speed <= bounds.Right {
			b.X += p.Speed
		} else {
			b.X = bounds.Right - b.W
		}
		p.Facing = config.DirectionRight
	}
	if intent.Left {
		if b.X-p.Speed >= bounds.Left {
			b.X -= p.Speed
		} else {
			b.X = bounds.Left
		}
		p.Facing = config.DirectionLeft
	}
}
