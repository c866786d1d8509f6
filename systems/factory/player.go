package factory

import (
	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player for the given character at the start
// position with full health and lives.
func CreatePlayer(w donburi.World, character string, abilities config.CharacterConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Bounds.Set(player, &components.BoundsData{Rect: gamemath.Rect{
		X: config.Player.StartX,
		Y: config.Player.StartY,
		W: config.Player.Width,
		H: config.Player.Height,
	}})
	components.Player.Set(player, &components.PlayerData{
		Character: character,
		Abilities: abilities,
		Facing:    config.DirectionRight,
		Speed:     config.Player.Speed,
		JumpForce: config.Player.JumpForce,
		Airborne:  true,
		LastShot:  components.Never,
		Charge: components.ChargeData{
			LastBarrageEnd: components.Never,
		},
		Contact: components.ContactAuraData{
			LastActive: components.Never,
		},
	})
	components.Health.Set(player, &components.HealthData{
		Current: config.Player.MaxHealth,
		Max:     config.Player.MaxHealth,
	})
	components.Lives.Set(player, &components.LivesData{
		Lives:    config.Player.StartingLives,
		MaxLives: config.Player.StartingLives,
	})

	attachObject(w, player, tags.ResolvPlayer)
	return player
}
