package archetypes

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
)

var (
	Game = newArchetype(
		tags.Game,
		components.Clock,
		components.Level,
		components.RNG,
		components.Session,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Bounds,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Intent,
		components.Health,
		components.Lives,
		components.Bounds,
		components.Object,
	)
	OctoSlob = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Health,
		components.Bounds,
		components.Object,
	)
	Octoling = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Octoling,
		components.Health,
		components.Bounds,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Bounds,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Bounds,
		components.Object,
	)
	DamageNumber = newArchetype(
		tags.DamageNumber,
		components.DamageNumber,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
