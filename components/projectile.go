package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type ProjectileKind int

const (
	// ProjectileStraight moves at a fixed velocity.
	ProjectileStraight ProjectileKind = iota
	// ProjectileArcing integrates gravity; fired by enemies.
	ProjectileArcing
	// ProjectileSplat is a gravity particle that ages out.
	ProjectileSplat
)

type ProjectileData struct {
	Kind      ProjectileKind
	VX        float64
	VY        float64
	Gravity   float64
	Damage    float64
	CanDamage bool
	Hostile   bool // fired by an enemy, hits the player
	Color     color.RGBA

	// Splat only, in ticks. Age may start negative to stagger a burst.
	Age      float64
	Lifespan float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
