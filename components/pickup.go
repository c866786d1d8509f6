package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupArmor
)

func (k PickupKind) String() string {
	if k == PickupArmor {
		return "armor"
	}
	return "health"
}

type PickupData struct {
	Kind      PickupKind
	Amount    float64
	VelocityY float64
	Damping   float64
	Resting   bool
	Color     color.RGBA
	SpawnedAt time.Duration

	// Pulse is the cosmetic animation phase in [0, 1).
	Pulse      float32
	PulseTween *gween.Tween
}

var Pickup = donburi.NewComponentType[PickupData]()
