package factory

import (
	"time"

	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// PickupKindConfig returns the configuration for kind.
func PickupKindConfig(kind components.PickupKind) config.PickupKindConfig {
	if kind == components.PickupArmor {
		return config.Pickup.Armor
	}
	return config.Pickup.Health
}

// CreatePickup drops a pickup centered on (cx, cy), launched upward.
func CreatePickup(w donburi.World, kind components.PickupKind, cx, cy float64, now time.Duration) *donburi.Entry {
	cfg := PickupKindConfig(kind)

	p := archetypes.Pickup.Spawn(w)
	components.Bounds.Set(p, &components.BoundsData{Rect: gamemath.Rect{
		X: cx - cfg.Width/2,
		Y: cy - cfg.Height/2,
		W: cfg.Width,
		H: cfg.Height,
	}})
	components.Pickup.Set(p, &components.PickupData{
		Kind:       kind,
		Amount:     cfg.Amount,
		VelocityY:  cfg.LaunchVY,
		Damping:    cfg.Damping,
		Color:      cfg.Color,
		SpawnedAt:  now,
		PulseTween: gween.New(0, 1, config.Pickup.PulsePeriod, ease.InOutSine),
	})

	attachObject(w, p, tags.ResolvPickup)
	return p
}
