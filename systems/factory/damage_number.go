package factory

import (
	"image/color"
	"math/rand"

	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// NumberColor picks the color of a floating number. Enemy damage is colored
// by magnitude.
func NumberColor(kind components.DamageNumberKind, value float64) color.RGBA {
	switch kind {
	case components.NumberPlayerDamage:
		return config.Red
	case components.NumberHeal:
		return config.Green
	case components.NumberArmor:
		return config.White
	}
	switch {
	case value >= config.DamageNumber.HighThreshold:
		return config.Red
	case value >= config.DamageNumber.MidThreshold:
		return config.Orange
	default:
		return config.Yellow
	}
}

// CreateDamageNumber spawns a floating number just above (x, y). Values that
// are not positive produce nothing.
func CreateDamageNumber(w donburi.World, rng *rand.Rand, kind components.DamageNumberKind, x, y, value float64) *donburi.Entry {
	if value <= 0 {
		return nil
	}
	cfg := config.DamageNumber

	n := archetypes.DamageNumber.Spawn(w)
	components.DamageNumber.Set(n, &components.DamageNumberData{
		Kind:     kind,
		Value:    value,
		Color:    NumberColor(kind, value),
		X:        x,
		Y:        y - 20,
		VX:       (rng.Float64() - 0.5) * cfg.DriftRange,
		VY:       cfg.RiseSpeed,
		Lifespan: cfg.Lifespan,
		Alpha:    1,
		Fade:     gween.New(1, 0, float32(cfg.Lifespan), ease.InQuad),
	})
	return n
}
