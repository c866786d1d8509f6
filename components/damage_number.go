package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type DamageNumberKind int

const (
	NumberEnemyDamage DamageNumberKind = iota
	NumberPlayerDamage
	NumberHeal
	NumberArmor
)

type DamageNumberData struct {
	Kind  DamageNumberKind
	Value float64
	Color color.RGBA

	X, Y     float64
	VX, VY   float64
	Age      int
	Lifespan int

	Alpha float32
	Fade  *gween.Tween
}

var DamageNumber = donburi.NewComponentType[DamageNumberData]()
