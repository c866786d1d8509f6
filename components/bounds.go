package components

import (
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BoundsData is the authoritative position and size of an entity in world
// coordinates.
type BoundsData struct {
	gamemath.Rect
}

var Bounds = donburi.NewComponentType[BoundsData]()
