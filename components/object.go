package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's broadphase proxy. Its position lives in space
// coordinates and follows Bounds.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the broadphase grid. Origin is the world position of the
// grid's top-left cell, since resolv only indexes non-negative coordinates.
type SpaceData struct {
	*resolv.Space
	OriginX float64
	OriginY float64
}

var Space = donburi.NewComponentType[SpaceData]()
