package factory

import (
	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spacePadding extends the broadphase grid past the world boundaries so
// projectiles near the cull margin stay indexed.
const spacePadding = 400

// CreateSpace builds a broadphase grid covering the level. The grid is
// offset so the leftmost boundary and a viewport's height above the origin
// map to non-negative cell coordinates.
func CreateSpace(w donburi.World, lvl leveldata.Level, viewportHeight float64, cellSize int) *donburi.Entry {
	originX := lvl.Boundaries.Left - spacePadding
	originY := -viewportHeight
	width := int(lvl.Boundaries.Width() + 2*spacePadding)
	height := int(lvl.GroundY - originY + viewportHeight)

	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, &components.SpaceData{
		Space:   resolv.NewSpace(width, height, cellSize, cellSize),
		OriginX: originX,
		OriginY: originY,
	})
	return space
}

// attachObject gives e a broadphase proxy matching its Bounds.
func attachObject(w donburi.World, e *donburi.Entry, tags ...string) {
	b := components.Bounds.Get(e)
	space := components.Space.Get(components.Space.MustFirst(w))

	obj := resolv.NewObject(b.X-space.OriginX, b.Y-space.OriginY, b.W, b.H, tags...)
	obj.Data = e
	space.Add(obj)
	components.Object.Set(e, &components.ObjectData{Object: obj})
}
