package factory

import (
	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/shared/leveldata"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi"
)

// CreatePlatforms spawns one static entity per level platform.
func CreatePlatforms(w donburi.World, platforms []leveldata.Platform) {
	for i, p := range platforms {
		e := archetypes.Platform.Spawn(w)
		components.Bounds.Set(e, &components.BoundsData{Rect: p.Rect})
		components.Platform.Set(e, &components.PlatformData{
			Index: i,
			Color: p.Color,
		})
		attachObject(w, e, tags.ResolvPlatform)
	}
}
