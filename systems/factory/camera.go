package factory

import (
	"github.com/automoto/inkbrawl/archetypes"
	"github.com/automoto/inkbrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera with its left edge at x.
func CreateCamera(w donburi.World, x float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, 0),
	})
	return camera
}
