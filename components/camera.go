package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world position of the view's left edge. The view never
// scrolls vertically, so Position.Y stays 0.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
