// Package leveldata provides the static world model: platforms, the ground
// line, horizontal boundaries and enemy placement. It has no dependencies on
// ebitengine, donburi, or resolv.
package leveldata

import (
	"image/color"

	"github.com/automoto/inkbrawl/shared/gamemath"
)

// Platform is a static rectangle the player and enemies can stand on.
type Platform struct {
	gamemath.Rect
	Color color.RGBA
}

// Boundaries are the horizontal limits every entity and the camera stay in.
type Boundaries struct {
	Left  float64
	Right float64
}

// Width returns the distance between the boundaries.
func (b Boundaries) Width() float64 {
	return b.Right - b.Left
}

// Level is a complete world description.
type Level struct {
	Name       string
	GroundY    float64
	Platforms  []Platform
	Boundaries Boundaries
}

// Footprint is the size of an entity to place.
type Footprint struct {
	W, H float64
}

// Placement is a chosen spawn rectangle. Platform is the index of the
// platform stood on, or -1 for the ground.
type Placement struct {
	Slot     int
	Rect     gamemath.Rect
	Platform int
}
