package leveldata

import (
	"image/color"

	"github.com/automoto/inkbrawl/shared/gamemath"
)

var platformBrown = color.RGBA{R: 139, G: 69, B: 19, A: 255}

// DefaultPlatforms returns the built-in platform layout, from the far left
// ledges through the starting area to the right side.
func DefaultPlatforms() []Platform {
	rects := []gamemath.Rect{
		{X: -450, Y: 400, W: 120, H: 20},
		{X: -300, Y: 320, W: 150, H: 20},
		{X: -100, Y: 450, W: 180, H: 20},

		{X: 200, Y: 450, W: 150, H: 20},
		{X: 450, Y: 380, W: 120, H: 20},
		{X: 700, Y: 320, W: 180, H: 20},

		{X: 1000, Y: 400, W: 150, H: 20},
		{X: 1250, Y: 300, W: 120, H: 20},
		{X: 1500, Y: 380, W: 200, H: 20},
		{X: 1800, Y: 320, W: 150, H: 20},
		{X: 2100, Y: 400, W: 180, H: 20},
		{X: 2400, Y: 350, W: 150, H: 20},
		{X: 2700, Y: 300, W: 200, H: 20},
	}
	platforms := make([]Platform, len(rects))
	for i, r := range rects {
		platforms[i] = Platform{Rect: r, Color: platformBrown}
	}
	return platforms
}

// DefaultLevel builds the built-in level with boundaries derived from its
// platforms.
func DefaultLevel(groundY, leftMargin, rightMargin float64) Level {
	platforms := DefaultPlatforms()
	return Level{
		Name:       "default",
		GroundY:    groundY,
		Platforms:  platforms,
		Boundaries: DeriveBoundaries(platforms, leftMargin, rightMargin),
	}
}

// DeriveBoundaries spans the platform extents plus margins. The origin is
// always inside the extents so the start position stays reachable.
func DeriveBoundaries(platforms []Platform, leftMargin, rightMargin float64) Boundaries {
	leftmost, rightmost := 0.0, 0.0
	for _, p := range platforms {
		if p.X < leftmost {
			leftmost = p.X
		}
		if p.Right() > rightmost {
			rightmost = p.Right()
		}
	}
	return Boundaries{
		Left:  leftmost - leftMargin,
		Right: rightmost + rightMargin,
	}
}
