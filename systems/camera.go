package systems

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/automoto/inkbrawl/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player and keeps the viewport
// inside the world boundaries.
func UpdateCamera(ecs *ecs.ECS) {
	w := ecs.World
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	lvl := level(w)
	player := components.Bounds.Get(playerEntry)

	targetX := player.X - lvl.ViewportWidth/2
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.X = ClampCamera(camera.Position.X, lvl)
}

// ClampCamera limits x to [left, right - viewport]. A world narrower than
// the viewport pins the camera to its left edge.
func ClampCamera(x float64, lvl *components.LevelData) float64 {
	maxX := lvl.Boundaries.Right - lvl.ViewportWidth
	if maxX < lvl.Boundaries.Left {
		return lvl.Boundaries.Left
	}
	return gamemath.Clamp(x, lvl.Boundaries.Left, maxX)
}
