package components

import (
	"github.com/automoto/inkbrawl/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the static world model for the current run.
type LevelData struct {
	Name       string
	GroundY    float64
	Boundaries leveldata.Boundaries
	Platforms  []leveldata.Platform // landing order, first match wins

	ViewportWidth  float64
	ViewportHeight float64
}

var Level = donburi.NewComponentType[LevelData]()
