package scenes

import (
	"image/color"

	"github.com/automoto/inkbrawl/input"
	"github.com/automoto/inkbrawl/render"
	"github.com/automoto/inkbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene runs the simulation with live input. The game over
// transition is driven by the simulation's game over callback.
type PlatformerScene struct {
	sceneChanger SceneChanger
	sim          *sim.Simulation
}

// NewPlatformerScene creates the playing scene for a simulation whose run
// has already started.
func NewPlatformerScene(sc SceneChanger, s *sim.Simulation) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, sim: s}
}

func (ps *PlatformerScene) Update() {
	ps.sim.Step(input.Intent())
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	render.Draw(screen, ps.sim.Snapshot())
}
