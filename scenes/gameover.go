package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/fonts"
	"github.com/automoto/inkbrawl/input"
	"github.com/automoto/inkbrawl/render"
	"github.com/automoto/inkbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// GameOverScene shows the final frame under an overlay until the player
// restarts or goes back to character select.
type GameOverScene struct {
	sceneChanger SceneChanger
	sim          *sim.Simulation
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, s *sim.Simulation) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, sim: s}
}

func (gs *GameOverScene) Update() {
	switch {
	case input.JustPressed(input.ActionRestart):
		gs.sim.Restart()
		gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, gs.sim))
	case input.JustPressed(input.ActionMenuBack):
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.sim))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	snap := gs.sim.Snapshot()
	render.Draw(screen, snap)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), config.BlackOverlay, false)

	drawCentered(screen, "GAME OVER", fonts.Title.Get(), width, 220, config.Red)
	drawCentered(screen, fmt.Sprintf("Enemies splatted: %d", snap.Kills), fonts.Bold.Get(), width, 290, config.White)
	drawCentered(screen, "R to try again, ESC for character select", fonts.Regular.Get(), width, 350, config.White)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (width-bounds.Dx())/2, y, c)
}
