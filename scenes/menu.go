package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/fonts"
	"github.com/automoto/inkbrawl/input"
	"github.com/automoto/inkbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// CharacterOrder is the order characters are listed on the select screen.
var CharacterOrder = []string{
	config.CharacterSharpshooter,
	config.CharacterSplatter,
	config.CharacterCharger,
}

// MenuScene is the character select screen.
type MenuScene struct {
	sceneChanger SceneChanger
	sim          *sim.Simulation
	selected     int
}

// NewMenuScene creates a character select screen for s.
func NewMenuScene(sc SceneChanger, s *sim.Simulation) *MenuScene {
	return &MenuScene{sceneChanger: sc, sim: s}
}

func (ms *MenuScene) Update() {
	switch {
	case input.JustPressed(input.ActionMenuLeft):
		ms.selected = (ms.selected + len(CharacterOrder) - 1) % len(CharacterOrder)
	case input.JustPressed(input.ActionMenuRight):
		ms.selected = (ms.selected + 1) % len(CharacterOrder)
	case input.JustPressed(input.ActionMenuSelect):
		ms.start(CharacterOrder[ms.selected])
	}
}

func (ms *MenuScene) start(character string) {
	if err := ms.sim.StartRun(character); err != nil {
		log.Printf("Could not start run: %v", err)
		return
	}
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.sim))
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	width := screen.Bounds().Dx()
	drawCentered(screen, "CHOOSE YOUR INKLING", fonts.Title.Get(), width, 120, config.White)

	cardW, cardH, gap := 180, 200, 30
	left := (width - len(CharacterOrder)*cardW - (len(CharacterOrder)-1)*gap) / 2
	for i, id := range CharacterOrder {
		c, _ := config.Character(id)
		x := float32(left + i*(cardW+gap))
		y := float32(220)

		if i == ms.selected {
			vector.StrokeRect(screen, x-6, y-6, float32(cardW+12), float32(cardH+12), 3, config.Yellow, false)
		}
		vector.FillRect(screen, x, y, float32(cardW), float32(cardH), config.Slate, false)
		vector.FillRect(screen, x+float32(cardW)/2-35, y+20, 70, 70, c.Color, false)
		text.Draw(screen, c.Name, fonts.Bold.Get(), int(x)+16, int(y)+125, config.White)
		text.Draw(screen, abilityLabel(c), fonts.Small.Get(), int(x)+16, int(y)+155, config.White)
	}

	drawCentered(screen, "LEFT/RIGHT to choose, ENTER to start", fonts.Regular.Get(), width, 500, config.White)
}

func abilityLabel(c config.CharacterConfig) string {
	switch {
	case c.CanCharge:
		return "Charge + barrage"
	case c.CanSplat && c.HasContactDamage:
		return "Splat + ink aura"
	case c.CanSplat:
		return "Splat"
	case c.CanShoot:
		return fmt.Sprintf("Shot every %dms", c.ShootCooldown.Milliseconds())
	}
	return ""
}
