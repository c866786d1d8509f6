package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/fonts"
	"github.com/automoto/inkbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 150
	hudBarHeight = 15
	hudMargin    = 20
	lifeSize     = 16
	lifeSpacing  = 5
)

var hudBackground = color.RGBA{R: 50, G: 50, B: 50, A: 180}

// DrawHUD renders health, armor, lives and the kill count.
func DrawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	p := snap.Player
	if p.MaxHealth <= 0 {
		return
	}

	vector.FillRect(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, hudBackground, false)
	ratio := p.Health / p.MaxHealth
	vector.FillRect(screen, hudMargin, hudMargin, float32(hudBarWidth*ratio), hudBarHeight, healthColor(ratio, p.Invulnerable, snap.Frame), false)
	vector.StrokeRect(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, 2, config.BlackOverlay, false)

	face := fonts.Small.Get()
	text.Draw(screen, fmt.Sprintf("%.0f/%.0f", p.Health, p.MaxHealth), face, hudMargin+hudBarWidth/2-20, hudMargin+hudBarHeight-3, config.White)

	y := float32(hudMargin + hudBarHeight + 4)
	if p.Armor > 0 {
		w := float32(p.Armor / p.MaxHealth * hudBarWidth)
		if w > hudBarWidth {
			w = hudBarWidth
		}
		vector.FillRect(screen, hudMargin, y, w, 5, config.White, false)
		y += 9
	}

	for i := 0; i < p.Lives; i++ {
		x := float32(hudMargin + i*(lifeSize+lifeSpacing))
		vector.DrawFilledCircle(screen, x+lifeSize/2, y+lifeSize/2+4, lifeSize/2, config.Red, true)
	}

	text.Draw(screen, fmt.Sprintf("KO %d", snap.Kills), fonts.Regular.Get(), int(snap.Viewport.W)-90, hudMargin+12, config.White)
}

// healthColor goes green, yellow, red as health drops and flashes white while
// invulnerable.
func healthColor(ratio float64, invulnerable bool, frame uint64) color.RGBA {
	if invulnerable && frame/6%2 == 0 {
		return config.White
	}
	switch {
	case ratio > 0.6:
		return config.Green
	case ratio > 0.3:
		return config.Yellow
	}
	return config.Red
}
