// Package render draws a simulation snapshot with ebitengine vector shapes.
// It only reads the snapshot.
package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/inkbrawl/components"
	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/fonts"
	"github.com/automoto/inkbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	groundColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	cloudColor  = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	flashColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	eyeColor    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// Draw renders one frame of the world.
func Draw(screen *ebiten.Image, snap sim.Snapshot) {
	screen.Fill(skyColor)
	cam := float32(snap.Camera)

	drawClouds(screen, cam)

	vector.FillRect(screen,
		float32(snap.Boundaries.Left)-cam, float32(snap.GroundY),
		float32(snap.Boundaries.Width()+1000), float32(snap.Viewport.H-snap.GroundY),
		groundColor, false)

	for _, p := range snap.Platforms {
		vector.FillRect(screen, float32(p.X)-cam, float32(p.Y), float32(p.W), float32(p.H), p.Color, false)
	}

	for _, e := range snap.Enemies {
		drawEnemy(screen, e, cam)
	}
	for _, p := range snap.Pickups {
		drawPickup(screen, p, cam)
	}
	for _, p := range snap.Projectiles {
		b := p.Bounds
		r := float32(b.W / 2)
		vector.DrawFilledCircle(screen, float32(b.CenterX())-cam, float32(b.CenterY()), r, p.Color, true)
	}

	drawPlayer(screen, snap.Player, snap.Frame, cam)
	drawDamageNumbers(screen, snap.DamageNumbers, cam)
	DrawHUD(screen, snap)
}

// drawClouds scrolls a few background rectangles at a fifth of camera speed.
func drawClouds(screen *ebiten.Image, cam float32) {
	for _, c := range [][4]float32{{100, 100, 60, 30}, {300, 80, 80, 40}, {600, 120, 70, 35}} {
		vector.FillRect(screen, c[0]-cam*0.2, c[1], c[2], c[3], cloudColor, false)
	}
}

func drawEnemy(screen *ebiten.Image, e sim.EnemyView, cam float32) {
	b := e.Bounds
	x, y := float32(b.X)-cam, float32(b.Y)

	body := config.OctoSlob.Color
	if e.Kind == components.EnemyOctoling {
		body = config.Octoling.Color
	}
	if e.Damaged {
		body = flashColor
	}
	vector.FillRect(screen, x, y, float32(b.W), float32(b.H), body, false)

	eyeX := x + float32(b.W)*0.3
	if e.Facing > 0 {
		eyeX = x + float32(b.W)*0.7
	}
	vector.DrawFilledCircle(screen, eyeX, y+float32(b.H)*0.35, float32(b.W)/10, eyeColor, true)

	if e.MaxHealth > 0 {
		ratio := float32(e.Health / e.MaxHealth)
		vector.FillRect(screen, x, y-8, float32(b.W), 4, config.BlackOverlay, false)
		vector.FillRect(screen, x, y-8, float32(b.W)*ratio, 4, config.Red, false)
	}
}

func drawPickup(screen *ebiten.Image, p sim.PickupView, cam float32) {
	b := p.Bounds
	grow := float32(p.Pulse) * 3
	vector.FillRect(screen,
		float32(b.X)-cam-grow, float32(b.Y)-grow,
		float32(b.W)+2*grow, float32(b.H)+2*grow,
		p.Color, false)
	if p.Kind == components.PickupHealth {
		cx, cy := float32(b.CenterX())-cam, float32(b.CenterY())
		vector.FillRect(screen, cx-2, cy-6, 4, 12, config.White, false)
		vector.FillRect(screen, cx-6, cy-2, 12, 4, config.White, false)
	}
}

func drawPlayer(screen *ebiten.Image, p sim.PlayerView, frame uint64, cam float32) {
	b := p.Bounds
	x, y := float32(b.X)-cam, float32(b.Y)

	if p.AuraActive {
		vector.DrawFilledCircle(screen, x+float32(b.W)/2, y+float32(b.H)/2, float32(b.W)*0.75,
			color.RGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 90}, true)
	}
	if p.Invulnerable && frame/6%2 == 0 {
		vector.StrokeRect(screen, x-4, y-4, float32(b.W)+8, float32(b.H)+8, 2, config.White, false)
	}

	vector.FillRect(screen, x, y, float32(b.W), float32(b.H), p.Color, false)
	eyeX := x + float32(b.W)*0.3
	if p.Facing > 0 {
		eyeX = x + float32(b.W)*0.7
	}
	vector.DrawFilledCircle(screen, eyeX, y+float32(b.H)*0.3, float32(b.W)/9, eyeColor, true)

	if p.Charging || p.Barraging {
		drawChargeMeter(screen, p, x, y)
	}
}

func drawChargeMeter(screen *ebiten.Image, p sim.PlayerView, x, y float32) {
	w := float32(p.Bounds.W)
	level := float32(p.ChargeLevel)
	fill := config.Yellow
	if p.Barraging {
		level = 1
		fill = config.Red
	}
	vector.FillRect(screen, x, y-14, w, 6, config.BlackOverlay, false)
	vector.FillRect(screen, x, y-14, w*level, 6, fill, false)
}

func drawDamageNumbers(screen *ebiten.Image, numbers []sim.DamageNumberView, cam float32) {
	face := fonts.Bold.Get()
	for _, n := range numbers {
		c := n.Color
		c.A = uint8(255 * clamp01(n.Alpha))
		label := fmt.Sprintf("%.0f", n.Value)
		text.Draw(screen, label, face, int(float32(n.X)-cam), int(n.Y), c)
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
