package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"same column", Rect{X: 0, Y: 11, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestMidpoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 20, Y: 10, W: 10, H: 10}
	x, y := a.Midpoint(b)
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 10.0, y)
}

func TestLandsOn(t *testing.T) {
	platform := Rect{X: 100, Y: 400, W: 200, H: 20}

	t.Run("crossing top edge", func(t *testing.T) {
		body := Rect{X: 150, Y: 332, W: 70, H: 70}
		assert.True(t, LandsOn(body, 5, platform))
	})
	t.Run("ascending", func(t *testing.T) {
		body := Rect{X: 150, Y: 332, W: 70, H: 70}
		assert.False(t, LandsOn(body, -5, platform))
	})
	t.Run("already below top last tick", func(t *testing.T) {
		body := Rect{X: 150, Y: 340, W: 70, H: 70}
		assert.False(t, LandsOn(body, 2, platform))
	})
	t.Run("no horizontal overlap", func(t *testing.T) {
		body := Rect{X: 300, Y: 332, W: 70, H: 70}
		assert.False(t, LandsOn(body, 5, platform))
	})
	t.Run("resting with gravity applied", func(t *testing.T) {
		body := Rect{X: 150, Y: 330.8, W: 70, H: 70}
		assert.True(t, LandsOn(body, 0.8, platform))
	})
}

func TestBounce(t *testing.T) {
	vy, rest := Bounce(6, 0.5, 1)
	assert.Equal(t, -3.0, vy)
	assert.False(t, rest)

	vy, rest = Bounce(1.5, 0.5, 1)
	assert.Equal(t, 0.0, vy)
	assert.True(t, rest)
}

func TestAim(t *testing.T) {
	vx, vy := Aim(0, 0, 3, 4, 10)
	assert.InDelta(t, 6, vx, 1e-9)
	assert.InDelta(t, 8, vy, 1e-9)

	vx, vy = Aim(0, 0, -10, 0, 7)
	assert.InDelta(t, -7, vx, 1e-9)
	assert.InDelta(t, 0, vy, 1e-9)
}

func TestCone(t *testing.T) {
	vx, vy := Cone(-1, math.Pi/4, math.Sqrt2)
	assert.InDelta(t, -1, vx, 1e-9)
	assert.InDelta(t, 1, vy, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(50, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
}
