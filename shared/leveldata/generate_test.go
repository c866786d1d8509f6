package leveldata

import (
	"testing"

	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlatforms(t *testing.T) {
	platforms := DefaultPlatforms()
	require.Len(t, platforms, 13)
	assert.Equal(t, -450.0, platforms[0].X)
	assert.Equal(t, 2900.0, platforms[12].Right())
}

func TestDeriveBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		platforms []Platform
		want      Boundaries
	}{
		{
			name:      "default layout",
			platforms: DefaultPlatforms(),
			want:      Boundaries{Left: -550, Right: 3100},
		},
		{
			name:      "no platforms keeps the origin",
			platforms: nil,
			want:      Boundaries{Left: -100, Right: 200},
		},
		{
			name: "platforms right of the origin",
			platforms: []Platform{
				{Rect: gamemath.Rect{X: 100, Y: 300, W: 50, H: 20}},
			},
			want: Boundaries{Left: -100, Right: 350},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBoundaries(tt.platforms, 100, 200))
		})
	}
}

func TestDefaultLevel(t *testing.T) {
	lvl := DefaultLevel(550, 100, 200)
	assert.Equal(t, 550.0, lvl.GroundY)
	assert.Equal(t, 3650.0, lvl.Boundaries.Width())
}
