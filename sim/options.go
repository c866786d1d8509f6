package sim

import (
	"io/fs"
	"math/rand"
	"time"

	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/shared/leveldata"
)

// Options configure a Simulation. Zero values fall back to the bundled level,
// a wall clock, a time-seeded RNG and the configured screen size.
type Options struct {
	// LevelFS and LevelPath name a TMX level. An empty path uses the bundled
	// arena.
	LevelFS   fs.FS
	LevelPath string

	Clock Clock
	Rand  *rand.Rand

	ViewportWidth  float64
	ViewportHeight float64
}

func (o Options) withDefaults() Options {
	if o.LevelPath == "" {
		o.LevelFS = leveldata.Levels
		o.LevelPath = leveldata.DefaultLevelPath
	}
	if o.LevelFS == nil {
		o.LevelFS = leveldata.Levels
	}
	if o.Clock == nil {
		o.Clock = NewWallClock()
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = float64(config.C.Width)
	}
	if o.ViewportHeight <= 0 {
		o.ViewportHeight = float64(config.C.Height)
	}
	return o
}
