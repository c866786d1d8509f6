package components

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
)

// ClockData holds the single time reading taken at the start of a tick.
type ClockData struct {
	Now   time.Duration
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()

type RNGData struct {
	*rand.Rand
}

var RNG = donburi.NewComponentType[RNGData]()

// SessionData is the run-wide bookkeeping.
type SessionData struct {
	Character      string
	Run            int
	GameOver       bool
	Kills          int
	NextSpawnIndex int
}

var Session = donburi.NewComponentType[SessionData]()

// Never is the timestamp of something that has not happened yet. It is far
// enough in the past that every cooldown measured from it has elapsed.
const Never = -time.Hour
