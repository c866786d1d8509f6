package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Index int // position in the level's platform list
	Color color.RGBA
}

var Platform = donburi.NewComponentType[PlatformData]()
