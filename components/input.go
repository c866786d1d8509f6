package components

import "github.com/yohamta/donburi"

// IntentData is the boolean input record read once per tick.
type IntentData struct {
	Left   bool
	Right  bool
	Up     bool
	Action bool
}

var Intent = donburi.NewComponentType[IntentData]()
