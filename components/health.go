package components

import "github.com/yohamta/donburi"

// HealthData is shared by the player and enemies. Enemies never carry armor.
type HealthData struct {
	Current float64
	Max     float64
	Armor   float64
}

var Health = donburi.NewComponentType[HealthData]()

type LivesData struct {
	Lives    int
	MaxLives int
}

var Lives = donburi.NewComponentType[LivesData]()
