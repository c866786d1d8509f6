package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Platform     = donburi.NewTag().SetName("Platform")
	Projectile   = donburi.NewTag().SetName("Projectile")
	Pickup       = donburi.NewTag().SetName("Pickup")
	DamageNumber = donburi.NewTag().SetName("DamageNumber")
	Game         = donburi.NewTag().SetName("Game")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvPlatform   = "platform"
	ResolvProjectile = "Projectile"
	ResolvPickup     = "Pickup"
)
