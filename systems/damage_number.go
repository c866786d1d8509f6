package systems

import (
	"github.com/automoto/inkbrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamageNumbers drifts floating numbers, fades them out and removes
// them at the end of their lifespan.
func UpdateDamageNumbers(ecs *ecs.ECS) {
	w := ecs.World
	var done []*donburi.Entry
	components.DamageNumber.Each(w, func(e *donburi.Entry) {
		n := components.DamageNumber.Get(e)
		n.X += n.VX
		n.Y += n.VY
		n.Age++
		if n.Fade != nil {
			n.Alpha, _ = n.Fade.Update(1)
		}
		if n.Age >= n.Lifespan {
			done = append(done, e)
		}
	})
	for _, e := range done {
		w.Remove(e.Entity())
	}
}
