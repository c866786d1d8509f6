package systems

import (
	"sort"

	"github.com/automoto/inkbrawl/components"
	"github.com/yohamta/donburi"
)

// SyncObject moves e's broadphase proxy onto its Bounds. Call it after
// every change to Bounds so other entities can find e.
func SyncObject(w donburi.World, e *donburi.Entry) {
	space := components.Space.Get(components.Space.MustFirst(w))
	syncObject(space, e)
}

func syncObject(space *components.SpaceData, e *donburi.Entry) {
	obj := components.Object.Get(e)
	b := components.Bounds.Get(e)
	obj.X = b.X - space.OriginX
	obj.Y = b.Y - space.OriginY
	obj.W = b.W
	obj.H = b.H
	obj.Update()
}

// nearby returns the live entries whose proxies share a grid cell with e's
// proxy and carry tag. It is a broadphase; callers still test Bounds.
func nearby(e *donburi.Entry, tag string) []*donburi.Entry {
	obj := components.Object.Get(e)
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		entry, ok := o.Data.(*donburi.Entry)
		if ok && entry != nil && entry.Valid() {
			out = append(out, entry)
		}
	}
	return out
}

// nearbyEnemies is nearby for enemies, latest spawned first. That order is
// the hit tie-break: one hit lands on one enemy.
func nearbyEnemies(e *donburi.Entry, tag string) []*donburi.Entry {
	enemies := nearby(e, tag)
	sort.Slice(enemies, func(i, j int) bool {
		return components.Enemy.Get(enemies[i]).SpawnIndex > components.Enemy.Get(enemies[j]).SpawnIndex
	})
	return enemies
}

// destroy removes e and its proxy from the world.
func destroy(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(w); ok {
			obj := components.Object.Get(e)
			if obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	w.Remove(e.Entity())
}
