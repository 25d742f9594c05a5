package components

import "github.com/yohamta/donburi"

// Hit is one queued contact strike.
type Hit struct {
	Source    string
	Amount    float64
	Knockback float64
}

// DamageEventData collects the contact hits queued against an entity this
// frame. The combat resolver applies and removes it.
type DamageEventData struct {
	Hits []Hit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// QueueHit appends a hit to the entry's pending damage, adding the
// component when needed so simultaneous strikes are not lost.
func QueueHit(e *donburi.Entry, hit Hit) {
	if e.HasComponent(DamageEvent) {
		ev := DamageEvent.Get(e)
		ev.Hits = append(ev.Hits, hit)
		return
	}
	donburi.Add(e, DamageEvent, &DamageEventData{Hits: []Hit{hit}})
}
