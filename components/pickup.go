package components

import "github.com/yohamta/donburi"

// PickupData is a weapon lying on the ground.
type PickupData struct {
	Kind    WeaponKind
	X, Y    float64
	TTL     float64
	Dropped bool // left behind by a defeated enemy
}

var Pickup = donburi.NewComponentType[PickupData]()
