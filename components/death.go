package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence. The
// linger itself is timed by CombatantData.LingerTimer; Counted guards the
// one-time KO bookkeeping.
type DeathData struct {
	Counted bool
}

var Death = donburi.NewComponentType[DeathData]()
