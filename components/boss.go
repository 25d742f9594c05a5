package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BossMode selects the boss's behavior profile.
type BossMode int

const (
	ModeNormal BossMode = iota
	ModeEnraged
	ModeEvasive
)

// Key returns the config key for the mode.
func (m BossMode) Key() string {
	switch m {
	case ModeEnraged:
		return "enraged"
	case ModeEvasive:
		return "evasive"
	}
	return "normal"
}

func (m BossMode) String() string { return m.Key() }

// TeleportPhase is the boss relocation micro-state.
type TeleportPhase int

const (
	TeleportNone TeleportPhase = iota
	TeleportFadeOut
	TeleportFadeIn
)

// BossData only exists on the boss entity.
type BossData struct {
	Mode   BossMode
	Energy float64

	Teleport      TeleportPhase
	TeleportTimer float64 // cooldown window before another relocation may roll
	Fade          *gween.Tween
	Alpha         float64
	TargetX       float64
	TargetY       float64

	Blink        bool
	DeathStarted bool
}

var Boss = donburi.NewComponentType[BossData]()

// Teleporting is true while a fade cycle is running.
func (b *BossData) Teleporting() bool {
	return b.Teleport != TeleportNone
}
