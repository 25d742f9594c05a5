package components

import (
	"math/rand"

	cfg "github.com/automoto/badmonkey/config"
	"github.com/yohamta/donburi"
)

// BotState represents the autopilot's current decision
type BotState int

const (
	BotStateIdle BotState = iota
	BotStateAdvance
	BotStateCollect
	BotStateAttack
	BotStateRetreat
)

func (s BotState) String() string {
	switch s {
	case BotStateAdvance:
		return "advance"
	case BotStateCollect:
		return "collect"
	case BotStateAttack:
		return "attack"
	case BotStateRetreat:
		return "retreat"
	}
	return "idle"
}

// BotData drives the active hero when no human is at the controls.
type BotData struct {
	Difficulty cfg.BotDifficulty
	AIState    BotState

	DecisionTimer float64
	TargetX       float64
	TargetY       float64
	Distance      float64

	// Own source so autopilot decisions do not shift the simulation's rolls.
	Rand *rand.Rand
}

var Bot = donburi.NewComponentType[BotData]()
