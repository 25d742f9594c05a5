package components

import "github.com/yohamta/donburi"

// EventKind is a discrete cue for audio, dialogue or rendering collaborators.
type EventKind int

const (
	EventAttackLanded EventKind = iota
	EventHitTaken
	EventWeaponUsed
	EventWeaponBroken
	EventThrow
	EventJump
	EventKO
	EventPickupCollected
	EventBossSpawned
	EventBossPhase
	EventHeroSwitched
	EventVictory
	EventGameOver
	EventSceneChanged
	EventDialogueLine
)

func (k EventKind) String() string {
	switch k {
	case EventAttackLanded:
		return "attackLanded"
	case EventHitTaken:
		return "hitTaken"
	case EventWeaponUsed:
		return "weaponUsed"
	case EventWeaponBroken:
		return "weaponBroken"
	case EventThrow:
		return "throw"
	case EventJump:
		return "jump"
	case EventKO:
		return "ko"
	case EventPickupCollected:
		return "pickupCollected"
	case EventBossSpawned:
		return "bossSpawned"
	case EventBossPhase:
		return "bossPhase"
	case EventHeroSwitched:
		return "heroSwitched"
	case EventVictory:
		return "victory"
	case EventGameOver:
		return "gameOver"
	case EventSceneChanged:
		return "sceneChanged"
	case EventDialogueLine:
		return "dialogueLine"
	}
	return "unknown"
}

type Event struct {
	Kind   EventKind
	Source string
	Target string
	X, Y   float64
	Amount float64
	Text   string
}

// EventsData is the singleton queue drained by the shell after each step.
type EventsData struct {
	Queue []Event
}

var Events = donburi.NewComponentType[EventsData]()
