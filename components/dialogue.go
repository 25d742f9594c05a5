package components

import (
	"github.com/automoto/badmonkey/dialogue"
	"github.com/yohamta/donburi"
)

// DialogueStep is the sub-phase of a dialog interlude.
type DialogueStep int

const (
	DialogueIdle DialogueStep = iota
	DialoguePrompt
	DialogueReply
	DialogueSpeaking
)

func (s DialogueStep) String() string {
	switch s {
	case DialoguePrompt:
		return "prompt"
	case DialogueReply:
		return "reply"
	case DialogueSpeaking:
		return "speaking"
	}
	return "idle"
}

// DialogueData is the singleton state of the boss dialogue bridge.
type DialogueData struct {
	Client dialogue.Client

	Step    DialogueStep
	Topic   dialogue.Phase
	Pending []dialogue.Phase
	Timer   float64

	// Token is the active request; responses carrying any other token are stale.
	Token     uint64
	NextToken uint64

	PlayerText     string
	Line           string
	Classification dialogue.Classification
	Fallback       bool
	Revealed       float64 // characters of Line shown so far

	Exchange    int
	HistoryUser []string
	HistoryBoss []string

	// AlternateEnding is set when the player speaks the trigger phrase.
	AlternateEnding bool
}

var Dialogue = donburi.NewComponentType[DialogueData]()
