package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SceneID is a top-level mode of the game.
type SceneID int

const (
	SceneStart SceneID = iota
	SceneIntro
	SceneLevel
	SceneDialog
	SceneEnding
	SceneGameOver
)

func (s SceneID) String() string {
	switch s {
	case SceneStart:
		return "start"
	case SceneIntro:
		return "intro"
	case SceneLevel:
		return "level"
	case SceneDialog:
		return "dialog"
	case SceneEnding:
		return "ending"
	case SceneGameOver:
		return "gameover"
	}
	return "unknown"
}

// EndingStage steps through the victory sequence.
type EndingStage int

const (
	EndingWin1 EndingStage = iota
	EndingFadeToWin2
	EndingWin2
	EndingFadeToEnd
	EndingTheEnd
)

func (s EndingStage) String() string {
	switch s {
	case EndingWin1:
		return "win1"
	case EndingFadeToWin2:
		return "fadeToWin2"
	case EndingWin2:
		return "win2"
	case EndingFadeToEnd:
		return "fadeToEnd"
	case EndingTheEnd:
		return "theEnd"
	}
	return "unknown"
}

// EndingVariant picks the ending text.
type EndingVariant int

const (
	EndingStandard EndingVariant = iota
	EndingAlternate
)

// SceneData is the singleton scene state machine.
type SceneData struct {
	Current SceneID
	Timer   float64 // seconds spent in the current scene or stage

	// Fade drives the start screen and ending transitions.
	Fade      *gween.Tween
	FadeValue float64
	Fading    bool

	Card int // intro card index

	Ending  EndingStage
	Variant EndingVariant
}

var Scene = donburi.NewComponentType[SceneData]()
