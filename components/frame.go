package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// IntentData is the player's input for one frame. Movement axes are level
// triggered; every bool is edge triggered (true only on the frame the
// action was pressed).
type IntentData struct {
	MoveX, MoveY float64

	Jump    bool
	Light   bool
	Heavy   bool
	Sweep   bool
	Switch  bool
	Pause   bool
	Restart bool
	Confirm bool

	// Text is the dialog reply typed so far; Submit sends it.
	Text   string
	Submit bool
}

// FrameData is the per-step context shared by every system.
type FrameData struct {
	DT      float64
	Tick    uint64
	Elapsed float64
	Rand    *rand.Rand
	Intent  IntentData
}

var Frame = donburi.NewComponentType[FrameData]()
