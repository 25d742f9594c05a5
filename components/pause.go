package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. Only the level scene can be paused and
// the only accepted input while paused is resume.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
