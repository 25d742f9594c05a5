package components

import "github.com/yohamta/donburi"

// SpawnPoint is one goon placement in a wave.
type SpawnPoint struct {
	X, Y   float64
	Health float64
}

// WavePlan is a regular wave: a gate and the goons behind it.
type WavePlan struct {
	GateX  float64
	Spawns []SpawnPoint
}

// Outcome is the result of the level once it ends.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// EncounterData is the singleton wave director state.
type EncounterData struct {
	Plan []WavePlan
	// HeroSpawns overrides hero start positions, keyed by lower-case name.
	HeroSpawns map[string]SpawnPoint

	Wave       int // 1-based; len(Plan)+1 is the boss wave
	WaveActive bool
	GateX      float64

	BossSpawned      bool
	BossDefeated     bool
	EnrageTriggered  bool
	EvasiveTriggered bool

	Kills       int
	PickupTimer float64
	LevelTimer  float64
	Elapsed     float64

	Outcome       Outcome
	OutcomeReason string
}

var Encounter = donburi.NewComponentType[EncounterData]()

// BossWave is the wave index at which the boss appears.
func (e *EncounterData) BossWave() int {
	return len(e.Plan) + 1
}
