package config

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundAttackLanded
	SoundHitTaken
	SoundWeaponUsed
	SoundWeaponBroken
	SoundThrow
	SoundKO
	// Movement sounds
	SoundJump
	// Encounter sounds
	SoundPickup
	SoundBossSpawned
	SoundBossPhase
	SoundVictory
	SoundGameOver
)

// ToneConfig describes a synthesized cue: a square wave sliding from
// StartHz to EndHz over Duration seconds.
type ToneConfig struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundAttackLanded: {StartHz: 220, EndHz: 110, Duration: 0.06, Volume: 0.8},
			SoundHitTaken:     {StartHz: 140, EndHz: 70, Duration: 0.1, Volume: 0.9},
			SoundWeaponUsed:   {StartHz: 660, EndHz: 520, Duration: 0.04, Volume: 0.5},
			SoundWeaponBroken: {StartHz: 900, EndHz: 200, Duration: 0.18, Volume: 0.6},
			SoundThrow:        {StartHz: 400, EndHz: 800, Duration: 0.08, Volume: 0.5},
			SoundKO:           {StartHz: 180, EndHz: 40, Duration: 0.3, Volume: 0.9},
			SoundJump:         {StartHz: 300, EndHz: 600, Duration: 0.07, Volume: 0.4},
			SoundPickup:       {StartHz: 520, EndHz: 1040, Duration: 0.12, Volume: 0.6},
			SoundBossSpawned:  {StartHz: 80, EndHz: 60, Duration: 0.6, Volume: 1.0},
			SoundBossPhase:    {StartHz: 120, EndHz: 240, Duration: 0.5, Volume: 1.0},
			SoundVictory:      {StartHz: 440, EndHz: 880, Duration: 0.7, Volume: 0.8},
			SoundGameOver:     {StartHz: 330, EndHz: 110, Duration: 0.8, Volume: 0.8},
		},
	}
}
