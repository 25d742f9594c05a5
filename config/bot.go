package config

// BotDifficulty affects reaction time and decision quality of the autopilot hero
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for autopilot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    float64 // Seconds between decisions
	AttackRange      float64 // Horizontal distance to start attacking
	LaneTolerance    float64 // Depth distance considered "same lane"
	RetreatThreshold float64 // Health fraction to start retreating
	SweepChance      float64 // Chance to pick a sweep over a light attack
	JumpChance       float64 // Chance to jump while closing distance
	SwitchThreshold  float64 // Health fraction at which to tag the partner in
}

// BotConfigData holds all autopilot configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    0.5,
				AttackRange:      18,
				LaneTolerance:    8,
				RetreatThreshold: 0.2,
				SweepChance:      0.1,
				JumpChance:       0.02,
				SwitchThreshold:  0,
			},
			BotDifficultyNormal: {
				ReactionDelay:    0.25,
				AttackRange:      20,
				LaneTolerance:    7,
				RetreatThreshold: 0.3,
				SweepChance:      0.25,
				JumpChance:       0.03,
				SwitchThreshold:  0.25,
			},
			BotDifficultyHard: {
				ReactionDelay:    0.08,
				AttackRange:      22,
				LaneTolerance:    6,
				RetreatThreshold: 0.15,
				SweepChance:      0.35,
				JumpChance:       0.05,
				SwitchThreshold:  0.35,
			},
		},
	}
}
