package config

import "image/color"

// WorldConfig describes the playfield. Y is a depth lane, not height.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	ViewWidth   float64 `yaml:"viewWidth"`
	ViewHeight  float64 `yaml:"viewHeight"`
	FloorTop    float64 `yaml:"floorTop"`
	FloorBottom float64 `yaml:"floorBottom"`
	LevelTime   float64 `yaml:"levelTime"` // seconds before the level is lost
}

// SimConfig contains frame stepping values
type SimConfig struct {
	MaxDelta float64 `yaml:"maxDelta"` // dt clamp in seconds
	Seed     int64   `yaml:"seed"`
}

// HeroTypeConfig contains configuration for one playable hero
type HeroTypeConfig struct {
	Name   string  `yaml:"name"`
	Health float64 `yaml:"health"`
	Speed  float64 `yaml:"speed"`
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`
}

// HeroConfig contains hero movement configuration values
type HeroConfig struct {
	Types []HeroTypeConfig `yaml:"types"`

	// Movement
	VerticalFactor float64 `yaml:"verticalFactor"` // depth speed relative to horizontal
	StepFactor     float64 `yaml:"stepFactor"`     // walk cycle distance scale

	// Jump
	JumpVelocity float64 `yaml:"jumpVelocity"`
	JumpGravity  float64 `yaml:"jumpGravity"`
	GroundedZ    float64 `yaml:"groundedZ"` // max JumpZ that still counts as grounded

	// Partner follow offsets
	FollowOffsetX float64 `yaml:"followOffsetX"`
	FollowOffsetY float64 `yaml:"followOffsetY"`
}

// GoonConfig contains configuration for regular wave enemies
type GoonConfig struct {
	Health      float64 `yaml:"health"`
	BaseSpeed   float64 `yaml:"baseSpeed"`
	SpeedJitter float64 `yaml:"speedJitter"`

	// Combat
	Damage         float64 `yaml:"damage"`
	Cooldown       float64 `yaml:"cooldown"`
	KnockbackForce float64 `yaml:"knockbackForce"`
}

// BossModeConfig contains per-mode tuning for the boss
type BossModeConfig struct {
	HorizontalScale float64 `yaml:"horizontalScale"`
	VerticalScale   float64 `yaml:"verticalScale"`
	DamageScale     float64 `yaml:"damageScale"`
	Cooldown        float64 `yaml:"cooldown"`
	CooldownJitter  float64 `yaml:"cooldownJitter"`
	ThrowCooldown   float64 `yaml:"throwCooldown"`
}

// BossConfig contains boss configuration values
type BossConfig struct {
	Name   string  `yaml:"name"`
	Health float64 `yaml:"health"`
	Speed  float64 `yaml:"speed"`

	// Energy
	MaxEnergy         float64 `yaml:"maxEnergy"`
	DamageEnergyScale float64 `yaml:"damageEnergyScale"` // energy points lost per point of conventional damage
	EnrageThreshold   float64 `yaml:"enrageThreshold"`
	EvasiveThreshold  float64 `yaml:"evasiveThreshold"`

	// Combat
	Damage         float64 `yaml:"damage"`
	KnockbackForce float64 `yaml:"knockbackForce"`
	LingerTime     float64 `yaml:"lingerTime"`

	// Ranged harassment
	ThrowMinDistance float64 `yaml:"throwMinDistance"`

	// Teleport
	TeleportCooldown     float64 `yaml:"teleportCooldown"`
	TeleportChance       float64 `yaml:"teleportChance"` // per tick once the cooldown has elapsed
	TeleportFadeTime     float64 `yaml:"teleportFadeTime"`
	TeleportMinOffset    float64 `yaml:"teleportMinOffset"`
	TeleportMaxOffset    float64 `yaml:"teleportMaxOffset"`
	TeleportDepthJitter  float64 `yaml:"teleportDepthJitter"`
	DamageDuringTeleport bool    `yaml:"damageDuringTeleport"`

	// Spawn placement relative to the hero and camera
	SpawnAhead       float64 `yaml:"spawnAhead"`
	SpawnScreenInset float64 `yaml:"spawnScreenInset"`
	SpawnWorldInset  float64 `yaml:"spawnWorldInset"`
	SpawnDepthOffset float64 `yaml:"spawnDepthOffset"`
	SpawnTopInset    float64 `yaml:"spawnTopInset"`
	SpawnBottomInset float64 `yaml:"spawnBottomInset"`

	Modes map[string]BossModeConfig `yaml:"modes"`
}

// AIConfig contains shared chase and melee trigger distances
type AIConfig struct {
	ChaseDeadzoneX float64 `yaml:"chaseDeadzoneX"`
	ChaseDeadzoneY float64 `yaml:"chaseDeadzoneY"`
	MeleeRangeX    float64 `yaml:"meleeRangeX"`
	MeleeRangeY    float64 `yaml:"meleeRangeY"`
	MeleeMaxJumpZ  float64 `yaml:"meleeMaxJumpZ"` // attacker must be below this height to strike
	AttackDuration float64 `yaml:"attackDuration"`
	GoonVertScale  float64 `yaml:"goonVertScale"`
	GoonHorizScale float64 `yaml:"goonHorizScale"`
}

// AttackKindConfig contains per attack kind values
type AttackKindConfig struct {
	Damage    float64 `yaml:"damage"`
	Range     float64 `yaml:"range"`
	Band      float64 `yaml:"band"`
	Knockback float64 `yaml:"knockback"`
	Duration  float64 `yaml:"duration"`
	Cooldown  float64 `yaml:"cooldown"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	Light AttackKindConfig `yaml:"light"`
	Heavy AttackKindConfig `yaml:"heavy"`
	Sweep AttackKindConfig `yaml:"sweep"`

	FrontTolerance float64 `yaml:"frontTolerance"` // pixels behind the actor still counted as in front
	BandPerJumpZ   float64 `yaml:"bandPerJumpZ"`
	AerialMinZ     float64 `yaml:"aerialMinZ"`
	AerialBonus    float64 `yaml:"aerialBonus"`

	// Timers
	HitStun    float64 `yaml:"hitStun"`
	FlashTime  float64 `yaml:"flashTime"`
	LingerTime float64 `yaml:"lingerTime"`
}

// WeaponTypeConfig contains configuration for one weapon class
type WeaponTypeConfig struct {
	DamageBonus      float64 `yaml:"damageBonus"`
	RangeBonus       float64 `yaml:"rangeBonus"`
	CooldownScale    float64 `yaml:"cooldownScale"`
	Durability       int     `yaml:"durability"`
	DurabilityPerHit int     `yaml:"durabilityPerHit"`
}

// WeaponConfig contains weapon configuration
type WeaponConfig struct {
	Bladed   WeaponTypeConfig `yaml:"bladed"`
	Flexible WeaponTypeConfig `yaml:"flexible"`

	// Flexible weapon stagger applied to struck targets
	StaggerCooldown float64 `yaml:"staggerCooldown"`
	StaggerHitStun  float64 `yaml:"staggerHitStun"`
}

// ProjectileConfig contains thrown blade configuration
type ProjectileConfig struct {
	// Hero throw
	Speed         float64 `yaml:"speed"`
	TTL           float64 `yaml:"ttl"`
	OffsetX       float64 `yaml:"offsetX"`
	OffsetY       float64 `yaml:"offsetY"`
	ThrowCooldown float64 `yaml:"throwCooldown"`

	// Hero blade on impact
	Damage         float64 `yaml:"damage"`
	BossDamage     float64 `yaml:"bossDamage"`
	HitRadius      float64 `yaml:"hitRadius"`
	BossHitRadius  float64 `yaml:"bossHitRadius"`
	KnockbackForce float64 `yaml:"knockbackForce"`

	// Boss harassment blade
	BossSpeed     float64 `yaml:"bossSpeed"`
	BossTTL       float64 `yaml:"bossTTL"`
	BossBladeDmg  float64 `yaml:"bossBladeDamage"`
	BossBladeKnck float64 `yaml:"bossBladeKnockback"`

	SpinRate float64 `yaml:"spinRate"`
	Margin   float64 `yaml:"margin"`
	Broad    float64 `yaml:"broad"` // broadphase square edge
}

// PickupConfig contains weapon pickup configuration
type PickupConfig struct {
	FirstDelay     float64 `yaml:"firstDelay"`
	MinInterval    float64 `yaml:"minInterval"`
	IntervalJitter float64 `yaml:"intervalJitter"`
	MaxLive        int     `yaml:"maxLive"`
	TTL            float64 `yaml:"ttl"`
	DropChance     float64 `yaml:"dropChance"`
	DropTTL        float64 `yaml:"dropTTL"`
	CollectRadius  float64 `yaml:"collectRadius"`
	CollectBand    float64 `yaml:"collectBand"`
	ScreenInset    float64 `yaml:"screenInset"`
	DepthInset     float64 `yaml:"depthInset"`
	WorldInset     float64 `yaml:"worldInset"`
	FlexibleChance float64 `yaml:"flexibleChance"`
}

// WaveConfig describes one regular wave when no level file is available
type WaveConfig struct {
	GateX  float64 `yaml:"gateX"`
	BaseX  float64 `yaml:"baseX"`
	Count  int     `yaml:"count"`
	Health float64 `yaml:"health"`
}

// EncounterConfig contains wave direction configuration
type EncounterConfig struct {
	LevelFile string       `yaml:"levelFile"`
	Waves     []WaveConfig `yaml:"waves"`

	// Fallback spawn layout
	SpacingX float64 `yaml:"spacingX"`
	JitterX  float64 `yaml:"jitterX"`
	BaseY    float64 `yaml:"baseY"`
	SpacingY float64 `yaml:"spacingY"`
	JitterY  float64 `yaml:"jitterY"`
}

// SceneConfig contains scene timing configuration. Fade values are rates
// per second; a fade lasts 1/rate seconds.
type SceneConfig struct {
	StartFadeRate  float64  `yaml:"startFadeRate"`
	OpeningLines   []string `yaml:"openingLines"`
	CrawlRate      float64  `yaml:"crawlRate"` // characters per second
	CrawlPad       float64  `yaml:"crawlPad"`
	TitleCardTime  float64  `yaml:"titleCardTime"`
	Win1Time       float64  `yaml:"win1Time"`
	Win2FadeRate   float64  `yaml:"win2FadeRate"`
	Win2RevealRate float64  `yaml:"win2RevealRate"`
	CreditsDelay   float64  `yaml:"creditsDelay"`
	CreditsTime    float64  `yaml:"creditsTime"`
	EndFadeRate    float64  `yaml:"endFadeRate"`
	Credits        []string `yaml:"credits"`
}

// DialogueConfig contains boss dialogue interlude configuration
type DialogueConfig struct {
	Enabled         bool     `yaml:"enabled"`
	PromptTimeout   float64  `yaml:"promptTimeout"`
	ReplyTimeout    float64  `yaml:"replyTimeout"`
	CharsPerSec     float64  `yaml:"charsPerSec"`
	HoldTime        float64  `yaml:"holdTime"`
	TauntEnergy     float64  `yaml:"tauntEnergy"` // energy points drained by a successful taunt
	TriggerPhrase   string   `yaml:"triggerPhrase"`
	Endpoint        string   `yaml:"endpoint"`
	AggressiveWords []string `yaml:"aggressiveWords"`
	TauntWords      []string `yaml:"tauntWords"`
	Lines           []string `yaml:"lines"`
	MaxTextLen      int      `yaml:"maxTextLen"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	LeadFraction float64 `yaml:"leadFraction"` // hero screen position as a fraction of view width
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	Scale           int
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	HUDFontSize     float64
	TitleFontSize   float64
	SmallFontSize   float64

	HeroColors  map[string]color.RGBA
	GoonColor   color.RGBA
	BossColors  map[string]color.RGBA
	BladeColor  color.RGBA
	ChainColor  color.RGBA
	FloorColor  color.RGBA
	SkyColor    color.RGBA
	GateColor   color.RGBA
	ShadowColor color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var World WorldConfig
var Sim SimConfig
var Hero HeroConfig
var Goon GoonConfig
var Boss BossConfig
var AI AIConfig
var Combat CombatConfig
var Weapon WeaponConfig
var Projectile ProjectileConfig
var Pickup PickupConfig
var Encounter EncounterConfig
var Scene SceneConfig
var Dialogue DialogueConfig
var Camera CameraConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Boss mode keys used in BossConfig.Modes
const (
	ModeKeyNormal  = "normal"
	ModeKeyEnraged = "enraged"
	ModeKeyEvasive = "evasive"
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in default.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	World = WorldConfig{
		Width:       2400,
		ViewWidth:   320,
		ViewHeight:  180,
		FloorTop:    112,
		FloorBottom: 158,
		LevelTime:   90,
	}

	Sim = SimConfig{
		MaxDelta: 0.033,
		Seed:     42,
	}

	Hero = HeroConfig{
		Types: []HeroTypeConfig{
			{Name: "Johnny", Health: 140, Speed: 55, SpawnX: 110, SpawnY: 134},
			{Name: "Travis", Health: 140, Speed: 57, SpawnX: 104, SpawnY: 140},
		},
		VerticalFactor: 0.8,
		StepFactor:     0.28,
		JumpVelocity:   145,
		JumpGravity:    420,
		GroundedZ:      0.01,
		FollowOffsetX:  14,
		FollowOffsetY:  4,
	}

	Goon = GoonConfig{
		Health:         42,
		BaseSpeed:      36,
		SpeedJitter:    8,
		Damage:         8,
		Cooldown:       0.85,
		KnockbackForce: 7,
	}

	Boss = BossConfig{
		Name:   "Mike",
		Health: 300,
		Speed:  44,

		MaxEnergy:         100,
		DamageEnergyScale: 1.0 / 3.0,
		EnrageThreshold:   25,
		EvasiveThreshold:  12,

		Damage:         14,
		KnockbackForce: 7,
		LingerTime:     1.6,

		ThrowMinDistance: 90,

		TeleportCooldown:     3,
		TeleportChance:       0.02,
		TeleportFadeTime:     0.35,
		TeleportMinOffset:    40,
		TeleportMaxOffset:    70,
		TeleportDepthJitter:  8,
		DamageDuringTeleport: true,

		SpawnAhead:       110,
		SpawnScreenInset: 54,
		SpawnWorldInset:  30,
		SpawnDepthOffset: 8,
		SpawnTopInset:    8,
		SpawnBottomInset: 6,

		Modes: map[string]BossModeConfig{
			ModeKeyNormal: {
				HorizontalScale: 1.0,
				VerticalScale:   0.6,
				DamageScale:     1.0,
				Cooldown:        0.45,
				ThrowCooldown:   2.4,
			},
			ModeKeyEnraged: {
				HorizontalScale: 0.85,
				VerticalScale:   0.9,
				DamageScale:     1.3,
				Cooldown:        0.35,
				ThrowCooldown:   1.4,
			},
			ModeKeyEvasive: {
				HorizontalScale: 0.45,
				VerticalScale:   0.3,
				DamageScale:     0.8,
				Cooldown:        0.45,
				CooldownJitter:  0.3,
				ThrowCooldown:   2.0,
			},
		},
	}

	AI = AIConfig{
		ChaseDeadzoneX: 18,
		ChaseDeadzoneY: 4,
		MeleeRangeX:    20,
		MeleeRangeY:    10,
		MeleeMaxJumpZ:  1,
		AttackDuration: 0.18,
		GoonVertScale:  0.6,
		GoonHorizScale: 1.0,
	}

	Combat = CombatConfig{
		Light: AttackKindConfig{Damage: 10, Range: 22, Band: 11, Knockback: 9, Duration: 0.16, Cooldown: 0.28},
		Heavy: AttackKindConfig{Damage: 14, Range: 22, Band: 11, Knockback: 9, Duration: 0.16, Cooldown: 0.28},
		Sweep: AttackKindConfig{Damage: 18, Range: 30, Band: 16, Knockback: 11, Duration: 0.25, Cooldown: 0.65},

		FrontTolerance: 6,
		BandPerJumpZ:   0.03,
		AerialMinZ:     2,
		AerialBonus:    4,

		HitStun:    0.2,
		FlashTime:  0.12,
		LingerTime: 0.45,
	}

	Weapon = WeaponConfig{
		Bladed: WeaponTypeConfig{
			DamageBonus:      18,
			RangeBonus:       18,
			CooldownScale:    0.75,
			Durability:       22,
			DurabilityPerHit: 2,
		},
		Flexible: WeaponTypeConfig{
			DamageBonus:      12,
			RangeBonus:       30,
			CooldownScale:    0.8,
			Durability:       30,
			DurabilityPerHit: 1,
		},
		StaggerCooldown: 0.8,
		StaggerHitStun:  0.35,
	}

	Projectile = ProjectileConfig{
		Speed:         255,
		TTL:           1.15,
		OffsetX:       10,
		OffsetY:       -8,
		ThrowCooldown: 0.22,

		Damage:         50,
		BossDamage:     34,
		HitRadius:      15,
		BossHitRadius:  18,
		KnockbackForce: 10,

		BossSpeed:     200,
		BossTTL:       1.6,
		BossBladeDmg:  12,
		BossBladeKnck: 8,

		SpinRate: 18,
		Margin:   10,
		Broad:    36,
	}

	Pickup = PickupConfig{
		FirstDelay:     4,
		MinInterval:    5,
		IntervalJitter: 5,
		MaxLive:        2,
		TTL:            14,
		DropChance:     0.22,
		DropTTL:        10,
		CollectRadius:  14,
		CollectBand:    10,
		ScreenInset:    60,
		DepthInset:     10,
		WorldInset:     20,
		FlexibleChance: 0.5,
	}

	Encounter = EncounterConfig{
		LevelFile: "levels/iron_district.tmx",
		Waves: []WaveConfig{
			{GateX: 760, BaseX: 460, Count: 4, Health: 42},
			{GateX: 1500, BaseX: 1180, Count: 4, Health: 42},
		},
		SpacingX: 30,
		JitterX:  24,
		BaseY:    120,
		SpacingY: 9,
		JitterY:  6,
	}

	Scene = SceneConfig{
		StartFadeRate: 2.2,
		OpeningLines: []string{
			"PRESIDENT RONNIE'S DAUGHTER",
			"HAS BEEN KIDNAPPED BY MIKE.",
			"",
			"ARE JOHNNY + TRAVIS",
			"BAD ENOUGH DUDES",
			"TO RESCUE HER?",
		},
		CrawlRate:      17,
		CrawlPad:       1.4,
		TitleCardTime:  3,
		Win1Time:       4,
		Win2FadeRate:   3.4,
		Win2RevealRate: 3.6,
		CreditsDelay:   1.5,
		CreditsTime:    7,
		EndFadeRate:    3.2,
		Credits: []string{
			"EXECUTIVE MONKEY: SLEEVE MCDICHAEL",
			"LEAD AIRPORT NAMER: WILLIE DUSTICE",
			"CHAIN PHYSICS: JEROMY GRIDE",
			"KNIFE BALANCE: SCOTT DOUQUE",
			"CITY LIGHTING: SHAWN FURCOTTE",
			"TEARS ENGINEER: MIKE TRUK",
			"BOSS FEELINGS: TIM SANDEALE",
			"D-PAD SCIENCE: KARL DANDLETON",
			"END CREDITS: BOBSON DUGNUTT",
		},
	}

	Dialogue = DialogueConfig{
		Enabled:       true,
		PromptTimeout: 6,
		ReplyTimeout:  5,
		CharsPerSec:   34,
		HoldTime:      1.2,
		TauntEnergy:   10.5,
		TriggerPhrase: "bad enough dude",
		Endpoint:      "",
		AggressiveWords: []string{
			"kill", "smash", "destroy", "die", "dead", "crush", "rip", "rage", "blood",
		},
		TauntWords: []string{
			"haha", "lol", "weak", "easy", "cry", "loser", "clown", "joke",
		},
		Lines: []string{
			"Shut it. You're all noise and no power.",
			"I can hear fear in your voice already.",
			"Keep yapping. It makes crushing you easier.",
		},
		MaxTextLen: 200,
	}

	Camera = CameraConfig{
		LeadFraction: 0.35,
	}

	UI = UIConfig{
		Scale:           3,
		HealthBarWidth:  60,
		HealthBarHeight: 4,
		HealthBarMargin: 4,
		HUDFontSize:     8,
		TitleFontSize:   16,
		SmallFontSize:   6,

		HeroColors: map[string]color.RGBA{
			"Johnny": {R: 70, G: 130, B: 230, A: 255},
			"Travis": {R: 230, G: 90, B: 60, A: 255},
		},
		GoonColor: color.RGBA{R: 120, G: 160, B: 90, A: 255},
		BossColors: map[string]color.RGBA{
			ModeKeyNormal:  {R: 150, G: 90, B: 200, A: 255},
			ModeKeyEnraged: {R: 220, G: 40, B: 60, A: 255},
			ModeKeyEvasive: {R: 240, G: 200, B: 70, A: 255},
		},
		BladeColor:  color.RGBA{R: 210, G: 210, B: 220, A: 255},
		ChainColor:  color.RGBA{R: 160, G: 140, B: 90, A: 255},
		FloorColor:  color.RGBA{R: 52, G: 48, B: 60, A: 255},
		SkyColor:    color.RGBA{R: 20, G: 18, B: 34, A: 255},
		GateColor:   color.RGBA{R: 255, G: 80, B: 80, A: 120},
		ShadowColor: color.RGBA{R: 0, G: 0, B: 0, A: 90},
	}
}

// BossMode returns the tuning for the named boss mode, falling back to normal.
func BossMode(key string) BossModeConfig {
	if m, ok := Boss.Modes[key]; ok {
		return m
	}
	return Boss.Modes[ModeKeyNormal]
}

// OpeningCrawlTime returns how long the opening crawl card stays up.
func OpeningCrawlTime() float64 {
	chars := 0
	for i, line := range Scene.OpeningLines {
		if i > 0 {
			chars++
		}
		chars += len(line)
	}
	return float64(chars)/Scene.CrawlRate + Scene.CrawlPad
}
