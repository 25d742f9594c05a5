package components

import "github.com/yohamta/donburi"

// Role is the tagged variant a combatant is spawned as.
type Role int

const (
	RoleHero Role = iota
	RoleGoon
	RoleBoss
)

func (r Role) String() string {
	switch r {
	case RoleHero:
		return "hero"
	case RoleGoon:
		return "goon"
	case RoleBoss:
		return "boss"
	}
	return "unknown"
}

// Team separates heroes from everything that fights them.
type Team int

const (
	TeamHeroes Team = iota
	TeamEnemies
)

// AttackKind identifies a melee attack.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackLight
	AttackHeavy
	AttackSweep
	AttackContact
)

func (k AttackKind) String() string {
	switch k {
	case AttackLight:
		return "light"
	case AttackHeavy:
		return "heavy"
	case AttackSweep:
		return "sweep"
	case AttackContact:
		return "contact"
	}
	return "none"
}

// WeaponKind is the class of weapon a combatant holds.
type WeaponKind int

const (
	WeaponNone WeaponKind = iota
	WeaponBladed
	WeaponFlexible
)

func (w WeaponKind) String() string {
	switch w {
	case WeaponBladed:
		return "bladed"
	case WeaponFlexible:
		return "flexible"
	}
	return "none"
}

// CombatantData is shared by heroes, goons and the boss. Timers count down
// toward zero in seconds.
type CombatantData struct {
	Name string
	Role Role
	AI   bool

	// Active marks the hero under player control.
	Active bool
	// Wave is the encounter wave that spawned this combatant (0 for heroes and the boss).
	Wave int

	X, Y   float64
	JumpZ  float64
	JumpV  float64
	Facing float64
	Speed  float64

	Health    float64
	MaxHealth float64
	Alive     bool

	AttackTimer   float64
	HitTimer      float64
	Cooldown      float64
	ThrowCooldown float64
	FlashTimer    float64
	LingerTimer   float64

	LastAttack AttackKind
	Weapon     WeaponKind
	Durability int

	// Queued holds attack intents waiting for the combat resolver.
	Queued []AttackKind

	Step float64
	Anim float64
}

var Combatant = donburi.NewComponentType[CombatantData]()

// Team reports which side the combatant fights for.
func (c *CombatantData) Team() Team {
	if c.Role == RoleHero {
		return TeamHeroes
	}
	return TeamEnemies
}

func (c *CombatantData) Grounded(threshold float64) bool {
	return c.JumpZ <= threshold
}

// Lingering is true while a defeated combatant is still shown.
func (c *CombatantData) Lingering() bool {
	return !c.Alive && (c.LingerTimer > 0 || c.HitTimer > 0)
}

// LingerFraction returns how much of the linger window has elapsed, 0..1.
func (c *CombatantData) LingerFraction(total float64) float64 {
	if c.Alive || total <= 0 {
		return 0
	}
	f := 1 - c.LingerTimer/total
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
