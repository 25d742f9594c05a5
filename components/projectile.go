package components

import "github.com/yohamta/donburi"

type ProjectileKind int

const (
	ProjectileBlade ProjectileKind = iota
)

type ProjectileData struct {
	Kind      ProjectileKind
	Owner     string
	OwnerTeam Team

	X, Y float64
	VX   float64
	TTL  float64
	Spin float64

	Damage     float64
	BossDamage float64
	Radius     float64
	BossRadius float64
	Knockback  float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
