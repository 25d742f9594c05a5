package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile maps top-level YAML sections onto the live configuration.
// Decoding into the existing structs means only keys present in the file
// are overridden. Slices and map entries (hero types, waves, boss modes)
// are replaced as a whole.
type tuningFile struct {
	World      *WorldConfig      `yaml:"world"`
	Sim        *SimConfig        `yaml:"sim"`
	Hero       *HeroConfig       `yaml:"hero"`
	Goon       *GoonConfig       `yaml:"goon"`
	Boss       *BossConfig       `yaml:"boss"`
	AI         *AIConfig         `yaml:"ai"`
	Combat     *CombatConfig     `yaml:"combat"`
	Weapon     *WeaponConfig     `yaml:"weapon"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Pickup     *PickupConfig     `yaml:"pickup"`
	Encounter  *EncounterConfig  `yaml:"encounter"`
	Scene      *SceneConfig      `yaml:"scene"`
	Dialogue   *DialogueConfig   `yaml:"dialogue"`
	Camera     *CameraConfig     `yaml:"camera"`
}

func liveTuning() tuningFile {
	return tuningFile{
		World:      &World,
		Sim:        &Sim,
		Hero:       &Hero,
		Goon:       &Goon,
		Boss:       &Boss,
		AI:         &AI,
		Combat:     &Combat,
		Weapon:     &Weapon,
		Projectile: &Projectile,
		Pickup:     &Pickup,
		Encounter:  &Encounter,
		Scene:      &Scene,
		Dialogue:   &Dialogue,
		Camera:     &Camera,
	}
}

// ApplyTuning overlays YAML tuning data on top of the current values.
func ApplyTuning(data []byte) error {
	t := liveTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	return validate()
}

// LoadTuning resets every tunable to its default and overlays the YAML file at path.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	Reset()
	if err := ApplyTuning(data); err != nil {
		Reset()
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

func validate() error {
	if World.FloorBottom <= World.FloorTop {
		return fmt.Errorf("world.floorBottom (%v) must exceed world.floorTop (%v)", World.FloorBottom, World.FloorTop)
	}
	if World.Width < World.ViewWidth {
		return fmt.Errorf("world.width (%v) must be at least world.viewWidth (%v)", World.Width, World.ViewWidth)
	}
	if Sim.MaxDelta <= 0 {
		return fmt.Errorf("sim.maxDelta must be positive, got %v", Sim.MaxDelta)
	}
	if len(Hero.Types) == 0 {
		return fmt.Errorf("hero.types must list at least one hero")
	}
	if Boss.MaxEnergy <= 0 {
		return fmt.Errorf("boss.maxEnergy must be positive, got %v", Boss.MaxEnergy)
	}
	if _, ok := Boss.Modes[ModeKeyNormal]; !ok {
		return fmt.Errorf("boss.modes must define %q", ModeKeyNormal)
	}
	return nil
}
