package config

import "fmt"

// Variant is a named motion preset.
type Variant string

const (
	VariantClassic  Variant = "classic"  // Instant jump, symmetric AABB collision
	VariantCharged  Variant = "charged"  // Hold-to-charge jump, symmetric AABB collision
	VariantOneWay   Variant = "oneway"   // Instant jump, fall-only (one-way) platforms
	VariantFreeRoam Variant = "freeroam" // No gravity, four-way movement
)

// Variants lists every preset in display order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantCharged, VariantOneWay, VariantFreeRoam}
}

// ParseVariant validates a variant name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("config: unknown variant %q", name)
}

// ApplyVariant overwrites the motion policy with the preset for v.
// Physics constants and geometry are left alone.
func ApplyVariant(cfg *WorldConfig, v Variant) {
	switch v {
	case VariantClassic:
		cfg.Policy = PolicyConfig{Jump: JumpInstant, Collision: CollisionSymmetric, Movement: MovementPlatformer}
	case VariantCharged:
		cfg.Policy = PolicyConfig{Jump: JumpCharged, Collision: CollisionSymmetric, Movement: MovementPlatformer}
	case VariantOneWay:
		cfg.Policy = PolicyConfig{Jump: JumpInstant, Collision: CollisionFallOnly, Movement: MovementPlatformer}
	case VariantFreeRoam:
		cfg.Policy = PolicyConfig{Jump: JumpInstant, Collision: CollisionSymmetric, Movement: MovementFreeRoam}
	}
}
