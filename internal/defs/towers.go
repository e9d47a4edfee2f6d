// internal/defs/towers.go
package defs

// CombatStats contains parameters related to a tower's attack. A tower without combat stats
// never attacks (boosters).
type CombatStats struct {
	Damage        int         `json:"damage"`
	FireRate      float64     `json:"fire_rate"`      // shots per second
	RotationSpeed float64     `json:"rotation_speed"` // lerp factor per second
	DamageType    DamageType  `json:"damage_type"`
	AttackStyle   AttackStyle `json:"attack_style"`
	// ProjectileSpeed > 0 delays the damage by distance / speed; 0 hits instantly.
	ProjectileSpeed float64 `json:"projectile_speed"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type     TowerType             `json:"type"`
	Name     string                `json:"name"`
	Price    int                   `json:"price"`
	Range    float64               `json:"range"`
	Combat   *CombatStats          `json:"combat,omitempty"`
	Bonus    map[BonusKind]float64 `json:"bonus,omitempty"`
	Upgrades []TowerType           `json:"upgrades,omitempty"`
	Visuals  Visuals               `json:"visuals"`
}

// IsBooster reports whether the tower grants bonuses to its neighbours.
func (d TowerDefinition) IsBooster() bool {
	return len(d.Bonus) > 0
}

// CanUpgradeTo reports whether t is one of the declared upgrades.
func (d TowerDefinition) CanUpgradeTo(t TowerType) bool {
	for _, u := range d.Upgrades {
		if u == t {
			return true
		}
	}
	return false
}
