// internal/defs/enemies.go
package defs

import "image/color"

// Clip names whose durations are asked from the engine.
const (
	ClipDeath  = "Death"
	ClipSummon = "Summon"
	ClipHurt   = "Hurt"
	ClipAttack = "Attack"
)

// SummonDef makes an enemy a spawner: while alive it periodically drops more enemies behind
// itself on the same trajectory.
type SummonDef struct {
	Enemies  []EnemyType `json:"enemies"`
	Interval float64     `json:"interval"` // scaled seconds between summons
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type         EnemyType              `json:"type"`
	Name         string                 `json:"name"`
	Life         float64                `json:"life"`
	Speed        float64                `json:"speed"` // world units per second
	Reward       int                    `json:"reward"`
	DamageOnLeak int                    `json:"damage_on_leak"`
	Rank         int                    `json:"rank"`
	Weakness     map[DamageType]float64 `json:"weakness,omitempty"`
	DropOnDeath  []EnemyType            `json:"drop_on_death,omitempty"`
	Summon       *SummonDef             `json:"summon,omitempty"`
	// Clips maps animation clip names to their length in seconds. The headless engine
	// answers clip duration queries from here.
	Clips   map[string]float64 `json:"clips,omitempty"`
	Visuals Visuals            `json:"visuals"`
}

// IsSpawner reports whether the enemy summons other enemies while alive.
func (d EnemyDefinition) IsSpawner() bool {
	return d.Summon != nil && len(d.Summon.Enemies) > 0
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}
