// internal/defs/types.go
package defs

// DamageType defines the kind of damage a tower deals. Enemies declare a weakness
// multiplier per type.
type DamageType string

const (
	DamageClassic   DamageType = "Classic"
	DamageFire      DamageType = "Fire"
	DamageIce       DamageType = "Ice"
	DamageLightning DamageType = "Lightning"
	DamagePoison    DamageType = "Poison"
	// DamageIgnoreWeakness bypasses the weakness table entirely (debug and instant-kill paths).
	DamageIgnoreWeakness DamageType = "IgnoreWeakness"
)

// DamageTypes lists every damage type in declaration order.
var DamageTypes = []DamageType{
	DamageClassic, DamageFire, DamageIce, DamageLightning, DamagePoison, DamageIgnoreWeakness,
}

// DamageRank classifies how effective a hit was. It only drives the floating number style.
type DamageRank string

const (
	RankNone     DamageRank = "None"
	RankReduce   DamageRank = "Reduce"
	RankClassic  DamageRank = "Classic"
	RankCritical DamageRank = "Critical"
)

// AttackStyle selects which in-range enemy a tower targets.
type AttackStyle string

const (
	AttackFirst     AttackStyle = "First"
	AttackLast      AttackStyle = "Last"
	AttackStrongest AttackStyle = "Strongest"
	AttackWeakest   AttackStyle = "Weakest"
	AttackSpawner   AttackStyle = "Spawner"
	AttackNone      AttackStyle = "None"
)

// AttackStyles is the cycling order used by the attack style button.
var AttackStyles = []AttackStyle{
	AttackFirst, AttackLast, AttackStrongest, AttackWeakest, AttackSpawner, AttackNone,
}

// Next returns the following attack style, wrapping around after the last one.
// An unknown value restarts the cycle.
func (s AttackStyle) Next() AttackStyle {
	return next(AttackStyles, s)
}

// BonusKind is a tower stat a booster can multiply.
type BonusKind string

const (
	BonusDamage        BonusKind = "Damage"
	BonusFireRate      BonusKind = "FireRate"
	BonusRotationSpeed BonusKind = "RotationSpeed"
	BonusRange         BonusKind = "Range"
)

// BonusKinds lists every bonus kind in declaration order.
var BonusKinds = []BonusKind{BonusDamage, BonusFireRate, BonusRotationSpeed, BonusRange}

// TowerType identifies a tower definition.
type TowerType string

const (
	TowerArcher        TowerType = "Archer"
	TowerArcherElite   TowerType = "ArcherElite"
	TowerCannon        TowerType = "Cannon"
	TowerCannonHeavy   TowerType = "CannonHeavy"
	TowerMage          TowerType = "Mage"
	TowerFrost         TowerType = "Frost"
	TowerDamageBooster TowerType = "DamageBooster"
	TowerSpeedBooster  TowerType = "SpeedBooster"
)

// TowerTypes lists every tower type in declaration order. The first one is the value
// substituted when a saved token cannot be parsed.
var TowerTypes = []TowerType{
	TowerArcher, TowerArcherElite, TowerCannon, TowerCannonHeavy,
	TowerMage, TowerFrost, TowerDamageBooster, TowerSpeedBooster,
}

// EnemyType identifies an enemy definition.
type EnemyType string

const (
	EnemySlime      EnemyType = "Slime"
	EnemySmallSlime EnemyType = "SmallSlime"
	EnemyGoblin     EnemyType = "Goblin"
	EnemyBat        EnemyType = "Bat"
	EnemyOrc        EnemyType = "Orc"
	EnemyGolem      EnemyType = "Golem"
	EnemyNest       EnemyType = "Nest"
)

// EnemyTypes lists every enemy type in declaration order.
var EnemyTypes = []EnemyType{
	EnemySlime, EnemySmallSlime, EnemyGoblin, EnemyBat, EnemyOrc, EnemyGolem, EnemyNest,
}

// ParseAttackStyle matches a token against the declared names exactly.
func ParseAttackStyle(s string) (AttackStyle, bool) {
	return parse(AttackStyles, s)
}

// ParseTowerType matches a token against the declared names exactly.
func ParseTowerType(s string) (TowerType, bool) {
	return parse(TowerTypes, s)
}

// ParseEnemyType matches a token against the declared names exactly.
func ParseEnemyType(s string) (EnemyType, bool) {
	return parse(EnemyTypes, s)
}

// ParseDamageType matches a token against the declared names exactly.
func ParseDamageType(s string) (DamageType, bool) {
	return parse(DamageTypes, s)
}

// ParseBonusKind matches a token against the declared names exactly.
func ParseBonusKind(s string) (BonusKind, bool) {
	return parse(BonusKinds, s)
}

// parse returns the declared value equal to s, or the first declared value and false.
func parse[T ~string](values []T, s string) (T, bool) {
	for _, v := range values {
		if string(v) == s {
			return v, true
		}
	}
	return values[0], false
}

func next[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
