// internal/defs/library.go
package defs

import (
	"fmt"
	"image/color"
	"sort"

	"go-spline-defense/pkg/spline"
)

// Library holds every static definition a session needs. It is built once and shared
// read-only between sessions.
type Library struct {
	Towers  map[TowerType]TowerDefinition
	Enemies map[EnemyType]EnemyDefinition
	Levels  []LevelDefinition
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		Towers:  make(map[TowerType]TowerDefinition),
		Enemies: make(map[EnemyType]EnemyDefinition),
	}
}

func (l *Library) Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := l.Towers[t]
	return def, ok
}

func (l *Library) Enemy(t EnemyType) (EnemyDefinition, bool) {
	def, ok := l.Enemies[t]
	return def, ok
}

// Level finds a level by name.
func (l *Library) Level(name string) (LevelDefinition, bool) {
	for _, lvl := range l.Levels {
		if lvl.Name == name {
			return lvl, true
		}
	}
	return LevelDefinition{}, false
}

// BaseTowers returns the tower types that can be built directly, i.e. those no other tower
// upgrades into, cheapest first.
func (l *Library) BaseTowers() []TowerType {
	upgraded := make(map[TowerType]bool)
	for _, def := range l.Towers {
		for _, u := range def.Upgrades {
			upgraded[u] = true
		}
	}
	var out []TowerType
	for t := range l.Towers {
		if !upgraded[t] {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := l.Towers[out[i]], l.Towers[out[j]]
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.Type < b.Type
	})
	return out
}

// Validate checks that every cross reference points to a known definition.
func (l *Library) Validate() error {
	for t, def := range l.Towers {
		if def.Type != t {
			return fmt.Errorf("tower %q registered under %q", def.Type, t)
		}
		for _, u := range def.Upgrades {
			if _, ok := l.Towers[u]; !ok {
				return fmt.Errorf("tower %q: unknown upgrade %q", t, u)
			}
		}
		if def.Combat != nil && def.Combat.FireRate <= 0 {
			return fmt.Errorf("tower %q: fire rate must be positive", t)
		}
	}
	for t, def := range l.Enemies {
		if def.Type != t {
			return fmt.Errorf("enemy %q registered under %q", def.Type, t)
		}
		for _, d := range def.DropOnDeath {
			if _, ok := l.Enemies[d]; !ok {
				return fmt.Errorf("enemy %q: unknown drop %q", t, d)
			}
		}
		if def.Summon != nil {
			if def.Summon.Interval <= 0 {
				return fmt.Errorf("enemy %q: summon interval must be positive", t)
			}
			for _, s := range def.Summon.Enemies {
				if _, ok := l.Enemies[s]; !ok {
					return fmt.Errorf("enemy %q: unknown summon %q", t, s)
				}
			}
		}
	}
	for _, lvl := range l.Levels {
		if len(lvl.Trajectories) == 0 {
			return fmt.Errorf("level %q has no trajectory", lvl.Name)
		}
		for i, w := range lvl.Waves {
			total := 0.0
			for _, p := range w.Parts {
				if _, ok := l.Enemies[p.Enemy]; !ok {
					return fmt.Errorf("level %q wave %d: unknown enemy %q", lvl.Name, i+1, p.Enemy)
				}
				if p.Count < 0 || p.Delay < 0 {
					return fmt.Errorf("level %q wave %d: negative count or delay", lvl.Name, i+1)
				}
				total += p.Delay * float64(p.Count)
			}
			// бесконечная волна без задержек зациклилась бы в одном тике
			if w.Infinite && total <= 0 {
				return fmt.Errorf("level %q wave %d: infinite wave needs a positive delay", lvl.Name, i+1)
			}
		}
	}
	return nil
}

// DefaultLibrary returns the built-in towers, enemies and levels.
func DefaultLibrary() *Library {
	l := NewLibrary()
	for _, def := range defaultTowers() {
		l.Towers[def.Type] = def
	}
	for _, def := range defaultEnemies() {
		l.Enemies[def.Type] = def
	}
	l.Levels = defaultLevels()
	return l
}

func defaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			Type: TowerArcher, Name: "Archer", Price: 100, Range: 130,
			Combat: &CombatStats{Damage: 4, FireRate: 1.5, RotationSpeed: 8,
				DamageType: DamageClassic, AttackStyle: AttackFirst, ProjectileSpeed: 400},
			Upgrades: []TowerType{TowerArcherElite},
			Visuals:  Visuals{Color: color.RGBA{90, 170, 90, 255}, Radius: 12},
		},
		{
			Type: TowerArcherElite, Name: "Elite Archer", Price: 180, Range: 150,
			Combat: &CombatStats{Damage: 7, FireRate: 2, RotationSpeed: 10,
				DamageType: DamageClassic, AttackStyle: AttackFirst, ProjectileSpeed: 450},
			Visuals: Visuals{Color: color.RGBA{60, 210, 60, 255}, Radius: 13},
		},
		{
			Type: TowerCannon, Name: "Cannon", Price: 150, Range: 110,
			Combat: &CombatStats{Damage: 12, FireRate: 0.6, RotationSpeed: 4,
				DamageType: DamageFire, AttackStyle: AttackStrongest, ProjectileSpeed: 250},
			Upgrades: []TowerType{TowerCannonHeavy},
			Visuals:  Visuals{Color: color.RGBA{200, 90, 40, 255}, Radius: 14},
		},
		{
			Type: TowerCannonHeavy, Name: "Heavy Cannon", Price: 260, Range: 120,
			Combat: &CombatStats{Damage: 25, FireRate: 0.5, RotationSpeed: 4,
				DamageType: DamageFire, AttackStyle: AttackStrongest, ProjectileSpeed: 250},
			Visuals: Visuals{Color: color.RGBA{230, 60, 20, 255}, Radius: 15},
		},
		{
			Type: TowerMage, Name: "Mage", Price: 200, Range: 140,
			Combat: &CombatStats{Damage: 8, FireRate: 1, RotationSpeed: 6,
				DamageType: DamageLightning, AttackStyle: AttackFirst},
			Visuals: Visuals{Color: color.RGBA{150, 80, 220, 255}, Radius: 12},
		},
		{
			Type: TowerFrost, Name: "Frost", Price: 170, Range: 120,
			Combat: &CombatStats{Damage: 5, FireRate: 1.2, RotationSpeed: 6,
				DamageType: DamageIce, AttackStyle: AttackSpawner, ProjectileSpeed: 300},
			Visuals: Visuals{Color: color.RGBA{80, 170, 240, 255}, Radius: 12},
		},
		{
			Type: TowerDamageBooster, Name: "War Drum", Price: 250, Range: 120,
			Bonus:   map[BonusKind]float64{BonusDamage: 1.5, BonusRange: 1.1},
			Visuals: Visuals{Color: color.RGBA{230, 200, 40, 255}, Radius: 11},
		},
		{
			Type: TowerSpeedBooster, Name: "Metronome", Price: 250, Range: 120,
			Bonus:   map[BonusKind]float64{BonusFireRate: 1.3, BonusRotationSpeed: 1.5},
			Visuals: Visuals{Color: color.RGBA{240, 240, 160, 255}, Radius: 11},
		},
	}
}

func defaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{
			Type: EnemySlime, Name: "Slime", Life: 10, Speed: 50, Reward: 5, DamageOnLeak: 1, Rank: 1,
			Weakness:    map[DamageType]float64{DamageFire: 1.5, DamageIce: 0.5},
			DropOnDeath: []EnemyType{EnemySmallSlime, EnemySmallSlime},
			Clips:       map[string]float64{ClipDeath: 0.6},
			Visuals:     Visuals{Color: color.RGBA{80, 200, 120, 255}, Radius: 9},
		},
		{
			Type: EnemySmallSlime, Name: "Small Slime", Life: 4, Speed: 70, Reward: 2, DamageOnLeak: 1,
			Weakness: map[DamageType]float64{DamageFire: 1.5},
			Clips:    map[string]float64{ClipDeath: 0.4},
			Visuals:  Visuals{Color: color.RGBA{120, 230, 150, 255}, Radius: 6},
		},
		{
			Type: EnemyGoblin, Name: "Goblin", Life: 16, Speed: 65, Reward: 6, DamageOnLeak: 2, Rank: 2,
			Weakness: map[DamageType]float64{DamageLightning: 1.5, DamagePoison: 0.5},
			Clips:    map[string]float64{ClipDeath: 0.7},
			Visuals:  Visuals{Color: color.RGBA{160, 140, 60, 255}, Radius: 9},
		},
		{
			Type: EnemyBat, Name: "Bat", Life: 8, Speed: 100, Reward: 4, DamageOnLeak: 1, Rank: 1,
			Weakness: map[DamageType]float64{DamageClassic: 1.5, DamageFire: 0},
			Clips:    map[string]float64{ClipDeath: 0.5},
			Visuals:  Visuals{Color: color.RGBA{90, 60, 110, 255}, Radius: 7},
		},
		{
			Type: EnemyOrc, Name: "Orc", Life: 45, Speed: 40, Reward: 12, DamageOnLeak: 5, Rank: 3,
			Weakness: map[DamageType]float64{DamageClassic: 0.5, DamageIce: 1.5},
			Clips:    map[string]float64{ClipDeath: 0.9},
			Visuals:  Visuals{Color: color.RGBA{70, 120, 50, 255}, Radius: 12},
		},
		{
			Type: EnemyGolem, Name: "Golem", Life: 160, Speed: 25, Reward: 40, DamageOnLeak: 10, Rank: 5,
			Weakness: map[DamageType]float64{DamageClassic: 0.25, DamageFire: 0.5, DamageLightning: 2},
			Clips:    map[string]float64{ClipDeath: 1.2},
			Visuals:  Visuals{Color: color.RGBA{130, 130, 140, 255}, Radius: 15},
		},
		{
			Type: EnemyNest, Name: "Nest", Life: 60, Speed: 20, Reward: 25, DamageOnLeak: 5, Rank: 4,
			Weakness: map[DamageType]float64{DamageFire: 2},
			Summon:   &SummonDef{Enemies: []EnemyType{EnemySmallSlime, EnemySmallSlime}, Interval: 6},
			Clips:    map[string]float64{ClipDeath: 1.0, ClipSummon: 0.8},
			Visuals:  Visuals{Color: color.RGBA{150, 70, 70, 255}, Radius: 13},
		},
	}
}

func defaultLevels() []LevelDefinition {
	return []LevelDefinition{
		{
			Name:  "meadow",
			Title: "Meadow",
			Trajectories: [][]spline.Point{
				{{X: -20, Y: 200}, {X: 300, Y: 220}, {X: 520, Y: 420}, {X: 820, Y: 380}, {X: 1220, Y: 560}},
				{{X: -20, Y: 720}, {X: 320, Y: 660}, {X: 560, Y: 460}, {X: 860, Y: 520}, {X: 1220, Y: 560}},
			},
			Smooth: 12,
			Waves: []WaveDefinition{
				{Parts: []WavePart{{Enemy: EnemySlime, Count: 8, Delay: 1}}},
				{Parts: []WavePart{{Enemy: EnemySlime, Count: 10, Delay: 0.8}, {Enemy: EnemyGoblin, Count: 4, Delay: 1.2}}},
				{Parts: []WavePart{{Enemy: EnemyGoblin, Count: 8, Delay: 0.8}, {Enemy: EnemyBat, Count: 6, Delay: 0.6}}},
				{Parts: []WavePart{{Enemy: EnemySlime, Count: 6, Delay: 0.7}, {Enemy: EnemyOrc, Count: 5, Delay: 1.5}}},
				{Parts: []WavePart{{Enemy: EnemyNest, Count: 2, Delay: 3}, {Enemy: EnemyGoblin, Count: 10, Delay: 0.6}}},
				{Parts: []WavePart{{Enemy: EnemyGolem, Count: 2, Delay: 4}, {Enemy: EnemyOrc, Count: 6, Delay: 1}}},
				{
					Parts: []WavePart{
						{Enemy: EnemyGoblin, Count: 10, Delay: 0.5},
						{Enemy: EnemyOrc, Count: 4, Delay: 1},
						{Enemy: EnemyNest, Count: 1, Delay: 2},
					},
					Infinite: true,
				},
			},
			Grid: GridDef{HexSize: 30, Radius: 12, OriginX: 600, OriginY: 450, PathClearance: 34},
		},
	}
}
