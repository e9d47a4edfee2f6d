package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLibraryIsValid(t *testing.T) {
	lib := DefaultLibrary()
	if err := lib.Validate(); err != nil {
		t.Fatalf("Default library failed validation: %v", err)
	}
	if len(lib.Towers) != len(TowerTypes) {
		t.Errorf("Expected %d towers, got %d", len(TowerTypes), len(lib.Towers))
	}
	if len(lib.Enemies) != len(EnemyTypes) {
		t.Errorf("Expected %d enemies, got %d", len(EnemyTypes), len(lib.Enemies))
	}
	if _, ok := lib.Level("meadow"); !ok {
		t.Error("Expected built-in level meadow")
	}
	if _, ok := lib.Level("nowhere"); ok {
		t.Error("Unknown level should not be found")
	}
}

func TestBaseTowersExcludeUpgrades(t *testing.T) {
	base := DefaultLibrary().BaseTowers()
	for _, bt := range base {
		if bt == TowerArcherElite || bt == TowerCannonHeavy {
			t.Errorf("Upgrade %q listed as a base tower", bt)
		}
	}
	if len(base) == 0 || base[0] != TowerArcher {
		t.Errorf("Expected the cheapest tower Archer first, got %v", base)
	}
	for i := 1; i < len(base); i++ {
		lib := DefaultLibrary()
		if lib.Towers[base[i-1]].Price > lib.Towers[base[i]].Price {
			t.Errorf("Base towers not sorted by price: %v", base)
		}
	}
}

func TestValidateRejectsBrokenReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Library)
		want   string
	}{
		{"unknown upgrade", func(l *Library) {
			def := l.Towers[TowerArcher]
			def.Upgrades = []TowerType{"Catapult"}
			l.Towers[TowerArcher] = def
		}, "unknown upgrade"},
		{"zero fire rate", func(l *Library) {
			def := l.Towers[TowerMage]
			stats := *def.Combat
			stats.FireRate = 0
			def.Combat = &stats
			l.Towers[TowerMage] = def
		}, "fire rate"},
		{"unknown drop", func(l *Library) {
			def := l.Enemies[EnemySlime]
			def.DropOnDeath = []EnemyType{"Dragon"}
			l.Enemies[EnemySlime] = def
		}, "unknown drop"},
		{"summon interval", func(l *Library) {
			def := l.Enemies[EnemyNest]
			def.Summon = &SummonDef{Enemies: []EnemyType{EnemySlime}}
			l.Enemies[EnemyNest] = def
		}, "summon interval"},
		{"no trajectory", func(l *Library) {
			l.Levels[0].Trajectories = nil
		}, "no trajectory"},
		{"unknown wave enemy", func(l *Library) {
			l.Levels[0].Waves = []WaveDefinition{{Parts: []WavePart{{Enemy: "Dragon", Count: 1}}}}
		}, "unknown enemy"},
		{"infinite without delay", func(l *Library) {
			l.Levels[0].Waves = []WaveDefinition{{
				Parts:    []WavePart{{Enemy: EnemySlime, Count: 3}},
				Infinite: true,
			}}
		}, "positive delay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := DefaultLibrary()
			tt.mutate(lib)
			err := lib.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestAttackStyleNextCycles(t *testing.T) {
	s := AttackFirst
	for i := 0; i < len(AttackStyles); i++ {
		s = s.Next()
	}
	if s != AttackFirst {
		t.Errorf("Expected a full cycle back to First, got %q", s)
	}
	if AttackNone.Next() != AttackFirst {
		t.Errorf("None should wrap to First, got %q", AttackNone.Next())
	}
	if AttackStyle("Sideways").Next() != AttackFirst {
		t.Error("Unknown style should restart the cycle")
	}
}

func TestParseFallsBackToFirstValue(t *testing.T) {
	if v, ok := ParseTowerType("Mage"); !ok || v != TowerMage {
		t.Errorf("ParseTowerType(Mage) = %q, %v", v, ok)
	}
	if v, ok := ParseTowerType("mage"); ok || v != TowerArcher {
		t.Errorf("Parsing is case sensitive and falls back to Archer, got %q, %v", v, ok)
	}
	if v, ok := ParseAttackStyle("Bogus"); ok || v != AttackFirst {
		t.Errorf("ParseAttackStyle(Bogus) = %q, %v", v, ok)
	}
	if v, ok := ParseDamageType("Ice"); !ok || v != DamageIce {
		t.Errorf("ParseDamageType(Ice) = %q, %v", v, ok)
	}
	if _, ok := ParseBonusKind("Luck"); ok {
		t.Error("Unknown bonus kind should not parse")
	}
}

func TestWaveTotal(t *testing.T) {
	w := WaveDefinition{Parts: []WavePart{{Enemy: EnemySlime, Count: 3}, {Enemy: EnemyBat, Count: 4}}}
	if w.Total() != 7 {
		t.Errorf("Expected 7 enemies, got %d", w.Total())
	}
}

func TestLoadDirMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	towers := `[{"type":"Mage","name":"Archmage","price":320,"range":160,
		"combat":{"damage":20,"fire_rate":0.5,"rotation_speed":5,"damage_type":"Fire","attack_style":"Strongest"},
		"visuals":{"color":{"R":200,"G":50,"B":200,"A":255},"radius":14}}]`
	levels := `[{"name":"canyon","title":"Canyon","trajectories":[[{"X":0,"Y":0},{"X":500,"Y":0}]],
		"waves":[{"parts":[{"enemy":"Bat","count":5,"delay":0.5}]}],
		"grid":{"hex_size":30,"radius":4,"origin_x":250,"origin_y":100,"path_clearance":34}}]`
	if err := os.WriteFile(filepath.Join(dir, TowersFile), []byte(towers), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LevelsFile), []byte(levels), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := DefaultLibrary()
	if err := lib.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}
	mage := lib.Towers[TowerMage]
	if mage.Name != "Archmage" || mage.Price != 320 || mage.Combat.DamageType != DamageFire {
		t.Errorf("Mage was not replaced: %+v", mage)
	}
	if mage.Visuals.Color.R != 200 {
		t.Errorf("Expected visuals colour to load, got %+v", mage.Visuals.Color)
	}
	if _, ok := lib.Towers[TowerArcher]; !ok {
		t.Error("Towers absent from the file should keep their defaults")
	}
	lvl, ok := lib.Level("canyon")
	if !ok || len(lvl.Paths()) != 1 || lvl.Paths()[0].Length() != 500 {
		t.Errorf("Expected the canyon level with one 500 long path, got %+v", lvl)
	}
	if len(lib.Levels) != 2 {
		t.Errorf("Expected meadow plus canyon, got %d levels", len(lib.Levels))
	}
}

func TestLoadRejectsUnknownTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), EnemiesFile)
	if err := os.WriteFile(path, []byte(`[{"type":"Dragon","life":10}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := DefaultLibrary().LoadEnemyDefinitions(path); err == nil {
		t.Error("Expected an error for an unknown enemy type")
	}
	if err := DefaultLibrary().LoadLevels(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
