// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Definition file names inside the directory.
const (
	TowersFile  = "towers.json"
	EnemiesFile = "enemies.json"
	LevelsFile  = "levels.json"
)

// LoadTowerDefinitions reads the tower configuration file and merges it into the library.
func (l *Library) LoadTowerDefinitions(path string) error {
	var towerDefs []TowerDefinition
	if err := readJSON(path, &towerDefs); err != nil {
		return fmt.Errorf("failed to load tower definitions: %w", err)
	}
	for _, def := range towerDefs {
		if _, ok := ParseTowerType(string(def.Type)); !ok {
			return fmt.Errorf("failed to load tower definitions: unknown tower type %q", def.Type)
		}
		l.Towers[def.Type] = def
	}
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and merges it into the library.
func (l *Library) LoadEnemyDefinitions(path string) error {
	var enemyDefs []EnemyDefinition
	if err := readJSON(path, &enemyDefs); err != nil {
		return fmt.Errorf("failed to load enemy definitions: %w", err)
	}
	for _, def := range enemyDefs {
		if _, ok := ParseEnemyType(string(def.Type)); !ok {
			return fmt.Errorf("failed to load enemy definitions: unknown enemy type %q", def.Type)
		}
		l.Enemies[def.Type] = def
	}
	return nil
}

// LoadLevels reads the level file. Levels with a name already present replace it.
func (l *Library) LoadLevels(path string) error {
	var levels []LevelDefinition
	if err := readJSON(path, &levels); err != nil {
		return fmt.Errorf("failed to load levels: %w", err)
	}
	for _, lvl := range levels {
		replaced := false
		for i := range l.Levels {
			if l.Levels[i].Name == lvl.Name {
				l.Levels[i] = lvl
				replaced = true
				break
			}
		}
		if !replaced {
			l.Levels = append(l.Levels, lvl)
		}
	}
	return nil
}

// LoadDir merges every definition file found in dir over the library and validates the
// result. Missing files are skipped.
func (l *Library) LoadDir(dir string) error {
	loaders := []struct {
		file string
		load func(string) error
	}{
		{TowersFile, l.LoadTowerDefinitions},
		{EnemiesFile, l.LoadEnemyDefinitions},
		{LevelsFile, l.LoadLevels},
	}
	for _, ld := range loaders {
		path := filepath.Join(dir, ld.file)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := ld.load(path); err != nil {
			return err
		}
	}
	return l.Validate()
}

func readJSON(path string, v any) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return nil
}
