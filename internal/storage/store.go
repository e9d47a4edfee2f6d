// internal/storage/store.go
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var ErrNoSave = errors.New("no save for level")

// Store keeps one encoded save file per level, named after the level.
type Store struct {
	dir string
	log *logrus.Entry
}

func NewStore(dir string, log *logrus.Entry) *Store {
	return &Store{dir: dir, log: log}
}

// Path returns the file of a level save.
func (s *Store) Path(level string) string {
	return filepath.Join(s.dir, filepath.Base(level))
}

// Exists reports whether the level has a save.
func (s *Store) Exists(level string) bool {
	_, err := os.Stat(s.Path(level))
	return err == nil
}

// Save replaces the save of a level.
func (s *Store) Save(level string, data LevelData) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}
	if err := os.WriteFile(s.Path(level), EncodeBase38([]byte(data.String())), 0644); err != nil {
		return fmt.Errorf("failed to write save %s: %w", level, err)
	}
	s.log.WithFields(logrus.Fields{"level": level, "towers": len(data.Towers)}).Info("level saved")
	return nil
}

// Load reads the save of a level.
func (s *Store) Load(level string) (LevelData, error) {
	raw, err := os.ReadFile(s.Path(level))
	if errors.Is(err, fs.ErrNotExist) {
		return LevelData{}, fmt.Errorf("%w: %s", ErrNoSave, level)
	}
	if err != nil {
		return LevelData{}, fmt.Errorf("failed to read save %s: %w", level, err)
	}
	text, err := DecodeBase38(raw)
	if err != nil {
		return LevelData{}, fmt.Errorf("%w: %v", ErrMalformedSave, err)
	}
	return ParseLevelData(string(text), s.log.WithField("level", level))
}

// Delete removes the save of a level. A missing save is not an error.
func (s *Store) Delete(level string) error {
	err := os.Remove(s.Path(level))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save %s: %w", level, err)
	}
	return nil
}
