// internal/storage/level_data.go
package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-spline-defense/internal/defs"

	"github.com/sirupsen/logrus"
)

var ErrMalformedSave = errors.New("malformed save")

// TowerData is one built tower. AttackStyle is empty when no style was saved.
type TowerData struct {
	Type        defs.TowerType
	X, Y, Z     float64
	AttackStyle defs.AttackStyle
}

func (t TowerData) String() string {
	s := fmt.Sprintf("%s %s %s %s", t.Type, formatFloat(t.X), formatFloat(t.Y), formatFloat(t.Z))
	if t.AttackStyle != "" {
		s += " " + string(t.AttackStyle)
	}
	return s
}

// LevelData is the saved state of a level.
type LevelData struct {
	Life   int
	Money  int
	Wave   int
	Towers []TowerData
}

// String renders the plain text form: life, money and wave on their own lines, then one
// line per tower.
func (d LevelData) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n%d\n%d\n", d.Life, d.Money, d.Wave)
	for _, t := range d.Towers {
		sb.WriteString(t.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseLevelData reads the plain text form. Unknown tower types and attack styles are
// logged and replaced by the first declared value; broken numbers fail the whole load.
func ParseLevelData(text string, log logrus.FieldLogger) (LevelData, error) {
	var d LevelData
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 3 {
		return d, fmt.Errorf("%w: expected life, money and wave lines", ErrMalformedSave)
	}

	scalars := []*int{&d.Life, &d.Money, &d.Wave}
	for i, dst := range scalars {
		v, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			return d, fmt.Errorf("%w: line %d: %v", ErrMalformedSave, i+1, err)
		}
		*dst = v
	}

	for i, line := range lines[3:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		t, err := parseTower(line, log)
		if err != nil {
			return d, fmt.Errorf("%w: line %d: %v", ErrMalformedSave, i+4, err)
		}
		d.Towers = append(d.Towers, t)
	}
	return d, nil
}

func parseTower(line string, log logrus.FieldLogger) (TowerData, error) {
	var t TowerData
	f := strings.Fields(line)
	if len(f) < 4 {
		return t, fmt.Errorf("expected `type x y z [style]`, got %q", line)
	}

	typ, ok := defs.ParseTowerType(f[0])
	if !ok {
		log.WithField("token", f[0]).Warn("unknown tower type in save, using default")
	}
	t.Type = typ

	coords := []*float64{&t.X, &t.Y, &t.Z}
	for i, dst := range coords {
		v, err := strconv.ParseFloat(f[i+1], 64)
		if err != nil {
			return t, err
		}
		*dst = v
	}

	if len(f) > 4 {
		style, ok := defs.ParseAttackStyle(f[4])
		if !ok {
			log.WithField("token", f[4]).Warn("unknown attack style in save, using default")
		}
		t.AttackStyle = style
	}
	return t, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
