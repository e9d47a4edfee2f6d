// internal/system/targeting.go
package system

import (
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/types"
)

// Candidate — то, что выбору цели нужно знать о враге в радиусе.
type Candidate struct {
	ID       types.EntityID
	Progress float64
	Life     float64
	Spawner  bool
}

// ahead сообщает, идёт ли a раньше b при равенстве: больший прогресс, затем меньший id.
func ahead(a, b Candidate) bool {
	if a.Progress != b.Progress {
		return a.Progress > b.Progress
	}
	return a.ID < b.ID
}

// SelectTarget выбирает кандидата по стилю атаки. Результат зависит только от значений
// кандидатов, но не от их порядка в срезе.
func SelectTarget(cands []Candidate, style defs.AttackStyle) types.EntityID {
	if len(cands) == 0 || style == defs.AttackNone {
		return types.NoEntity
	}

	var better func(a, b Candidate) bool
	switch style {
	case defs.AttackFirst:
		better = ahead
	case defs.AttackLast:
		better = func(a, b Candidate) bool {
			if a.Progress != b.Progress {
				return a.Progress < b.Progress
			}
			return a.ID < b.ID
		}
	case defs.AttackStrongest:
		better = func(a, b Candidate) bool {
			if a.Life != b.Life {
				return a.Life > b.Life
			}
			return ahead(a, b)
		}
	case defs.AttackWeakest:
		better = func(a, b Candidate) bool {
			if a.Life != b.Life {
				return a.Life < b.Life
			}
			return ahead(a, b)
		}
	case defs.AttackSpawner:
		better = func(a, b Candidate) bool {
			if a.Spawner != b.Spawner {
				return a.Spawner
			}
			return ahead(a, b)
		}
	default:
		better = ahead
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best.ID
}
