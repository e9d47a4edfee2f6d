// internal/system/damage.go
package system

import (
	"fmt"

	"go-spline-defense/internal/defs"
)

// Damage — урон в момент выстрела: базовая величина и тип.
type Damage struct {
	Amount int
	Type   defs.DamageType
}

// WeaknessMultiplier возвращает множитель цели для типа урона.
// Отсутствующая запись считается за 1, IgnoreWeakness всегда даёт 1.
func WeaknessMultiplier(t defs.DamageType, weakness map[defs.DamageType]float64) float64 {
	if t == defs.DamageIgnoreWeakness {
		return 1
	}
	if m, ok := weakness[t]; ok {
		return m
	}
	return 1
}

// RankOf классифицирует множитель.
func RankOf(m float64) defs.DamageRank {
	switch {
	case m == 0:
		return defs.RankNone
	case m < 1:
		return defs.RankReduce
	case m > 1:
		return defs.RankCritical
	default:
		return defs.RankClassic
	}
}

// ComputeDamage применяет таблицу слабостей к базовому урону. Результат отбрасывает
// дробную часть.
func ComputeDamage(base float64, t defs.DamageType, weakness map[defs.DamageType]float64) (int, defs.DamageRank) {
	m := WeaknessMultiplier(t, weakness)
	return int(base * m), RankOf(m)
}

// FormatDamage форматирует число урона, тысячи сокращаются до "K".
func FormatDamage(amount int) string {
	if amount >= 1000 {
		return fmt.Sprintf("%dK", amount/1000)
	}
	return fmt.Sprintf("%d", amount)
}
