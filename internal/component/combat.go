// internal/component/combat.go
package component

import "go-spline-defense/internal/defs"

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Stats  defs.CombatStats
	Reload float64 // оставшееся время до следующего выстрела, в масштабированных секундах
}
