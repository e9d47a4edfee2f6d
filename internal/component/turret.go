// internal/component/turret.go
package component

import "go-spline-defense/internal/types"

// Turret отвечает за поворот "головы" башни и текущую цель.
type Turret struct {
	// Facing — текущий угол в градусах.
	Facing float64
	// Target — слабая ссылка на цель, NoEntity если цели нет.
	Target types.EntityID
}
