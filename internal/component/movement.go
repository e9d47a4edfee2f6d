// internal/component/movement.go
package component

import "go-spline-defense/pkg/spline"

// PathFollower — движение по траектории уровня.
type PathFollower struct {
	Trajectory int     // индекс траектории уровня
	Progress   float64 // нормированная позиция в [0, 1]
	Speed      float64 // мировых единиц в секунду
	Position   spline.Point
}
