// internal/component/visual.go
package component

import (
	"go-spline-defense/internal/defs"
	"go-spline-defense/pkg/spline"
)

// DamageNumber — всплывающее число урона над врагом.
type DamageNumber struct {
	Text     string
	Rank     defs.DamageRank
	Position spline.Point
	Velocity spline.Point
	Age      float64
}
