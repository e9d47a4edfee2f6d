// internal/component/projectile.go
package component

import (
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/types"
	"go-spline-defense/pkg/spline"
)

// Projectile представляет летящий снаряд. Урон применяется по прилёту,
// до этого он учитывается в Enemy.Pending.
type Projectile struct {
	Tower      types.EntityID
	Target     types.EntityID
	Amount     float64 // урон после слабостей, уже зарезервированный на цели
	Base       int
	DamageType defs.DamageType
	From       spline.Point
	Flight     float64 // полное время полёта
	Elapsed    float64
}

// Fraction возвращает пройденную долю пути снаряда, в [0, 1].
func (p *Projectile) Fraction() float64 {
	if p.Flight <= 0 {
		return 1
	}
	return min(p.Elapsed/p.Flight, 1)
}
