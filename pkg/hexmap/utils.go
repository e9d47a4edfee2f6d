// pkg/hexmap/utils.go
package hexmap

import "math"

// Sqrt3 — √3, шаг сетки pointy-top.
const Sqrt3 = 1.7320508075688772935274463415059

// roundAxial округляет дробные осевые координаты до ближайшего гекса через кубические:
// сбрасывается компонента с наибольшей ошибкой, чтобы сохранить x+y+z=0.
func roundAxial(q, r float64) Hex {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
