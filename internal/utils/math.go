// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в градусах в диапазон (-180, 180]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle > 180 {
		angle -= 360
	} else if angle <= -180 {
		angle += 360
	}
	return angle
}

// DeltaAngle возвращает кратчайшую разницу между двумя углами (в градусах)
func DeltaAngle(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// LerpAngle интерполирует угол по кратчайшему пути; t ограничивается отрезком [0, 1]
func LerpAngle(from, to, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return NormalizeAngle(from + DeltaAngle(from, to)*t)
}
