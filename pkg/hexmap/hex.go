// pkg/hexmap/hex.go
package hexmap

import (
	"math"

	"go-spline-defense/pkg/spline"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// ToPixel конвертирует гекс в пиксельные координаты относительно центра сетки (pointy top)
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// PixelToHex конвертирует координаты относительно центра сетки в гекс
func PixelToHex(x, y, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return roundAxial(q, r)
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Corners возвращает шесть вершин гекса с центром в c.
func Corners(c spline.Point, hexSize float64) [6]spline.Point {
	var out [6]spline.Point
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		out[i] = spline.Point{X: c.X + hexSize*math.Cos(angle), Y: c.Y + hexSize*math.Sin(angle)}
	}
	return out
}
