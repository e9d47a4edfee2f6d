// pkg/spline/spline.go
package spline

import (
	"math"
	"sort"
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Dist returns the euclidean distance between two points.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Angle returns the bearing from p to o in degrees, in (-180, 180].
func (p Point) Angle(o Point) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X) * 180 / math.Pi
}

// Path is a trajectory parametrised by normalised progress in [0, 1].
type Path interface {
	Length() float64
	Evaluate(progress float64) Point
}

// Polyline is a Path made of straight segments, parametrised by arc length so that equal
// progress steps cover equal distances.
type Polyline struct {
	points []Point
	// cumulative[i] is the arc length from points[0] to points[i].
	cumulative []float64
}

// NewPolyline builds a polyline through the given points. Fewer than two points produce a
// degenerate path of zero length that always evaluates to its only point (or the origin).
func NewPolyline(points ...Point) *Polyline {
	pl := &Polyline{
		points:     append([]Point(nil), points...),
		cumulative: make([]float64, len(points)),
	}
	for i := 1; i < len(points); i++ {
		pl.cumulative[i] = pl.cumulative[i-1] + points[i].Dist(points[i-1])
	}
	return pl
}

// Points returns a copy of the control points.
func (pl *Polyline) Points() []Point {
	return append([]Point(nil), pl.points...)
}

func (pl *Polyline) Length() float64 {
	if len(pl.cumulative) == 0 {
		return 0
	}
	return pl.cumulative[len(pl.cumulative)-1]
}

func (pl *Polyline) Evaluate(progress float64) Point {
	switch len(pl.points) {
	case 0:
		return Point{}
	case 1:
		return pl.points[0]
	}
	if progress <= 0 {
		return pl.points[0]
	}
	if progress >= 1 {
		return pl.points[len(pl.points)-1]
	}

	target := progress * pl.Length()
	// первый индекс, где накопленная длина >= target
	i := sort.SearchFloat64s(pl.cumulative, target)
	if i == 0 {
		return pl.points[0]
	}
	segLen := pl.cumulative[i] - pl.cumulative[i-1]
	if segLen == 0 {
		return pl.points[i]
	}
	t := (target - pl.cumulative[i-1]) / segLen
	a, b := pl.points[i-1], pl.points[i]
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// CatmullRom samples a uniform Catmull-Rom curve through the control points
// and returns it as a polyline. samples is the number of segments generated between each pair
// of control points.
func CatmullRom(samples int, control ...Point) *Polyline {
	if len(control) < 3 || samples < 1 {
		return NewPolyline(control...)
	}

	out := make([]Point, 0, (len(control)-1)*samples+1)
	for i := 0; i < len(control)-1; i++ {
		p0 := control[max(i-1, 0)]
		p1 := control[i]
		p2 := control[i+1]
		p3 := control[min(i+2, len(control)-1)]
		for s := 0; s < samples; s++ {
			t := float64(s) / float64(samples)
			out = append(out, catmullRomPoint(p0, p1, p2, p3, t))
		}
	}
	out = append(out, control[len(control)-1])
	return NewPolyline(out...)
}

func catmullRomPoint(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float64) float64 {
		return 0.5 * ((2 * b) + (-a+c)*t + (2*a-5*b+4*c-d)*t2 + (-a+3*b-3*c+d)*t3)
	}
	return Point{
		X: f(p0.X, p1.X, p2.X, p3.X),
		Y: f(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// DistanceToPath returns the smallest distance from p to any segment of the polyline.
func (pl *Polyline) DistanceToPath(p Point) float64 {
	if len(pl.points) == 0 {
		return math.Inf(1)
	}
	if len(pl.points) == 1 {
		return p.Dist(pl.points[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(pl.points); i++ {
		best = math.Min(best, distToSegment(p, pl.points[i-1], pl.points[i]))
	}
	return best
}

func distToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Dist(a.Add(ab.Scale(t)))
}
