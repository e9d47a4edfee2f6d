// pkg/hexmap/grid.go
package hexmap

import (
	"sort"

	"go-spline-defense/pkg/spline"
)

// Cell is one placement slot of the grid.
type Cell struct {
	Buildable bool
}

// Grid is a hexagon of cells centred on Origin. Towers snap to cell centres.
type Grid struct {
	Cells   map[Hex]Cell
	Radius  int
	HexSize float64
	Origin  spline.Point
	sorted  []Hex
}

// NewGrid builds a hexagonal grid of the given radius with every cell buildable.
func NewGrid(radius int, hexSize float64, origin spline.Point) *Grid {
	g := &Grid{
		Cells:   make(map[Hex]Cell),
		Radius:  radius,
		HexSize: hexSize,
		Origin:  origin,
	}
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			h := Hex{q, r}
			g.Cells[h] = Cell{Buildable: true}
			g.sorted = append(g.sorted, h)
		}
	}
	sort.Slice(g.sorted, func(i, j int) bool {
		if g.sorted[i].R != g.sorted[j].R {
			return g.sorted[i].R < g.sorted[j].R
		}
		return g.sorted[i].Q < g.sorted[j].Q
	})
	return g
}

// Hexes returns every cell in a stable order.
func (g *Grid) Hexes() []Hex {
	return g.sorted
}

// Contains reports whether the hex is part of the grid.
func (g *Grid) Contains(h Hex) bool {
	_, ok := g.Cells[h]
	return ok
}

// Center returns the world position of a cell centre.
func (g *Grid) Center(h Hex) spline.Point {
	x, y := h.ToPixel(g.HexSize)
	return spline.Point{X: g.Origin.X + x, Y: g.Origin.Y + y}
}

// HexAt returns the cell under a world position.
func (g *Grid) HexAt(p spline.Point) Hex {
	return PixelToHex(p.X-g.Origin.X, p.Y-g.Origin.Y, g.HexSize)
}

// BlockNear marks unbuildable every cell whose centre lies within clearance of any path.
func (g *Grid) BlockNear(paths []*spline.Polyline, clearance float64) {
	for h := range g.Cells {
		c := g.Center(h)
		for _, p := range paths {
			if p.DistanceToPath(c) <= clearance {
				g.Cells[h] = Cell{Buildable: false}
				break
			}
		}
	}
}

// Buildable reports whether a tower may stand on the cell, ignoring occupation.
func (g *Grid) Buildable(h Hex) bool {
	cell, ok := g.Cells[h]
	return ok && cell.Buildable
}
