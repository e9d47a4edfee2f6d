// internal/defs/levels.go
package defs

import "go-spline-defense/pkg/spline"

// GridDef describes the hex placement grid of a level.
type GridDef struct {
	HexSize       float64 `json:"hex_size"`
	Radius        int     `json:"radius"`
	OriginX       float64 `json:"origin_x"`
	OriginY       float64 `json:"origin_y"`
	PathClearance float64 `json:"path_clearance"` // minimal distance between a cell centre and any trajectory
}

// LevelDefinition is a playable map: trajectories enemies follow, its wave list and its
// placement grid.
type LevelDefinition struct {
	Name         string           `json:"name"`
	Title        string           `json:"title"`
	Trajectories [][]spline.Point `json:"trajectories"`
	// Smooth > 0 turns every trajectory into a Catmull-Rom curve with that many samples per
	// control segment.
	Smooth int              `json:"smooth"`
	Waves  []WaveDefinition `json:"waves"`
	Grid   GridDef          `json:"grid"`
}

// Paths builds the trajectories as arc-length parametrised polylines.
func (l LevelDefinition) Paths() []*spline.Polyline {
	paths := make([]*spline.Polyline, 0, len(l.Trajectories))
	for _, pts := range l.Trajectories {
		if l.Smooth > 0 {
			paths = append(paths, spline.CatmullRom(l.Smooth, pts...))
		} else {
			paths = append(paths, spline.NewPolyline(pts...))
		}
	}
	return paths
}
