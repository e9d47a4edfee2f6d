// pkg/render/hex_renderer.go
package render

import (
	"image/color"

	"go-spline-defense/pkg/hexmap"
	"go-spline-defense/pkg/spline"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HexRenderer рисует статичный задник уровня: клетки сетки и траектории врагов.
// Задник рендерится один раз в mapImage и перерисовывается только по запросу.
type HexRenderer struct {
	grid      *hexmap.Grid
	paths     []*spline.Polyline
	colors    *MapColors
	fillImg   *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
	pathWidth float32
	mapImage  *ebiten.Image
}

func NewHexRenderer(grid *hexmap.Grid, paths []*spline.Polyline, colors *MapColors, pathWidth float32, screenWidth, screenHeight int) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &HexRenderer{
		grid:      grid,
		paths:     paths,
		colors:    colors,
		fillImg:   fillImg,
		fillVs:    make([]ebiten.Vertex, 0, 18),
		fillIs:    make([]uint16, 0, 18),
		strokeVs:  make([]ebiten.Vertex, 0, 36),
		strokeIs:  make([]uint16, 0, 36),
		pathWidth: pathWidth,
		mapImage:  ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	for _, p := range r.paths {
		r.drawPath(r.mapImage, p)
	}
	for _, hex := range r.grid.Hexes() {
		fill := r.colors.CellColor
		if !r.grid.Buildable(hex) {
			fill = r.colors.BlockedCellColor
		}
		r.FillHex(r.mapImage, hex, fill)
		r.StrokeHex(r.mapImage, hex, LightenColor(fill, 40), r.colors.StrokeWidth)
	}
}

// Draw рисует задник одним вызовом.
func (r *HexRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

func (r *HexRenderer) hexPath(hex hexmap.Hex) vector.Path {
	corners := hexmap.Corners(r.grid.Center(hex), r.grid.HexSize)
	path := vector.Path{}
	for i, c := range corners {
		if i == 0 {
			path.MoveTo(float32(c.X), float32(c.Y))
		} else {
			path.LineTo(float32(c.X), float32(c.Y))
		}
	}
	path.Close()
	return path
}

// FillHex заливает клетку цветом.
func (r *HexRenderer) FillHex(target *ebiten.Image, hex hexmap.Hex, c color.RGBA) {
	path := r.hexPath(hex)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokeHex обводит клетку.
func (r *HexRenderer) StrokeHex(target *ebiten.Image, hex hexmap.Hex, c color.RGBA, width float32) {
	path := r.hexPath(hex)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawPath(target *ebiten.Image, p *spline.Polyline) {
	pts := p.Points()
	if len(pts) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    r.pathWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	paint(vs, r.colors.PathColor)
	target.DrawTriangles(vs, is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
