// internal/ui/world_renderer.go
package ui

import (
	"image/color"
	"math"

	"go-spline-defense/internal/app"
	"go-spline-defense/internal/component"
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/system"
	"go-spline-defense/internal/types"
	"go-spline-defense/pkg/hexmap"
	"go-spline-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WorldRenderer рисует игровой мир сессии: задник, башни, врагов, снаряды и числа урона.
type WorldRenderer struct {
	game *app.Game
	hex  *render.HexRenderer
	face font.Face
}

func NewWorldRenderer(g *app.Game, face font.Face) *WorldRenderer {
	colors := &render.MapColors{
		BackgroundColor:  config.BackgroundColor,
		CellColor:        config.CellColor,
		BlockedCellColor: config.BlockedCellColor,
		PathColor:        config.PathColor,
		StrokeWidth:      config.StrokeWidth,
	}
	return &WorldRenderer{
		game: g,
		hex:  render.NewHexRenderer(g.Grid, g.Paths, colors, config.PathWidth, config.ScreenWidth, config.ScreenHeight),
		face: face,
	}
}

// Draw рисует кадр. hover — клетка под курсором, selected — выбранная башня.
func (r *WorldRenderer) Draw(screen *ebiten.Image, hover hexmap.Hex, hoverOK bool, selected types.EntityID) {
	r.hex.Draw(screen)
	if hoverOK && r.game.Grid.Contains(hover) {
		r.hex.FillHex(screen, hover, config.HoverCellColor)
	}

	ecs := r.game.ECS
	ecs.Towers.Each(func(id types.EntityID, t *component.Tower) {
		r.drawTower(screen, t, id == selected)
	})
	ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		r.drawEnemy(screen, e)
	})
	ecs.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) {
		r.drawProjectile(screen, p)
	})
	for _, n := range r.game.VisualEffectSystem.Numbers {
		r.drawDamageNumber(screen, n)
	}
}

func (r *WorldRenderer) drawTower(screen *ebiten.Image, t *component.Tower, selected bool) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	if selected {
		vector.DrawFilledCircle(screen, x, y, float32(t.Radius), config.RangeColor, true)
		r.hex.StrokeHex(screen, t.Cell, config.SelectionColor, config.StrokeWidth)
	}
	radius := float32(t.Def.Visuals.Radius)
	vector.DrawFilledCircle(screen, x, y, radius, t.Def.Visuals.Color, true)
	vector.StrokeCircle(screen, x, y, radius, 1.5, config.TowerStrokeColor, true)
	if t.IsBooster() {
		vector.StrokeCircle(screen, x, y, radius*0.5, 1.5, config.TowerStrokeColor, true)
		return
	}
	// ствол по текущему углу турели
	rad := t.Turret.Facing * math.Pi / 180
	ex := x + float32(math.Cos(rad))*radius*1.4
	ey := y + float32(math.Sin(rad))*radius*1.4
	vector.StrokeLine(screen, x, y, ex, ey, 3, render.DarkenColor(t.Def.Visuals.Color), true)
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	radius := float32(e.Def.Visuals.Radius)
	clr := e.Def.Visuals.Color
	if !e.IsAlive() {
		// проигрывается анимация смерти или финиша
		clr = render.WithAlpha(clr, 0.4)
	}
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	if !e.IsAlive() || e.MaxLife <= 0 {
		return
	}
	ratio := float32(max(0, e.Life/e.MaxLife))
	bx := x - config.HealthBarWidth/2
	by := y - radius - config.HealthBarHeight - 3
	vector.DrawFilledRect(screen, bx, by, config.HealthBarWidth, config.HealthBarHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, bx, by, config.HealthBarWidth*ratio, config.HealthBarHeight, config.HealthColor, false)
}

func (r *WorldRenderer) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	pos := p.From
	if target, ok := r.game.ECS.Enemies.Get(p.Target); ok {
		pos = p.From.Add(target.Position.Sub(p.From).Scale(p.Fraction()))
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 3, config.ProjectileColor, true)
}

func (r *WorldRenderer) drawDamageNumber(screen *ebiten.Image, n *component.DamageNumber) {
	base, ok := config.RankColors[string(n.Rank)]
	if !ok {
		base = config.TextLightColor
	}
	var clr color.Color = render.WithAlpha(base, system.Alpha(n))
	bounds := text.BoundString(r.face, n.Text)
	text.Draw(screen, n.Text, r.face, int(n.Position.X)-bounds.Dx()/2, int(n.Position.Y), clr)
}
