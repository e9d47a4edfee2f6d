// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	"go-spline-defense/internal/app"
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 220
	buttonWidth    = 150
	buttonHeight   = 26
)

// PanelActionKind — что игрок нажал на панели.
type PanelActionKind int

const (
	PanelNone PanelActionKind = iota
	PanelUpgrade
	PanelSell
	PanelStyle
)

// PanelAction — действие над выбранной башней.
type PanelAction struct {
	Kind    PanelActionKind
	Tower   types.EntityID
	Upgrade defs.TowerType
}

// InfoPanel показывает информацию о выбранной башне.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	stats         app.TowerStats
	upgrades      []*Button
	sellButton    *Button
	styleButton   *Button
}

// NewInfoPanel создает новую информационную панель.
func NewInfoPanel(font font.Face, titleFont font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - config.InfoPanelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains проверяет, накрывает ли видимая панель точку.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.panelRect())
}

// Update анимирует панель и обновляет характеристики выбранной башни. Башня, которой
// больше нет, прячет панель.
func (p *InfoPanel) Update(g *app.Game) {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = types.NoEntity
		}
	}
	if !p.IsVisible {
		return
	}
	stats, ok := g.TowerStats(p.TargetEntity)
	if !ok {
		p.Hide()
		return
	}
	p.stats = stats
	p.layoutButtons(g)
}

func (p *InfoPanel) layoutButtons(g *app.Game) {
	top := int(p.currentY) + panelMargin + lineHeight
	x := config.ScreenWidth - buttonWidth - 20

	money := g.State().Money
	p.upgrades = p.upgrades[:0]
	for i, u := range p.stats.Upgrades {
		def, _ := g.Library.Tower(u)
		b := NewButton(x-(buttonWidth+10), top+i*(buttonHeight+6), buttonWidth, buttonHeight,
			fmt.Sprintf("%s (%d)", def.Name, def.Price))
		b.Disabled = money < def.Price
		p.upgrades = append(p.upgrades, b)
	}
	p.sellButton = NewButton(x, top, buttonWidth, buttonHeight, fmt.Sprintf("Sell (+%d)", p.stats.SellPrice))
	p.styleButton = NewButton(x, top+buttonHeight+6, buttonWidth, buttonHeight, "Target: "+string(p.stats.AttackStyle))
	p.styleButton.Disabled = p.stats.Booster
}

// Click превращает клик внутри панели в действие.
func (p *InfoPanel) Click(x, y int) PanelAction {
	if !p.IsVisible {
		return PanelAction{}
	}
	for i, b := range p.upgrades {
		if b.IsClicked(x, y) {
			return PanelAction{Kind: PanelUpgrade, Tower: p.TargetEntity, Upgrade: p.stats.Upgrades[i]}
		}
	}
	if p.sellButton != nil && p.sellButton.IsClicked(x, y) {
		return PanelAction{Kind: PanelSell, Tower: p.TargetEntity}
	}
	if p.styleButton != nil && p.styleButton.IsClicked(x, y) {
		return PanelAction{Kind: PanelStyle, Tower: p.TargetEntity}
	}
	return PanelAction{}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible {
		return
	}
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, 0, y, config.ScreenWidth, config.InfoPanelHeight, config.BackgroundColor, false)
	vector.StrokeRect(screen, 0, y, config.ScreenWidth, config.InfoPanelHeight, 2, config.ButtonBorder, false)

	s := p.stats
	baseY := int(p.currentY) + panelMargin + lineHeight
	text.Draw(screen, s.Name, p.titleFontFace, 20, baseY, config.TextLightColor)

	var lines []string
	if s.Booster {
		lines = append(lines, fmt.Sprintf("Range: %.0f", s.Range), "Boosts towers in range")
	} else {
		lines = append(lines,
			fmt.Sprintf("Damage: %d %s", s.Damage, s.DamageType),
			fmt.Sprintf("Fire rate: %.2f/s", s.FireRate),
			fmt.Sprintf("Range: %.0f", s.Range),
			fmt.Sprintf("Rotation: %.1f", s.RotationSpeed),
		)
	}
	for i, line := range lines {
		col, row := i/3, i%3
		text.Draw(screen, line, p.fontFace, 20+col*columnSpacing, baseY+(row+1)*lineHeight+8, config.TextLightColor)
	}

	for _, b := range p.upgrades {
		b.Draw(screen, p.fontFace)
	}
	if p.sellButton != nil {
		p.sellButton.Draw(screen, p.fontFace)
	}
	if p.styleButton != nil && !s.Booster {
		p.styleButton.Draw(screen, p.fontFace)
	}
}

// panelRect — область панели в текущей позиции анимации.
func (p *InfoPanel) panelRect() image.Rectangle {
	return image.Rect(0, int(p.currentY), config.ScreenWidth, int(p.currentY)+config.InfoPanelHeight)
}
