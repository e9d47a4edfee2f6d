// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-spline-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 160
	healthBarHeight = 12
)

// PlayerHealthIndicator отображает жизни и деньги игрока.
type PlayerHealthIndicator struct {
	X, Y    float32
	MaxLife int
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, maxLife int) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, MaxLife: maxLife}
}

// Draw рисует полосу жизней и счёт денег под ней.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, life, money int) {
	// сохранение может принести больше жизней, чем стартовый запас
	maxLife := max(i.MaxLife, life, 1)
	ratio := float32(life) / float32(maxLife)

	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.HealthBackColor, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth*ratio, healthBarHeight, config.HealthColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, 1, color.White, false)

	lineY := int(i.Y) + healthBarHeight + face.Metrics().Height.Ceil() + 2
	text.Draw(screen, fmt.Sprintf("Life %d", life), face, int(i.X), lineY, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Gold %d", money), face, int(i.X)+90, lineY, color.RGBA{255, 215, 0, 255})
}
