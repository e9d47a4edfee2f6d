// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-spline-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
	Active   bool // подсвечена как выбранная
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h int, label string) *Button {
	return &Button{Rect: image.Rect(x, y, x+w, y+h), Text: label}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли клик по доступной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	cx, cy := ebiten.CursorPosition()
	bg := config.ButtonColor
	if b.Active || (!b.Disabled && b.Contains(cx, cy)) {
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	border := config.ButtonBorder
	if b.Active {
		border = config.SelectionColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	var fg color.Color = config.TextLightColor
	if b.Disabled {
		fg = config.DisabledColor
	}
	drawCentered(screen, b.Text, face, b.Rect, fg)
}

// drawCentered рисует строку по центру прямоугольника.
func drawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	tx := r.Min.X + (r.Dx()-bounds.Dx())/2
	ty := r.Min.Y + (r.Dy()+bounds.Dy())/2
	text.Draw(screen, s, face, tx, ty, clr)
}
