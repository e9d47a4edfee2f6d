// internal/ui/menu_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// MenuButton — строка меню уровней: кнопка уровня и кнопка удаления сохранения.
type MenuButton struct {
	Level  string
	Main   *Button
	Delete *Button
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(level, label string, x, y, w, h int, hasSave bool) *MenuButton {
	b := &MenuButton{
		Level: level,
		Main:  NewButton(x, y, w, h, label),
	}
	if hasSave {
		b.Delete = NewButton(x+w+10, y, h, h, "x")
	}
	return b
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image, face font.Face) {
	b.Main.Draw(screen, face)
	if b.Delete != nil {
		b.Delete.Draw(screen, face)
	}
}
