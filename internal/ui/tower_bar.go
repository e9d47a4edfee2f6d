// internal/ui/tower_bar.go
package ui

import (
	"fmt"

	"go-spline-defense/internal/config"
	"go-spline-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// TowerBar — ряд кнопок для выбора типа строящейся башни. Клавиши 1..9 дублируют кнопки.
type TowerBar struct {
	Types    []defs.TowerType
	Buttons  []*Button
	Selected int
}

func NewTowerBar(lib *defs.Library, x, y int) *TowerBar {
	bar := &TowerBar{Types: lib.BaseTowers()}
	for i, t := range bar.Types {
		def, _ := lib.Tower(t)
		bx := x + i*(config.TowerBarButtonW+6)
		bar.Buttons = append(bar.Buttons, NewButton(bx, y, config.TowerBarButtonW, config.TowerBarButtonH,
			fmt.Sprintf("%d %s %d", i+1, def.Name, def.Price)))
	}
	return bar
}

// Current возвращает выбранный тип башни.
func (b *TowerBar) Current() (defs.TowerType, bool) {
	if len(b.Types) == 0 {
		return "", false
	}
	return b.Types[b.Selected], true
}

// Select выбирает тип по индексу, лишние индексы игнорируются.
func (b *TowerBar) Select(i int) {
	if i >= 0 && i < len(b.Types) {
		b.Selected = i
	}
}

// Click выбирает кнопку под курсором.
func (b *TowerBar) Click(x, y int) bool {
	for i, btn := range b.Buttons {
		if btn.Contains(x, y) {
			b.Select(i)
			return true
		}
	}
	return false
}

// Draw отрисовывает панель; недоступные по цене башни затемнены.
func (b *TowerBar) Draw(screen *ebiten.Image, face font.Face, lib *defs.Library, money int) {
	for i, btn := range b.Buttons {
		def, _ := lib.Tower(b.Types[i])
		btn.Active = i == b.Selected
		btn.Disabled = def.Price > money
		btn.Draw(screen, face)
	}
}
