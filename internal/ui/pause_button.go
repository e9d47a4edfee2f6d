// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — две полосы, на паузе превращаются в треугольник "play".
type PauseButton struct {
	X, Y          float32
	Size          float32
	IsPaused      bool
	LastClickTime time.Time
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

func (b *PauseButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

// SetPaused синхронизирует кнопку с сессией.
func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if b.IsPaused {
		path := vector.Path{}
		path.MoveTo(b.X-s/2, b.Y-s*0.6)
		path.LineTo(b.X+s*0.6, b.Y)
		path.LineTo(b.X-s/2, b.Y+s*0.6)
		path.Close()
		fillPath(screen, &path, color.RGBA{220, 180, 60, 255})
		strokePath(screen, &path, color.White, 1)
		return
	}
	barW, barH := s*0.35, s*1.2
	for _, x := range []float32{b.X - s*0.45, b.X + s*0.1} {
		vector.DrawFilledRect(screen, x, b.Y-barH/2, barW, barH, color.RGBA{200, 200, 200, 230}, true)
		vector.StrokeRect(screen, x, b.Y-barH/2, barW, barH, 1, color.White, true)
	}
}
