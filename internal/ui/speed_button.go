// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — кнопка ускорения, цвет зависит от выбранной скорости.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Contains использует круг для определения попадания, так как форма сложная.
func (b *SpeedButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetState выбирает цвет по индексу скорости.
func (b *SpeedButton) SetState(index int) {
	if index != b.CurrentState {
		b.LastClickTime = time.Now()
		b.LastToggleTime = b.LastClickTime
	}
	b.CurrentState = index
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]
	height := size * 1.2
	width := size
	offset := width * 0.8

	// два треугольника ">>"
	for _, shift := range []float32{0, offset} {
		path := vector.Path{}
		path.MoveTo(b.X-width+shift, b.Y-height/2)
		path.LineTo(b.X+shift, b.Y)
		path.LineTo(b.X-width+shift, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
		strokePath(screen, &path, color.White, 1)
	}
}
