// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-spline-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию поверх игрового экрана. M сохраняет и выходит в меню.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, previous: prev}
}

func (s *PauseState) Enter() {
	s.previous.game.Pause()
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.previous.leaveToMenu()
		return
	}
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if !unpause && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = s.previous.pauseButton.Contains(x, y)
	}
	if unpause {
		s.previous.game.Resume()
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 140}, false)

	fonts := s.sm.Ctx.Fonts
	title := "Paused"
	b := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
	hint := "P / Esc - resume    M - save and quit to menu"
	hb := text.BoundString(fonts.Regular, hint)
	text.Draw(screen, hint, fonts.Regular, (config.ScreenWidth-hb.Dx())/2, config.ScreenHeight/2+40, config.TextLightColor)
}

func (s *PauseState) Exit() {}
