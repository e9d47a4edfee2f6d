// internal/state/state.go
package state

import (
	"go-spline-defense/internal/app"
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/storage"
	"go-spline-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context — общие для всех состояний зависимости приложения.
type Context struct {
	Config   *config.Config
	Library  *defs.Library
	Logger   *logrus.Logger
	Store    *storage.Store
	Registry *app.Registry
	Fonts    *ui.Fonts
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Ctx     *Context
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{Ctx: ctx}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
