// internal/state/menu_state.go
package state

import (
	"errors"
	"image/color"

	"go-spline-defense/internal/app"
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/storage"
	"go-spline-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sirupsen/logrus"
)

// MenuState — выбор уровня. Уровень с сохранением продолжается с него, крестик
// удаляет сохранение.
type MenuState struct {
	sm      *StateMachine
	buttons []*ui.MenuButton
	status  string
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	m.layout()
}

func (m *MenuState) layout() {
	ctx := m.sm.Ctx
	m.buttons = m.buttons[:0]
	x := (config.ScreenWidth - config.MenuButtonWidth) / 2
	for i, lvl := range ctx.Library.Levels {
		hasSave := ctx.Store.Exists(lvl.Name)
		label := lvl.Title
		if label == "" {
			label = lvl.Name
		}
		if hasSave {
			label += " (continue)"
		}
		y := 220 + i*(config.MenuButtonHeight+12)
		m.buttons = append(m.buttons, ui.NewMenuButton(lvl.Name, label, x, y,
			config.MenuButtonWidth, config.MenuButtonHeight, hasSave))
	}
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && len(m.buttons) > 0 {
		m.Start(m.buttons[0].Level)
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	for _, b := range m.buttons {
		if b.Delete != nil && b.Delete.IsClicked(x, y) {
			m.deleteSave(b.Level)
			return
		}
		if b.Main.IsClicked(x, y) {
			m.Start(b.Level)
			return
		}
	}
}

func (m *MenuState) deleteSave(level string) {
	ctx := m.sm.Ctx
	if err := ctx.Store.Delete(level); err != nil {
		ctx.Logger.WithError(err).WithField("level", level).Error("failed to delete save")
		m.status = "could not delete save"
		return
	}
	m.layout()
}

// Start открывает сессию уровня: существующую из реестра, из сохранения или новую.
func (m *MenuState) Start(level string) {
	ctx := m.sm.Ctx
	log := ctx.Logger.WithField("level", level)
	if g, ok := ctx.Registry.Get(level); ok {
		m.sm.SetState(NewGameState(m.sm, g))
		return
	}
	def, ok := ctx.Library.Level(level)
	if !ok {
		log.Error("unknown level")
		return
	}

	var g *app.Game
	data, err := ctx.Store.Load(level)
	switch {
	case err == nil:
		g, err = app.NewGameFromSave(ctx.Config, ctx.Library, &def, nil, ctx.Logger, data)
		if err != nil {
			log.WithError(err).Warn("save rejected, starting a new game")
			g = nil
		}
	case errors.Is(err, storage.ErrNoSave):
	default:
		log.WithError(err).Warn("save unreadable, starting a new game")
	}
	if g == nil {
		g = app.NewGame(ctx.Config, ctx.Library, &def, nil, ctx.Logger)
	}
	g = ctx.Registry.Register(g)
	log.WithFields(logrus.Fields{"session": g.ID.String()}).Info("level opened")
	m.sm.SetState(NewGameState(m.sm, g))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	fonts := m.sm.Ctx.Fonts
	screen.Fill(config.BackgroundColor)
	title := "Spline Defense"
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (config.ScreenWidth-bounds.Dx())/2, 150, config.TextLightColor)
	for _, b := range m.buttons {
		b.Draw(screen, fonts.Regular)
	}
	if m.status != "" {
		text.Draw(screen, m.status, fonts.Regular, 20, config.ScreenHeight-20, color.RGBA{220, 80, 80, 255})
	}
}

func (m *MenuState) Exit() {
	m.status = ""
}
