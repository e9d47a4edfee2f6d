// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"go-spline-defense/internal/app"
	"go-spline-defense/internal/component"
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/types"
	"go-spline-defense/internal/ui"
	"go-spline-defense/pkg/spline"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const messageDuration = 2 * time.Second

var numberKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	world         *ui.WorldRenderer
	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	health        *ui.PlayerHealthIndicator
	waveIndicator *ui.WaveIndicator
	infoPanel     *ui.InfoPanel
	towerBar      *ui.TowerBar
	lastClickTime time.Time
	message       string
	messageTime   time.Time
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	ctx := sm.Ctx
	fonts := ctx.Fonts
	return &GameState{
		sm:    sm,
		game:  g,
		world: ui.NewWorldRenderer(g, fonts.Regular),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		speedButton: ui.NewSpeedButton(float32(config.ScreenWidth-config.SpeedButtonOffsetX),
			config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(float32(config.ScreenWidth-config.PauseButtonOffsetX), config.SpeedButtonY, config.SpeedButtonSize),
		health:        ui.NewPlayerHealthIndicator(20, 16, ctx.Config.Game.StartLife),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 40),
		infoPanel:     ui.NewInfoPanel(fonts.Regular, fonts.Title),
		towerBar:      ui.NewTowerBar(ctx.Library, 20, config.TowerBarY),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.pauseButton.SetPaused(g.game.IsPaused())
	g.infoPanel.Update(g.game)

	if g.game.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.leaveToMenu()
			return
		}
		g.game.Update(deltaTime)
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleKeys()

	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Проверяем клик по UI элементам в первую очередь
		if !g.handleUIClick(x, y) {
			g.handleGameClick(x, y)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.infoPanel.Hide()
	}
}

func (g *GameState) handleKeys() {
	for i, k := range numberKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.towerBar.Select(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.cycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.save()
	}
	selected := g.infoPanel.TargetEntity
	if !g.infoPanel.IsVisible || selected == types.NoEntity {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.applyPanelAction(ui.PanelAction{Kind: ui.PanelStyle, Tower: selected})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.applyPanelAction(ui.PanelAction{Kind: ui.PanelSell, Tower: selected})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if stats, ok := g.game.TowerStats(selected); ok && len(stats.Upgrades) > 0 {
			g.applyPanelAction(ui.PanelAction{Kind: ui.PanelUpgrade, Tower: selected, Upgrade: stats.Upgrades[0]})
		}
	}
}

// handleUIClick обрабатывает клики по UI, возвращает false если клик игровой.
func (g *GameState) handleUIClick(x, y int) bool {
	cooldown := time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond
	switch {
	case g.speedButton.Contains(x, y):
		if !cooldown {
			g.cycleSpeed()
		}
	case g.pauseButton.Contains(x, y):
		if !cooldown {
			g.sm.SetState(NewPauseState(g.sm, g))
		}
	case g.indicator.Contains(x, y):
		if !cooldown {
			g.indicator.Click()
			g.startWave()
		}
	case g.infoPanel.Contains(x, y):
		g.applyPanelAction(g.infoPanel.Click(x, y))
	case g.towerBar.Click(x, y):
	default:
		return false
	}
	return true
}

func (g *GameState) handleGameClick(x, y int) {
	hex := g.game.Grid.HexAt(spline.Point{X: float64(x), Y: float64(y)})
	if !g.game.Grid.Contains(hex) {
		g.infoPanel.Hide()
		return
	}
	if id, ok := g.game.TowerAt(hex); ok {
		g.infoPanel.SetTarget(id)
		return
	}
	g.infoPanel.Hide()
	t, ok := g.towerBar.Current()
	if !ok {
		return
	}
	if _, err := g.game.PlaceTower(hex, t); err != nil {
		g.notify(err)
	}
}

func (g *GameState) applyPanelAction(a ui.PanelAction) {
	switch a.Kind {
	case ui.PanelUpgrade:
		id, err := g.game.UpgradeTower(a.Tower, a.Upgrade)
		if err != nil {
			g.notify(err)
			return
		}
		g.infoPanel.SetTarget(id)
	case ui.PanelSell:
		refund, err := g.game.SellTower(a.Tower)
		if err != nil {
			g.notify(err)
			return
		}
		g.infoPanel.Hide()
		g.setMessage(fmt.Sprintf("+%d gold", refund))
	case ui.PanelStyle:
		if _, err := g.game.SwitchAttackStyle(a.Tower); err != nil {
			g.notify(err)
		}
	}
}

func (g *GameState) startWave() {
	if err := g.game.StartWave(); err != nil {
		g.notify(err)
	}
}

func (g *GameState) cycleSpeed() {
	g.game.CycleSpeed()
	g.speedButton.SetState(speedIndex(g.game))
}

func speedIndex(game *app.Game) int {
	for i, s := range game.Config.Game.Speeds {
		if s == game.Speed() {
			return i
		}
	}
	return 0
}

func (g *GameState) save() {
	ctx := g.sm.Ctx
	if err := ctx.Store.Save(g.game.Level.Name, g.game.Snapshot()); err != nil {
		g.game.Log.WithError(err).Error("failed to save level")
		g.setMessage("save failed")
		return
	}
	g.setMessage("saved")
}

// leaveToMenu сохраняет живую сессию (или удаляет сохранение проигранной) и закрывает её.
func (g *GameState) leaveToMenu() {
	ctx := g.sm.Ctx
	if g.game.IsGameOver() {
		if err := ctx.Store.Delete(g.game.Level.Name); err != nil {
			g.game.Log.WithError(err).Warn("failed to delete save")
		}
	} else if err := ctx.Store.Save(g.game.Level.Name, g.game.Snapshot()); err != nil {
		g.game.Log.WithError(err).Error("failed to save level")
	}
	ctx.Registry.Release(g.game)
	g.sm.SetState(NewMenuState(g.sm))
}

func (g *GameState) notify(err error) {
	switch {
	case errors.Is(err, app.ErrNotEnoughMoney):
		g.setMessage("not enough gold")
	case errors.Is(err, app.ErrWaveInProgress):
		g.setMessage("wave in progress")
	case errors.Is(err, app.ErrInvalidPlacement):
		g.setMessage("cannot build here")
	case errors.Is(err, app.ErrGameOver):
		g.setMessage("game over")
	default:
		g.game.Log.WithError(err).Debug("action refused")
		g.setMessage(err.Error())
	}
}

func (g *GameState) setMessage(msg string) {
	g.message = msg
	g.messageTime = time.Now()
}

func (g *GameState) phaseColor(phase component.GamePhase) color.Color {
	switch phase {
	case component.WavePhase:
		return config.WavePhaseColor
	case component.GameOverPhase:
		return config.GameOverColor
	default:
		return config.BuildPhaseColor
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	fonts := g.sm.Ctx.Fonts
	st := g.game.State()

	cx, cy := ebiten.CursorPosition()
	hover := g.game.Grid.HexAt(spline.Point{X: float64(cx), Y: float64(cy)})
	g.world.Draw(screen, hover, g.game.CanPlaceTower(hover), g.infoPanel.TargetEntity)

	g.health.Draw(screen, fonts.Regular, st.Life, st.Money)
	g.waveIndicator.Draw(screen, fonts.Title, st.Wave)
	g.towerBar.Draw(screen, fonts.Regular, g.game.Library, st.Money)
	g.indicator.Draw(screen, g.phaseColor(st.Phase))
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen)

	if g.message != "" && time.Since(g.messageTime) < messageDuration {
		text.Draw(screen, g.message, fonts.Regular, 20, config.TowerBarY+config.TowerBarButtonH+24, config.TextLightColor)
	}
	if st.GameOver {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)
		title := fmt.Sprintf("Game Over - wave %d", st.Wave)
		b := text.BoundString(fonts.Title, title)
		text.Draw(screen, title, fonts.Title, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
		hint := "Enter - back to menu"
		hb := text.BoundString(fonts.Regular, hint)
		text.Draw(screen, hint, fonts.Regular, (config.ScreenWidth-hb.Dx())/2, config.ScreenHeight/2+40, config.TextLightColor)
	}
}

func (g *GameState) Exit() {}
