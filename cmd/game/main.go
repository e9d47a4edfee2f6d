// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-spline-defense/internal/app"
	"go-spline-defense/internal/config"
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/state"
	"go-spline-defense/internal/storage"
	"go-spline-defense/internal/ui"
	"go-spline-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	// ограничение кадра делает сама сессия
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.StringP("config", "c", "config.yaml", "path to the configuration file")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	level := flag.StringP("level", "l", "", "open this level directly instead of the menu")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	lib := defs.DefaultLibrary()
	if cfg.Defs.Dir != "" {
		if err := lib.LoadDir(cfg.Defs.Dir); err != nil {
			log.WithError(err).WithField("dir", cfg.Defs.Dir).Fatal("failed to load definitions")
		}
	}
	if err := lib.Validate(); err != nil {
		log.WithError(err).Fatal("invalid definitions")
	}

	if *pprofAddr != "" {
		go func() {
			log.WithError(http.ListenAndServe(*pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	ctx := &state.Context{
		Config:   cfg,
		Library:  lib,
		Logger:   log,
		Store:    storage.NewStore(cfg.Storage.Dir, log.WithField("component", "storage")),
		Registry: app.NewRegistry(log.WithField("component", "registry")),
		Fonts:    ui.LoadFonts(config.FontSize, config.TitleFontSize, log),
	}
	sm := state.NewStateMachine(ctx)
	menu := state.NewMenuState(sm)
	sm.SetState(menu)
	if *level != "" {
		menu.Start(*level)
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Spline Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("game loop failed")
		os.Exit(1)
	}
}
