// internal/app/errors.go
package app

import (
	"errors"

	"go-spline-defense/internal/system"
)

var (
	ErrNotEnoughMoney   = system.ErrNotEnoughMoney
	ErrWaveInProgress   = system.ErrWaveInProgress
	ErrGameOver         = system.ErrGameOver
	ErrInvalidPlacement = errors.New("cell is not buildable")
	ErrUnknownTower     = errors.New("no such tower")
	ErrUnknownTowerType = errors.New("unknown tower type")
	ErrInvalidUpgrade   = errors.New("tower cannot be upgraded to that type")
)
