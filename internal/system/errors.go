// internal/system/errors.go
package system

import "errors"

var (
	ErrUnknownEnemy   = errors.New("unknown enemy type")
	ErrNotEnoughMoney = errors.New("not enough money")
	ErrWaveInProgress = errors.New("wave already in progress")
	ErrGameOver       = errors.New("game over")
)
