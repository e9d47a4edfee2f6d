// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системам нужно от сессии.
type GameContext interface {
	Pause()
}
