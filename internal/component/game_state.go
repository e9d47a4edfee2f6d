// internal/component/game_state.go
package component

// GamePhase — фаза сессии для интерфейса.
type GamePhase int

const (
	BuildPhase GamePhase = iota
	WavePhase
	GameOverPhase
)

// SessionState — экономика сессии: деньги, жизни, номер волны.
type SessionState struct {
	Life     int
	Money    int
	Wave     int
	GameOver bool
	Phase    GamePhase
}
