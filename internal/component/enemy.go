// internal/component/enemy.go
package component

import (
	"go-spline-defense/internal/defs"

	"github.com/looplab/fsm"
)

// Состояния жизненного цикла врага.
const (
	EnemyAlive    = "alive"
	EnemyDying    = "dying"
	EnemyFinished = "finished"
	EnemyRemoved  = "removed"
)

// События автомата врага.
const (
	EnemyEventDie    = "die"
	EnemyEventFinish = "finish"
	EnemyEventRemove = "remove"
)

// Enemy представляет вражескую сущность на траектории.
type Enemy struct {
	Type    defs.EnemyType
	Def     *defs.EnemyDefinition
	FSM     *fsm.FSM
	MaxLife float64
	Life    float64
	// Pending — урон снарядов, которые уже летят в этого врага.
	Pending float64
	PathFollower
}

// State возвращает состояние жизненного цикла.
func (e *Enemy) State() string {
	return e.FSM.Current()
}

// IsAlive сообщает, движется ли враг и можно ли по нему попасть.
func (e *Enemy) IsAlive() bool {
	return e.FSM.Is(EnemyAlive)
}

// WillDie сообщает, мёртв ли враг или умрёт после попадания летящих снарядов.
func (e *Enemy) WillDie() bool {
	return !e.IsAlive() || e.Life-e.Pending <= 0
}

// IsSpawner сообщает, призывает ли враг других, пока жив.
func (e *Enemy) IsSpawner() bool {
	return e.Def != nil && e.Def.IsSpawner()
}
