// internal/interfaces/engine.go
package interfaces

import (
	"go-spline-defense/pkg/spline"

	"github.com/google/uuid"
)

// Engine — внешние службы движка, которые нужны ядру симуляции.
// Ядро хранит только непрозрачные хэндлы, объекты движка ему не видны.
type Engine interface {
	// Spawn создаёт объект заданного вида и возвращает его хэндл.
	Spawn(kind string, pos spline.Point) uuid.UUID
	Despawn(h uuid.UUID)
	// Play запускает анимацию или эффект, результат ядру не нужен.
	Play(h uuid.UUID, clip string)
	// ClipDuration возвращает длину клипа в секундах, 0 если клипа нет.
	ClipDuration(h uuid.UUID, clip string) float64
}
