// internal/types/types.go
package types

import "fmt"

// EntityID — непрозрачный идентификатор сущности: младшие 32 бита — индекс слота
// в плотной таблице, старшие 32 бита — поколение слота. Нулевое значение означает
// отсутствие сущности.
type EntityID uint64

// NoEntity — отсутствие сущности (например, у башни нет цели).
const NoEntity EntityID = 0

// NewEntityID упаковывает индекс и поколение. Поколение всегда >= 1,
// поэтому валидный идентификатор никогда не равен NoEntity.
func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index возвращает индекс слота.
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation возвращает поколение слота.
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

// IsNone сообщает, что идентификатор пустой.
func (id EntityID) IsNone() bool {
	return id == NoEntity
}

func (id EntityID) String() string {
	if id.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%d:%d", id.Index(), id.Generation())
}
