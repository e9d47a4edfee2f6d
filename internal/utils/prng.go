// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел, чтобы весь визуальный
// разброс (смещение цифр урона и т.п.) можно было воспроизвести по сиду.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// UnitVector возвращает случайное направление единичной длины.
func (s *PRNGService) UnitVector() (float64, float64) {
	a := s.rng.Float64() * 2 * math.Pi
	return math.Cos(a), math.Sin(a)
}
