// internal/defs/waves.go
package defs

// WavePart выпускает Count врагов одного типа, по одному раз в Delay масштабированных секунд.
type WavePart struct {
	Enemy EnemyType `json:"enemy"`
	Count int       `json:"count"`
	Delay float64   `json:"delay"`
}

// WaveDefinition описывает одну волну: упорядоченные части и флаг бесконечности
// (бесконечная волна повторяет свои части, пока у игрока остаются жизни).
type WaveDefinition struct {
	Parts    []WavePart `json:"parts"`
	Infinite bool       `json:"infinite"`
}

// Total возвращает число врагов за один проход по частям.
func (w WaveDefinition) Total() int {
	n := 0
	for _, p := range w.Parts {
		n += p.Count
	}
	return n
}
