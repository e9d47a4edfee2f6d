// internal/event/types.go
package event

import (
	"go-spline-defense/internal/defs"
	"go-spline-defense/internal/types"
	"go-spline-defense/pkg/spline"
)

const (
	EnemySpawned   EventType = "EnemySpawned"
	EnemyDied      EventType = "EnemyDied"     // жизнь дошла до нуля, враг умирает
	EnemyFinished  EventType = "EnemyFinished" // враг дошёл до конца траектории
	EnemyRemoved   EventType = "EnemyRemoved"  // враг убран из мира
	DamageDealt    EventType = "DamageDealt"
	WaveStarted    EventType = "WaveStarted"
	SubWaveStarted EventType = "SubWaveStarted" // очередной проход бесконечной волны
	WaveCompleted  EventType = "WaveCompleted"
	TowerPlaced    EventType = "TowerPlaced"
	TowerSold      EventType = "TowerSold"
	TowerUpgraded  EventType = "TowerUpgraded"
	BoosterChanged EventType = "BoosterChanged" // нужно пересчитать бонусы
	MoneyChanged   EventType = "MoneyChanged"
	LifeChanged    EventType = "LifeChanged"
	GameOver       EventType = "GameOver"
)

type EnemySpawnedData struct {
	Type       defs.EnemyType
	Trajectory int
	Progress   float64
}

type EnemyDiedData struct {
	Type     defs.EnemyType
	Reward   int
	Position spline.Point
	Children []types.EntityID
}

type EnemyFinishedData struct {
	Type   defs.EnemyType
	Damage int
}

type DamageDealtData struct {
	Tower    types.EntityID
	Amount   int
	Rank     defs.DamageRank
	Text     string
	Position spline.Point
}

// WaveData is carried by WaveStarted, SubWaveStarted and WaveCompleted.
type WaveData struct {
	Wave int
}

type TowerData struct {
	Type defs.TowerType
	From defs.TowerType // только для TowerUpgraded
	Cost int            // уплачено (или возвращено при продаже)
}

// AmountData is carried by MoneyChanged and LifeChanged.
type AmountData struct {
	Value int
	Delta int
}
