package systems

import (
	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/entities"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/types"
	"go.uber.org/zap"
)

// SpawnUnit 创建单位并派发 UnitSpawned 事件
// 不检查圣水和放置区域，调用方负责
func SpawnUnit(em *ecs.EntityManager, balance *config.BalanceConfig, dispatcher *event.Dispatcher, team types.Team, kind types.UnitKind, x, y float64) (ecs.EntityID, error) {
	id, err := entities.NewUnitEntity(em, balance, team, kind, x, y)
	if err != nil {
		return 0, err
	}

	logger.Named("Spawn").Debug("unit spawned",
		zap.Stringer("team", team),
		zap.Stringer("kind", kind),
		zap.Uint64("entity", uint64(id)),
		zap.Float64("x", x),
		zap.Float64("y", y),
	)
	dispatcher.Dispatch(event.Event{
		Type: event.UnitSpawned,
		Data: event.UnitSpawnedData{Entity: id, Team: team, Kind: kind, X: x, Y: y},
	})

	return id, nil
}
