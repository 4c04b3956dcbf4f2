package systems

import (
	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/logger"
	"go.uber.org/zap"
)

// CleanupSystem 移除所有已死亡的实体
// 在 BehaviorSystem 之后运行，死亡实体在本帧内仍对其他实体可见
type CleanupSystem struct {
	entityManager *ecs.EntityManager
	dispatcher    *event.Dispatcher
}

// NewCleanupSystem 创建一个新的清理系统
func NewCleanupSystem(em *ecs.EntityManager, dispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{
		entityManager: em,
		dispatcher:    dispatcher,
	}
}

// Update 标记并移除所有生命值归零的实体，返回移除数量
func (s *CleanupSystem) Update() int {
	entityList := ecs.GetEntitiesWith1[*components.HealthComponent](s.entityManager)

	for _, id := range entityList {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if health.IsAlive {
			continue
		}

		data := event.EntityDestroyedData{Entity: id}
		if team, ok := ecs.GetComponent[*components.TeamComponent](s.entityManager, id); ok {
			data.Team = team.Team
		}
		if kind, ok := ecs.GetComponent[*components.KindComponent](s.entityManager, id); ok {
			data.Kind = kind.Kind
		}

		s.entityManager.DestroyEntity(id)
		logger.Named("CleanupSystem").Debug("entity destroyed",
			zap.Uint64("entity", uint64(id)),
			zap.Stringer("team", data.Team),
			zap.Stringer("kind", data.Kind),
		)
		s.dispatcher.Dispatch(event.Event{Type: event.EntityDestroyed, Data: data})
	}

	return s.entityManager.RemoveMarkedEntities()
}
