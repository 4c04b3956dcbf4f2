package systems

import (
	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/types"
	"go.uber.org/zap"
)

// BehaviorSystem 处理实体的每帧行为
// 根据实体的 KindComponent 将更新分发给防御塔或单位的处理逻辑
//
// 每帧只遍历一次实体集合（按创建顺序）。轮到某个实体时才检查它是否存活，
// 因此本帧早些时候被击杀的实体不会再行动；先行动的实体造成的伤害对
// 后行动的实体立即可见。
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	dispatcher    *event.Dispatcher
}

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - dispatcher: 事件分发器（主塔激活通知），可为 nil
func NewBehaviorSystem(em *ecs.EntityManager, dispatcher *event.Dispatcher) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: em,
		dispatcher:    dispatcher,
	}
}

// Update 更新所有存活实体
func (s *BehaviorSystem) Update(deltaTime float64) {
	entityList := ecs.GetEntitiesWith2[*components.KindComponent, *components.HealthComponent](s.entityManager)

	for _, entityID := range entityList {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, entityID)
		if !health.IsAlive {
			continue
		}

		kind, _ := ecs.GetComponent[*components.KindComponent](s.entityManager, entityID)
		switch kind.Kind {
		case types.EntityTower:
			s.handleTowerBehavior(entityID, deltaTime)
		case types.EntityUnit:
			s.handleUnitBehavior(entityID, deltaTime)
		default:
			logger.Named("BehaviorSystem").Warn("entity has unknown kind",
				zap.Uint64("entity", uint64(entityID)),
				zap.Stringer("kind", kind.Kind),
			)
		}
	}
}
