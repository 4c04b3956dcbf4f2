package systems

import (
	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/logger"
	"go.uber.org/zap"
)

// ApplyDamage 对实体造成伤害
//
// 未激活的主塔在结算伤害之前先被永久激活（任何一次命中都会激活，包括 0 伤害）。
// 负伤害按 0 处理。返回本次伤害是否导致目标死亡。
func ApplyDamage(em *ecs.EntityManager, dispatcher *event.Dispatcher, target ecs.EntityID, amount int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](em, target)
	if !ok {
		return false
	}

	if tower, ok := ecs.GetComponent[*components.TowerComponent](em, target); ok {
		if tower.Kind.IsKing() && !tower.IsActive {
			tower.IsActive = true
			activateKing(em, dispatcher, target)
		}
	}

	return health.TakeDamage(amount)
}

// activateKing 记录并通知主塔激活
func activateKing(em *ecs.EntityManager, dispatcher *event.Dispatcher, id ecs.EntityID) {
	data := event.TowerActivatedData{Entity: id}
	if team, ok := ecs.GetComponent[*components.TeamComponent](em, id); ok {
		data.Team = team.Team
	}

	logger.Named("Damage").Info("king tower activated",
		zap.Stringer("team", data.Team),
		zap.Uint64("entity", uint64(id)),
	)
	dispatcher.Dispatch(event.Event{Type: event.TowerActivated, Data: data})
}
