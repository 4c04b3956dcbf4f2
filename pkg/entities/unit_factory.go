package entities

import (
	"fmt"

	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/types"
)

// NewUnitEntity 创建单位实体
// 单位在 (x, y) 出生，没有目标时向己方的默认前进行移动
//
// 参数:
//   - em: 实体管理器
//   - balance: 平衡数据
//   - team: 所属阵营
//   - kind: 单位类型，未知类型返回 types.ErrInvalidUnitKind
//   - x, y: 出生坐标
//
// 返回:
//   - ecs.EntityID: 创建的单位实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewUnitEntity(em *ecs.EntityManager, balance *config.BalanceConfig, team types.Team, kind types.UnitKind, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if balance == nil {
		return 0, fmt.Errorf("balance config cannot be nil")
	}

	stats, err := balance.GetUnitStats(kind)
	if err != nil {
		return 0, fmt.Errorf("failed to create unit: %w", err)
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: types.EntityUnit})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.TeamComponent{Team: team})
	ecs.AddComponent(em, entityID, components.NewHealthComponent(stats.Health))
	ecs.AddComponent(em, entityID, &components.HitboxComponent{Radius: stats.Radius})
	ecs.AddComponent(em, entityID, &components.UnitComponent{
		Kind:        kind,
		Damage:      stats.Damage,
		Speed:       stats.Speed,
		AttackSpeed: stats.AttackSpeed,
		Range:       stats.Range,
		FallbackY:   config.FallbackY(team),
	})
	ecs.AddComponent(em, entityID, &components.CombatComponent{})

	return entityID, nil
}
