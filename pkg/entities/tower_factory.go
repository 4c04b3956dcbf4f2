package entities

import (
	"fmt"

	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/types"
)

// NewTowerEntity 创建防御塔实体
// 防御塔位置由阵营和类型决定（见 config.TowerPosition），主塔初始未激活
//
// 参数:
//   - em: 实体管理器
//   - balance: 平衡数据
//   - team: 所属阵营
//   - kind: 防御塔类型
//
// 返回:
//   - ecs.EntityID: 创建的防御塔实体ID
//   - error: 如果参数无效返回错误信息
func NewTowerEntity(em *ecs.EntityManager, balance *config.BalanceConfig, team types.Team, kind types.TowerKind) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if balance == nil {
		return 0, fmt.Errorf("balance config cannot be nil")
	}

	stats := balance.GetTowerStats(kind)
	x, y := config.TowerPosition(team, kind)

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: types.EntityTower})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.TeamComponent{Team: team})
	ecs.AddComponent(em, entityID, components.NewHealthComponent(stats.Health))
	ecs.AddComponent(em, entityID, &components.HitboxComponent{Radius: stats.Radius})
	ecs.AddComponent(em, entityID, &components.TowerComponent{
		Kind:        kind,
		Damage:      stats.Damage,
		Range:       stats.Range,
		AttackSpeed: stats.AttackSpeed,
		IsActive:    !kind.IsKing(),
	})
	ecs.AddComponent(em, entityID, &components.CombatComponent{})

	return entityID, nil
}

// ArenaTowers 一局开始时的六座防御塔
type ArenaTowers struct {
	PlayerKing ecs.EntityID
	EnemyKing  ecs.EntityID
	All        []ecs.EntityID // 按创建顺序
}

// towerLayout 创建顺序：玩家主塔、玩家左右副塔、敌方主塔、敌方左右副塔
var towerLayout = []struct {
	team types.Team
	kind types.TowerKind
}{
	{types.TeamPlayer, types.TowerKing},
	{types.TeamPlayer, types.TowerFlankLeft},
	{types.TeamPlayer, types.TowerFlankRight},
	{types.TeamEnemy, types.TowerKing},
	{types.TeamEnemy, types.TowerFlankLeft},
	{types.TeamEnemy, types.TowerFlankRight},
}

// SpawnArenaTowers 按固定布局创建双方各三座防御塔
func SpawnArenaTowers(em *ecs.EntityManager, balance *config.BalanceConfig) (*ArenaTowers, error) {
	towers := &ArenaTowers{All: make([]ecs.EntityID, 0, len(towerLayout))}

	for _, slot := range towerLayout {
		id, err := NewTowerEntity(em, balance, slot.team, slot.kind)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s %s tower: %w", slot.team, slot.kind, err)
		}
		towers.All = append(towers.All, id)

		if slot.kind.IsKing() {
			if slot.team == types.TeamPlayer {
				towers.PlayerKing = id
			} else {
				towers.EnemyKing = id
			}
		}
	}

	return towers, nil
}
