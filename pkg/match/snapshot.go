package match

import (
	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/types"
)

// EntityView 表现层可见的实体状态（只读副本）
type EntityView struct {
	ID        ecs.EntityID
	Kind      types.EntityKind
	TowerKind types.TowerKind // Kind == EntityTower 时有效
	UnitKind  types.UnitKind  // Kind == EntityUnit 时有效
	Team      types.Team
	X, Y      float64
	Radius    float64
	Range     float64

	Health         int
	MaxHealth      int
	HealthFraction float64

	// Active 防御塔是否已激活，单位始终为 true
	Active bool
}

// Snapshot 一帧结束后的对局状态
type Snapshot struct {
	MatchID string
	Phase   Phase
	Result  types.MatchResult
	Elapsed float64

	PlayerElixir float64
	// PlayerElixirWhole 玩家圣水向下取整（界面显示用）
	PlayerElixirWhole int
	EnemyElixir  float64
	MaxElixir    float64

	// Entities 存活实体，按创建顺序
	Entities []EntityView
	// Affordable 玩家当前负担得起的单位类型
	Affordable map[types.UnitKind]bool
}

// Snapshot 生成当前状态的只读副本
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		MatchID:    c.matchID,
		Phase:      c.phase,
		Result:     c.result,
		Elapsed:    c.elapsed,
		MaxElixir:  c.balance.Elixir.Max,
		Affordable: make(map[types.UnitKind]bool, len(types.AllUnitKinds)),
	}

	for _, kind := range types.AllUnitKinds {
		snap.Affordable[kind] = c.CanAfford(kind)
	}

	if c.entityManager == nil {
		return snap
	}

	snap.PlayerElixir = c.playerElixir.Value()
	snap.PlayerElixirWhole = c.playerElixir.Whole()
	snap.EnemyElixir = c.enemyElixir.Value()

	em := c.entityManager
	for _, id := range em.Entities() {
		health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
		if !ok || !health.IsAlive {
			continue
		}
		kind, ok := ecs.GetComponent[*components.KindComponent](em, id)
		if !ok {
			continue
		}

		view := EntityView{
			ID:             id,
			Kind:           kind.Kind,
			Health:         health.CurrentHealth,
			MaxHealth:      health.MaxHealth,
			HealthFraction: health.Fraction(),
			Active:         true,
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			view.X, view.Y = pos.X, pos.Y
		}
		if team, ok := ecs.GetComponent[*components.TeamComponent](em, id); ok {
			view.Team = team.Team
		}
		if hitbox, ok := ecs.GetComponent[*components.HitboxComponent](em, id); ok {
			view.Radius = hitbox.Radius
		}
		if tower, ok := ecs.GetComponent[*components.TowerComponent](em, id); ok {
			view.TowerKind = tower.Kind
			view.Range = tower.Range
			view.Active = tower.IsActive
		}
		if unit, ok := ecs.GetComponent[*components.UnitComponent](em, id); ok {
			view.UnitKind = unit.Kind
			view.Range = unit.Range
		}

		snap.Entities = append(snap.Entities, view)
	}

	return snap
}

// EntityCount 当前实体集合的大小
func (c *Controller) EntityCount() int {
	if c.entityManager == nil {
		return 0
	}
	return c.entityManager.Count()
}

// PlayerElixir 玩家当前圣水
func (c *Controller) PlayerElixir() float64 {
	if c.playerElixir == nil {
		return 0
	}
	return c.playerElixir.Value()
}

// EnemyElixir 敌方当前圣水
func (c *Controller) EnemyElixir() float64 {
	if c.enemyElixir == nil {
		return 0
	}
	return c.enemyElixir.Value()
}
