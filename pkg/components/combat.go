package components

import "github.com/decker502/clash/pkg/ecs"

// CombatComponent 攻击状态
//
// Target 是弱引用：只保存实体ID，每帧通过 EntityManager 查询。
// 目标被移出实体集合后查询失败，即视为目标已死亡。
type CombatComponent struct {
	TimeSinceLastAttack float64      // 距上次攻击的累计时间（秒）
	Target              ecs.EntityID // 当前目标，ecs.InvalidEntity 表示没有目标
}

// HasTarget 是否持有目标引用
func (c *CombatComponent) HasTarget() bool {
	return c.Target != ecs.InvalidEntity
}

// ClearTarget 清除目标引用
func (c *CombatComponent) ClearTarget() {
	c.Target = ecs.InvalidEntity
}
