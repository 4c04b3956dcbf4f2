package systems

import (
	"math"

	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/utils"
)

// handleUnitBehavior 单位每帧逻辑
//
// 单位只在没有目标或目标死亡时重新索敌，目标离开射程时会一直追击。
// 只攻击建筑的单位（巨人）忽略所有非防御塔目标。
func (s *BehaviorSystem) handleUnitBehavior(entityID ecs.EntityID, deltaTime float64) {
	unit, ok := ecs.GetComponent[*components.UnitComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	combat.TimeSinceLastAttack += deltaTime

	if !isAliveEntity(s.entityManager, combat.Target) {
		var filter candidateFilter
		if unit.Kind.TargetsTowersOnly() {
			filter = towersOnly
		}
		combat.Target = findNearestEnemy(s.entityManager, entityID, math.Inf(1), filter)
	}

	if !combat.HasTarget() {
		// 没有目标，向对方基地方向的默认行前进
		moveUnit(pos, unit, pos.X, unit.FallbackY, deltaTime)
		return
	}

	targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, combat.Target)
	if !ok {
		// 目标无法定位，丢弃引用，下一帧重新索敌
		combat.ClearTarget()
		return
	}

	if pos.DistanceTo(targetPos) <= unit.Range {
		// 射程内停下攻击
		if combat.TimeSinceLastAttack >= unit.AttackInterval() {
			ApplyDamage(s.entityManager, s.dispatcher, combat.Target, unit.Damage)
			combat.TimeSinceLastAttack = 0
		}
		return
	}

	moveUnit(pos, unit, targetPos.X, targetPos.Y, deltaTime)
}

// moveUnit 以单位速度朝目标点直线移动
func moveUnit(pos *components.PositionComponent, unit *components.UnitComponent, targetX, targetY, deltaTime float64) {
	pos.X, pos.Y = utils.MoveTowards(pos.X, pos.Y, targetX, targetY, unit.Speed*deltaTime, config.MoveSnapThreshold)
}
