package systems

import (
	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/ecs"
)

// handleTowerBehavior 防御塔每帧逻辑
//
//  1. 未激活的塔直接返回（不累计攻击计时，不索敌）
//  2. 累计攻击计时
//  3. 没有目标、目标死亡或目标离开射程时重新索敌（只在射程内找最近的敌人）
//  4. 有目标且计时达到攻击间隔时攻击并清零计时
func (s *BehaviorSystem) handleTowerBehavior(entityID ecs.EntityID, deltaTime float64) {
	tower, ok := ecs.GetComponent[*components.TowerComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	if !tower.IsActive {
		return
	}

	combat.TimeSinceLastAttack += deltaTime

	if !isAliveEntity(s.entityManager, combat.Target) ||
		distanceBetween(s.entityManager, entityID, combat.Target) > tower.Range {
		combat.Target = findNearestEnemy(s.entityManager, entityID, tower.Range, nil)
	}

	if combat.HasTarget() && combat.TimeSinceLastAttack >= tower.AttackInterval() {
		ApplyDamage(s.entityManager, s.dispatcher, combat.Target, tower.Damage)
		combat.TimeSinceLastAttack = 0
	}
}
