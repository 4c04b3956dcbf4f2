package systems

import (
	"math"

	"github.com/decker502/clash/pkg/components"
	"github.com/decker502/clash/pkg/ecs"
)

// isAliveEntity 实体是否仍在集合中且存活
// 弱引用的唯一判断依据：被移出集合或生命值归零都视为目标已死亡
func isAliveEntity(em *ecs.EntityManager, id ecs.EntityID) bool {
	if !em.Exists(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	return ok && health.IsAlive
}

// distanceBetween 两个实体中心点之间的距离
// 任意一方没有位置组件时返回 +Inf
func distanceBetween(em *ecs.EntityManager, a, b ecs.EntityID) float64 {
	posA, okA := ecs.GetComponent[*components.PositionComponent](em, a)
	posB, okB := ecs.GetComponent[*components.PositionComponent](em, b)
	if !okA || !okB {
		return math.Inf(1)
	}
	return posA.DistanceTo(posB)
}

// candidateFilter 候选目标的额外过滤条件
type candidateFilter func(em *ecs.EntityManager, id ecs.EntityID) bool

// towersOnly 只接受防御塔
func towersOnly(em *ecs.EntityManager, id ecs.EntityID) bool {
	return ecs.HasComponent[*components.TowerComponent](em, id)
}

// findNearestEnemy 查找距离 self 最近的存活敌方实体
//
// 只接受距离严格小于 maxDistance 的候选（传入 +Inf 表示不限距离）。
// 按创建顺序扫描，距离相同时先创建的实体胜出。
// 没有找到时返回 ecs.InvalidEntity。
func findNearestEnemy(em *ecs.EntityManager, self ecs.EntityID, maxDistance float64, filter candidateFilter) ecs.EntityID {
	selfPos, ok := ecs.GetComponent[*components.PositionComponent](em, self)
	if !ok {
		return ecs.InvalidEntity
	}
	selfTeam, ok := ecs.GetComponent[*components.TeamComponent](em, self)
	if !ok {
		return ecs.InvalidEntity
	}

	nearest := ecs.InvalidEntity
	minDistance := maxDistance

	candidates := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.TeamComponent,
		*components.HealthComponent,
	](em)

	for _, id := range candidates {
		if id == self {
			continue
		}
		team, _ := ecs.GetComponent[*components.TeamComponent](em, id)
		if team.Team == selfTeam.Team {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if !health.IsAlive {
			continue
		}
		if filter != nil && !filter(em, id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		distance := selfPos.DistanceTo(pos)
		if distance < minDistance {
			minDistance = distance
			nearest = id
		}
	}

	return nearest
}
