package systems

import (
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/types"
)

// OutcomeSystem 判定对局胜负
// 玩家主塔缺失或死亡判负，优先于敌方主塔的胜利判定
type OutcomeSystem struct {
	entityManager *ecs.EntityManager
	playerKing    ecs.EntityID
	enemyKing     ecs.EntityID
}

// NewOutcomeSystem 创建胜负判定系统
func NewOutcomeSystem(em *ecs.EntityManager, playerKing, enemyKing ecs.EntityID) *OutcomeSystem {
	return &OutcomeSystem{
		entityManager: em,
		playerKing:    playerKing,
		enemyKing:     enemyKing,
	}
}

// Evaluate 返回当前的对局结果
func (s *OutcomeSystem) Evaluate() types.MatchResult {
	if !isAliveEntity(s.entityManager, s.playerKing) {
		return types.ResultDefeat
	}
	if !isAliveEntity(s.entityManager, s.enemyKing) {
		return types.ResultVictory
	}
	return types.ResultNone
}
