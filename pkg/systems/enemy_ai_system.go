package systems

import (
	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/game"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/types"
	"github.com/decker502/clash/pkg/utils"
	"go.uber.org/zap"
)

// EnemyAISystem 敌方出兵策略
//
// 每累计 Interval 秒行动一次：按优先级找到第一个负担得起的单位，
// 在己方边缘附近的随机位置出兵并扣除圣水。每次行动最多出一个单位。
type EnemyAISystem struct {
	entityManager *ecs.EntityManager
	balance       *config.BalanceConfig
	dispatcher    *event.Dispatcher
	pool          *game.ElixirPool
	rng           *utils.PRNGService

	priority []types.UnitKind
	timer    float64
}

// NewEnemyAISystem 创建敌方 AI 系统
func NewEnemyAISystem(em *ecs.EntityManager, balance *config.BalanceConfig, dispatcher *event.Dispatcher, pool *game.ElixirPool, rng *utils.PRNGService) *EnemyAISystem {
	return &EnemyAISystem{
		entityManager: em,
		balance:       balance,
		dispatcher:    dispatcher,
		pool:          pool,
		rng:           rng,
		priority:      balance.AIPriority(),
	}
}

// Update 推进 AI 计时，到达间隔时行动并把计时清零
// 返回本帧出生的单位，没有出兵时返回 ecs.InvalidEntity
func (s *EnemyAISystem) Update(deltaTime float64) ecs.EntityID {
	s.timer += deltaTime
	if s.timer < s.balance.EnemyAI.Interval {
		return ecs.InvalidEntity
	}

	s.timer = 0
	return s.act()
}

// act 选择第一个负担得起的单位出兵
func (s *EnemyAISystem) act() ecs.EntityID {
	for _, kind := range s.priority {
		cost, err := s.balance.UnitCost(kind)
		if err != nil {
			continue
		}
		if !s.pool.CanAfford(float64(cost)) {
			continue
		}

		ai := s.balance.EnemyAI
		x := config.ArenaWidth * s.rng.Range(ai.SpawnBandMin, ai.SpawnBandMax)
		y := config.ArenaHeight * ai.SpawnRow

		id, err := SpawnUnit(s.entityManager, s.balance, s.dispatcher, types.TeamEnemy, kind, x, y)
		if err != nil {
			logger.Named("EnemyAI").Error("failed to spawn unit", zap.Stringer("kind", kind), zap.Error(err))
			return ecs.InvalidEntity
		}
		s.pool.Spend(float64(cost))
		return id
	}

	logger.Named("EnemyAI").Debug("nothing affordable", zap.Float64("elixir", s.pool.Value()))
	return ecs.InvalidEntity
}
