// Package match 实现对局控制器
//
// Controller 持有实体集合、双方圣水池、敌方 AI 和胜负状态。
// 外部驱动按帧调用 Tick(dt)；表现层只通过 RequestPlayerSpawn 修改模拟状态，
// 并在每帧之后读取 Snapshot。
package match

import (
	"fmt"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/entities"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/game"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/systems"
	"github.com/decker502/clash/pkg/types"
	"github.com/decker502/clash/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TickResult 单帧推进的结果
type TickResult struct {
	// Result 本帧结束时的对局结果
	Result types.MatchResult
	// ResultChanged 本帧结果从 none 变为胜利或失败，每局只会出现一次
	ResultChanged bool
	// Removed 本帧被移除的死亡实体数量
	Removed int
	// EnemySpawned 本帧 AI 出生的单位，没有时为 ecs.InvalidEntity
	EnemySpawned ecs.EntityID
}

// Controller 对局控制器
type Controller struct {
	balance    *config.BalanceConfig
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	matchID string
	phase   Phase
	result  types.MatchResult
	elapsed float64

	entityManager *ecs.EntityManager
	playerElixir  *game.ElixirPool
	enemyElixir   *game.ElixirPool
	towers        *entities.ArenaTowers

	behaviorSystem *systems.BehaviorSystem
	cleanupSystem  *systems.CleanupSystem
	elixirSystem   *systems.ElixirSystem
	enemyAISystem  *systems.EnemyAISystem
	outcomeSystem  *systems.OutcomeSystem
}

// NewController 创建对局控制器，初始阶段为 PhaseMenu
//
// 参数:
//   - balance: 平衡数据，为 nil 时使用嵌入的默认数据
//   - rng: 随机数服务，为 nil 时使用基于时间的种子
//   - dispatcher: 事件分发器，为 nil 时不派发事件
func NewController(balance *config.BalanceConfig, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Controller {
	if balance == nil {
		balance = config.DefaultBalanceConfig()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Controller{
		balance:    balance,
		dispatcher: dispatcher,
		rng:        rng,
		phase:      PhaseMenu,
	}
}

// StartMatch 重置为初始状态并开始新的一局
// 双方圣水恢复为初始值，AI 计时清零，实体集合只包含六座防御塔。
// 任何阶段都可以调用（用于重新开始）。
func (c *Controller) StartMatch() error {
	em := ecs.NewEntityManager()

	towers, err := entities.SpawnArenaTowers(em, c.balance)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	elixir := c.balance.Elixir
	c.entityManager = em
	c.towers = towers
	c.playerElixir = game.NewElixirPool(elixir.Start, elixir.Max, elixir.RegenPerSecond)
	c.enemyElixir = game.NewElixirPool(elixir.Start, elixir.Max, elixir.RegenPerSecond)

	c.behaviorSystem = systems.NewBehaviorSystem(em, c.dispatcher)
	c.cleanupSystem = systems.NewCleanupSystem(em, c.dispatcher)
	c.elixirSystem = systems.NewElixirSystem(c.playerElixir, c.enemyElixir)
	c.enemyAISystem = systems.NewEnemyAISystem(em, c.balance, c.dispatcher, c.enemyElixir, c.rng)
	c.outcomeSystem = systems.NewOutcomeSystem(em, towers.PlayerKing, towers.EnemyKing)

	c.matchID = uuid.NewString()
	c.phase = PhasePlaying
	c.result = types.ResultNone
	c.elapsed = 0

	logger.Named("Match").Info("match started",
		zap.String("match", c.matchID),
		zap.Int64("seed", c.rng.Seed()),
	)
	return nil
}

// Tick 推进一帧
//
// 对局未开始或已结束时不做任何事。顺序：
//  1. 恢复双方圣水
//  2. 所有存活实体依次行动（BehaviorSystem）
//  3. 移除死亡实体
//  4. 推进敌方 AI
//  5. 判定胜负
func (c *Controller) Tick(deltaTime float64) TickResult {
	if c.phase != PhasePlaying {
		return TickResult{Result: c.result}
	}

	c.elapsed += deltaTime

	c.elixirSystem.Update(deltaTime)
	c.behaviorSystem.Update(deltaTime)
	removed := c.cleanupSystem.Update()
	spawned := c.enemyAISystem.Update(deltaTime)

	tick := TickResult{
		Removed:      removed,
		EnemySpawned: spawned,
	}

	if outcome := c.outcomeSystem.Evaluate(); outcome.IsTerminal() {
		c.endMatch(outcome)
		tick.ResultChanged = true
	}

	tick.Result = c.result
	return tick
}

// endMatch 记录结果并派发唯一的 MatchEnded 事件
func (c *Controller) endMatch(result types.MatchResult) {
	c.result = result
	c.phase = PhaseEnded

	logger.Named("Match").Info("match ended",
		zap.String("match", c.matchID),
		zap.Stringer("result", result),
		zap.Float64("elapsed", c.elapsed),
	)
	c.dispatcher.Dispatch(event.Event{
		Type: event.MatchEnded,
		Data: event.MatchEndedData{MatchID: c.matchID, Result: result, Elapsed: c.elapsed},
	})
}

// RequestPlayerSpawn 请求在 (x, y) 放置一个玩家单位
//
// 未知的单位类型返回 types.ErrInvalidUnitKind。
// 以下情况静默拒绝，返回 (false, nil)：对局未进行、y 位于敌方半场、圣水不足。
// 成功时创建单位、扣除圣水并返回 (true, nil)。
func (c *Controller) RequestPlayerSpawn(kind types.UnitKind, x, y float64) (bool, error) {
	cost, err := c.balance.UnitCost(kind)
	if err != nil {
		return false, fmt.Errorf("spawn request rejected: %w", err)
	}

	log := logger.Named("Match")
	if c.phase != PhasePlaying {
		log.Debug("spawn rejected: match not running", zap.Stringer("phase", c.phase))
		return false, nil
	}
	if !config.IsInPlayerHalf(y) {
		log.Debug("spawn rejected: enemy half", zap.Float64("y", y))
		return false, nil
	}
	if !c.playerElixir.CanAfford(float64(cost)) {
		log.Debug("spawn rejected: not enough elixir",
			zap.Stringer("kind", kind),
			zap.Float64("elixir", c.playerElixir.Value()),
		)
		return false, nil
	}

	if _, err := systems.SpawnUnit(c.entityManager, c.balance, c.dispatcher, types.TeamPlayer, kind, x, y); err != nil {
		return false, fmt.Errorf("spawn request failed: %w", err)
	}
	c.playerElixir.Spend(float64(cost))
	return true, nil
}

// CanAfford 玩家当前圣水是否足够放置 kind（用于卡牌置灰）
func (c *Controller) CanAfford(kind types.UnitKind) bool {
	if c.playerElixir == nil {
		return false
	}
	cost, err := c.balance.UnitCost(kind)
	if err != nil {
		return false
	}
	return c.playerElixir.CanAfford(float64(cost))
}

// ApplyDamage 直接对实体造成伤害（调试和测试用）
// 与实体攻击走同一条结算路径，主塔同样会被激活
// 仅在对局进行中生效，结束后状态保持冻结
func (c *Controller) ApplyDamage(id ecs.EntityID, amount int) bool {
	if c.phase != PhasePlaying {
		return false
	}
	if c.entityManager == nil {
		return false
	}
	return systems.ApplyDamage(c.entityManager, c.dispatcher, id, amount)
}

// Result 当前对局结果
func (c *Controller) Result() types.MatchResult {
	return c.result
}

// Phase 当前对局阶段
func (c *Controller) Phase() Phase {
	return c.phase
}

// MatchID 当前对局的唯一标识（StartMatch 时生成）
func (c *Controller) MatchID() string {
	return c.matchID
}

// Elapsed 当前对局已推进的模拟时间（秒）
func (c *Controller) Elapsed() float64 {
	return c.elapsed
}

// Balance 使用中的平衡数据
func (c *Controller) Balance() *config.BalanceConfig {
	return c.balance
}

// PlayerKing 玩家主塔实体ID
func (c *Controller) PlayerKing() ecs.EntityID {
	if c.towers == nil {
		return ecs.InvalidEntity
	}
	return c.towers.PlayerKing
}

// EnemyKing 敌方主塔实体ID
func (c *Controller) EnemyKing() ecs.EntityID {
	if c.towers == nil {
		return ecs.InvalidEntity
	}
	return c.towers.EnemyKing
}
