package match

import (
	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/types"
	"github.com/decker502/clash/pkg/utils"
	"go.uber.org/zap"
)

// Autopilot 代替玩家出兵的脚本
//
// 与敌方 AI 使用相同的节奏和出兵带，出兵行镜像到玩家一侧，
// 所有请求都经过 RequestPlayerSpawn，与真人玩家走同一条路径。
// 用于无界面批量模拟和终端观战。
type Autopilot struct {
	controller *Controller
	rng        *utils.PRNGService
	priority   []types.UnitKind
	interval   float64
	timer      float64
}

// NewAutopilot 创建自动出兵脚本
// priority 为空时使用平衡数据中的 AI 优先级
func NewAutopilot(controller *Controller, rng *utils.PRNGService, priority []types.UnitKind) *Autopilot {
	if len(priority) == 0 {
		priority = controller.Balance().AIPriority()
	}
	return &Autopilot{
		controller: controller,
		rng:        rng,
		priority:   priority,
		interval:   controller.Balance().EnemyAI.Interval,
	}
}

// Update 推进计时，到达间隔时尝试出兵
// 返回本次是否成功放置了单位
func (a *Autopilot) Update(deltaTime float64) bool {
	if a.controller.Phase() != PhasePlaying {
		return false
	}

	a.timer += deltaTime
	if a.timer < a.interval {
		return false
	}
	a.timer = 0

	ai := a.controller.Balance().EnemyAI
	for _, kind := range a.priority {
		if !a.controller.CanAfford(kind) {
			continue
		}

		x := config.ArenaWidth * a.rng.Range(ai.SpawnBandMin, ai.SpawnBandMax)
		y := config.ArenaHeight * (1 - ai.SpawnRow)

		ok, err := a.controller.RequestPlayerSpawn(kind, x, y)
		if err != nil {
			logger.Named("Autopilot").Error("spawn request failed", zap.Stringer("kind", kind), zap.Error(err))
			return false
		}
		return ok
	}
	return false
}

// Reset 清零计时（新对局开始时调用）
func (a *Autopilot) Reset() {
	a.timer = 0
}
