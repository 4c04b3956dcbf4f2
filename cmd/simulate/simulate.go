package main

import (
	"fmt"
	"strings"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/match"
	"github.com/decker502/clash/pkg/types"
	"github.com/decker502/clash/pkg/utils"
	"go.uber.org/zap"
)

// pilotSeedOffset 玩家脚本的种子相对对局种子的偏移，保证两侧随机序列不同
const pilotSeedOffset = 7919

// MatchReport 单局统计
type MatchReport struct {
	MatchID string
	Seed    int64
	Result  types.MatchResult
	Elapsed float64

	PlayerSpawns   int
	EnemySpawns    int
	TowersLost     map[types.Team]int
	UnitsDestroyed int
}

// Summary 批量模拟结果
type Summary struct {
	Reports []MatchReport
}

// Count 指定结果的对局数量
func (s Summary) Count(result types.MatchResult) int {
	n := 0
	for _, r := range s.Reports {
		if r.Result == result {
			n++
		}
	}
	return n
}

// String 单行汇总 + 每局明细
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "matches=%d victory=%d defeat=%d draw=%d\n",
		len(s.Reports), s.Count(types.ResultVictory), s.Count(types.ResultDefeat), s.Count(types.ResultNone))
	for i, r := range s.Reports {
		fmt.Fprintf(&b, "#%d seed=%d result=%s elapsed=%.1fs spawns=%d/%d towers lost=%d/%d\n",
			i+1, r.Seed, r.Result, r.Elapsed, r.PlayerSpawns, r.EnemySpawns,
			r.TowersLost[types.TeamPlayer], r.TowersLost[types.TeamEnemy])
	}
	return b.String()
}

// runBatch 依次运行 cfg.Matches 局
func runBatch(cfg Config, balance *config.BalanceConfig) Summary {
	base := cfg.Seed
	if base == 0 {
		base = utils.NewPRNGService(0).Seed()
	}

	summary := Summary{Reports: make([]MatchReport, 0, cfg.Matches)}
	for i := 0; i < cfg.Matches; i++ {
		report, err := runMatch(cfg, balance, base+int64(i))
		if err != nil {
			logger.Log.Error("match failed", zap.Int("index", i), zap.Error(err))
			continue
		}
		summary.Reports = append(summary.Reports, report)
	}
	return summary
}

// runMatch 运行一局直到分出胜负或超时
func runMatch(cfg Config, balance *config.BalanceConfig, seed int64) (MatchReport, error) {
	dispatcher := event.NewDispatcher()
	recorder := &event.Recorder{}
	dispatcher.SubscribeAll(recorder)

	controller := match.NewController(balance, utils.NewPRNGService(seed), dispatcher)
	if err := controller.StartMatch(); err != nil {
		return MatchReport{}, err
	}
	pilot := match.NewAutopilot(controller, utils.NewPRNGService(seed+pilotSeedOffset), nil)

	for controller.Elapsed() < cfg.MaxTime {
		pilot.Update(cfg.DeltaTime)
		if res := controller.Tick(cfg.DeltaTime); res.Result.IsTerminal() {
			break
		}
	}

	report := MatchReport{
		MatchID:    controller.MatchID(),
		Seed:       seed,
		Result:     controller.Result(),
		Elapsed:    controller.Elapsed(),
		TowersLost: make(map[types.Team]int),
	}
	for _, e := range recorder.Events {
		switch data := e.Data.(type) {
		case event.UnitSpawnedData:
			if data.Team == types.TeamPlayer {
				report.PlayerSpawns++
			} else {
				report.EnemySpawns++
			}
		case event.EntityDestroyedData:
			if data.Kind == types.EntityTower {
				report.TowersLost[data.Team]++
			} else {
				report.UnitsDestroyed++
			}
		}
	}

	logger.Named("Simulate").Info("match finished",
		zap.String("match", report.MatchID),
		zap.Int64("seed", seed),
		zap.Stringer("result", report.Result),
		zap.Float64("elapsed", report.Elapsed),
		zap.Int("playerSpawns", report.PlayerSpawns),
		zap.Int("enemySpawns", report.EnemySpawns),
	)
	return report, nil
}
