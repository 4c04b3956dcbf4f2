package main

import (
	"strings"
	"testing"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/types"
)

func TestRunBatchDeterministic(t *testing.T) {
	cfg := Config{Matches: 2, Seed: 42, MaxTime: 20, DeltaTime: 1.0 / 30}
	balance := config.DefaultBalanceConfig()

	a := runBatch(cfg, balance)
	b := runBatch(cfg, balance)

	if len(a.Reports) != 2 || len(b.Reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d and %d", len(a.Reports), len(b.Reports))
	}
	for i := range a.Reports {
		ra, rb := a.Reports[i], b.Reports[i]
		if ra.Seed != int64(42+i) {
			t.Errorf("Report %d: expected seed %d, got %d", i, 42+i, ra.Seed)
		}
		if ra.Result != rb.Result || ra.Elapsed != rb.Elapsed ||
			ra.PlayerSpawns != rb.PlayerSpawns || ra.EnemySpawns != rb.EnemySpawns {
			t.Errorf("Report %d diverged: %+v vs %+v", i, ra, rb)
		}
		if ra.MatchID == "" {
			t.Errorf("Report %d has no match ID", i)
		}
		if ra.PlayerSpawns == 0 || ra.EnemySpawns == 0 {
			t.Errorf("Report %d: both sides should spawn within 20s, got %d/%d", i, ra.PlayerSpawns, ra.EnemySpawns)
		}
	}
}

func TestRunMatchStopsAtMaxTime(t *testing.T) {
	cfg := Config{Matches: 1, Seed: 1, MaxTime: 1, DeltaTime: 0.25}

	report, err := runMatch(cfg, config.DefaultBalanceConfig(), 1)
	if err != nil {
		t.Fatalf("runMatch failed: %v", err)
	}
	if report.Result != types.ResultNone {
		t.Errorf("Expected no result after 1s, got %v", report.Result)
	}
	if report.Elapsed != 1 {
		t.Errorf("Expected 1s elapsed, got %v", report.Elapsed)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(envSeed, "77")
	t.Setenv(envLogLevel, "-1")
	t.Setenv(envBalance, "custom.yaml")

	t.Run("环境变量填充未显式给出的参数", func(t *testing.T) {
		cfg := Config{Seed: 1}
		if err := applyEnv(&cfg, map[string]bool{}); err != nil {
			t.Fatalf("applyEnv failed: %v", err)
		}
		if cfg.Seed != 77 || cfg.LogLevel != -1 || cfg.BalancePath != "custom.yaml" {
			t.Errorf("Unexpected config %+v", cfg)
		}
	})

	t.Run("命令行优先", func(t *testing.T) {
		cfg := Config{Seed: 1}
		if err := applyEnv(&cfg, map[string]bool{"seed": true}); err != nil {
			t.Fatalf("applyEnv failed: %v", err)
		}
		if cfg.Seed != 1 {
			t.Errorf("Explicit flag should win, got seed %d", cfg.Seed)
		}
	})

	t.Run("非法数值", func(t *testing.T) {
		t.Setenv(envSeed, "abc")
		cfg := Config{}
		if err := applyEnv(&cfg, map[string]bool{}); err == nil {
			t.Error("Expected an error for a non-numeric seed")
		}
	})
}

func TestSummaryString(t *testing.T) {
	s := Summary{Reports: []MatchReport{
		{Seed: 1, Result: types.ResultVictory, TowersLost: map[types.Team]int{types.TeamEnemy: 1}},
		{Seed: 2, Result: types.ResultDefeat, TowersLost: map[types.Team]int{}},
	}}

	out := s.String()
	if !strings.HasPrefix(out, "matches=2 victory=1 defeat=1 draw=0") {
		t.Errorf("Unexpected summary %q", out)
	}
	if !strings.Contains(out, "towers lost=0/1") {
		t.Errorf("Missing tower losses in %q", out)
	}
}
