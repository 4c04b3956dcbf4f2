// simulate 无界面批量运行对局：敌方 AI 对阵玩家一方的 Autopilot
//
// 参数可以来自命令行，也可以来自环境变量（支持 .env 文件），命令行优先。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config 批量模拟参数
type Config struct {
	// Matches 对局数量
	Matches int
	// Seed 第一局的随机种子，之后每局加一；0 表示按时间生成
	Seed int64
	// MaxTime 单局最长模拟时间（秒），超时记为平局
	MaxTime float64
	// DeltaTime 固定步长（秒）
	DeltaTime float64
	// BalancePath 平衡数据文件，为空时使用内置数据
	BalancePath string
	// LogLevel 全局日志级别: Debug(-1), Info(0), Warn(1), Error(2), DPanic(3), Panic(4), Fatal(5)
	LogLevel int
	// LogTimeFormat 日志时间格式，例如 2006-01-02T15:04:05Z07:00
	LogTimeFormat string
}

// 环境变量名
const (
	envSeed     = "CLASH_SEED"
	envLogLevel = "CLASH_LOG_LEVEL"
	envBalance  = "CLASH_BALANCE"
)

func main() {
	var cfg Config
	flag.IntVar(&cfg.Matches, "matches", 10, "Number of matches to simulate")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Seed of the first match (0 = time based)")
	flag.Float64Var(&cfg.MaxTime, "max-time", 300, "Simulated seconds before a match is called a draw")
	flag.Float64Var(&cfg.DeltaTime, "dt", 1.0/60, "Fixed tick length in seconds")
	flag.StringVar(&cfg.BalancePath, "balance", "", "Balance YAML file (default: embedded data)")
	flag.IntVar(&cfg.LogLevel, "log-level", 0, "Global log level")
	flag.StringVar(&cfg.LogTimeFormat, "log-time-format", "",
		"Print time format for logger e.g. 2006-01-02T15:04:05Z07:00")
	flag.Parse()

	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}
	if err := applyEnv(&cfg, explicitFlags()); err != nil {
		log.Fatalf("invalid environment: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogTimeFormat); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Log.Sync()

	if cfg.Matches <= 0 || cfg.DeltaTime <= 0 || cfg.MaxTime <= 0 {
		logger.Log.Fatal("matches, dt and max-time must be positive",
			zap.Int("matches", cfg.Matches),
			zap.Float64("dt", cfg.DeltaTime),
			zap.Float64("maxTime", cfg.MaxTime),
		)
	}

	balance := config.DefaultBalanceConfig()
	if cfg.BalancePath != "" {
		loaded, err := config.LoadBalanceConfig(cfg.BalancePath)
		if err != nil {
			logger.Log.Fatal("failed to load balance config", zap.String("path", cfg.BalancePath), zap.Error(err))
		}
		balance = loaded
	}

	summary := runBatch(cfg, balance)
	fmt.Println(summary)
}

// explicitFlags 命令行中显式给出的参数名
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyEnv 用环境变量填充命令行没有显式给出的参数
func applyEnv(cfg *Config, explicit map[string]bool) error {
	if v := os.Getenv(envSeed); v != "" && !explicit["seed"] {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(envLogLevel); v != "" && !explicit["log-level"] {
		level, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if v := os.Getenv(envBalance); v != "" && !explicit["balance"] {
		cfg.BalancePath = v
	}
	return nil
}
