package main

import (
	"flag"
	"log"

	"github.com/decker502/clash/pkg/app"
	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/game"
	"github.com/decker502/clash/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

var (
	seed          = flag.Int64("seed", 0, "敌方 AI 随机种子（0 表示按时间生成）")
	balancePath   = flag.String("balance", "", "平衡数据 YAML 文件（默认使用内置数据）")
	logLevel      = flag.Int("log-level", 0, "日志级别：-1 debug, 0 info, 1 warn, 2 error")
	logTimeFormat = flag.String("log-time-format", "", "日志时间格式（Go time layout，默认 ISO8601）")
	autoStart     = flag.Bool("autostart", false, "跳过菜单直接开始对局")
)

func main() {
	flag.Parse()

	if err := logger.Init(*logLevel, *logTimeFormat); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Log.Sync()

	balance := config.DefaultBalanceConfig()
	if *balancePath != "" {
		loaded, err := config.LoadBalanceConfig(*balancePath)
		if err != nil {
			logger.Log.Fatal("failed to load balance config", zap.String("path", *balancePath), zap.Error(err))
		}
		balance = loaded
	}

	// 显示设置存储，打开失败时只使用内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "clash"})
	if err != nil {
		logger.Log.Warn("settings storage unavailable", zap.Error(err))
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	a, err := app.NewApp(app.Config{
		Seed:      *seed,
		Balance:   balance,
		AutoStart: *autoStart,
	}, settings)
	if err != nil {
		logger.Log.Fatal("failed to create app", zap.Error(err))
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Clash Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)

	if err := ebiten.RunGame(a); err != nil {
		logger.Log.Fatal("game loop exited", zap.Error(err))
	}
}
