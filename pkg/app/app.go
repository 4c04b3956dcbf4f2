// Package app 提供桌面客户端的 ebiten.Game 包装
//
// main.go 负责日志和存储初始化，然后调用 NewApp 构建对局、设置和场景。
package app

import (
	"image/color"
	"time"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/game"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/match"
	"github.com/decker502/clash/pkg/scenes"
	"github.com/decker502/clash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Config 应用启动配置
type Config struct {
	// Seed 敌方 AI 的随机种子，0 表示按时间生成
	Seed int64
	// Balance 平衡数据，为 nil 时使用嵌入的默认数据
	Balance *config.BalanceConfig
	// AutoStart 跳过菜单直接开始对局
	AutoStart bool
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	settings     *game.SettingsManager
	controller   *match.Controller

	lastUpdateTime time.Time

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建并初始化应用
func NewApp(cfg Config, settings *game.SettingsManager) (*App, error) {
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)
	controller := match.NewController(cfg.Balance, rng, dispatcher)

	arena := scenes.NewArenaScene(controller, dispatcher, settings)
	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(arena)

	if cfg.AutoStart {
		if err := controller.StartMatch(); err != nil {
			return nil, err
		}
	}

	logger.Named("App").Info("app initialized",
		zap.Int64("seed", rng.Seed()),
		zap.Bool("fullscreen", settings.GetSettings().Fullscreen),
	)

	return &App{
		sceneManager:   sceneManager,
		settings:       settings,
		controller:     controller,
		lastUpdateTime: time.Now(),
	}, nil
}

// Update 每个 tick 调用一次
// 按真实流逝时间推进，单帧时间被截断到 config.MaxDeltaTime
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := a.settings.ToggleFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 窗口管理器需要几帧处理退出全屏
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}
	if err := a.settings.Save(); err != nil {
		logger.Named("App").Warn("failed to save settings", zap.Error(err))
	}
}

// Draw 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 ebiten.FinalScreenDrawer
// 全屏时两侧填充黑色，并用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸，与窗口大小无关
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Controller 返回对局控制器
func (a *App) Controller() *match.Controller {
	return a.controller
}
