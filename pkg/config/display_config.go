package config

// 桌面客户端的显示参数
// 竞技场按 1:1 绘制在窗口顶部，下方是卡牌和圣水栏

const (
	// HUDHeight 底部卡牌栏高度
	HUDHeight = 100

	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = int(ArenaWidth)

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = int(ArenaHeight) + HUDHeight

	// MaxDeltaTime 驱动层单帧推进的最大时间（秒）
	// 窗口拖动或断点恢复后的超长帧会被截断
	MaxDeltaTime = 0.06

	// NoticeDuration 场景中提示文字的显示时长（秒）
	NoticeDuration = 2.0
)
