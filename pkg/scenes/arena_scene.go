package scenes

import (
	"fmt"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/game"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/match"
	"github.com/decker502/clash/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// ArenaScene 对局场景
//
// 职责：
//   - 把指针和键盘输入翻译成卡牌选择与放置请求
//   - 驱动 Controller.Tick 并缓存每帧的快照
//   - 根据快照绘制竞技场、卡牌栏和结算界面
type ArenaScene struct {
	controller *match.Controller
	settings   *game.SettingsManager

	snapshot match.Snapshot

	// 当前选中的卡牌
	selected     types.UnitKind
	hasSelection bool

	// 屏幕中央的短暂提示（主塔激活等）
	notice      string
	noticeTimer float64
}

// NewArenaScene 创建对局场景并订阅需要提示的事件
//
// 参数:
//   - controller: 对局控制器，场景开始时处于菜单阶段
//   - dispatcher: controller 使用的事件分发器，可为 nil
//   - settings: 显示设置
func NewArenaScene(controller *match.Controller, dispatcher *event.Dispatcher, settings *game.SettingsManager) *ArenaScene {
	s := &ArenaScene{
		controller: controller,
		settings:   settings,
	}
	if dispatcher != nil {
		dispatcher.Subscribe(event.TowerActivated, s)
		dispatcher.Subscribe(event.MatchEnded, s)
	}
	s.snapshot = controller.Snapshot()
	return s
}

// OnEvent 实现 event.Listener
func (s *ArenaScene) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.TowerActivatedData:
		s.showNotice(fmt.Sprintf("%s King Tower activated!", data.Team))
	case event.MatchEndedData:
		s.clearSelection()
		logger.Named("ArenaScene").Info("match finished",
			zap.String("match", data.MatchID),
			zap.Stringer("result", data.Result),
		)
	}
}

// Update 处理输入并推进对局
func (s *ArenaScene) Update(deltaTime float64) {
	s.handleKeys()

	if clicked, x, y := isJustTouchedOrClicked(); clicked {
		s.handlePointer(x, y)
	}

	s.controller.Tick(deltaTime)
	s.snapshot = s.controller.Snapshot()
	s.advanceNotice(deltaTime)
}

func (s *ArenaScene) advanceNotice(deltaTime float64) {
	if s.noticeTimer <= 0 {
		return
	}
	s.noticeTimer -= deltaTime
	if s.noticeTimer <= 0 {
		s.notice = ""
	}
}

// handleKeys 键盘快捷键：数字键选卡，G 切换范围显示，H 切换血量数值，R 重新开始
func (s *ArenaScene) handleKeys() {
	for i, key := range cardHotkeys {
		if inpututil.IsKeyJustPressed(key) && i < len(cardSlots) {
			s.selectCard(cardSlots[i])
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.settings.ToggleShowRanges()
		s.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.settings.ToggleShowHealthNumbers()
		s.saveSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if s.controller.Phase() != match.PhasePlaying {
			s.startMatch()
		}
	}
}

// handlePointer 处理一次点击或触摸
//
// 菜单和结算阶段任意点击开始新的一局；
// 对局中点击卡牌切换选择，点击竞技场放置已选单位。
func (s *ArenaScene) handlePointer(x, y int) {
	if s.controller.Phase() != match.PhasePlaying {
		s.startMatch()
		return
	}

	if kind, ok := cardAt(x, y); ok {
		s.selectCard(kind)
		return
	}

	if !s.hasSelection || !inArena(x, y) {
		return
	}

	ok, err := s.controller.RequestPlayerSpawn(s.selected, float64(x), float64(y))
	if err != nil {
		logger.Named("ArenaScene").Warn("spawn request failed", zap.Error(err))
		return
	}
	if ok {
		s.clearSelection()
		return
	}
	if !config.IsInPlayerHalf(float64(y)) {
		s.showNotice("Place units on your side")
	}
}

// selectCard 选择卡牌，再次选择同一张卡牌取消选择
// 圣水不足的卡牌不能被选中
func (s *ArenaScene) selectCard(kind types.UnitKind) {
	if s.hasSelection && s.selected == kind {
		s.clearSelection()
		return
	}
	if !s.controller.CanAfford(kind) {
		return
	}
	s.selected = kind
	s.hasSelection = true
}

func (s *ArenaScene) clearSelection() {
	s.hasSelection = false
	s.selected = 0
}

func (s *ArenaScene) startMatch() {
	if err := s.controller.StartMatch(); err != nil {
		logger.Named("ArenaScene").Error("failed to start match", zap.Error(err))
		return
	}
	s.clearSelection()
	s.notice = ""
	s.noticeTimer = 0
	s.snapshot = s.controller.Snapshot()
}

func (s *ArenaScene) showNotice(msg string) {
	s.notice = msg
	s.noticeTimer = config.NoticeDuration
}

func (s *ArenaScene) saveSettings() {
	if err := s.settings.Save(); err != nil {
		logger.Named("ArenaScene").Warn("failed to save settings", zap.Error(err))
	}
}

// Selected 当前选中的卡牌
func (s *ArenaScene) Selected() (types.UnitKind, bool) {
	return s.selected, s.hasSelection
}
