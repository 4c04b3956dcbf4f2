// arena-tui 在终端中观看自动对局
//
// 玩家一方由 Autopilot 控制，也可以用 1/2/3 手动在随机位置放置单位。
// 按键：space 开始 / 暂停，r 重新开始，q 或 Esc 退出。
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/logger"
	"github.com/decker502/clash/pkg/match"
	"github.com/decker502/clash/pkg/terminal"
	"github.com/decker502/clash/pkg/types"
	"github.com/decker502/clash/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

var (
	seed      = flag.Int64("seed", 0, "随机种子（0 表示按时间生成）")
	speed     = flag.Float64("speed", 1.0, "模拟速度倍率")
	autopilot = flag.Bool("autopilot", true, "玩家一方自动出兵")
)

// frameInterval 约 60 FPS
const frameInterval = 16 * time.Millisecond

type arenaTUI struct {
	screen     tcell.Screen
	renderer   *terminal.Renderer
	controller *match.Controller
	pilot      *match.Autopilot
	rng        *utils.PRNGService
	paused     bool
}

func newArenaTUI() (*arenaTUI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	rng := utils.NewPRNGService(*seed)
	controller := match.NewController(nil, rng, event.NewDispatcher())

	a := &arenaTUI{
		screen:     screen,
		renderer:   terminal.NewRenderer(screen),
		controller: controller,
		rng:        utils.NewPRNGService(rng.Seed() + 1),
	}
	if *autopilot {
		a.pilot = match.NewAutopilot(controller, a.rng, nil)
	}
	return a, nil
}

// handleInput 返回 false 表示退出
func (a *arenaTUI) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if a.controller.Phase() == match.PhasePlaying {
				a.paused = !a.paused
			} else {
				a.restart()
			}
		case 'r':
			a.restart()
		case '1', '2', '3':
			a.spawn(types.AllUnitKinds[ev.Rune()-'1'])
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *arenaTUI) restart() {
	if err := a.controller.StartMatch(); err != nil {
		logger.Log.Error("failed to start match", zap.Error(err))
		return
	}
	if a.pilot != nil {
		a.pilot.Reset()
	}
	a.paused = false
}

// spawn 在玩家半场的随机位置放置单位
func (a *arenaTUI) spawn(kind types.UnitKind) {
	x := config.ArenaWidth * a.rng.Range(0.1, 0.9)
	y := config.ArenaHeight * a.rng.Range(0.55, 0.9)
	if _, err := a.controller.RequestPlayerSpawn(kind, x, y); err != nil {
		logger.Log.Warn("spawn request failed", zap.Error(err))
	}
}

func (a *arenaTUI) step(deltaTime float64) {
	if a.paused {
		return
	}
	if a.pilot != nil {
		a.pilot.Update(deltaTime)
	}
	a.controller.Tick(deltaTime)
}

func (a *arenaTUI) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			last = now

			a.step(deltaTime * *speed)
			a.renderer.Draw(a.controller.Snapshot())
		}
	}
}

func main() {
	flag.Parse()

	// 终端界面占用 stdout，日志保持关闭
	game, err := newArenaTUI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.screen.Fini()

	game.run()
}
