package scenes

import (
	"testing"

	"github.com/decker502/clash/pkg/event"
	"github.com/decker502/clash/pkg/game"
	"github.com/decker502/clash/pkg/match"
	"github.com/decker502/clash/pkg/types"
	"github.com/decker502/clash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func newTestScene(t *testing.T) (*ArenaScene, *match.Controller) {
	t.Helper()
	dispatcher := event.NewDispatcher()
	controller := match.NewController(nil, utils.NewPRNGService(1), dispatcher)
	scene := NewArenaScene(controller, dispatcher, game.NewSettingsManager(nil))
	return scene, controller
}

// cardCenter 第 i 张卡牌的中心点
func cardCenter(i int) (int, int) {
	r := cardRect(i)
	return r.Min.X + r.Dx()/2, r.Min.Y + r.Dy()/2
}

func TestHealthBarColor(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     string
	}{
		{"满血", 1.0, "healthy"},
		{"刚过一半", 0.51, "healthy"},
		{"正好一半", 0.5, "wounded"},
		{"四分之一以上", 0.26, "wounded"},
		{"正好四分之一", 0.25, "critical"},
		{"空血", 0, "critical"},
	}

	bands := map[string]interface{}{
		"healthy":  healthyColor,
		"wounded":  woundedColor,
		"critical": criticalRed,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := healthBarColor(tt.fraction); got != bands[tt.want] {
				t.Errorf("healthBarColor(%v) = %v, want %s", tt.fraction, got, tt.want)
			}
		})
	}
}

func TestCardAt(t *testing.T) {
	for i, kind := range cardSlots {
		x, y := cardCenter(i)
		got, ok := cardAt(x, y)
		if !ok || got != kind {
			t.Errorf("cardAt(%d, %d) = (%v, %v), want %v", x, y, got, ok, kind)
		}
	}

	if _, ok := cardAt(200, 300); ok {
		t.Error("Arena point should not hit a card")
	}
	if _, ok := cardAt(0, cardTop+1); ok {
		t.Error("Left margin should not hit a card")
	}
}

func TestElixirLabel(t *testing.T) {
	if got := elixirLabel(7, 10); got != "7/10" {
		t.Errorf("Expected 7/10, got %s", got)
	}
	if got := elixirLabel(10, 10); got != "10/10" {
		t.Errorf("Expected 10/10, got %s", got)
	}

	// 5 圣水开局，0.99 秒后仍显示 5
	_, controller := newTestScene(t)
	if err := controller.StartMatch(); err != nil {
		t.Fatalf("StartMatch failed: %v", err)
	}
	controller.Tick(0.99)
	snap := controller.Snapshot()
	if snap.PlayerElixirWhole != 5 {
		t.Errorf("Expected whole elixir 5 at %v, got %d", snap.PlayerElixir, snap.PlayerElixirWhole)
	}
	if got := elixirLabel(snap.PlayerElixirWhole, snap.MaxElixir); got != "5/10" {
		t.Errorf("Expected 5/10, got %s", got)
	}
}

func TestArenaScenePointer(t *testing.T) {
	t.Run("菜单阶段点击开始对局", func(t *testing.T) {
		scene, controller := newTestScene(t)

		scene.handlePointer(200, 400)
		if controller.Phase() != match.PhasePlaying {
			t.Fatalf("Expected playing, got %v", controller.Phase())
		}
		if controller.EntityCount() != 6 {
			t.Errorf("Click that starts the match should not spawn, got %d entities", controller.EntityCount())
		}
	})

	t.Run("选卡后在己方半场放置", func(t *testing.T) {
		scene, controller := newTestScene(t)
		scene.startMatch()

		x, y := cardCenter(1)
		scene.handlePointer(x, y)
		if kind, ok := scene.Selected(); !ok || kind != types.UnitRanged {
			t.Fatalf("Expected ranged selected, got (%v, %v)", kind, ok)
		}

		scene.handlePointer(120, 450)
		if controller.EntityCount() != 7 {
			t.Errorf("Expected a spawned unit, got %d entities", controller.EntityCount())
		}
		if _, ok := scene.Selected(); ok {
			t.Error("Selection should clear after a successful placement")
		}
	})

	t.Run("敌方半场放置被拒绝并保留选择", func(t *testing.T) {
		scene, controller := newTestScene(t)
		scene.startMatch()

		scene.selectCard(types.UnitMelee)
		scene.handlePointer(200, 100)
		if controller.EntityCount() != 6 {
			t.Errorf("Enemy half placement should be rejected, got %d entities", controller.EntityCount())
		}
		if _, ok := scene.Selected(); !ok {
			t.Error("Selection should be kept after a rejected placement")
		}
		if scene.notice == "" {
			t.Error("Expected a placement notice")
		}
	})

	t.Run("再次点击同一张卡牌取消选择", func(t *testing.T) {
		scene, _ := newTestScene(t)
		scene.startMatch()

		scene.selectCard(types.UnitTank)
		scene.selectCard(types.UnitTank)
		if _, ok := scene.Selected(); ok {
			t.Error("Second selection of the same card should deselect")
		}
	})

	t.Run("圣水不足的卡牌不能选中", func(t *testing.T) {
		scene, _ := newTestScene(t)
		scene.startMatch()

		scene.selectCard(types.UnitMelee)
		scene.handlePointer(200, 450) // 剩余 2 圣水
		scene.selectCard(types.UnitTank)
		if _, ok := scene.Selected(); ok {
			t.Error("Unaffordable card should not be selectable")
		}
	})
}

func TestArenaSceneNotices(t *testing.T) {
	scene, controller := newTestScene(t)
	scene.startMatch()

	controller.ApplyDamage(controller.PlayerKing(), 1)
	if scene.notice != "PLAYER King Tower activated!" {
		t.Errorf("Unexpected notice %q", scene.notice)
	}

	scene.advanceNotice(1.5)
	if scene.notice == "" {
		t.Error("Notice should still be visible")
	}
	scene.advanceNotice(1.0)
	if scene.notice != "" {
		t.Errorf("Notice should expire, got %q", scene.notice)
	}
}

func TestHUDFace(t *testing.T) {
	if got := hudFace.Metrics().HAscent; got != 11 {
		t.Errorf("Expected 7x13 face ascent 11, got %v", got)
	}
	if got := baselineTop(100, hudFace); got != 89 {
		t.Errorf("Expected line top 89 for baseline 100, got %v", got)
	}

	tests := []struct {
		name  string
		label string
		width float64
	}{
		{"空字符串", "", 0},
		{"费用标签", "cost 5", 42},
		{"卡牌标题", "1 MELEE", 49},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.Advance(tt.label, hudFace); got != tt.width {
				t.Errorf("Advance(%q) = %v, want %v", tt.label, got, tt.width)
			}
		})
	}
}
