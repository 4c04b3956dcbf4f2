package terminal

import (
	"strings"
	"testing"

	"github.com/decker502/clash/pkg/match"
	"github.com/decker502/clash/pkg/types"
	"github.com/decker502/clash/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, row, width int) string {
	var b strings.Builder
	for col := 0; col < width; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestCellFor(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"左上角", 0, 0, 0, 0},
		{"中心", 200, 300, 20, 10},
		{"右下边界被限制", 400, 600, 39, 19},
		{"越界坐标被限制", -50, 900, 0, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := cellFor(tt.x, tt.y, 40, 20)
			if col != tt.col || row != tt.row {
				t.Errorf("cellFor(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		name string
		view match.EntityView
		want rune
	}{
		{"未激活主塔", match.EntityView{Kind: types.EntityTower, TowerKind: types.TowerKing}, 'k'},
		{"已激活主塔", match.EntityView{Kind: types.EntityTower, TowerKind: types.TowerKing, Active: true}, 'K'},
		{"副塔", match.EntityView{Kind: types.EntityTower, TowerKind: types.TowerFlankLeft, Active: true}, 'T'},
		{"近战", match.EntityView{Kind: types.EntityUnit, UnitKind: types.UnitMelee}, 'm'},
		{"远程", match.EntityView{Kind: types.EntityUnit, UnitKind: types.UnitRanged}, 'r'},
		{"坦克", match.EntityView{Kind: types.EntityUnit, UnitKind: types.UnitTank}, 'g'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := glyphFor(tt.view); got != tt.want {
				t.Errorf("glyphFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElixirGauge(t *testing.T) {
	if got := elixirGauge(5.7, 10); got != "[#####-----] 5/10" {
		t.Errorf("Unexpected gauge %q", got)
	}
	if got := elixirGauge(0, 0); got != "[] 0/0" {
		t.Errorf("Unexpected gauge %q", got)
	}
}

func TestRendererDraw(t *testing.T) {
	screen := newTestScreen(t, 60, 22)
	renderer := NewRenderer(screen)

	c := match.NewController(nil, utils.NewPRNGService(1), nil)
	if err := c.StartMatch(); err != nil {
		t.Fatalf("StartMatch failed: %v", err)
	}
	renderer.Draw(c.Snapshot())

	// 玩家主塔 (200, 520)
	col, row := cellFor(200, 520, 60, 20)
	if ch, _, _, _ := screen.GetContent(col, row); ch != 'k' {
		t.Errorf("Expected inactive king at (%d, %d), got %q", col, row, ch)
	}

	// 敌方副塔 (100, 160)
	col, row = cellFor(100, 160, 60, 20)
	if ch, _, _, _ := screen.GetContent(col, row); ch != 'T' {
		t.Errorf("Expected flank tower at (%d, %d), got %q", col, row, ch)
	}

	_, riverRow := cellFor(0, 300, 60, 20)
	if ch, _, _, _ := screen.GetContent(0, riverRow); ch != '~' {
		t.Errorf("Expected river at row %d, got %q", riverRow, ch)
	}

	status := rowText(screen, 20, 60)
	if !strings.HasPrefix(status, "PLAYER [#####-----] 5/10") {
		t.Errorf("Unexpected status line %q", status)
	}
	if info := rowText(screen, 21, 60); !strings.HasPrefix(info, "playing") {
		t.Errorf("Unexpected info line %q", info)
	}
}
