// Package terminal 在字符终端中绘制对局快照
//
// 竞技场按终端大小缩放到字符网格，底部两行显示圣水和对局状态。
// 渲染器只读取 match.Snapshot，不持有任何模拟状态。
package terminal

import (
	"fmt"
	"math"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/match"
	"github.com/decker502/clash/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// statusLines 底部状态栏占用的行数
const statusLines = 2

var (
	grassStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(0x1a, 0x4d, 0x2e))
	riverStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(0x46, 0x82, 0xb4)).Foreground(tcell.ColorWhite)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer 终端渲染器
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建渲染器，screen 需要已经 Init
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(snap match.Snapshot) {
	r.screen.Clear()
	width, height := r.screen.Size()
	rows := height - statusLines
	if width <= 0 || rows <= 0 {
		r.screen.Show()
		return
	}

	r.drawArena(width, rows)
	for _, e := range snap.Entities {
		col, row := cellFor(e.X, e.Y, width, rows)
		r.screen.SetContent(col, row, glyphFor(e), nil, styleFor(e))
	}
	r.drawStatus(snap, width, rows)

	switch snap.Phase {
	case match.PhaseMenu:
		r.drawCentered(rows/2, "press SPACE to start", titleStyle)
	case match.PhaseEnded:
		r.drawCentered(rows/2, fmt.Sprintf("%s  (r: restart, q: quit)", resultBanner(snap.Result)), titleStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawArena(width, rows int) {
	_, riverRow := cellFor(0, config.ArenaMidY, width, rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < width; col++ {
			if row == riverRow {
				r.screen.SetContent(col, row, '~', nil, riverStyle)
				continue
			}
			r.screen.SetContent(col, row, ' ', nil, grassStyle)
		}
	}
}

func (r *Renderer) drawStatus(snap match.Snapshot, width, rows int) {
	player := fmt.Sprintf("PLAYER %s", elixirGauge(snap.PlayerElixir, snap.MaxElixir))
	enemy := fmt.Sprintf("ENEMY %s", elixirGauge(snap.EnemyElixir, snap.MaxElixir))
	r.drawText(0, rows, player, textStyle)
	r.drawText(width-len(enemy), rows, enemy, textStyle)

	info := fmt.Sprintf("%s  t=%.1fs  entities=%d", snap.Phase, snap.Elapsed, len(snap.Entities))
	r.drawText(0, rows+1, info, textStyle)
}

func (r *Renderer) drawCentered(row int, s string, style tcell.Style) {
	width, _ := r.screen.Size()
	r.drawText((width-len(s))/2, row, s, style)
}

func (r *Renderer) drawText(col, row int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}

// cellFor 把竞技场坐标映射到字符网格，结果被限制在网格内
func cellFor(x, y float64, cols, rows int) (int, int) {
	col := int(math.Floor(x / config.ArenaWidth * float64(cols)))
	row := int(math.Floor(y / config.ArenaHeight * float64(rows)))
	return clampInt(col, 0, cols-1), clampInt(row, 0, rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// glyphFor 实体的字符：主塔 K（未激活为 k），副塔 T，单位 m / r / g
func glyphFor(e match.EntityView) rune {
	if e.Kind == types.EntityTower {
		if !e.TowerKind.IsKing() {
			return 'T'
		}
		if e.Active {
			return 'K'
		}
		return 'k'
	}
	switch e.UnitKind {
	case types.UnitRanged:
		return 'r'
	case types.UnitTank:
		return 'g'
	default:
		return 'm'
	}
}

// styleFor 前景色表示阵营，背景色表示血量
func styleFor(e match.EntityView) tcell.Style {
	fg := tcell.ColorBlue
	if e.Team == types.TeamEnemy {
		fg = tcell.ColorRed
	}
	style := tcell.StyleDefault.Foreground(fg).Bold(true)

	switch {
	case e.HealthFraction > 0.5:
		return style.Background(tcell.ColorGreen)
	case e.HealthFraction > 0.25:
		return style.Background(tcell.ColorOrange)
	default:
		return style.Background(tcell.ColorDarkRed)
	}
}

// elixirGauge 形如 [#####-----] 5/10
func elixirGauge(value, max float64) string {
	whole := int(math.Floor(value))
	total := int(max)
	if total <= 0 {
		return "[] 0/0"
	}
	bar := make([]rune, total)
	for i := range bar {
		if i < whole {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return fmt.Sprintf("[%s] %d/%d", string(bar), whole, total)
}

func resultBanner(result types.MatchResult) string {
	switch result {
	case types.ResultVictory:
		return "VICTORY"
	case types.ResultDefeat:
		return "DEFEAT"
	default:
		return "DRAW"
	}
}
