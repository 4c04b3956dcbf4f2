package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/types"
)

// 竞技场配色
var (
	grassColor  = color.RGBA{R: 0x1a, G: 0x4d, B: 0x2e, A: 0xff}
	riverColor  = color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
	bridgeColor = color.RGBA{R: 0x8b, G: 0x73, B: 0x55, A: 0xff}
	hudColor    = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	barBgColor  = color.RGBA{A: 0x80}
	elixirColor = color.RGBA{R: 0xc0, G: 0x26, B: 0xd3, A: 0xff}
	rangeColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	dimColor    = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	crownColor  = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	overlayTint = color.RGBA{A: 0xb0}

	healthyColor = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	woundedColor = color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	criticalRed  = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
)

// 卡牌栏布局
const (
	riverHalfHeight  = 20
	bridgeHalfHeight = 15

	elixirBarX      = 10
	elixirBarY      = config.ArenaHeight + 8
	elixirBarWidth  = config.ArenaWidth - 20
	elixirBarHeight = 12

	cardTop    = int(config.ArenaHeight) + 30
	cardWidth  = 110
	cardHeight = 62
	cardGap    = 15
	cardLeft   = (config.GameWindowWidth - len(cardSlots)*cardWidth - (len(cardSlots)-1)*cardGap) / 2
)

// cardSlots 卡牌从左到右的顺序
var cardSlots = [...]types.UnitKind{types.UnitMelee, types.UnitRanged, types.UnitTank}

// cardRect 第 i 张卡牌的屏幕区域
func cardRect(i int) image.Rectangle {
	x := cardLeft + i*(cardWidth+cardGap)
	return image.Rect(x, cardTop, x+cardWidth, cardTop+cardHeight)
}

// cardAt 返回屏幕坐标处的卡牌
func cardAt(x, y int) (types.UnitKind, bool) {
	p := image.Pt(x, y)
	for i, kind := range cardSlots {
		if p.In(cardRect(i)) {
			return kind, true
		}
	}
	return 0, false
}

// inArena 屏幕坐标是否落在竞技场内
func inArena(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(config.ArenaWidth) && y < int(config.ArenaHeight)
}

// healthBarColor 按剩余血量比例选择血条颜色
func healthBarColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.5:
		return healthyColor
	case fraction > 0.25:
		return woundedColor
	default:
		return criticalRed
	}
}

// towerColors 防御塔主体和塔顶的颜色，未激活的主塔显示为灰色
func towerColors(team types.Team, active bool) (body, roof color.RGBA) {
	player := team == types.TeamPlayer
	switch {
	case !active && player:
		return color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}, color.RGBA{R: 0x4b, G: 0x55, B: 0x63, A: 0xff}
	case !active:
		return color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}, color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	case player:
		return color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, color.RGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff}
	default:
		return color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}, color.RGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 0xff}
	}
}

// unitColor 单位主体颜色
func unitColor(team types.Team, kind types.UnitKind) color.RGBA {
	player := team == types.TeamPlayer
	switch kind {
	case types.UnitRanged:
		if player {
			return color.RGBA{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff}
		}
		return color.RGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff}
	case types.UnitTank:
		if player {
			return color.RGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}
		}
		return color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	default:
		if player {
			return color.RGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff}
		}
		return color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	}
}

// unitGlyph 单位中心的类型标记
func unitGlyph(kind types.UnitKind) string {
	switch kind {
	case types.UnitRanged:
		return "A"
	case types.UnitTank:
		return "G"
	default:
		return "K"
	}
}

// elixirLabel 圣水显示文本，whole 为向下取整后的当前值
func elixirLabel(whole int, max float64) string {
	return fmt.Sprintf("%d/%d", whole, int(max))
}

// resultTitle 结算界面标题
func resultTitle(result types.MatchResult) string {
	switch result {
	case types.ResultVictory:
		return "VICTORY!"
	case types.ResultDefeat:
		return "DEFEAT"
	default:
		return ""
	}
}
