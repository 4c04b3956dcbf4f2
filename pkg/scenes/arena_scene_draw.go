package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/match"
	"github.com/decker502/clash/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// hudFace HUD 文字字体（7x13 点阵）
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Draw 绘制竞技场、实体、卡牌栏和覆盖层
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	s.drawArena(screen)

	settings := s.settings.GetSettings()
	for _, e := range s.snapshot.Entities {
		if settings.ShowRanges && e.Active {
			vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(e.Range), 1, rangeColor, true)
		}
		switch e.Kind {
		case types.EntityTower:
			drawTower(screen, e)
		case types.EntityUnit:
			drawUnit(screen, e)
		}
		if settings.ShowHealthNumbers {
			label := fmt.Sprintf("%d", e.Health)
			drawCenteredText(screen, label, e.X, e.Y-e.Radius-12, color.White)
		}
	}

	s.drawHUD(screen)

	if s.notice != "" {
		drawCenteredText(screen, s.notice, config.ArenaWidth/2, config.ArenaMidY-40, crownColor)
	}

	switch s.snapshot.Phase {
	case match.PhaseMenu:
		drawOverlay(screen, "CLASH", "Click or press SPACE to start")
	case match.PhaseEnded:
		drawOverlay(screen, resultTitle(s.snapshot.Result), "Click or press R to play again")
	}
}

// drawArena 草地、中间的河流和两座桥
func (s *ArenaScene) drawArena(screen *ebiten.Image) {
	screen.Fill(hudColor)
	vector.DrawFilledRect(screen, 0, 0, config.ArenaWidth, config.ArenaHeight, grassColor, false)
	vector.DrawFilledRect(screen, 0, config.ArenaMidY-riverHalfHeight, config.ArenaWidth, riverHalfHeight*2, riverColor, false)
	vector.DrawFilledRect(screen, config.ArenaWidth*0.2, config.ArenaMidY-bridgeHalfHeight, config.ArenaWidth*0.2, bridgeHalfHeight*2, bridgeColor, false)
	vector.DrawFilledRect(screen, config.ArenaWidth*0.6, config.ArenaMidY-bridgeHalfHeight, config.ArenaWidth*0.2, bridgeHalfHeight*2, bridgeColor, false)

	// 已选卡牌时提示可放置区域
	if s.hasSelection {
		x, y := pointerPosition()
		if inArena(x, y) && config.IsInPlayerHalf(float64(y)) {
			stats, err := s.controller.Balance().GetUnitStats(s.selected)
			if err == nil {
				vector.StrokeCircle(screen, float32(x), float32(y), float32(stats.Radius), 1, color.White, true)
			}
		}
	}
}

func drawTower(screen *ebiten.Image, e match.EntityView) {
	body, roof := towerColors(e.Team, e.Active)
	x, y, r := float32(e.X), float32(e.Y), float32(e.Radius)

	vector.DrawFilledCircle(screen, x, y, r, body, true)
	vector.DrawFilledCircle(screen, x, y, r*0.6, roof, true)

	if e.TowerKind.IsKing() {
		marker := crownColor
		if !e.Active {
			marker = dimColor
		}
		vector.DrawFilledCircle(screen, x, y, 6, marker, true)
	}

	drawHealthBar(screen, e.X-25, e.Y+e.Radius+5, 50, 5, e.HealthFraction)
	vector.StrokeRect(screen, float32(e.X-25), float32(e.Y+e.Radius+5), 50, 5, 1, rangeColor, false)
}

func drawUnit(screen *ebiten.Image, e match.EntityView) {
	x, y, r := float32(e.X), float32(e.Y), float32(e.Radius)

	vector.DrawFilledCircle(screen, x, y, r, unitColor(e.Team, e.UnitKind), true)
	border := color.Color(color.White)
	if e.Team == types.TeamEnemy {
		border = color.Black
	}
	vector.StrokeCircle(screen, x, y, r, 2, border, true)
	drawCenteredText(screen, unitGlyph(e.UnitKind), e.X, e.Y+4, color.White)

	drawHealthBar(screen, e.X-e.Radius, e.Y-e.Radius-8, e.Radius*2, 4, e.HealthFraction)
}

func drawHealthBar(screen *ebiten.Image, x, y, w, h, fraction float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), barBgColor, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*fraction), float32(h), healthBarColor(fraction), false)
}

// drawHUD 圣水条和三张卡牌
func (s *ArenaScene) drawHUD(screen *ebiten.Image) {
	snap := s.snapshot
	fraction := 0.0
	if snap.MaxElixir > 0 {
		fraction = snap.PlayerElixir / snap.MaxElixir
	}
	vector.DrawFilledRect(screen, elixirBarX, elixirBarY, elixirBarWidth, elixirBarHeight, barBgColor, false)
	vector.DrawFilledRect(screen, elixirBarX, elixirBarY, float32(elixirBarWidth*fraction), elixirBarHeight, elixirColor, false)
	drawCenteredText(screen, elixirLabel(snap.PlayerElixirWhole, snap.MaxElixir), config.ArenaWidth/2, elixirBarY+10, color.White)

	balance := s.controller.Balance()
	for i, kind := range cardSlots {
		rect := cardRect(i)
		bg := color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
		if !snap.Affordable[kind] {
			bg = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
		}
		vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

		borderWidth := float32(1)
		border := color.Color(dimColor)
		if s.hasSelection && s.selected == kind {
			borderWidth = 3
			border = crownColor
		}
		vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), borderWidth, border, false)

		textColor := color.Color(color.White)
		if !snap.Affordable[kind] {
			textColor = dimColor
		}
		cx := float64(rect.Min.X) + float64(rect.Dx())/2
		drawCenteredText(screen, fmt.Sprintf("%d %s", i+1, strings.ToUpper(kind.String())), cx, float64(rect.Min.Y)+24, textColor)
		if cost, err := balance.UnitCost(kind); err == nil {
			drawCenteredText(screen, fmt.Sprintf("cost %d", cost), cx, float64(rect.Min.Y)+44, textColor)
		}
	}
}

func drawOverlay(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.GameWindowWidth), float32(config.GameWindowHeight), overlayTint, false)
	drawCenteredText(screen, title, config.ArenaWidth/2, config.ArenaMidY-10, crownColor)
	drawCenteredText(screen, hint, config.ArenaWidth/2, config.ArenaMidY+20, color.White)
}

// drawCenteredText 以 (x, y) 为基线中心绘制一行文字
func drawCenteredText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, baselineTop(y, hudFace))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, hudFace, op)
}

// baselineTop 把基线坐标换算成 text/v2 使用的行顶坐标
func baselineTop(baseline float64, face text.Face) float64 {
	return baseline - face.Metrics().HAscent
}
