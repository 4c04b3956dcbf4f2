package config

import "github.com/decker502/clash/pkg/types"

// 布局配置常量
// 本文件定义了竞技场的几何参数：尺寸、防御塔位置、单位默认前进行等
// 坐标原点在竞技场左上角，Y 轴向下；敌方在上半部分，玩家在下半部分

// Arena Configuration (竞技场配置)
const (
	// ArenaWidth 竞技场宽度
	ArenaWidth = 400.0

	// ArenaHeight 竞技场高度
	ArenaHeight = 600.0

	// ArenaMidY 竞技场竖直中线，玩家只能在 Y >= ArenaMidY 的区域放置单位
	ArenaMidY = ArenaHeight * 0.5
)

// Tower Layout (防御塔布局)
// 双方的防御塔上下镜像
const (
	// KingTowerEdgeOffset 主塔到己方底边的距离
	KingTowerEdgeOffset = 80.0

	// FlankTowerEdgeOffset 副塔到己方底边的距离
	FlankTowerEdgeOffset = 160.0

	// FlankLeftXFraction 左侧副塔的 X 坐标占竞技场宽度的比例
	FlankLeftXFraction = 0.25

	// FlankRightXFraction 右侧副塔的 X 坐标占竞技场宽度的比例
	FlankRightXFraction = 0.75
)

// Unit Movement (单位移动)
const (
	// PlayerFallbackY 玩家单位没有目标时前进的行（靠近敌方基地）
	PlayerFallbackY = 100.0

	// EnemyFallbackY 敌方单位没有目标时前进的行（靠近玩家基地）
	EnemyFallbackY = 500.0

	// MoveSnapThreshold 距离目标点小于等于该值时停止移动
	MoveSnapThreshold = 5.0
)

// TowerPosition 返回指定阵营、类型的防御塔坐标
func TowerPosition(team types.Team, kind types.TowerKind) (float64, float64) {
	var x, edgeOffset float64
	switch kind {
	case types.TowerFlankLeft:
		x = ArenaWidth * FlankLeftXFraction
		edgeOffset = FlankTowerEdgeOffset
	case types.TowerFlankRight:
		x = ArenaWidth * FlankRightXFraction
		edgeOffset = FlankTowerEdgeOffset
	default:
		x = ArenaWidth / 2
		edgeOffset = KingTowerEdgeOffset
	}

	if team == types.TeamEnemy {
		return x, edgeOffset
	}
	return x, ArenaHeight - edgeOffset
}

// FallbackY 返回指定阵营单位的默认前进行
func FallbackY(team types.Team) float64 {
	if team == types.TeamEnemy {
		return EnemyFallbackY
	}
	return PlayerFallbackY
}

// IsInPlayerHalf 判断 Y 坐标是否位于玩家半场（含中线）
func IsInPlayerHalf(y float64) bool {
	return y >= ArenaMidY
}
