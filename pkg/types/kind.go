package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUnitKind 未知的单位类型
var ErrInvalidUnitKind = errors.New("invalid unit kind")

// EntityKind 实体变体标签
// BehaviorSystem 根据此标签分发每帧的行为逻辑
type EntityKind int

const (
	// EntityUnknown 未知实体
	EntityUnknown EntityKind = iota
	// EntityTower 防御塔（静止）
	EntityTower
	// EntityUnit 单位（可移动）
	EntityUnit
)

// String 返回实体变体的字符串表示
func (k EntityKind) String() string {
	switch k {
	case EntityTower:
		return "Tower"
	case EntityUnit:
		return "Unit"
	default:
		return "Unknown"
	}
}

// TowerKind 防御塔类型
type TowerKind int

const (
	// TowerKing 主塔（国王塔），被摧毁即判负
	TowerKing TowerKind = iota
	// TowerFlankLeft 左侧副塔
	TowerFlankLeft
	// TowerFlankRight 右侧副塔
	TowerFlankRight
)

// IsKing 是否为主塔
func (k TowerKind) IsKing() bool {
	return k == TowerKing
}

// String 返回防御塔类型的字符串表示
func (k TowerKind) String() string {
	switch k {
	case TowerKing:
		return "King"
	case TowerFlankLeft:
		return "FlankLeft"
	case TowerFlankRight:
		return "FlankRight"
	default:
		return "Unknown"
	}
}

// UnitKind 单位类型
type UnitKind int

const (
	// UnitMelee 均衡型近战单位（骑士）
	UnitMelee UnitKind = iota
	// UnitRanged 快速循环的远程单位（弓箭手）
	UnitRanged
	// UnitTank 只攻击建筑的重型单位（巨人）
	UnitTank
)

// AllUnitKinds 按固定顺序列出所有单位类型
var AllUnitKinds = []UnitKind{UnitMelee, UnitRanged, UnitTank}

// Valid 是否为已知的单位类型
func (k UnitKind) Valid() bool {
	return k >= UnitMelee && k <= UnitTank
}

// TargetsTowersOnly 是否只把防御塔作为目标
func (k UnitKind) TargetsTowersOnly() bool {
	return k == UnitTank
}

// String 返回单位类型的配置键
func (k UnitKind) String() string {
	switch k {
	case UnitMelee:
		return "melee"
	case UnitRanged:
		return "ranged"
	case UnitTank:
		return "tank"
	default:
		return "unknown"
	}
}

// ParseUnitKind 解析单位类型
// 同时接受配置键（melee/ranged/tank）和卡牌名（knight/archer/giant），不区分大小写
func ParseUnitKind(s string) (UnitKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "melee", "knight":
		return UnitMelee, nil
	case "ranged", "archer":
		return UnitRanged, nil
	case "tank", "giant":
		return UnitTank, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnitKind, s)
	}
}
