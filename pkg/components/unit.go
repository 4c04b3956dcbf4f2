package components

import "github.com/decker502/clash/pkg/types"

// UnitComponent 单位数据
type UnitComponent struct {
	Kind        types.UnitKind
	Damage      int     // 每次攻击伤害
	Speed       float64 // 移动速度（距离单位/秒）
	AttackSpeed float64 // 每秒攻击次数
	Range       float64 // 攻击范围
	// FallbackY 没有目标时前进的目标行（靠近对方基地）
	FallbackY float64
}

// AttackInterval 两次攻击之间的最小间隔（秒）
func (u *UnitComponent) AttackInterval() float64 {
	return 1.0 / u.AttackSpeed
}
