package components

import "github.com/decker502/clash/pkg/types"

// TowerComponent 防御塔数据
// 主塔初始未激活，受到任何伤害后永久激活；副塔初始即激活
type TowerComponent struct {
	Kind        types.TowerKind
	Damage      int     // 每次攻击伤害
	Range       float64 // 攻击范围
	AttackSpeed float64 // 每秒攻击次数
	IsActive    bool    // 未激活的塔既不索敌也不攻击
}

// AttackInterval 两次攻击之间的最小间隔（秒）
func (t *TowerComponent) AttackInterval() float64 {
	return 1.0 / t.AttackSpeed
}
