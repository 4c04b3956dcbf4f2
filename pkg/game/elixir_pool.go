package game

import "github.com/decker502/clash/pkg/utils"

// ElixirPool 一方的圣水池
// 不变式：Value 始终位于 [0, Max]
type ElixirPool struct {
	value float64
	max   float64
	rate  float64 // 每秒恢复量
}

// NewElixirPool 创建圣水池，初始值会被钳制到 [0, max]
func NewElixirPool(start, max, rate float64) *ElixirPool {
	if max < 0 {
		max = 0
	}
	return &ElixirPool{
		value: utils.Clamp(start, 0, max),
		max:   max,
		rate:  rate,
	}
}

// Regenerate 按 rate × dt 恢复圣水，不超过上限
// 负的 dt 不会扣减圣水
func (p *ElixirPool) Regenerate(dt float64) {
	if dt <= 0 {
		return
	}
	p.value = utils.Clamp(p.value+p.rate*dt, 0, p.max)
}

// Spend 扣除圣水，如果圣水不足返回 false
// 只有当圣水充足时才会扣除，否则返回false表示操作失败
func (p *ElixirPool) Spend(amount float64) bool {
	if amount < 0 || p.value < amount {
		return false
	}
	p.value -= amount
	return true
}

// CanAfford 圣水是否足够支付 amount
func (p *ElixirPool) CanAfford(amount float64) bool {
	return p.value >= amount
}

// Value 返回当前圣水值
func (p *ElixirPool) Value() float64 {
	return p.value
}

// Max 返回圣水上限
func (p *ElixirPool) Max() float64 {
	return p.max
}

// Whole 返回向下取整的圣水值（用于界面显示）
func (p *ElixirPool) Whole() int {
	return int(p.value)
}
