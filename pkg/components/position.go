package components

import "github.com/decker502/clash/pkg/utils"

// PositionComponent 存储实体在竞技场中的坐标
// 坐标为实数，原点在竞技场左上角，Y 轴向下
type PositionComponent struct {
	X float64
	Y float64
}

// DistanceTo 返回两个位置之间的欧几里得距离
func (p *PositionComponent) DistanceTo(other *PositionComponent) float64 {
	return utils.Distance(p.X, p.Y, other.X, other.Y)
}
