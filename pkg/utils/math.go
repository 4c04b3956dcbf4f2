package utils

import "math"

// Clamp 将值限制在 [min, max] 范围内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Distance 两点之间的欧几里得距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// MoveTowards 从 (x, y) 朝 (targetX, targetY) 直线移动 step 距离
//
// 距离小于等于 snap 时不移动。不做终点钳制：最后一步可能越过目标点，
// 下一帧再反向修正，直到进入 snap 范围。
func MoveTowards(x, y, targetX, targetY, step, snap float64) (float64, float64) {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist <= snap || dist == 0 {
		return x, y
	}
	return x + dx/dist*step, y + dy/dist*step
}
