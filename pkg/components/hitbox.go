package components

// HitboxComponent 实体的命中半径
// 仅用于绘制和点击判定，不参与射程计算（射程按中心点距离计算）
type HitboxComponent struct {
	Radius float64
}
