package systems

import "github.com/decker502/clash/pkg/game"

// ElixirSystem 每帧恢复双方圣水
type ElixirSystem struct {
	pools []*game.ElixirPool
}

// NewElixirSystem 创建圣水系统
func NewElixirSystem(pools ...*game.ElixirPool) *ElixirSystem {
	return &ElixirSystem{pools: pools}
}

// Update 按 deltaTime 恢复所有圣水池
func (s *ElixirSystem) Update(deltaTime float64) {
	for _, pool := range s.pools {
		pool.Regenerate(deltaTime)
	}
}
