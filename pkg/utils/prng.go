// Package utils 提供通用工具函数
package utils

import (
	"math/rand"
	"time"
)

// PRNGService 可设定种子的随机数服务
// 模拟中所有随机性（AI 出兵位置等）都从这里获取，相同种子得到相同的对局
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService 使用指定种子创建随机数服务
// 种子为 0 时使用当前时间
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed 返回实际使用的种子
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 返回 [0.0, 1.0) 范围内的随机浮点数
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range 返回 [min, max) 范围内的随机浮点数
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
