package components

// HealthComponent 存储实体的生命值信息
// 用于防御塔、单位等所有可被攻击的实体
//
// 不变式：
//   - CurrentHealth 永远不小于 0
//   - IsAlive 在 CurrentHealth 降到 0 时变为 false，且不会再变回 true
type HealthComponent struct {
	CurrentHealth int  // 当前生命值
	MaxHealth     int  // 最大生命值
	IsAlive       bool // 是否存活
}

// NewHealthComponent 创建满血的生命值组件
func NewHealthComponent(maxHealth int) *HealthComponent {
	return &HealthComponent{
		CurrentHealth: maxHealth,
		MaxHealth:     maxHealth,
		IsAlive:       maxHealth > 0,
	}
}

// TakeDamage 扣除生命值
// 负数伤害按 0 处理（伤害永远不会治疗），生命值降到 0 时标记死亡。
// 返回本次调用是否导致死亡。
func (h *HealthComponent) TakeDamage(amount int) bool {
	if !h.IsAlive {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	h.CurrentHealth -= amount
	if h.CurrentHealth <= 0 {
		h.CurrentHealth = 0
		h.IsAlive = false
		return true
	}
	return false
}

// Fraction 返回当前生命值占最大生命值的比例 [0, 1]
func (h *HealthComponent) Fraction() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
