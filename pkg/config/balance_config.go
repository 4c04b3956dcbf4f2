package config

import (
	"fmt"

	"github.com/decker502/clash/pkg/embedded"
	"github.com/decker502/clash/pkg/types"
	"gopkg.in/yaml.v3"
)

// ElixirConfig 圣水池参数（双方相同）
type ElixirConfig struct {
	Start          float64 `yaml:"start"`          // 开局圣水
	Max            float64 `yaml:"max"`            // 圣水上限
	RegenPerSecond float64 `yaml:"regenPerSecond"` // 每秒恢复量
}

// TowerStats 单个防御塔类型的属性
type TowerStats struct {
	Health      int     `yaml:"health"`
	Damage      int     `yaml:"damage"`
	Range       float64 `yaml:"range"`
	AttackSpeed float64 `yaml:"attackSpeed"` // 每秒攻击次数
	Radius      float64 `yaml:"radius"`
}

// TowersConfig 防御塔属性，两个副塔共用 Flank
type TowersConfig struct {
	King  TowerStats `yaml:"king"`
	Flank TowerStats `yaml:"flank"`
}

// UnitStats 单个单位类型的属性
type UnitStats struct {
	Cost        int     `yaml:"cost"`
	Health      int     `yaml:"health"`
	Damage      int     `yaml:"damage"`
	Speed       float64 `yaml:"speed"`
	AttackSpeed float64 `yaml:"attackSpeed"` // 每秒攻击次数
	Range       float64 `yaml:"range"`
	Radius      float64 `yaml:"radius"`
}

// EnemyAIConfig 敌方 AI 出兵策略
type EnemyAIConfig struct {
	Interval     float64  `yaml:"interval"`     // 出兵间隔（秒）
	Priority     []string `yaml:"priority"`     // 单位优先级，选择第一个负担得起的
	SpawnRow     float64  `yaml:"spawnRow"`     // 出兵 Y 坐标占竞技场高度的比例
	SpawnBandMin float64  `yaml:"spawnBandMin"` // 出兵 X 范围下限（占宽度比例）
	SpawnBandMax float64  `yaml:"spawnBandMax"` // 出兵 X 范围上限（占宽度比例）
}

// BalanceConfig 平衡数据配置文件结构
type BalanceConfig struct {
	Elixir  ElixirConfig         `yaml:"elixir"`
	Towers  TowersConfig         `yaml:"towers"`
	Units   map[string]UnitStats `yaml:"units"` // 单位配置键（melee/ranged/tank）到属性的映射
	EnemyAI EnemyAIConfig        `yaml:"enemyAI"`

	// priority 解析后的 AI 优先级列表
	priority []types.UnitKind
}

// LoadBalanceConfig 从 YAML 文件加载平衡数据
// 参数：
//
//	filepath - 配置文件路径，"data/" 开头的路径读取嵌入文件，其余读取磁盘文件
//
// 返回：
//
//	*BalanceConfig - 解析并校验后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadBalanceConfig(filepath string) (*BalanceConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file %s: %w", filepath, err)
	}

	cfg, err := ParseBalanceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseBalanceConfig 从 YAML 数据解析平衡配置
func ParseBalanceConfig(data []byte) (*BalanceConfig, error) {
	var cfg BalanceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}

	if err := validateBalanceConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid balance config: %w", err)
	}

	return &cfg, nil
}

// DefaultBalanceConfig 返回嵌入的默认平衡数据
// 嵌入文件随代码一起维护，解析失败属于编程错误，直接 panic
func DefaultBalanceConfig() *BalanceConfig {
	cfg, err := LoadBalanceConfig(embedded.DefaultBalancePath)
	if err != nil {
		panic(fmt.Sprintf("embedded balance config is broken: %v", err))
	}
	return cfg
}

// validateBalanceConfig 验证平衡配置的完整性和合法性
func validateBalanceConfig(cfg *BalanceConfig) error {
	if cfg.Elixir.Max <= 0 {
		return fmt.Errorf("elixir max must be positive, got %v", cfg.Elixir.Max)
	}
	if cfg.Elixir.Start < 0 || cfg.Elixir.Start > cfg.Elixir.Max {
		return fmt.Errorf("elixir start must be within [0, %v], got %v", cfg.Elixir.Max, cfg.Elixir.Start)
	}
	if cfg.Elixir.RegenPerSecond < 0 {
		return fmt.Errorf("elixir regenPerSecond cannot be negative, got %v", cfg.Elixir.RegenPerSecond)
	}

	if err := validateTowerStats("king", cfg.Towers.King); err != nil {
		return err
	}
	if err := validateTowerStats("flank", cfg.Towers.Flank); err != nil {
		return err
	}

	for _, kind := range types.AllUnitKinds {
		stats, ok := cfg.Units[kind.String()]
		if !ok {
			return fmt.Errorf("unit %s: missing stats", kind)
		}
		if err := validateUnitStats(kind.String(), stats); err != nil {
			return err
		}
	}
	// 统计数据只按规范名查找，别名键会被静默忽略，因此直接拒绝
	for name := range cfg.Units {
		kind, err := types.ParseUnitKind(name)
		if err != nil {
			return fmt.Errorf("units: %w", err)
		}
		if name != kind.String() {
			return fmt.Errorf("units: key %q must use canonical name %q: %w", name, kind.String(), types.ErrInvalidUnitKind)
		}
	}

	ai := cfg.EnemyAI
	if ai.Interval <= 0 {
		return fmt.Errorf("enemyAI interval must be positive, got %v", ai.Interval)
	}
	if ai.SpawnRow < 0 || ai.SpawnRow > 1 {
		return fmt.Errorf("enemyAI spawnRow must be within [0, 1], got %v", ai.SpawnRow)
	}
	if ai.SpawnBandMin < 0 || ai.SpawnBandMax > 1 || ai.SpawnBandMin > ai.SpawnBandMax {
		return fmt.Errorf("enemyAI spawn band must satisfy 0 <= min <= max <= 1, got [%v, %v]", ai.SpawnBandMin, ai.SpawnBandMax)
	}
	if len(ai.Priority) == 0 {
		return fmt.Errorf("enemyAI priority must list at least one unit")
	}

	priority := make([]types.UnitKind, 0, len(ai.Priority))
	for _, name := range ai.Priority {
		kind, err := types.ParseUnitKind(name)
		if err != nil {
			return fmt.Errorf("enemyAI priority: %w", err)
		}
		priority = append(priority, kind)
	}
	cfg.priority = priority

	return nil
}

func validateTowerStats(name string, stats TowerStats) error {
	if stats.Health <= 0 {
		return fmt.Errorf("tower %s: health must be positive, got %d", name, stats.Health)
	}
	if stats.Damage < 0 {
		return fmt.Errorf("tower %s: damage cannot be negative, got %d", name, stats.Damage)
	}
	if stats.Range <= 0 {
		return fmt.Errorf("tower %s: range must be positive, got %v", name, stats.Range)
	}
	if stats.AttackSpeed <= 0 {
		return fmt.Errorf("tower %s: attackSpeed must be positive, got %v", name, stats.AttackSpeed)
	}
	if stats.Radius < 0 {
		return fmt.Errorf("tower %s: radius cannot be negative, got %v", name, stats.Radius)
	}
	return nil
}

func validateUnitStats(name string, stats UnitStats) error {
	if stats.Cost < 0 {
		return fmt.Errorf("unit %s: cost cannot be negative, got %d", name, stats.Cost)
	}
	if stats.Health <= 0 {
		return fmt.Errorf("unit %s: health must be positive, got %d", name, stats.Health)
	}
	if stats.Damage < 0 {
		return fmt.Errorf("unit %s: damage cannot be negative, got %d", name, stats.Damage)
	}
	if stats.Speed < 0 {
		return fmt.Errorf("unit %s: speed cannot be negative, got %v", name, stats.Speed)
	}
	if stats.AttackSpeed <= 0 {
		return fmt.Errorf("unit %s: attackSpeed must be positive, got %v", name, stats.AttackSpeed)
	}
	if stats.Range <= 0 {
		return fmt.Errorf("unit %s: range must be positive, got %v", name, stats.Range)
	}
	if stats.Radius < 0 {
		return fmt.Errorf("unit %s: radius cannot be negative, got %v", name, stats.Radius)
	}
	return nil
}

// GetUnitStats 获取指定单位类型的属性
// 未知的单位类型返回 ErrInvalidUnitKind
func (c *BalanceConfig) GetUnitStats(kind types.UnitKind) (UnitStats, error) {
	if !kind.Valid() {
		return UnitStats{}, fmt.Errorf("%w: %d", types.ErrInvalidUnitKind, int(kind))
	}
	stats, ok := c.Units[kind.String()]
	if !ok {
		return UnitStats{}, fmt.Errorf("%w: %s has no stats", types.ErrInvalidUnitKind, kind)
	}
	return stats, nil
}

// UnitCost 获取指定单位类型的圣水消耗
// 未知的单位类型返回 ErrInvalidUnitKind
func (c *BalanceConfig) UnitCost(kind types.UnitKind) (int, error) {
	stats, err := c.GetUnitStats(kind)
	if err != nil {
		return 0, err
	}
	return stats.Cost, nil
}

// GetTowerStats 获取指定防御塔类型的属性
func (c *BalanceConfig) GetTowerStats(kind types.TowerKind) TowerStats {
	if kind.IsKing() {
		return c.Towers.King
	}
	return c.Towers.Flank
}

// AIPriority 返回解析后的 AI 出兵优先级
// 未经校验的配置（例如测试中手工构造）会现场解析 Priority，跳过无法识别的名称
func (c *BalanceConfig) AIPriority() []types.UnitKind {
	if c.priority == nil {
		for _, name := range c.EnemyAI.Priority {
			if kind, err := types.ParseUnitKind(name); err == nil {
				c.priority = append(c.priority, kind)
			}
		}
	}
	result := make([]types.UnitKind, len(c.priority))
	copy(result, c.priority)
	return result
}
