// validate-balance 检查平衡数据文件并打印单位和防御塔属性
//
//	go run ./cmd/validate-balance data/balance.yaml
//
// 不带参数时检查内置数据。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/clash/pkg/config"
	"github.com/decker502/clash/pkg/embedded"
	"github.com/decker502/clash/pkg/types"
)

func main() {
	path := embedded.DefaultBalancePath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	balance, err := config.LoadBalanceConfig(path)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s 格式正确\n", path)
	fmt.Printf("圣水: 初始 %.0f, 上限 %.0f, 每秒 %.2f\n",
		balance.Elixir.Start, balance.Elixir.Max, balance.Elixir.RegenPerSecond)

	fmt.Printf("%-8s %5s %6s %6s %6s %6s %6s\n", "unit", "cost", "hp", "dmg", "speed", "as", "range")
	for _, kind := range types.AllUnitKinds {
		stats, err := balance.GetUnitStats(kind)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", kind, err)
			os.Exit(1)
		}
		fmt.Printf("%-8s %5d %6d %6d %6.0f %6.2f %6.0f\n",
			kind, stats.Cost, stats.Health, stats.Damage, stats.Speed, stats.AttackSpeed, stats.Range)
	}

	for _, kind := range []types.TowerKind{types.TowerKing, types.TowerFlankLeft} {
		stats := balance.GetTowerStats(kind)
		name := "flank"
		if kind.IsKing() {
			name = "king"
		}
		fmt.Printf("%-8s %5s %6d %6d %6s %6.2f %6.0f\n",
			name, "-", stats.Health, stats.Damage, "-", stats.AttackSpeed, stats.Range)
	}

	fmt.Printf("AI: 每 %.1f 秒, 优先级 %v\n", balance.EnemyAI.Interval, balance.AIPriority())
}
