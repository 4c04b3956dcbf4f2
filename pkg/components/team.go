package components

import "github.com/decker502/clash/pkg/types"

// TeamComponent 标记实体所属阵营
type TeamComponent struct {
	Team types.Team
}
