package components

import "github.com/decker502/clash/pkg/types"

// KindComponent 实体变体标签
// BehaviorSystem 根据 Kind 将每帧更新分发给防御塔或单位的处理逻辑
type KindComponent struct {
	Kind types.EntityKind
}
