// Package event 提供同步的观察者式事件分发
//
// 模拟核心在 Tick 内部同步派发事件，表现层通过订阅获得通知，
// 核心不依赖任何全局事件总线。
package event

import (
	"github.com/decker502/clash/pkg/ecs"
	"github.com/decker502/clash/pkg/types"
)

// EventType 事件类型
type EventType string

const (
	// MatchEnded 对局结果从 none 变为胜利或失败，每局只派发一次
	MatchEnded EventType = "match_ended"
	// UnitSpawned 单位出生（玩家或 AI）
	UnitSpawned EventType = "unit_spawned"
	// EntityDestroyed 死亡实体被移出集合
	EntityDestroyed EventType = "entity_destroyed"
	// TowerActivated 主塔首次受到伤害而激活
	TowerActivated EventType = "tower_activated"
)

// Event 事件
type Event struct {
	Type EventType
	Data interface{} // 事件数据，见下方各 *Data 类型
}

// MatchEndedData MatchEnded 事件数据
type MatchEndedData struct {
	MatchID string
	Result  types.MatchResult
	Elapsed float64 // 对局进行的模拟时间（秒）
}

// UnitSpawnedData UnitSpawned 事件数据
type UnitSpawnedData struct {
	Entity ecs.EntityID
	Team   types.Team
	Kind   types.UnitKind
	X, Y   float64
}

// EntityDestroyedData EntityDestroyed 事件数据
type EntityDestroyedData struct {
	Entity ecs.EntityID
	Team   types.Team
	Kind   types.EntityKind
}

// TowerActivatedData TowerActivated 事件数据
type TowerActivatedData struct {
	Entity ecs.EntityID
	Team   types.Team
}

// Listener 事件订阅者接口
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher 事件分发器
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher 创建新的事件分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe 订阅事件
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll 订阅所有事件类型
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range []EventType{MatchEnded, UnitSpawned, EntityDestroyed, TowerActivated} {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe 取消订阅
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch 按订阅顺序同步通知所有订阅者
// nil 分发器上调用是安全的
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Recorder 记录收到的所有事件
type Recorder struct {
	Events []Event
}

// OnEvent 实现 Listener 接口
func (r *Recorder) OnEvent(event Event) {
	r.Events = append(r.Events, event)
}

// Count 统计指定类型事件的数量
func (r *Recorder) Count(eventType EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
