package match

// Phase 对局阶段
type Phase int

const (
	// PhaseMenu 尚未开始（等待 StartMatch）
	PhaseMenu Phase = iota
	// PhasePlaying 对局进行中
	PhasePlaying
	// PhaseEnded 对局已结束，Tick 不再推进
	PhaseEnded
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
