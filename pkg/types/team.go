// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Team 阵营
type Team int

const (
	// TeamPlayer 玩家阵营（竞技场下半部分）
	TeamPlayer Team = iota
	// TeamEnemy 敌方阵营（竞技场上半部分，由 AI 控制）
	TeamEnemy
)

// Opponent 返回对立阵营
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}

// String 返回阵营的字符串表示
func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "PLAYER"
	case TeamEnemy:
		return "ENEMY"
	default:
		return "UNKNOWN"
	}
}

// MatchResult 对局结果
// 一旦从 ResultNone 变为胜利或失败，便不再改变
type MatchResult int

const (
	// ResultNone 对局尚未结束
	ResultNone MatchResult = iota
	// ResultVictory 敌方主塔被摧毁
	ResultVictory
	// ResultDefeat 玩家主塔被摧毁
	ResultDefeat
)

// String 返回对局结果的字符串表示
func (r MatchResult) String() string {
	switch r {
	case ResultVictory:
		return "victory"
	case ResultDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// IsTerminal 是否为终局结果
func (r MatchResult) IsTerminal() bool {
	return r == ResultVictory || r == ResultDefeat
}
