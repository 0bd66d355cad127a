package game

import "github.com/decker502/ecofan/pkg/config"

// GamePhase 游戏阶段
// 任意时刻只有一个阶段处于活动状态
//
// 合法转换：Title → Playing, Playing → Won, Playing → Lost
// Won 和 Lost 是终止阶段
type GamePhase int

const (
	// PhaseTitle 标题画面，选择难度
	PhaseTitle GamePhase = iota
	// PhasePlaying 游戏进行中
	PhasePlaying
	// PhaseLost 时间耗尽，失败
	PhaseLost
	// PhaseWon 电力降到阈值以下，胜利
	PhaseWon
)

// String 返回阶段名称（用于日志）
func (p GamePhase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhaseLost:
		return "Lost"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// IsTerminal 返回该阶段是否为结束阶段
func (p GamePhase) IsTerminal() bool {
	return p == PhaseLost || p == PhaseWon
}

// canTransition 检查阶段转换是否合法
func canTransition(from, to GamePhase) bool {
	switch from {
	case PhaseTitle:
		return to == PhasePlaying
	case PhasePlaying:
		return to == PhaseWon || to == PhaseLost
	default:
		return false
	}
}

// RunState 单局游戏的可变状态
// 进入 Playing 时创建，每帧更新一次
type RunState struct {
	Power     float64  // 当前电力 [0, 100]
	ElapsedMs int64    // 已经过时间（毫秒），单调不减
	Speed     FanSpeed // 当前风速
}

// newRunState 返回一局开始时的初始状态
func newRunState() RunState {
	return RunState{
		Power:     config.InitialPower,
		ElapsedMs: 0,
		Speed:     FanSpeedOff,
	}
}

// MessageID 结束画面的固定消息标识
type MessageID int

const (
	// MessageNone 非结束阶段
	MessageNone MessageID = iota
	// MessageWon 达成目标
	MessageWon
	// MessageLost 时间内未达成目标
	MessageLost
)

// messageForPhase 返回阶段对应的结束消息
func messageForPhase(p GamePhase) MessageID {
	switch p {
	case PhaseWon:
		return MessageWon
	case PhaseLost:
		return MessageLost
	default:
		return MessageNone
	}
}
