// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置（逻辑屏幕坐标）
	X, Y int
}

// InputSource 每帧采样一次输入的函数
// 场景通过它获取输入，测试可以替换为固定序列
type InputSource func() InputState

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（触屏设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}

	// 检查是否有活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		return state
	}

	// 其次检查鼠标输入
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
		state.X, state.Y = ebiten.CursorPosition()
		return state
	}

	// 获取鼠标位置用于悬停检测
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// ScriptedInput 按顺序回放预设输入的 InputSource
// 序列耗尽后返回零值（无点击）
func ScriptedInput(states ...InputState) InputSource {
	i := 0
	return func() InputState {
		if i >= len(states) {
			return InputState{}
		}
		s := states[i]
		i++
		return s
	}
}
