package game

import "github.com/decker502/ecofan/pkg/config"

// Rect 轴对齐矩形（屏幕坐标，左上角为原点）
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect 根据左上角和尺寸创建矩形
func NewRect(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width 返回矩形宽度
func (r Rect) Width() int { return r.Right - r.Left }

// Height 返回矩形高度
func (r Rect) Height() int { return r.Bottom - r.Top }

// Contains 判断点是否严格位于矩形内部
// 边界上的点不算在内
func (r Rect) Contains(x, y int) bool {
	return x > r.Left && x < r.Right && y > r.Top && y < r.Bottom
}

// ControlKind 可选控件的类别
type ControlKind int

const (
	// ControlDifficulty 标题画面的难度按钮
	ControlDifficulty ControlKind = iota
	// ControlSpeed 游戏中的风速按钮
	ControlSpeed
)

// SelectableControl 可点击的矩形区域，绑定一个难度或一个风速
type SelectableControl struct {
	Rect       Rect
	Kind       ControlKind
	Label      string
	Difficulty Difficulty // Kind == ControlDifficulty 时有效
	Speed      FanSpeed   // Kind == ControlSpeed 时有效
}

// speedButtonOrder 风速按钮从左到右的顺序
var speedButtonOrder = []FanSpeed{FanSpeedLow, FanSpeedMedium, FanSpeedHigh, FanSpeedOff}

// BuildControls 根据布局常量构建全部控件
//
// 顺序固定：先风速按钮（弱、中、强、关），再难度按钮（简单、普通、困难）。
// 难度按钮的文字来自参数表。
func BuildControls(table TuningTable) []SelectableControl {
	controls := make([]SelectableControl, 0, len(speedButtonOrder)+int(difficultyCount))

	speedX := config.RowStartX(len(speedButtonOrder), config.SpeedButtonWidth, config.SpeedButtonMargin)
	for i, speed := range speedButtonOrder {
		x := speedX + i*(config.SpeedButtonWidth+config.SpeedButtonMargin)
		controls = append(controls, SelectableControl{
			Rect:  NewRect(x, config.SpeedButtonY, config.SpeedButtonWidth, config.SpeedButtonHeight),
			Kind:  ControlSpeed,
			Label: speed.String(),
			Speed: speed,
		})
	}

	diffX := config.RowStartX(int(difficultyCount), config.DifficultyButtonWidth, config.DifficultyButtonMargin)
	for d := DifficultyEasy; d < difficultyCount; d++ {
		x := diffX + int(d)*(config.DifficultyButtonWidth+config.DifficultyButtonMargin)
		controls = append(controls, SelectableControl{
			Rect:       NewRect(x, config.DifficultyButtonY, config.DifficultyButtonWidth, config.DifficultyButtonHeight),
			Kind:       ControlDifficulty,
			Label:      table[d].Label,
			Difficulty: d,
		})
	}

	return controls
}

// FindControl 按列表顺序查找第一个包含该点的指定类别控件
// 线性扫描，控件数量很少
func FindControl(controls []SelectableControl, kind ControlKind, x, y int) (SelectableControl, bool) {
	for _, c := range controls {
		if c.Kind != kind {
			continue
		}
		if c.Rect.Contains(x, y) {
			return c, true
		}
	}
	return SelectableControl{}, false
}

// ControlsOfKind 返回指定类别的控件副本（保持原顺序）
func ControlsOfKind(controls []SelectableControl, kind ControlKind) []SelectableControl {
	out := make([]SelectableControl, 0, len(controls))
	for _, c := range controls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
