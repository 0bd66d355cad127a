package game

import "time"

// Clock 单调时间源（毫秒）
// 每帧采样一次，作为 FrameInput.NowMs 传入 Controller
type Clock interface {
	NowMs() int64
}

// MonotonicClock 基于 time.Since 的实时时钟
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock 创建从当前时刻开始计时的时钟
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// NowMs 返回自创建以来经过的毫秒数
func (c *MonotonicClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// StepClock 每次 Advance 前进固定步长的确定性时钟
// 用于 headless 模拟和测试
type StepClock struct {
	now    int64
	stepMs int64
}

// NewStepClock 创建步长为 stepMs 的时钟
func NewStepClock(stepMs int64) *StepClock {
	return &StepClock{stepMs: stepMs}
}

// NowMs 返回当前时间
func (c *StepClock) NowMs() int64 {
	return c.now
}

// Advance 前进一个步长并返回新时间
func (c *StepClock) Advance() int64 {
	c.now += c.stepMs
	return c.now
}
