package game

import (
	"fmt"
	"log"

	"github.com/decker502/ecofan/pkg/config"
)

// FrameInput 每帧由表现层提供的输入快照
type FrameInput struct {
	PointerX int   // 指针 X
	PointerY int   // 指针 Y
	Clicked  bool  // 本帧是否刚刚按下
	NowMs    int64 // 单调时间（毫秒）
}

// Frame 每帧交给表现层绘制的只读状态
type Frame struct {
	Phase GamePhase

	// Title: 难度按钮；Playing: 风速按钮；结束阶段为空
	Controls []SelectableControl

	// 以下字段在 Playing 及结束阶段有效
	Difficulty  Difficulty
	Power       float64
	ElapsedMs   int64
	RemainingMs int64
	Speed       FanSpeed
	NowMs       int64 // 最近一次 Tick 的时间，用于叶片动画

	// 结束阶段的消息
	Message MessageID
}

// Controller 游戏状态控制器
//
// 拥有阶段、难度绑定和 RunState，每帧通过 Tick 推进一次。
// 时间由调用方通过 FrameInput.NowMs 注入，Controller 自身不读取时钟。
type Controller struct {
	phase    GamePhase
	table    TuningTable
	controls []SelectableControl

	difficulty Difficulty
	tuning     *Tuning // 进入 Playing 时绑定，之后不再修改
	run        RunState
	startMs    int64
	lastNowMs  int64
}

// NewController 创建处于 Title 阶段的控制器
//
// 参数：
//   - table: 难度参数表
//   - controls: 全部可选控件（通常来自 BuildControls）
func NewController(table TuningTable, controls []SelectableControl) *Controller {
	return &Controller{
		phase:    PhaseTitle,
		table:    table,
		controls: controls,
		run:      newRunState(),
	}
}

// Phase 返回当前阶段
func (c *Controller) Phase() GamePhase {
	return c.phase
}

// RunState 返回当前局状态的副本
func (c *Controller) RunState() RunState {
	return c.run
}

// Difficulty 返回已绑定的难度；未绑定时 ok 为 false
func (c *Controller) Difficulty() (Difficulty, bool) {
	return c.difficulty, c.tuning != nil
}

// Controls 返回全部控件
func (c *Controller) Controls() []SelectableControl {
	return c.controls
}

// Start 绑定难度并进入 Playing
//
// 仅在 Title 阶段有效。重置 RunState（电力 100、时间 0、风速关闭），
// 并以 nowMs 作为本局起始时间。
func (c *Controller) Start(d Difficulty, nowMs int64) error {
	if !canTransition(c.phase, PhasePlaying) {
		return fmt.Errorf("cannot start from phase %s", c.phase)
	}

	tuning, err := c.table.Lookup(d)
	if err != nil {
		return err
	}

	c.difficulty = d
	c.tuning = &tuning
	c.run = newRunState()
	c.startMs = nowMs
	c.lastNowMs = nowMs
	c.setPhase(PhasePlaying)

	log.Printf("[Controller] 难度绑定: %s (时间限制 %dms)", d, tuning.TimeLimitMs)
	return nil
}

// Tick 推进一帧
//
// Title: 点击难度按钮时进入 Playing。
// Playing: 先用上一帧的电力判断胜负（胜利优先），再处理风速按钮，最后结算电力。
// Won / Lost: 不做任何修改。
func (c *Controller) Tick(in FrameInput) error {
	switch c.phase {
	case PhaseTitle:
		if !in.Clicked {
			return nil
		}
		ctrl, ok := FindControl(c.controls, ControlDifficulty, in.PointerX, in.PointerY)
		if !ok {
			return nil
		}
		return c.Start(ctrl.Difficulty, in.NowMs)

	case PhasePlaying:
		return c.tickPlaying(in)
	}
	return nil
}

func (c *Controller) tickPlaying(in FrameInput) error {
	if c.tuning == nil {
		return ErrDifficultyUnbound
	}

	// 1. 时间
	elapsed := in.NowMs - c.startMs
	if elapsed > c.run.ElapsedMs {
		c.run.ElapsedMs = elapsed
	}
	if in.NowMs > c.lastNowMs {
		c.lastNowMs = in.NowMs
	}
	remaining := c.tuning.TimeLimitMs - c.run.ElapsedMs

	// 2. 胜负判定（使用上一帧结算后的电力）
	if c.run.Power <= config.WinPowerThreshold {
		c.setPhase(PhaseWon)
		return nil
	}
	if remaining <= 0 {
		c.setPhase(PhaseLost)
		return nil
	}

	// 3. 风速按钮，每帧最多切换一次
	if in.Clicked {
		if ctrl, ok := FindControl(c.controls, ControlSpeed, in.PointerX, in.PointerY); ok {
			if ctrl.Speed != c.run.Speed {
				log.Printf("[Controller] 风速切换: %s -> %s", c.run.Speed, ctrl.Speed)
			}
			c.run.Speed = ctrl.Speed
		}
	}

	// 4-5. 电力结算与限幅
	c.run.Power = ApplyEconomy(c.run.Speed, *c.tuning, c.run.Power)
	return nil
}

func (c *Controller) setPhase(to GamePhase) {
	from := c.phase
	c.phase = to
	log.Printf("[Controller] 阶段切换: %s -> %s (power=%.3f, elapsed=%dms)", from, to, c.run.Power, c.run.ElapsedMs)
}

// Snapshot 返回当前帧的绘制数据
// 只读，不修改任何状态
func (c *Controller) Snapshot() Frame {
	f := Frame{
		Phase:      c.phase,
		Difficulty: c.difficulty,
		Power:      c.run.Power,
		ElapsedMs:  c.run.ElapsedMs,
		Speed:      c.run.Speed,
		NowMs:      c.lastNowMs,
		Message:    messageForPhase(c.phase),
	}

	if c.tuning != nil {
		f.RemainingMs = c.tuning.TimeLimitMs - c.run.ElapsedMs
		if f.RemainingMs < 0 {
			f.RemainingMs = 0
		}
	}

	switch c.phase {
	case PhaseTitle:
		f.Controls = ControlsOfKind(c.controls, ControlDifficulty)
	case PhasePlaying:
		f.Controls = ControlsOfKind(c.controls, ControlSpeed)
	}
	return f
}
