package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/ecofan/pkg/game"
	"github.com/decker502/ecofan/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 字号
const (
	titleFontSize = 28
	bodyFontSize  = 16
)

// FanScene 扇风机游戏的唯一场景
//
// 负责每帧采样输入、驱动 game.Controller、根据 Frame 绘制当前阶段。
// 不包含任何游戏规则。
type FanScene struct {
	controller *game.Controller
	clock      game.Clock
	input      utils.InputSource

	copyPressed func() bool        // 结束画面复制结果的按键检测
	copyText    func(string) error // 剪贴板写入

	titleFont *text.GoTextFace
	bodyFont  *text.GoTextFace

	statusText string // 结束画面的提示（如复制结果）
}

// NewFanScene 创建场景
//
// 参数：
//   - controller: 处于 Title 阶段的控制器
//   - clock: 单调时钟，每帧采样一次
//
// 返回：
//   - *FanScene: 场景实例
//   - error: 字体加载失败时返回
func NewFanScene(controller *game.Controller, clock game.Clock) (*FanScene, error) {
	if controller == nil {
		return nil, errors.New("fan scene requires a controller")
	}
	if clock == nil {
		clock = game.NewMonotonicClock()
	}

	titleFont, err := utils.LoadUIFace(titleFontSize)
	if err != nil {
		return nil, fmt.Errorf("title font: %w", err)
	}
	bodyFont, err := utils.LoadUIFace(bodyFontSize)
	if err != nil {
		return nil, fmt.Errorf("body font: %w", err)
	}

	return &FanScene{
		controller: controller,
		clock:      clock,
		input:      utils.GetInputState,
		copyPressed: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyC)
		},
		copyText:  utils.CopyText,
		titleFont: titleFont,
		bodyFont:  bodyFont,
	}, nil
}

// SetInputSource 替换输入来源（测试或回放使用）
func (s *FanScene) SetInputSource(src utils.InputSource) {
	s.input = src
}

// SetCopyHandler 替换结束画面的复制按键检测与剪贴板写入
func (s *FanScene) SetCopyHandler(pressed func() bool, write func(string) error) {
	s.copyPressed = pressed
	s.copyText = write
}

// Controller 返回场景驱动的控制器
func (s *FanScene) Controller() *game.Controller {
	return s.controller
}

// Update 采样输入和时间，推进控制器一帧
func (s *FanScene) Update(deltaTime float64) error {
	in := s.input()
	frame := game.FrameInput{
		PointerX: in.X,
		PointerY: in.Y,
		Clicked:  in.JustPressed,
		NowMs:    s.clock.NowMs(),
	}

	if err := s.controller.Tick(frame); err != nil {
		return fmt.Errorf("fan scene tick: %w", err)
	}

	if s.controller.Phase().IsTerminal() && s.copyPressed != nil && s.copyPressed() {
		s.copySummary()
	}
	return nil
}

func (s *FanScene) copySummary() {
	summary := RunSummary(s.controller.Snapshot())
	if s.copyText == nil {
		return
	}
	if err := s.copyText(summary); err != nil {
		log.Printf("[FanScene] 复制结果失败: %v", err)
		s.statusText = "Clipboard unavailable"
		return
	}
	log.Printf("[FanScene] 已复制结果: %s", summary)
	s.statusText = "Result copied to clipboard"
}

// Draw 绘制当前阶段
// 只读取 Snapshot，不修改控制器状态
func (s *FanScene) Draw(screen *ebiten.Image) {
	frame := s.controller.Snapshot()

	switch frame.Phase {
	case game.PhaseTitle:
		s.drawTitle(screen, frame)
	case game.PhasePlaying:
		s.drawPlaying(screen, frame)
	case game.PhaseWon, game.PhaseLost:
		s.drawResult(screen, frame)
	}
}

// RunSummary 返回一局结果的单行文本
func RunSummary(f game.Frame) string {
	result := "in progress"
	switch f.Message {
	case game.MessageWon:
		result = "cleared"
	case game.MessageLost:
		result = "failed"
	}
	return fmt.Sprintf("Eco Fan Challenge | %s | %s | power %.1f%% | %.1fs",
		f.Difficulty, result, f.Power, float64(f.ElapsedMs)/1000.0)
}
