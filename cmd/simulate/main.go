// simulate 以固定步长 headless 运行一局扇风机挑战并输出 YAML 报告
//
// 用法：
//
//	go run ./cmd/simulate -difficulty hard -speed high
//	go run ./cmd/simulate -difficulty easy -speed medium -frame-ms 16 -config data/difficulty.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/ecofan/pkg/app"
	"github.com/decker502/ecofan/pkg/game"
	"gopkg.in/yaml.v3"
)

// Options 一次模拟的参数
type Options struct {
	Difficulty game.Difficulty
	Speed      game.FanSpeed
	FrameMs    int64
	MaxFrames  int
}

// Report 模拟结果
type Report struct {
	Difficulty string  `yaml:"difficulty"`
	Speed      string  `yaml:"speed"`
	Outcome    string  `yaml:"outcome"`
	Frames     int     `yaml:"frames"`
	FinalPower float64 `yaml:"finalPower"`
	ElapsedMs  int64   `yaml:"elapsedMs"`
	LimitMs    int64   `yaml:"timeLimitMs"`
}

var errNoControl = errors.New("control not found")

func main() {
	var (
		difficulty = flag.String("difficulty", "normal", "难度（easy/normal/hard）")
		speed      = flag.String("speed", "high", "整局使用的风速（off/low/medium/high）")
		frameMs    = flag.Int64("frame-ms", 16, "每帧推进的毫秒数")
		maxFrames  = flag.Int("max-frames", 100000, "最大帧数")
		configPath = flag.String("config", "", "外部难度配置文件（YAML），为空则使用内置难度表")
		verbose    = flag.Bool("verbose", false, "显示详细日志")
	)
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	d, err := game.ParseDifficulty(*difficulty)
	if err != nil {
		fail(err)
	}
	s, err := game.ParseFanSpeed(*speed)
	if err != nil {
		fail(err)
	}
	if *frameMs <= 0 {
		fail(errors.New("-frame-ms must be > 0"))
	}
	if *maxFrames <= 0 {
		fail(errors.New("-max-frames must be > 0"))
	}

	cfg, err := app.LoadDifficultyConfig(*configPath)
	if err != nil {
		fail(err)
	}
	table, err := game.NewTuningTable(cfg)
	if err != nil {
		fail(err)
	}

	report, err := Simulate(table, Options{Difficulty: d, Speed: s, FrameMs: *frameMs, MaxFrames: *maxFrames})
	if err != nil {
		fail(err)
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		fail(err)
	}
	os.Stdout.Write(out)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// Simulate 通过点击控件驱动 Controller，直到胜负已分或达到最大帧数
//
// 第 0 毫秒点击难度按钮，进入 Playing 后的第一帧点击风速按钮。
// Frames 只统计 Playing 阶段的 Tick 次数。
func Simulate(table game.TuningTable, opts Options) (Report, error) {
	controls := game.BuildControls(table)
	controller := game.NewController(table, controls)
	clock := game.NewStepClock(opts.FrameMs)

	diffCtrl, err := findControl(controls, func(c game.SelectableControl) bool {
		return c.Kind == game.ControlDifficulty && c.Difficulty == opts.Difficulty
	})
	if err != nil {
		return Report{}, fmt.Errorf("difficulty %s: %w", opts.Difficulty, err)
	}
	speedCtrl, err := findControl(controls, func(c game.SelectableControl) bool {
		return c.Kind == game.ControlSpeed && c.Speed == opts.Speed
	})
	if err != nil {
		return Report{}, fmt.Errorf("speed %s: %w", opts.Speed, err)
	}

	if err := controller.Tick(click(diffCtrl, clock.NowMs())); err != nil {
		return Report{}, err
	}
	if controller.Phase() != game.PhasePlaying {
		return Report{}, fmt.Errorf("run did not start, phase = %s", controller.Phase())
	}

	frames := 0
	for frames < opts.MaxFrames && !controller.Phase().IsTerminal() {
		now := clock.Advance()
		in := game.FrameInput{NowMs: now}
		if frames == 0 {
			in = click(speedCtrl, now)
		}
		if err := controller.Tick(in); err != nil {
			return Report{}, err
		}
		frames++
	}

	tuning, err := table.Lookup(opts.Difficulty)
	if err != nil {
		return Report{}, err
	}
	f := controller.Snapshot()
	return Report{
		Difficulty: f.Difficulty.String(),
		Speed:      f.Speed.String(),
		Outcome:    f.Phase.String(),
		Frames:     frames,
		FinalPower: f.Power,
		ElapsedMs:  f.ElapsedMs,
		LimitMs:    tuning.TimeLimitMs,
	}, nil
}

func findControl(controls []game.SelectableControl, match func(game.SelectableControl) bool) (game.SelectableControl, error) {
	for _, c := range controls {
		if match(c) {
			return c, nil
		}
	}
	return game.SelectableControl{}, errNoControl
}

func click(c game.SelectableControl, nowMs int64) game.FrameInput {
	return game.FrameInput{
		PointerX: (c.Rect.Left + c.Rect.Right) / 2,
		PointerY: (c.Rect.Top + c.Rect.Bottom) / 2,
		Clicked:  true,
		NowMs:    nowMs,
	}
}
