// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析参数和启动窗口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/decker502/ecofan/pkg/config"
	"github.com/decker502/ecofan/pkg/embedded"
	"github.com/decker502/ecofan/pkg/game"
	"github.com/decker502/ecofan/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DifficultyConfigPath 外部难度配置文件路径，为空则使用内嵌的 data/difficulty.yaml
	DifficultyConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内嵌配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	difficultyConfig, err := LoadDifficultyConfig(cfg.DifficultyConfigPath)
	if err != nil {
		return nil, fmt.Errorf("难度配置加载失败: %w", err)
	}

	table, err := game.NewTuningTable(difficultyConfig)
	if err != nil {
		return nil, fmt.Errorf("难度参数表构建失败: %w", err)
	}

	controller := game.NewController(table, game.BuildControls(table))
	fanScene, err := scenes.NewFanScene(controller, game.NewMonotonicClock())
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(fanScene)
	log.Printf("[App] 初始化完成")

	return &App{
		sceneManager: sceneManager,
	}, nil
}

// LoadDifficultyConfig 按优先级加载难度配置
//
// 优先级：
//  1. path 非空时读取外部 YAML 文件
//  2. 内嵌的 data/difficulty.yaml
//  3. 内嵌数据未初始化时使用内置默认值
func LoadDifficultyConfig(path string) (*config.DifficultyConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载外部难度配置: %s", path)
		return config.LoadDifficultyConfig(path)
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 内嵌数据未初始化，使用内置难度表")
		return config.DefaultDifficultyConfig(), nil
	}
	if !embedded.Exists(config.DifficultyConfigPath) {
		return nil, fmt.Errorf("embedded %s: %w", config.DifficultyConfigPath, fs.ErrNotExist)
	}

	data, err := embedded.ReadFile(config.DifficultyConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", config.DifficultyConfigPath, err)
	}

	cfg, err := config.ParseDifficultyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", config.DifficultyConfigPath, err)
	}
	log.Printf("[Config] 加载内嵌难度配置: %s", config.DifficultyConfigPath)
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（固定为每秒 60 次）
func (a *App) Update() error {
	// ESC 退出（正常结束，退出码 0）
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] ESC pressed, exiting")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(config.GameTPS)
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
