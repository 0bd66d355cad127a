package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/decker502/ecofan/pkg/app"
	"github.com/decker502/ecofan/pkg/config"
	"github.com/decker502/ecofan/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "外部难度配置文件（YAML），为空则使用内嵌配置")
	fullscreen = flag.Bool("fullscreen", false, "全屏启动（F11 切换）")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:              *verbose,
		DifficultyConfigPath: *configPath,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会丢弃 log 输出，错误需要直接写到 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetTPS(config.GameTPS)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		// ESC 退出属于正常结束
		if errors.Is(err, ebiten.Termination) {
			return
		}
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
