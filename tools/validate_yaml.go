// validate_yaml 校验难度配置文件
//
// 用法：go run ./tools [path]，默认 data/difficulty.yaml
package main

import (
	"fmt"
	"os"

	"github.com/decker502/ecofan/pkg/config"
	"github.com/decker502/ecofan/pkg/game"
)

func main() {
	path := config.DifficultyConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadDifficultyConfig(path)
	if err != nil {
		fmt.Printf("❌ %s 校验失败: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确: %s\n", path)

	table, err := game.NewTuningTable(cfg)
	if err != nil {
		fmt.Printf("❌ 难度参数表构建失败: %v\n", err)
		os.Exit(1)
	}

	for _, key := range config.DifficultyKeys {
		d, _ := game.ParseDifficulty(key)
		tuning, _ := table.Lookup(d)
		fmt.Printf("✅ %-6s %-8s 时间限制 %5.1fs  风速速率 off=%+.3f low=%+.3f medium=%+.3f high=%+.3f\n",
			key, tuning.Label, float64(tuning.TimeLimitMs)/1000.0,
			tuning.Rate(game.FanSpeedOff), tuning.Rate(game.FanSpeedLow),
			tuning.Rate(game.FanSpeedMedium), tuning.Rate(game.FanSpeedHigh))
	}
}
