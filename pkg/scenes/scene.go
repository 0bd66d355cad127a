package scenes

import (
	"github.com/decker502/ecofan/pkg/game"
)

// Scene 场景接口（game.Scene 的别名），由 game.SceneManager 驱动
type Scene = game.Scene

var _ Scene = (*FanScene)(nil)
