package config

// 布局配置常量
// 本文件定义了画面布局参数，包括窗口尺寸、按钮位置、扇风机和电力条的锚点
// 所有坐标均为逻辑屏幕坐标（左上角为原点）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 640
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 480
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Eco Fan Challenge"
	// GameTPS 每秒更新次数；耗电参数按帧计算，因此固定为 60
	GameTPS = 60
)

// Difficulty Buttons (标题画面难度按钮)
const (
	DifficultyButtonWidth  = 150
	DifficultyButtonHeight = 50
	DifficultyButtonMargin = 50
	DifficultyButtonY      = 250
)

// Speed Buttons (游戏中风速按钮)
const (
	SpeedButtonWidth  = 80
	SpeedButtonHeight = 40
	SpeedButtonMargin = 30
	SpeedButtonY      = 400
)

// Fan & HUD (扇风机与电力条)
const (
	// FanDrawWidth 扇风机绘制区域宽度，用于水平居中
	FanDrawWidth = 200
	// FanPosY 扇风机绘制区域顶部 Y
	FanPosY = 100

	// PowerBarWidth 电力条宽度（满电 100 对应 200 像素）
	PowerBarWidth = 200
	// PowerBarHeight 电力条高度
	PowerBarHeight = 20
	// PowerBarPosY 电力条顶部 Y
	PowerBarPosY = 30

	// TimerOffsetFromRight 剩余时间文字距右边缘的距离
	TimerOffsetFromRight = 150
)

// Rule Constants (规则常量)
const (
	// InitialPower 进入游戏时的电力
	InitialPower = 100.0
	// MaxPower 电力上限
	MaxPower = 100.0
	// MinPower 电力下限
	MinPower = 0.0
	// WinPowerThreshold 电力降到此值及以下即胜利
	WinPowerThreshold = 40.0
)

// RowStartX 计算一排等宽按钮水平居中时的起始 X
//
// 参数：
//   - count: 按钮数量
//   - width: 单个按钮宽度
//   - margin: 按钮间距
//
// 返回：
//   - 第一个按钮的左边缘 X
func RowStartX(count, width, margin int) int {
	if count <= 0 {
		return GameWindowWidth / 2
	}
	total := width*count + margin*(count-1)
	return (GameWindowWidth - total) / 2
}

// CenteredX 返回宽度为 width 的元素水平居中时的左边缘 X
func CenteredX(width int) int {
	return (GameWindowWidth - width) / 2
}
