package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/ecofan/pkg/config"
	"github.com/decker502/ecofan/pkg/game"
	"github.com/decker502/ecofan/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 画面文字
const (
	titleText      = "Eco Fan Challenge"
	subtitleText   = "Choose a difficulty"
	ruleText       = "Rule: bring the power down to 40% or below (use at least 60%) before the time runs out."
	wonText        = "Cleared! You hit the power-saving target."
	lostText       = "Game over: the target was not reached in time."
	exitHintText   = "Press ESC to exit"
	copyHintText   = "Press C to copy the result"
	ruleTextMargin = 20.0
)

var (
	colorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorRule       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorButton     = color.RGBA{R: 0, G: 100, B: 200, A: 255}
	colorBarFrame   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorBarFill    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorFanBody    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorFanBlade   = color.RGBA{R: 100, G: 100, B: 200, A: 255}
	colorWon        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorLost       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorStatus     = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	colorBackground = color.Black
)

// whitePixel 扇叶三角形的源图（延迟创建）
var whitePixel *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// drawTitle 标题画面：标题、说明、难度按钮、规则
func (s *FanScene) drawTitle(screen *ebiten.Image, f game.Frame) {
	screen.Fill(colorBackground)

	s.drawCentered(screen, titleText, s.titleFont, 140, colorText)
	s.drawCentered(screen, subtitleText, s.bodyFont, 200, colorText)

	for _, c := range f.Controls {
		s.drawButton(screen, c)
	}

	lines := utils.WrapText(ruleText, s.bodyFont, config.GameWindowWidth-2*ruleTextMargin)
	y := 350.0
	for _, line := range lines {
		s.drawCentered(screen, line, s.bodyFont, y, colorRule)
		y += bodyFontSize + 6
	}
}

// drawPlaying 游戏画面：电力条、剩余时间、风速、扇风机、风速按钮
func (s *FanScene) drawPlaying(screen *ebiten.Image, f game.Frame) {
	screen.Fill(colorBackground)

	barX := float32(config.CenteredX(config.PowerBarWidth))
	barY := float32(config.PowerBarPosY)

	// 1. 电力条（100 电力 = 200 像素）
	vector.StrokeRect(screen, barX, barY, config.PowerBarWidth, config.PowerBarHeight, 1, colorBarFrame, false)
	fill := float32(f.Power / config.MaxPower * config.PowerBarWidth)
	if fill > 0 {
		vector.FillRect(screen, barX, barY, fill, config.PowerBarHeight, colorBarFill, false)
	}

	// 2. 数值
	s.drawText(screen, fmt.Sprintf("Power: %.1f", f.Power), s.bodyFont, float64(barX), float64(barY)+25, colorText)
	s.drawText(screen, fmt.Sprintf("Time: %.1fs", float64(f.RemainingMs)/1000.0), s.bodyFont,
		config.GameWindowWidth-config.TimerOffsetFromRight, float64(barY), colorText)
	s.drawText(screen, "Fan speed: "+f.Speed.String(), s.bodyFont, float64(barX), float64(barY)+50, colorText)

	// 3. 扇风机
	drawFan(screen, float32(config.CenteredX(config.FanDrawWidth)), config.FanPosY, f.Speed, f.NowMs)

	// 4. 风速按钮
	for _, c := range f.Controls {
		s.drawButton(screen, c)
	}
}

// drawResult 结束画面：结果消息、结果摘要，桌面端另有退出和复制提示
func (s *FanScene) drawResult(screen *ebiten.Image, f game.Frame) {
	screen.Fill(colorBackground)

	msg, clr := lostText, colorLost
	if f.Message == game.MessageWon {
		msg, clr = wonText, colorWon
	}

	s.drawCentered(screen, msg, s.bodyFont, 250, clr)
	s.drawCentered(screen, RunSummary(f), s.bodyFont, 350, colorStatus)

	// 移动端没有键盘，不显示按键提示
	if !utils.IsMobile() {
		s.drawCentered(screen, exitHintText, s.bodyFont, 300, colorText)
		s.drawCentered(screen, copyHintText, s.bodyFont, 380, colorStatus)
	}
	if s.statusText != "" {
		s.drawCentered(screen, s.statusText, s.bodyFont, 410, colorStatus)
	}
}

// drawButton 绘制一个可选控件（填充矩形 + 居中文字）
func (s *FanScene) drawButton(screen *ebiten.Image, c game.SelectableControl) {
	r := c.Rect
	vector.FillRect(screen, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), colorButton, false)

	labelX := float64(r.Left) + (float64(r.Width())-utils.MeasureText(c.Label, s.bodyFont))/2
	labelY := float64(r.Top) + (float64(r.Height())-bodyFontSize)/2
	s.drawText(screen, c.Label, s.bodyFont, labelX, labelY, colorText)
}

func (s *FanScene) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, y float64, clr color.Color) {
	x := utils.CenteredTextX(str, face, config.GameWindowWidth)
	s.drawText(screen, str, face, x, y, clr)
}

func (s *FanScene) drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawFan 绘制扇风机（x, y 为 200 像素宽绘制区域的左上角）
// 关闭时不绘制扇叶
func drawFan(screen *ebiten.Image, x, y float32, speed game.FanSpeed, nowMs int64) {
	// 底座与支柱
	vector.FillRect(screen, x+50, y+250, 100, 30, colorFanBody, false)
	vector.FillRect(screen, x+90, y+110, 20, 140, colorFanBody, false)

	// 电机与护罩
	headX, headY := x+100, y+100
	vector.FillCircle(screen, headX, headY, 40, colorFanBody, true)
	vector.StrokeCircle(screen, headX, headY, 70, 1, colorFanBody, true)

	if speed == game.FanSpeedOff {
		return
	}

	blades := utils.BladeTriangles(float64(headX), float64(headY), game.RotorAngle(speed, nowMs))
	for _, blade := range blades {
		drawTriangle(screen, blade, colorFanBlade)
	}
}

func drawTriangle(screen *ebiten.Image, pts [3]utils.Point, clr color.RGBA) {
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage(), op)
}
