package utils

import "math"

// 扇叶几何参数
const (
	// BladeCount 扇叶数量
	BladeCount = 3
	// BladeInnerRadius 扇叶两个根部顶点到轴心的距离
	BladeInnerRadius = 60.0
	// BladeTipRadius 扇叶尖端到轴心的距离
	BladeTipRadius = 70.0
	// BladeHalfSpread 扇叶根部两个顶点相对中心线的角度偏移（弧度）
	BladeHalfSpread = 0.1
)

// Point 二维坐标点
type Point struct {
	X, Y float64
}

// BladeTriangles 计算三片扇叶的三角形顶点
//
// 参数：
//   - cx, cy: 轴心坐标
//   - angleOffset: 旋转偏移（弧度），通常来自 game.RotorAngle
//
// 返回：
//   - 每片扇叶的三个顶点，扇叶之间相隔 120°
func BladeTriangles(cx, cy, angleOffset float64) [BladeCount][3]Point {
	var blades [BladeCount][3]Point
	for i := 0; i < BladeCount; i++ {
		angle := (2*math.Pi/BladeCount)*float64(i) + angleOffset
		blades[i] = [3]Point{
			polar(cx, cy, BladeInnerRadius, angle-BladeHalfSpread),
			polar(cx, cy, BladeInnerRadius, angle+BladeHalfSpread),
			polar(cx, cy, BladeTipRadius, angle),
		}
	}
	return blades
}

func polar(cx, cy, r, angle float64) Point {
	return Point{X: cx + math.Cos(angle)*r, Y: cy + math.Sin(angle)*r}
}
