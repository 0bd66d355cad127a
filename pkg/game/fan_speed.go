package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFanSpeed 风速名无法识别
var ErrUnknownFanSpeed = errors.New("unknown fan speed")

// FanSpeed 扇风机风速
type FanSpeed int

const (
	// FanSpeedOff 关闭（回充电力）
	FanSpeedOff FanSpeed = iota
	// FanSpeedLow 弱
	FanSpeedLow
	// FanSpeedMedium 中
	FanSpeedMedium
	// FanSpeedHigh 强
	FanSpeedHigh

	fanSpeedCount
)

var fanSpeedNames = [fanSpeedCount]string{
	FanSpeedOff:    "Off",
	FanSpeedLow:    "Low",
	FanSpeedMedium: "Medium",
	FanSpeedHigh:   "High",
}

// rotorAngularSpeed 每种风速下叶片的角速度（弧度 / 毫秒）
var rotorAngularSpeed = [fanSpeedCount]float64{
	FanSpeedOff:    0,
	FanSpeedLow:    0.01,
	FanSpeedMedium: 0.03,
	FanSpeedHigh:   0.05,
}

// Valid 返回风速是否在枚举范围内
func (s FanSpeed) Valid() bool {
	return s >= FanSpeedOff && s < fanSpeedCount
}

// String 返回风速显示名
func (s FanSpeed) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return fanSpeedNames[s]
}

// RotorAngle 返回叶片在 timeMs 时刻的角度偏移（弧度）
// 关闭时恒为 0
func RotorAngle(speed FanSpeed, timeMs int64) float64 {
	if !speed.Valid() {
		return 0
	}
	return float64(timeMs) * rotorAngularSpeed[speed]
}

// ParseFanSpeed 将风速名（off/low/medium/high，不区分大小写）转换为 FanSpeed
func ParseFanSpeed(name string) (FanSpeed, error) {
	for i, n := range fanSpeedNames {
		if strings.EqualFold(n, name) {
			return FanSpeed(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFanSpeed, name)
}
