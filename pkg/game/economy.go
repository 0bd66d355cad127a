package game

import (
	"math"

	"github.com/decker502/ecofan/pkg/config"
)

// ApplyEconomy 计算一帧之后的电力
//
// 关闭时按回充速率增加（上限 100），其他风速按对应耗电量减少，
// 结果始终被限制在 [0, 100]。纯函数，不修改任何状态。
func ApplyEconomy(speed FanSpeed, tuning Tuning, power float64) float64 {
	return ClampPower(power + tuning.Rate(speed))
}

// ClampPower 将电力限制在 [MinPower, MaxPower]
// NaN 视为耗尽
func ClampPower(power float64) float64 {
	if math.IsNaN(power) {
		return config.MinPower
	}
	if power > config.MaxPower {
		return config.MaxPower
	}
	if power < config.MinPower {
		return config.MinPower
	}
	return power
}
