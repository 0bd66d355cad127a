package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decker502/ecofan/pkg/config"
)

// Difficulty 难度
type Difficulty int

const (
	// DifficultyEasy 简单：耗电快，时间长
	DifficultyEasy Difficulty = iota
	// DifficultyNormal 普通
	DifficultyNormal
	// DifficultyHard 困难：耗电慢，回充快，时间短
	DifficultyHard

	difficultyCount
)

var (
	// ErrUnknownDifficulty 表示难度值超出枚举范围
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	// ErrDifficultyUnbound 表示在未绑定难度参数的情况下推进游戏
	ErrDifficultyUnbound = errors.New("difficulty tuning not bound")
)

// Valid 返回难度是否在枚举范围内
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d < difficultyCount
}

// ConfigKey 返回该难度在 YAML 配置中的键名
func (d Difficulty) ConfigKey() string {
	if !d.Valid() {
		return ""
	}
	return config.DifficultyKeys[d]
}

// String 返回难度名称
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty 将键名（easy/normal/hard，不区分大小写）转换为 Difficulty
func ParseDifficulty(key string) (Difficulty, error) {
	for i, k := range config.DifficultyKeys {
		if strings.EqualFold(k, key) {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, key)
}

// Tuning 一个难度下绑定的经济参数
//
// Rates 以风速为下标：关闭时为正（回充），其余为负（耗电）
type Tuning struct {
	Label       string
	Rates       [fanSpeedCount]float64
	TimeLimitMs int64
}

// Rate 返回指定风速下每帧的电力变化量
func (t Tuning) Rate(speed FanSpeed) float64 {
	if !speed.Valid() {
		return 0
	}
	return t.Rates[speed]
}

// newTuning 将配置条目转换为按风速索引的表
func newTuning(src config.DifficultyTuning) Tuning {
	return Tuning{
		Label: src.Label,
		Rates: [fanSpeedCount]float64{
			FanSpeedOff:    src.RechargeRate,
			FanSpeedLow:    -src.LowDrain,
			FanSpeedMedium: -src.MediumDrain,
			FanSpeedHigh:   -src.HighDrain,
		},
		TimeLimitMs: src.TimeLimitMs,
	}
}

// TuningTable 以难度为下标的参数表
type TuningTable [difficultyCount]Tuning

// NewTuningTable 根据难度配置构建参数表
//
// 参数：
//   - cfg: 已加载的难度配置
//
// 返回：
//   - TuningTable: 参数表
//   - error: 配置缺少条目或参数非法时返回
func NewTuningTable(cfg *config.DifficultyConfig) (TuningTable, error) {
	var table TuningTable
	if cfg == nil {
		return table, fmt.Errorf("nil difficulty config: %w", config.ErrMissingDifficulty)
	}
	if err := cfg.Validate(); err != nil {
		return table, err
	}

	for d := DifficultyEasy; d < difficultyCount; d++ {
		src, _ := cfg.Get(d.ConfigKey())
		t := newTuning(src)
		if t.Label == "" {
			t.Label = d.String()
		}
		table[d] = t
	}
	return table, nil
}

// DefaultTuningTable 返回内置难度表
func DefaultTuningTable() TuningTable {
	table, err := NewTuningTable(config.DefaultDifficultyConfig())
	if err != nil {
		panic(fmt.Sprintf("built-in difficulty table is invalid: %v", err))
	}
	return table
}

// Lookup 返回指定难度的参数
func (t *TuningTable) Lookup(d Difficulty) (Tuning, error) {
	if !d.Valid() {
		return Tuning{}, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return t[d], nil
}
