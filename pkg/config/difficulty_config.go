package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DifficultyConfigPath 内嵌难度配置文件路径
const DifficultyConfigPath = "data/difficulty.yaml"

// 难度键名（与 YAML 中 difficulties 的键一致）
const (
	DifficultyKeyEasy   = "easy"
	DifficultyKeyNormal = "normal"
	DifficultyKeyHard   = "hard"
)

// DifficultyKeys 按标题画面按钮顺序排列的难度键
var DifficultyKeys = []string{DifficultyKeyEasy, DifficultyKeyNormal, DifficultyKeyHard}

var (
	// ErrMissingDifficulty 表示配置中缺少某个难度条目
	ErrMissingDifficulty = errors.New("difficulty entry missing")
	// ErrInvalidTuning 表示难度参数越界（负速率或非正的时间限制）
	ErrInvalidTuning = errors.New("invalid difficulty tuning")
)

// DifficultyTuning 单个难度的调参数据
// 所有速率单位为"电力百分比 / 帧"
type DifficultyTuning struct {
	Label        string  `yaml:"label"`        // 按钮显示文字，如 "Easy"
	LowDrain     float64 `yaml:"lowDrain"`     // 弱风每帧耗电
	MediumDrain  float64 `yaml:"mediumDrain"`  // 中风每帧耗电
	HighDrain    float64 `yaml:"highDrain"`    // 强风每帧耗电
	RechargeRate float64 `yaml:"rechargeRate"` // 关闭时每帧回充
	TimeLimitMs  int64   `yaml:"timeLimitMs"`  // 限制时间（毫秒）
}

// DifficultyConfig 难度配置文件的顶层结构
type DifficultyConfig struct {
	Difficulties map[string]DifficultyTuning `yaml:"difficulties"`
}

// DefaultDifficultyConfig 返回内置的难度表
// 当配置文件不可用时（如单元测试、headless 工具）使用
func DefaultDifficultyConfig() *DifficultyConfig {
	return &DifficultyConfig{
		Difficulties: map[string]DifficultyTuning{
			DifficultyKeyEasy: {
				Label: "Easy", LowDrain: 0.005, MediumDrain: 0.015, HighDrain: 0.035,
				RechargeRate: 0.001, TimeLimitMs: 60000,
			},
			DifficultyKeyNormal: {
				Label: "Normal", LowDrain: 0.003, MediumDrain: 0.010, HighDrain: 0.025,
				RechargeRate: 0.002, TimeLimitMs: 45000,
			},
			DifficultyKeyHard: {
				Label: "Hard", LowDrain: 0.002, MediumDrain: 0.008, HighDrain: 0.020,
				RechargeRate: 0.003, TimeLimitMs: 30000,
			},
		},
	}
}

// ParseDifficultyConfig 解析 YAML 数据并校验
//
// 参数：
//   - data: YAML 字节数据
//
// 返回：
//   - *DifficultyConfig: 解析后的配置
//   - error: 解析失败或校验失败时返回
func ParseDifficultyConfig(data []byte) (*DifficultyConfig, error) {
	var cfg DifficultyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDifficultyConfig 从磁盘上的 YAML 文件加载难度配置
func LoadDifficultyConfig(filepath string) (*DifficultyConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty config file %s: %w", filepath, err)
	}

	cfg, err := ParseDifficultyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// Validate 校验三个难度都存在且参数合法
func (c *DifficultyConfig) Validate() error {
	for _, key := range DifficultyKeys {
		t, ok := c.Difficulties[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingDifficulty, key)
		}
		for _, r := range []float64{t.LowDrain, t.MediumDrain, t.HighDrain, t.RechargeRate} {
			// NaN 与任何值比较都为 false，必须显式拒绝
			if !(r >= 0) || math.IsInf(r, 0) {
				return fmt.Errorf("%w: %s has a negative or non-finite rate (%v)", ErrInvalidTuning, key, r)
			}
		}
		if t.TimeLimitMs <= 0 {
			return fmt.Errorf("%w: %s timeLimitMs must be positive, got %d", ErrInvalidTuning, key, t.TimeLimitMs)
		}
	}
	return nil
}

// Get 返回指定难度键的参数
func (c *DifficultyConfig) Get(key string) (DifficultyTuning, bool) {
	t, ok := c.Difficulties[key]
	return t, ok
}
