package game

import (
	"math"
	"testing"
)

// TestApplyEconomyPerSpeed 验证每种风速的单帧电力变化
func TestApplyEconomyPerSpeed(t *testing.T) {
	table := DefaultTuningTable()
	easy := table[DifficultyEasy]

	tests := []struct {
		name  string
		speed FanSpeed
		power float64
		want  float64
	}{
		{"off recharges", FanSpeedOff, 50, 50.001},
		{"off capped at 100", FanSpeedOff, 99.9995, 100},
		{"low drains", FanSpeedLow, 50, 49.995},
		{"medium drains", FanSpeedMedium, 50, 49.985},
		{"high drains", FanSpeedHigh, 50, 49.965},
		{"high floored at 0", FanSpeedHigh, 0.01, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyEconomy(tt.speed, easy, tt.power)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ApplyEconomy(%s, easy, %v) = %v, want %v", tt.speed, tt.power, got, tt.want)
			}
		})
	}
}

// TestApplyEconomyStaysInRange 验证任意起始电力经任意结算后仍在 [0, 100]
func TestApplyEconomyStaysInRange(t *testing.T) {
	table := DefaultTuningTable()
	for d := DifficultyEasy; d < difficultyCount; d++ {
		for s := FanSpeedOff; s < fanSpeedCount; s++ {
			for p := 0.0; p <= 100.0; p += 0.5 {
				got := ApplyEconomy(s, table[d], p)
				if got < 0 || got > 100 {
					t.Fatalf("ApplyEconomy(%s, %s, %v) = %v out of range", s, d, p, got)
				}
			}
			if got := ApplyEconomy(s, table[d], 0); got < 0 {
				t.Errorf("lower bound violated for %s/%s: %v", d, s, got)
			}
			if got := ApplyEconomy(s, table[d], 100); got > 100 {
				t.Errorf("upper bound violated for %s/%s: %v", d, s, got)
			}
		}
	}
}

// TestApplyEconomyRechargeFromFull 简单难度关闭 N 帧后电力为 min(100, 100 + N*0.001)
func TestApplyEconomyRechargeFromFull(t *testing.T) {
	easy := DefaultTuningTable()[DifficultyEasy]
	power := 100.0
	const frames = 500
	for i := 0; i < frames; i++ {
		power = ApplyEconomy(FanSpeedOff, easy, power)
	}
	want := math.Min(100, 100+frames*0.001)
	if power != want {
		t.Errorf("power after %d frames = %v, want %v", frames, power, want)
	}
}

// TestApplyEconomyRechargeAccumulates 验证回充随帧线性累积
func TestApplyEconomyRechargeAccumulates(t *testing.T) {
	hard := DefaultTuningTable()[DifficultyHard]
	power := 60.0
	for i := 0; i < 1000; i++ {
		power = ApplyEconomy(FanSpeedOff, hard, power)
	}
	if math.Abs(power-63.0) > 1e-6 {
		t.Errorf("power = %v, want ~63.0", power)
	}
}

// TestClampPower 验证限幅两端
func TestClampPower(t *testing.T) {
	if got := ClampPower(-5); got != 0 {
		t.Errorf("ClampPower(-5) = %v, want 0", got)
	}
	if got := ClampPower(105); got != 100 {
		t.Errorf("ClampPower(105) = %v, want 100", got)
	}
	if got := ClampPower(42.5); got != 42.5 {
		t.Errorf("ClampPower(42.5) = %v, want 42.5", got)
	}
}

// TestClampPowerNaN NaN 电力被限制为 0，不会离开 [0, 100]
func TestClampPowerNaN(t *testing.T) {
	if got := ClampPower(math.NaN()); got != 0 {
		t.Errorf("ClampPower(NaN) = %v, want 0", got)
	}

	easy := DefaultTuningTable()[DifficultyEasy]
	easy.Rates[FanSpeedLow] = math.NaN()
	if got := ApplyEconomy(FanSpeedLow, easy, 100); math.IsNaN(got) || got < 0 || got > 100 {
		t.Errorf("ApplyEconomy() with NaN rate = %v, want value in [0, 100]", got)
	}
}
