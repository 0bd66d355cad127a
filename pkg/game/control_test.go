package game

import "testing"

func centerOf(c SelectableControl) (int, int) {
	return (c.Rect.Left + c.Rect.Right) / 2, (c.Rect.Top + c.Rect.Bottom) / 2
}

// TestRectContainsStrict 边界上的点不算在矩形内
func TestRectContainsStrict(t *testing.T) {
	r := NewRect(10, 20, 100, 50) // [10,110] x [20,70]

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 50, 40, true},
		{"left edge", 10, 40, false},
		{"right edge", 110, 40, false},
		{"top edge", 50, 20, false},
		{"bottom edge", 50, 70, false},
		{"just inside corner", 11, 21, true},
		{"just inside far corner", 109, 69, true},
		{"outside", 200, 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", r.Width(), r.Height())
	}
}

// TestBuildControlsLayout 验证控件顺序与位置
func TestBuildControlsLayout(t *testing.T) {
	controls := BuildControls(DefaultTuningTable())
	if len(controls) != 7 {
		t.Fatalf("len(controls) = %d, want 7", len(controls))
	}

	wantSpeeds := []FanSpeed{FanSpeedLow, FanSpeedMedium, FanSpeedHigh, FanSpeedOff}
	speeds := ControlsOfKind(controls, ControlSpeed)
	if len(speeds) != len(wantSpeeds) {
		t.Fatalf("speed controls = %d, want %d", len(speeds), len(wantSpeeds))
	}
	for i, c := range speeds {
		if c.Speed != wantSpeeds[i] {
			t.Errorf("speed control %d = %s, want %s", i, c.Speed, wantSpeeds[i])
		}
		wantLeft := 115 + i*110
		if c.Rect != NewRect(wantLeft, 400, 80, 40) {
			t.Errorf("speed control %d rect = %+v", i, c.Rect)
		}
	}

	diffs := ControlsOfKind(controls, ControlDifficulty)
	wantLabels := []string{"Easy", "Normal", "Hard"}
	for i, c := range diffs {
		if c.Difficulty != Difficulty(i) {
			t.Errorf("difficulty control %d = %s", i, c.Difficulty)
		}
		if c.Label != wantLabels[i] {
			t.Errorf("difficulty control %d label = %q, want %q", i, c.Label, wantLabels[i])
		}
		if c.Rect != NewRect(45+i*200, 250, 150, 50) {
			t.Errorf("difficulty control %d rect = %+v", i, c.Rect)
		}
	}
}

// TestFindControlFiltersByKind 只在指定类别中查找
func TestFindControlFiltersByKind(t *testing.T) {
	controls := BuildControls(DefaultTuningTable())
	easy := ControlsOfKind(controls, ControlDifficulty)[0]
	x, y := centerOf(easy)

	if _, ok := FindControl(controls, ControlSpeed, x, y); ok {
		t.Error("speed lookup should not match a difficulty button")
	}
	got, ok := FindControl(controls, ControlDifficulty, x, y)
	if !ok || got.Difficulty != DifficultyEasy {
		t.Errorf("FindControl() = %+v, %v; want Easy", got, ok)
	}
}

// TestFindControlFirstMatchWins 重叠时返回列表中的第一个
func TestFindControlFirstMatchWins(t *testing.T) {
	controls := []SelectableControl{
		{Rect: NewRect(0, 0, 100, 100), Kind: ControlSpeed, Speed: FanSpeedMedium},
		{Rect: NewRect(50, 50, 100, 100), Kind: ControlSpeed, Speed: FanSpeedHigh},
	}

	got, ok := FindControl(controls, ControlSpeed, 75, 75)
	if !ok {
		t.Fatal("expected a match in the overlap")
	}
	if got.Speed != FanSpeedMedium {
		t.Errorf("got %s, want first control (Medium)", got.Speed)
	}

	got, ok = FindControl(controls, ControlSpeed, 120, 120)
	if !ok || got.Speed != FanSpeedHigh {
		t.Errorf("got %+v, %v; want High", got, ok)
	}
}

// TestFindControlMiss 没有命中时返回 false
func TestFindControlMiss(t *testing.T) {
	controls := BuildControls(DefaultTuningTable())
	if _, ok := FindControl(controls, ControlDifficulty, 0, 0); ok {
		t.Error("expected no match at (0, 0)")
	}
	if _, ok := FindControl(nil, ControlSpeed, 10, 10); ok {
		t.Error("expected no match in empty list")
	}
}
