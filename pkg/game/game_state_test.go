package game

import "testing"

// TestGamePhaseTransitions 只允许 Title→Playing、Playing→Won、Playing→Lost
func TestGamePhaseTransitions(t *testing.T) {
	phases := []GamePhase{PhaseTitle, PhasePlaying, PhaseLost, PhaseWon}
	allowed := map[[2]GamePhase]bool{
		{PhaseTitle, PhasePlaying}: true,
		{PhasePlaying, PhaseWon}:   true,
		{PhasePlaying, PhaseLost}:  true,
	}

	for _, from := range phases {
		for _, to := range phases {
			want := allowed[[2]GamePhase{from, to}]
			if got := canTransition(from, to); got != want {
				t.Errorf("canTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

// TestGamePhaseTerminal 结束阶段判定
func TestGamePhaseTerminal(t *testing.T) {
	if PhaseTitle.IsTerminal() || PhasePlaying.IsTerminal() {
		t.Error("Title/Playing should not be terminal")
	}
	if !PhaseWon.IsTerminal() || !PhaseLost.IsTerminal() {
		t.Error("Won/Lost should be terminal")
	}
	if GamePhase(99).String() != "Unknown" {
		t.Errorf("String() of invalid phase = %q", GamePhase(99).String())
	}
}

// TestNewRunState 新的一局从满电、零时间、关闭开始
func TestNewRunState(t *testing.T) {
	rs := newRunState()
	if rs.Power != 100 || rs.ElapsedMs != 0 || rs.Speed != FanSpeedOff {
		t.Errorf("newRunState() = %+v", rs)
	}
}

// TestStepClock 确定性时钟按步长前进
func TestStepClock(t *testing.T) {
	c := NewStepClock(16)
	if c.NowMs() != 0 {
		t.Fatalf("NowMs() = %d, want 0", c.NowMs())
	}
	c.Advance()
	if got := c.Advance(); got != 32 || c.NowMs() != 32 {
		t.Errorf("after two steps NowMs() = %d, want 32", c.NowMs())
	}
}
