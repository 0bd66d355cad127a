package utils

import (
	"strings"
	"testing"
)

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	font, err := LoadUIFace(16)
	if err != nil {
		t.Fatalf("LoadUIFace() error = %v", err)
	}

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{
			name:      "短文本不换行",
			input:     "Short text",
			maxWidth:  1000,
			expectMin: 1,
		},
		{
			name:      "长文本自动换行",
			input:     "Rule: bring the power down to 40% or below (use at least 60%) before the time runs out.",
			maxWidth:  200,
			expectMin: 2,
		},
		{
			name:      "空文本",
			input:     "",
			maxWidth:  100,
			expectMin: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("got %d lines, want at least %d: %q", len(lines), tt.expectMin, lines)
			}

			// 换行不应丢失单词
			if tt.input != "" {
				joined := strings.Join(lines, " ")
				if strings.Join(strings.Fields(joined), " ") != strings.Join(strings.Fields(tt.input), " ") {
					t.Errorf("wrapped text lost content: %q", lines)
				}
			}

			// 除单词本身超宽外，每行都不超过最大宽度
			for _, line := range lines {
				if MeasureText(line, font) > tt.maxWidth && strings.Contains(line, " ") {
					t.Errorf("line %q exceeds %v", line, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapTextNilFont 没有字体时原样返回
func TestWrapTextNilFont(t *testing.T) {
	lines := WrapText("anything at all", nil, 10)
	if len(lines) != 1 || lines[0] != "anything at all" {
		t.Errorf("WrapText(nil font) = %q", lines)
	}
}

// TestCenteredTextX 居中位置随文本变宽而左移
func TestCenteredTextX(t *testing.T) {
	font, err := LoadUIFace(16)
	if err != nil {
		t.Fatalf("LoadUIFace() error = %v", err)
	}

	if got := CenteredTextX("", font, 640); got != 320 {
		t.Errorf("CenteredTextX(empty) = %v, want 320", got)
	}
	short := CenteredTextX("Hi", font, 640)
	long := CenteredTextX("Hello, fan enthusiasts", font, 640)
	if !(long < short && short < 320) {
		t.Errorf("expected long (%v) < short (%v) < 320", long, short)
	}
}
