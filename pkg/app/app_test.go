package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/ecofan/pkg/config"
	"github.com/decker502/ecofan/pkg/embedded"
)

// TestLoadDifficultyConfigDefault 内嵌数据未初始化时使用内置难度表
func TestLoadDifficultyConfigDefault(t *testing.T) {
	embedded.Init(nil)

	cfg, err := LoadDifficultyConfig("")
	if err != nil {
		t.Fatalf("LoadDifficultyConfig() error = %v", err)
	}
	easy, ok := cfg.Get(config.DifficultyKeyEasy)
	if !ok || easy.TimeLimitMs != 60000 {
		t.Errorf("easy = %+v, %v; want built-in table", easy, ok)
	}
}

// TestLoadDifficultyConfigEmbedded 读取内嵌的 YAML
func TestLoadDifficultyConfigEmbedded(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", config.DifficultyConfigPath))
	if err != nil {
		t.Fatalf("failed to read repo difficulty.yaml: %v", err)
	}
	embedded.Init(fstest.MapFS{config.DifficultyConfigPath: {Data: data}})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadDifficultyConfig("")
	if err != nil {
		t.Fatalf("LoadDifficultyConfig() error = %v", err)
	}

	want := config.DefaultDifficultyConfig()
	for _, key := range config.DifficultyKeys {
		got, _ := cfg.Get(key)
		exp, _ := want.Get(key)
		if got != exp {
			t.Errorf("%s = %+v, want %+v", key, got, exp)
		}
	}
}

// TestLoadDifficultyConfigEmbeddedMissing 内嵌数据缺少文件时报错
func TestLoadDifficultyConfigEmbeddedMissing(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	t.Cleanup(func() { embedded.Init(nil) })

	if _, err := LoadDifficultyConfig(""); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadDifficultyConfig() error = %v, want fs.ErrNotExist", err)
	}
}

// TestLoadDifficultyConfigExternalFile 外部文件优先
func TestLoadDifficultyConfigExternalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `difficulties:
  easy: {label: Breezy, lowDrain: 0.1, mediumDrain: 0.2, highDrain: 0.3, rechargeRate: 0.01, timeLimitMs: 5000}
  normal: {label: Normal, lowDrain: 0.1, mediumDrain: 0.2, highDrain: 0.3, rechargeRate: 0.01, timeLimitMs: 5000}
  hard: {label: Hard, lowDrain: 0.1, mediumDrain: 0.2, highDrain: 0.3, rechargeRate: 0.01, timeLimitMs: 5000}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadDifficultyConfig(path)
	if err != nil {
		t.Fatalf("LoadDifficultyConfig() error = %v", err)
	}
	if easy, _ := cfg.Get(config.DifficultyKeyEasy); easy.Label != "Breezy" {
		t.Errorf("easy.Label = %q, want Breezy", easy.Label)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("difficulties:\n  easy: {timeLimitMs: 1}\n"), 0o644)
	if _, err := LoadDifficultyConfig(bad); !errors.Is(err, config.ErrMissingDifficulty) {
		t.Errorf("LoadDifficultyConfig(bad) error = %v, want ErrMissingDifficulty", err)
	}
}

// TestAppLayout 逻辑屏幕尺寸固定
func TestAppLayout(t *testing.T) {
	a := &App{}
	w, h := a.Layout(1920, 1080)
	if w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("Layout() = %dx%d, want %dx%d", w, h, config.GameWindowWidth, config.GameWindowHeight)
	}
}
