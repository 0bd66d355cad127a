package utils

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	uiFontOnce   sync.Once
	uiFontSource *text.GoTextFaceSource
	uiFontErr    error
)

// LoadUIFace 返回指定字号的界面字体
// 字体来自内嵌的 Go Regular，无需资源文件；字体源只解析一次
func LoadUIFace(size float64) (*text.GoTextFace, error) {
	uiFontOnce.Do(func() {
		uiFontSource, uiFontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if uiFontErr == nil {
			log.Printf("[Font] UI font: Go Regular (embedded)")
		}
	})
	if uiFontErr != nil {
		return nil, fmt.Errorf("failed to load UI font: %w", uiFontErr)
	}

	return &text.GoTextFace{
		Source: uiFontSource,
		Size:   size,
	}, nil
}
