package utils

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported 当前平台没有可用的剪贴板
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this platform")

// CopyText 将文本写入系统剪贴板
func CopyText(s string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
