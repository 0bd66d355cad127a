//go:build mobile

package utils

// IsMobile 移动端编译时恒为 true，结束画面不显示键盘提示
func IsMobile() bool {
	return true
}
