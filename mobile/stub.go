//go:build !mobile

// 普通桌面构建时的占位文件，ebitenmobile 入口见 mobile.go（-tags mobile）。
package mobile

// Dummy 占位导出函数
func Dummy() {}
