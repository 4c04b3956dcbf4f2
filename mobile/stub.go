//go:build !mobile

// Package mobile 提供 ebitenmobile 绑定入口，非移动端构建时为空包
package mobile
