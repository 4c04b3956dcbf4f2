// Package embedded 提供嵌入资源的统一访问接口
//
// 默认平衡数据 data/balance.yaml 随二进制一起嵌入。
// 以 "data/" 开头的路径从嵌入文件系统读取，其余路径从磁盘读取，
// 这样命令行工具可以用外部文件覆盖默认数据。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBalancePath 默认平衡数据在嵌入文件系统中的路径
const DefaultBalancePath = "data/balance.yaml"

//go:embed data
var dataFS embed.FS

// normalize 标准化路径分隔符并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// IsEmbedded 路径是否指向嵌入文件系统
func IsEmbedded(path string) bool {
	return strings.HasPrefix(normalize(path), "data/")
}

// ReadFile 读取文件内容
// "data/" 前缀的路径从嵌入文件系统读取，其他路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty resource path")
	}
	if IsEmbedded(path) {
		return fs.ReadFile(dataFS, normalize(path))
	}
	return os.ReadFile(path)
}
