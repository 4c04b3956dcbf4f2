//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 只在 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.clash -o build/android/clash.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Clash.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/decker502/clash/pkg/app"
	"github.com/decker502/clash/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	// 移动端不持久化显示设置
	settings := game.NewSettingsManager(nil)

	gameApp, err := app.NewApp(app.Config{}, settings)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 空导出函数，让 ebitenmobile 识别这个包
func Dummy() {}
