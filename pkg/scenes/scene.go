// Package scenes 实现基于 Ebitengine 的桌面表现层
//
// 场景只读取 match.Controller 的快照进行绘制，
// 唯一修改模拟状态的途径是 RequestPlayerSpawn。
package scenes

import (
	"github.com/decker502/clash/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可独立更新和绘制的场景
type Scene interface {
	// Update 按经过的时间（秒）更新场景
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// SceneManager 管理当前活动场景
// 同一时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建没有活动场景的管理器，用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	logger.Named("SceneManager").Debug("scene switched")
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
