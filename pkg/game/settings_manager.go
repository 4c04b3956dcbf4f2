package game

import (
	"fmt"

	"github.com/decker502/clash/pkg/logger"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DisplaySettings 桌面客户端的显示偏好
// 只保存界面偏好，对局状态从不持久化
type DisplaySettings struct {
	Fullscreen        bool `yaml:"fullscreen"`        // 启动时是否全屏
	ShowRanges        bool `yaml:"showRanges"`        // 是否绘制攻击范围
	ShowHealthNumbers bool `yaml:"showHealthNumbers"` // 是否在血条上方显示数值
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DisplaySettings {
	return &DisplaySettings{
		Fullscreen:        false,
		ShowRanges:        false,
		ShowHealthNumbers: true,
	}
}

// SettingsManager 设置管理器
// 负责显示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DisplaySettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，记录警告后使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		logger.Log.Warn("failed to load settings, using defaults", zap.Error(err))
	}

	return sm
}

// Load 从 gdata 加载设置
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	logger.Log.Debug("settings loaded")
	return nil
}

// Save 保存设置到 gdata
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logger.Log.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// ToggleFullscreen 切换全屏并返回新值
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) ToggleFullscreen() bool {
	sm.settings.Fullscreen = !sm.settings.Fullscreen
	return sm.settings.Fullscreen
}

// ToggleShowRanges 切换攻击范围显示并返回新值
func (sm *SettingsManager) ToggleShowRanges() bool {
	sm.settings.ShowRanges = !sm.settings.ShowRanges
	return sm.settings.ShowRanges
}

// ToggleShowHealthNumbers 切换血量数值显示并返回新值
func (sm *SettingsManager) ToggleShowHealthNumbers() bool {
	sm.settings.ShowHealthNumbers = !sm.settings.ShowHealthNumbers
	return sm.settings.ShowHealthNumbers
}
