package chatmd

import (
	"sync"

	"github.com/jianghao-zhang/chatmd/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
