// Package tracing 提供 GORM 的 Sentry 性能追踪
package tracing

import (
	"camp-signup-system/config"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}
