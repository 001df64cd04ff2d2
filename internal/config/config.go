// Package config 提供签名节点的内部配置
//
// config 包负责：
// - 定义内部配置结构
// - 提供默认值
// - 配置校验
// - 把配置分发给各 Fx 模块
package config

import (
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
)

// Config 内部配置结构
type Config struct {
	// Identity 身份配置
	Identity IdentityConfig

	// Log 日志配置
	Log LogConfig
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Identity: DefaultIdentityConfig(),
		Log:      DefaultLogConfig(),
	}
}

// ============================================================================
//                              身份配置
// ============================================================================

// IdentityConfig 身份配置
type IdentityConfig struct {
	// PrivateKey 注入的 RSA-2048 私钥
	// 为空时按 AutoCreate 决定是否生成临时密钥
	PrivateKey *crypto.RSAPrivateKey

	// AutoCreate 未注入私钥时生成临时身份
	AutoCreate bool

	// FailFast 生成或签名失败时 panic
	FailFast bool
}

// DefaultIdentityConfig 默认身份配置
func DefaultIdentityConfig() IdentityConfig {
	return IdentityConfig{
		AutoCreate: true,
		FailFast:   false,
	}
}

// ============================================================================
//                              日志配置
// ============================================================================

// IdentitySubsystem identity 模块的日志子系统名
const IdentitySubsystem = "identity"

// LogConfig 日志配置
type LogConfig struct {
	// Level identity 子系统日志级别: debug, info, warn, error
	//
	// 为空时保留 SBC_LOG_LEVEL 或当前级别。子系统级别是进程级的，
	// 设置后对同一进程内的所有 Signer 生效。
	Level string

	// FxEvents 是否输出 Fx 容器事件
	FxEvents bool
}

// DefaultLogConfig 默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:    "",
		FxEvents: false,
	}
}
