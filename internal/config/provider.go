package config

import (
	"go.uber.org/fx"

	"github.com/adampuchala/simple-blockchain/internal/util/logger"
	identityif "github.com/adampuchala/simple-blockchain/pkg/interfaces/identity"
)

// ============================================================================
//                              fx 模块
// ============================================================================

// ProviderResult fx 提供者结果
type ProviderResult struct {
	fx.Out

	LogConfig *LogConfig `name:"log_config"`

	// identity 模块使用
	IdentityIfConfig *identityif.Config
}

// ProvideConfig 校验配置并分发给各模块
func ProvideConfig(config *Config) (ProviderResult, error) {
	if err := Validate(config); err != nil {
		return ProviderResult{}, err
	}

	return ProviderResult{
		LogConfig:        &config.Log,
		IdentityIfConfig: convertToIdentityIfConfig(&config.Identity),
	}, nil
}

// convertToIdentityIfConfig 转换为 identity 模块配置
func convertToIdentityIfConfig(cfg *IdentityConfig) *identityif.Config {
	return &identityif.Config{
		PrivateKey: cfg.PrivateKey,
		AutoCreate: cfg.AutoCreate,
		FailFast:   cfg.FailFast,
	}
}

// Module 返回配置 fx 模块
func Module(config *Config) fx.Option {
	return fx.Module("config",
		fx.Supply(config),
		fx.Provide(ProvideConfig),
		fx.Invoke(applyLogConfig),
	)
}

// logConfigInput 日志配置注入
type logConfigInput struct {
	fx.In

	LogConfig *LogConfig `name:"log_config"`
}

// applyLogConfig 应用显式设置的 identity 日志级别
//
// Level 为空时不改动，保留环境变量或此前设置的级别。
func applyLogConfig(input logConfigInput) {
	if input.LogConfig.Level == "" {
		return
	}
	if level, ok := logger.ParseLevel(input.LogConfig.Level); ok {
		logger.SetLevel(IdentitySubsystem, level)
	}
}
