package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/adampuchala/simple-blockchain/internal/util/logger"
)

// ValidationError 配置校验错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置错误 [%s]: %s", e.Field, e.Message)
}

// Validate 校验配置
//
// 返回的错误可通过 multierr.Errors 拆分为多个 *ValidationError。
func Validate(config *Config) error {
	if config == nil {
		return &ValidationError{Field: "config", Message: "配置为空"}
	}

	return multierr.Combine(
		validateIdentity(&config.Identity),
		validateLog(&config.Log),
	)
}

func validateIdentity(cfg *IdentityConfig) error {
	var err error

	if cfg.PrivateKey != nil && cfg.PrivateKey.Std() == nil {
		err = multierr.Append(err, &ValidationError{
			Field:   "identity.private_key",
			Message: "私钥未初始化",
		})
	}

	if cfg.PrivateKey == nil && !cfg.AutoCreate {
		err = multierr.Append(err, &ValidationError{
			Field:   "identity.auto_create",
			Message: "未注入私钥时必须开启自动创建",
		})
	}

	return err
}

func validateLog(cfg *LogConfig) error {
	if cfg.Level == "" {
		return nil
	}
	if _, ok := logger.ParseLevel(cfg.Level); !ok {
		return &ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("未知日志级别 %q", cfg.Level),
		}
	}
	return nil
}
