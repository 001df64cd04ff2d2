package blockchain

import (
	"fmt"

	"github.com/adampuchala/simple-blockchain/internal/config"
	"github.com/adampuchala/simple-blockchain/internal/util/logger"
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
)

// Option 用户配置选项函数
type Option func(*config.Config) error

// WithPrivateKey 使用已有的 RSA-2048 私钥作为节点身份
func WithPrivateKey(priv *crypto.RSAPrivateKey) Option {
	return func(c *config.Config) error {
		if priv == nil || priv.Std() == nil {
			return crypto.ErrNilPrivateKey
		}
		c.Identity.PrivateKey = priv
		return nil
	}
}

// WithAutoCreate 未提供私钥时是否生成临时身份，默认开启
func WithAutoCreate(enable bool) Option {
	return func(c *config.Config) error {
		c.Identity.AutoCreate = enable
		return nil
	}
}

// WithFailFast 生成或签名失败时 panic，而不是返回错误
func WithFailFast(enable bool) Option {
	return func(c *config.Config) error {
		c.Identity.FailFast = enable
		return nil
	}
}

// WithLogLevel 设置 identity 子系统日志级别
//
// 级别是进程级的，会影响同一进程内的所有 Signer。
// 不设置时保留 SBC_LOG_LEVEL 或此前设置的级别。
func WithLogLevel(level string) Option {
	return func(c *config.Config) error {
		if _, ok := logger.ParseLevel(level); !ok {
			return fmt.Errorf("unknown log level %q", level)
		}
		c.Log.Level = level
		return nil
	}
}

// WithFxLogging 输出 Fx 容器事件，用于排查依赖注入问题
func WithFxLogging(enable bool) Option {
	return func(c *config.Config) error {
		c.Log.FxEvents = enable
		return nil
	}
}

// applyOptions 在默认配置上依次应用选项
func applyOptions(opts []Option) (*config.Config, error) {
	cfg := config.NewConfig()
	for _, opt := range opts {
		if opt == nil {
			return nil, ErrNilOption
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
