package blockchain

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/adampuchala/simple-blockchain/internal/config"
	"github.com/adampuchala/simple-blockchain/internal/core/identity"
	identityif "github.com/adampuchala/simple-blockchain/pkg/interfaces/identity"
)

// signerComponents Fx 注入到 Signer 的组件
type signerComponents struct {
	fx.In

	Identity identityif.Identity `name:"identity"`
	Provider identityif.Provider `name:"identity_provider"`
}

// buildFxApp 构建 Fx 应用
//
// 加载顺序：配置（含日志级别）→ 身份 → Signer 组件注入
func buildFxApp(cfg *config.Config, s *Signer) (*fx.App, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{
		config.Module(cfg),
		identity.Module(),
		fx.Invoke(func(c signerComponents) {
			s.identity = c.Identity
			s.provider = c.Provider
		}),
		fx.WithLogger(fxEventLogger(cfg.Log.FxEvents)),
	}

	return fx.New(modules...), nil
}

// fxEventLogger 返回 Fx 事件日志构造函数
//
// 默认丢弃事件，避免干扰节点日志。
func fxEventLogger(verbose bool) func() fxevent.Logger {
	return func() fxevent.Logger {
		if !verbose {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}
		return &fxevent.ZapLogger{Logger: l.Named("fx")}
	}
}
