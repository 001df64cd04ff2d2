package identity

import (
	"context"

	"go.uber.org/fx"

	identityif "github.com/adampuchala/simple-blockchain/pkg/interfaces/identity"
)

// ============================================================================
//                              模块输入依赖
// ============================================================================

// ModuleInput 定义模块输入依赖
type ModuleInput struct {
	fx.In

	// 配置（可选，使用默认配置）
	Config *identityif.Config `optional:"true"`
}

// ============================================================================
//                              模块输出服务
// ============================================================================

// ModuleOutput 定义模块输出服务
type ModuleOutput struct {
	fx.Out

	Identity identityif.Identity `name:"identity"`
	Provider identityif.Provider `name:"identity_provider"`
}

// ============================================================================
//                              服务提供
// ============================================================================

// ProvideServices 提供模块服务
//
// 身份来源优先级：PrivateKey > AutoCreate。
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	config := identityif.DefaultConfig()
	if input.Config != nil {
		config = *input.Config
	}

	provider := NewProvider(config)

	priv := config.PrivateKey
	switch {
	case priv != nil:
		log.Debug("使用注入的私钥")
	case config.AutoCreate:
		_, generated, err := provider.GenerateKeyPair()
		if err != nil {
			return ModuleOutput{}, err
		}
		priv = generated
	default:
		return ModuleOutput{}, ErrNoIdentity
	}

	id, err := NewIdentity(provider, priv)
	if err != nil {
		return ModuleOutput{}, err
	}

	return ModuleOutput{
		Identity: id,
		Provider: provider,
	}, nil
}

// ============================================================================
//                              模块定义
// ============================================================================

// Module 返回 fx 模块配置
func Module() fx.Option {
	return fx.Module(Name,
		fx.Provide(ProvideServices),
		fx.Invoke(registerLifecycle),
	)
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC       fx.Lifecycle
	Identity identityif.Identity `name:"identity"`
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			log.Info("身份模块已启动", "key", input.Identity.ID().ShortString())
			return nil
		},
		OnStop: func(_ context.Context) error {
			log.Info("身份模块已停止", "key", input.Identity.ID().ShortString())
			return nil
		},
	})
}

// ============================================================================
//                              模块元信息
// ============================================================================

// 模块元信息常量
const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "identity"
	// Description 模块描述
	Description = "节点签名身份模块，提供 RSA-2048 密钥生成、签名与验签能力"
)
