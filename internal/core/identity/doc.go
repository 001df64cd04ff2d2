// Package identity 实现节点签名身份
//
// 本包把 pkg/lib/crypto 的四个 RSA-2048 操作包装成
// pkg/interfaces/identity.Provider，并提供节点身份与 Fx 模块。
//
// # 核心功能
//
//   - RSA2048Provider：生成密钥对、对摘要签名、派生公钥、验签
//   - identity：持有节点私钥，对区块数据签名
//   - Module：通过 Fx 注入 Provider 与 Identity
//
// # 快速开始
//
//	p := identity.NewProvider(identityif.DefaultConfig())
//	pub, priv, _ := p.GenerateKeyPair()
//	sig, _ := p.SignDigest(priv, crypto.Sum(block))
//	ok := p.Verify(block, sig, pub)
//
// # Fx 模块
//
//	app := fx.New(
//	    identity.Module(),
//	    fx.Invoke(fx.Annotate(func(id identityif.Identity) {
//	        fmt.Println(id.ID())
//	    }, fx.ParamTags(`name:"identity"`))),
//	)
//
// # 失败策略
//
// 默认返回错误。Config.FailFast 为 true 时生成和签名失败直接 panic；
// 验签永远只返回 bool。
package identity
