// Package identity 定义节点签名身份相关接口
//
// 身份模块负责：
// - RSA-2048 密钥对生成
// - 对摘要签名、对消息验签
// - 从私钥派生公钥
package identity

import (
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
)

// ============================================================================
//                              Provider 接口
// ============================================================================

// Provider RSA-2048 / PKCS#1 v1.5 / SHA-256 签名能力契约
//
// 每个方法都是对 pkg/lib/crypto 的一对一调用，实现不持有可变状态，
// 可在多个 goroutine 中并发使用。
type Provider interface {
	// GenerateKeyPair 生成新的 2048 位密钥对
	GenerateKeyPair() (*crypto.RSAPublicKey, *crypto.RSAPrivateKey, error)

	// SignDigest 对调用方计算好的 SHA-256 摘要签名
	SignDigest(priv *crypto.RSAPrivateKey, digest crypto.Digest) (crypto.Signature, error)

	// PublicKey 从私钥派生公钥
	PublicKey(priv *crypto.RSAPrivateKey) (*crypto.RSAPublicKey, error)

	// Verify 对消息计算 SHA-256 并验证签名
	//
	// 任何失败都返回 false。
	Verify(data []byte, sig crypto.Signature, pub *crypto.RSAPublicKey) bool
}

// ============================================================================
//                              Identity 接口
// ============================================================================

// Identity 节点签名身份
//
// ⚠️ 安全边界说明：
// - PrivateKey() 返回私钥对象，只用于签名
// - 禁止用途：日志输出、网络传输
// - 推荐做法：优先使用 Sign()/SignDigest()
type Identity interface {
	// ID 返回公钥派生的 KeyID
	ID() crypto.KeyID

	// PublicKey 返回公钥
	PublicKey() *crypto.RSAPublicKey

	// PrivateKey 返回私钥
	PrivateKey() *crypto.RSAPrivateKey

	// Sign 对数据的 SHA-256 摘要签名
	Sign(data []byte) (crypto.Signature, error)

	// SignDigest 对摘要签名
	SignDigest(digest crypto.Digest) (crypto.Signature, error)

	// Verify 验证指定公钥对数据的签名
	Verify(data []byte, sig crypto.Signature, pub *crypto.RSAPublicKey) bool
}

// ============================================================================
//                              配置选项
// ============================================================================

// Config 身份模块配置
type Config struct {
	// PrivateKey 直接注入的私钥（可选）
	//
	// 优先级：PrivateKey > AutoCreate
	PrivateKey *crypto.RSAPrivateKey

	// AutoCreate 未注入私钥时是否生成临时身份
	AutoCreate bool

	// FailFast 生成或签名失败时直接 panic，而不是返回错误
	FailFast bool
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		PrivateKey: nil,
		AutoCreate: true,
		FailFast:   false,
	}
}
