package crypto

import "errors"

// ============================================================================
//                              错误定义
// ============================================================================

// 密钥相关错误
var (
	// ErrNilPrivateKey 私钥为空
	ErrNilPrivateKey = errors.New("nil private key")

	// ErrNilPublicKey 公钥为空
	ErrNilPublicKey = errors.New("nil public key")

	// ErrInvalidKeySize 密钥长度不是 2048 位
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidPublicKey 公钥无效
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey 私钥无效
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrKeyGenerationFailed 密钥生成失败
	ErrKeyGenerationFailed = errors.New("key generation failed")
)

// 摘要与签名相关错误
var (
	// ErrInvalidDigestSize 摘要长度不是 32 字节
	ErrInvalidDigestSize = errors.New("invalid digest size")

	// ErrInvalidSignatureSize 签名长度不是 256 字节
	ErrInvalidSignatureSize = errors.New("invalid signature size")

	// ErrSigningFailed 签名失败
	ErrSigningFailed = errors.New("signing failed")
)
