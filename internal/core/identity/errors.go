package identity

import "errors"

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrNoIdentity 既未注入私钥也未开启自动创建
	ErrNoIdentity = errors.New("no identity: private key not provided and auto create disabled")

	// ErrEmptySignature 签名结果为全零
	ErrEmptySignature = errors.New("empty signature")
)
