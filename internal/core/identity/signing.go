package identity

import (
	identityif "github.com/adampuchala/simple-blockchain/pkg/interfaces/identity"
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
)

// ============================================================================
// 签名操作（简单包装）
// ============================================================================

// Sign 使用身份对数据签名
//
// 在 Identity.Sign() 之上增加 nil 检查和全零签名检查。
func Sign(id identityif.Identity, data []byte) (crypto.Signature, error) {
	if id == nil {
		return crypto.Signature{}, ErrNoIdentity
	}

	sig, err := id.Sign(data)
	if err != nil {
		return crypto.Signature{}, err
	}

	if sig == (crypto.Signature{}) {
		return crypto.Signature{}, ErrEmptySignature
	}

	return sig, nil
}

// Verify 验证以字节切片形式收到的签名
//
// 签名长度不对、公钥为空或校验失败都返回 false。
func Verify(pub *crypto.RSAPublicKey, data, sig []byte) bool {
	return crypto.VerifyBytes(data, sig, pub)
}
