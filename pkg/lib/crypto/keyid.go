package crypto

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// ============================================================================
//                              KeyID 派生
// ============================================================================

// KeyID 公钥标识
//
// 派生算法：Base58(SHA256(PKIX 公钥))
//
// KeyID 只用于日志和比较，不包含任何密钥材料。
type KeyID string

// EmptyKeyID 空标识
const EmptyKeyID KeyID = ""

// String 返回标识字符串
func (id KeyID) String() string {
	return string(id)
}

// ShortString 返回前 8 个字符，用于日志
func (id KeyID) ShortString() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// KeyIDFromPublicKey 从公钥派生 KeyID
func KeyIDFromPublicKey(pub *RSAPublicKey) (KeyID, error) {
	raw, err := pub.Raw()
	if err != nil {
		return EmptyKeyID, err
	}
	hash := Sum(raw)
	return KeyID(base58.Encode(hash[:])), nil
}

// KeyIDFromPrivateKey 从私钥派生 KeyID
func KeyIDFromPrivateKey(priv *RSAPrivateKey) (KeyID, error) {
	if priv.isNil() {
		return EmptyKeyID, ErrNilPrivateKey
	}
	return KeyIDFromPublicKey(priv.GetPublic())
}

// ParseKeyID 解析 Base58 编码的 KeyID
func ParseKeyID(s string) (KeyID, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return EmptyKeyID, fmt.Errorf("invalid key id: %w", err)
	}
	if len(b) != DigestSize {
		return EmptyKeyID, fmt.Errorf("invalid key id: decoded %d bytes, want %d", len(b), DigestSize)
	}
	return KeyID(s), nil
}

// VerifyKeyID 验证公钥是否对应给定的 KeyID
func VerifyKeyID(pub *RSAPublicKey, id KeyID) (bool, error) {
	derived, err := KeyIDFromPublicKey(pub)
	if err != nil {
		return false, err
	}
	return derived == id, nil
}
