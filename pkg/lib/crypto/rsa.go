package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"fmt"
	"io"
)

// RSA 密钥常量
const (
	// KeyBits RSA 模数长度（位），固定为 2048
	KeyBits = 2048
)

// ============================================================================
//                              RSAPublicKey
// ============================================================================

// RSAPublicKey RSA-2048 公钥
//
// 零值等同于空公钥，Verify 对其总是返回 false。
type RSAPublicKey struct {
	k *rsa.PublicKey
}

// NewRSAPublicKey 包装标准库公钥
//
// 模数必须恰好 2048 位。
func NewRSAPublicKey(pub *rsa.PublicKey) (*RSAPublicKey, error) {
	if pub == nil || pub.N == nil {
		return nil, ErrNilPublicKey
	}
	if pub.N.BitLen() != KeyBits {
		return nil, fmt.Errorf("%w: modulus is %d bits, want %d", ErrInvalidKeySize, pub.N.BitLen(), KeyBits)
	}
	if pub.E < 3 || pub.E%2 == 0 {
		return nil, fmt.Errorf("%w: bad public exponent %d", ErrInvalidPublicKey, pub.E)
	}
	return &RSAPublicKey{k: pub}, nil
}

func (k *RSAPublicKey) isNil() bool {
	return k == nil || k.k == nil
}

// Std 返回底层 *rsa.PublicKey
//
// 用于与标准库互操作，调用方不得修改返回值。
func (k *RSAPublicKey) Std() *rsa.PublicKey {
	if k == nil {
		return nil
	}
	return k.k
}

// Raw 返回 PKIX/DER 编码的公钥字节
//
// 仅用于派生 KeyID 和常量时间比较。
func (k *RSAPublicKey) Raw() ([]byte, error) {
	if k.isNil() {
		return nil, ErrNilPublicKey
	}
	return x509.MarshalPKIXPublicKey(k.k)
}

// Equals 比较两个公钥是否相等
func (k *RSAPublicKey) Equals(other *RSAPublicKey) bool {
	if k.isNil() || other.isNil() {
		return false
	}
	return k.k.N.Cmp(other.k.N) == 0 && k.k.E == other.k.E
}

// VerifyDigest 验证对摘要的签名（PKCS#1 v1.5 + SHA-256）
func (k *RSAPublicKey) VerifyDigest(digest Digest, sig Signature) bool {
	if k.isNil() {
		return false
	}
	return rsa.VerifyPKCS1v15(k.k, crypto.SHA256, digest[:], sig[:]) == nil
}

// Verify 验证对原始数据的签名
func (k *RSAPublicKey) Verify(data []byte, sig Signature) bool {
	return k.VerifyDigest(Sum(data), sig)
}

// ============================================================================
//                              RSAPrivateKey
// ============================================================================

// RSAPrivateKey RSA-2048 私钥
type RSAPrivateKey struct {
	k *rsa.PrivateKey
}

// NewRSAPrivateKey 包装标准库私钥
//
// 模数必须恰好 2048 位，且私钥需通过 Validate 校验。
func NewRSAPrivateKey(priv *rsa.PrivateKey) (*RSAPrivateKey, error) {
	if priv == nil || priv.N == nil {
		return nil, ErrNilPrivateKey
	}
	if priv.N.BitLen() != KeyBits {
		return nil, fmt.Errorf("%w: modulus is %d bits, want %d", ErrInvalidKeySize, priv.N.BitLen(), KeyBits)
	}
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	priv.Precompute()
	return &RSAPrivateKey{k: priv}, nil
}

func (k *RSAPrivateKey) isNil() bool {
	return k == nil || k.k == nil
}

// Std 返回底层 *rsa.PrivateKey
//
// ⚠️ 安全敏感：不得写入日志或传递给不受信任的组件。
func (k *RSAPrivateKey) Std() *rsa.PrivateKey {
	if k == nil {
		return nil
	}
	return k.k
}

// Equals 比较两个私钥是否相等
func (k *RSAPrivateKey) Equals(other *RSAPrivateKey) bool {
	if k.isNil() || other.isNil() {
		return false
	}
	return k.k.D.Cmp(other.k.D) == 0 && k.k.N.Cmp(other.k.N) == 0
}

// GetPublic 返回对应的公钥
//
// 结果是确定的：多次调用得到的公钥与生成时返回的公钥相等。
func (k *RSAPrivateKey) GetPublic() *RSAPublicKey {
	if k.isNil() {
		return nil
	}
	pub := k.k.PublicKey
	return &RSAPublicKey{k: &pub}
}

// SignDigest 对 SHA-256 摘要签名（PKCS#1 v1.5）
func (k *RSAPrivateKey) SignDigest(digest Digest) (Signature, error) {
	var sig Signature
	if k.isNil() {
		return sig, ErrNilPrivateKey
	}

	raw, err := rsa.SignPKCS1v15(rand.Reader, k.k, crypto.SHA256, digest[:])
	if err != nil {
		return sig, fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}
	if len(raw) != SignatureSize {
		return sig, fmt.Errorf("%w: got %d bytes", ErrSigningFailed, len(raw))
	}

	copy(sig[:], raw)
	return sig, nil
}

// Sign 计算数据摘要后签名
func (k *RSAPrivateKey) Sign(data []byte) (Signature, error) {
	return k.SignDigest(Sum(data))
}

// ============================================================================
//                              工厂函数
// ============================================================================

// GenerateKeyPair 使用系统加密安全随机源生成 RSA-2048 密钥对
func GenerateKeyPair() (*RSAPrivateKey, *RSAPublicKey, error) {
	return GenerateKeyPairWithReader(rand.Reader)
}

// GenerateKeyPairWithReader 使用指定随机源生成 RSA-2048 密钥对
func GenerateKeyPairWithReader(src io.Reader) (*RSAPrivateKey, *RSAPublicKey, error) {
	if src == nil {
		return nil, nil, fmt.Errorf("%w: nil random source", ErrKeyGenerationFailed)
	}

	priv, err := rsa.GenerateKey(src, KeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrKeyGenerationFailed, err)
	}

	sk := &RSAPrivateKey{k: priv}
	return sk, sk.GetPublic(), nil
}

// MustGenerateKeyPair 同 GenerateKeyPair，失败时 panic
func MustGenerateKeyPair() (*RSAPrivateKey, *RSAPublicKey) {
	priv, pub, err := GenerateKeyPair()
	if err != nil {
		panic("crypto: " + err.Error())
	}
	return priv, pub
}

// PublicKeyFromPrivate 从私钥派生公钥
func PublicKeyFromPrivate(priv *RSAPrivateKey) (*RSAPublicKey, error) {
	if priv.isNil() {
		return nil, ErrNilPrivateKey
	}
	return priv.GetPublic(), nil
}

// ============================================================================
//                              辅助函数
// ============================================================================

// KeyEqual 使用常量时间比较两个公钥是否相等
func KeyEqual(k1, k2 *RSAPublicKey) bool {
	b1, err1 := k1.Raw()
	b2, err2 := k2.Raw()
	if err1 != nil || err2 != nil {
		return false
	}
	return subtle.ConstantTimeCompare(b1, b2) == 1
}
