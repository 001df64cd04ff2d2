package crypto

import (
	"encoding/hex"
	"fmt"
)

// SignatureSize RSA-2048 签名长度（字节）
const SignatureSize = KeyBits / 8

// Signature 分离式 RSA-2048 PKCS#1 v1.5 签名
//
// 签名与被签数据分开传递，长度固定为 256 字节。
type Signature [SignatureSize]byte

// SignatureFromBytes 从字节切片构造签名
//
// 长度不是 256 字节时返回 ErrInvalidSignatureSize。
// 网络或区块中读出的签名应先经过此函数，再交给 Verify。
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureSize, len(b), SignatureSize)
	}
	copy(sig[:], b)
	return sig, nil
}

// Bytes 返回签名的副本
func (s Signature) Bytes() []byte {
	b := make([]byte, SignatureSize)
	copy(b, s[:])
	return b
}

// String 返回十六进制表示
func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// ============================================================================
//                              包级签名函数
// ============================================================================

// SignDigest 使用私钥对 SHA-256 摘要签名
func SignDigest(priv *RSAPrivateKey, digest Digest) (Signature, error) {
	if priv.isNil() {
		return Signature{}, ErrNilPrivateKey
	}
	return priv.SignDigest(digest)
}

// Sign 计算数据摘要后签名
func Sign(priv *RSAPrivateKey, data []byte) (Signature, error) {
	return SignDigest(priv, Sum(data))
}

// MustSignDigest 同 SignDigest，失败时 panic
//
// 仅用于把签名失败视为不可恢复错误的调用方。
func MustSignDigest(priv *RSAPrivateKey, digest Digest) Signature {
	sig, err := SignDigest(priv, digest)
	if err != nil {
		panic("crypto: " + err.Error())
	}
	return sig
}

// Verify 验证消息签名
//
// 内部对 data 计算 SHA-256 后校验。任何失败（公钥为空、签名不匹配、
// 消息被篡改）都返回 false。
func Verify(data []byte, sig Signature, pub *RSAPublicKey) bool {
	if pub.isNil() {
		return false
	}
	return pub.Verify(data, sig)
}

// VerifyBytes 验证以字节切片形式给出的签名
//
// 签名长度不是 256 字节时直接返回 false。
func VerifyBytes(data, sig []byte, pub *RSAPublicKey) bool {
	s, err := SignatureFromBytes(sig)
	if err != nil {
		return false
	}
	return Verify(data, s, pub)
}
