package crypto

import (
	"encoding/hex"
	"fmt"

	sha256 "github.com/minio/sha256-simd"
)

// DigestSize SHA-256 摘要长度（字节）
const DigestSize = sha256.Size

// Digest SHA-256 摘要
//
// 签名操作只接受摘要，调用方负责对待签数据做一次 SHA-256。
type Digest [DigestSize]byte

// Sum 计算数据的 SHA-256 摘要
func Sum(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

// DigestFromBytes 从字节切片构造摘要
//
// 长度必须恰好为 32 字节。
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestSize {
		return d, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidDigestSize, len(b), DigestSize)
	}
	copy(d[:], b)
	return d, nil
}

// Bytes 返回摘要的副本
func (d Digest) Bytes() []byte {
	b := make([]byte, DigestSize)
	copy(b, d[:])
	return b
}

// String 返回十六进制表示
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero 是否为全零摘要
func (d Digest) IsZero() bool {
	return d == Digest{}
}
