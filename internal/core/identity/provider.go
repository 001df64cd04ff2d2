package identity

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"

	"github.com/adampuchala/simple-blockchain/internal/util/logger"
	identityif "github.com/adampuchala/simple-blockchain/pkg/interfaces/identity"
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
)

var log = logger.Logger("identity")

// ============================================================================
//                              RSA2048Provider
// ============================================================================

// RSA2048Provider identityif.Provider 的实现
//
// 不持有可变状态，可并发使用。
type RSA2048Provider struct {
	failFast bool
	random   io.Reader
	log      *slog.Logger
}

// 确保实现接口
var _ identityif.Provider = (*RSA2048Provider)(nil)

// NewProvider 创建使用系统随机源的 Provider
func NewProvider(cfg identityif.Config) *RSA2048Provider {
	return NewProviderWithReader(cfg, rand.Reader)
}

// NewProviderWithReader 创建使用指定随机源生成密钥的 Provider
func NewProviderWithReader(cfg identityif.Config, random io.Reader) *RSA2048Provider {
	return &RSA2048Provider{
		failFast: cfg.FailFast,
		random:   random,
		log:      log,
	}
}

// GenerateKeyPair 生成新的 2048 位密钥对
func (p *RSA2048Provider) GenerateKeyPair() (*crypto.RSAPublicKey, *crypto.RSAPrivateKey, error) {
	priv, pub, err := crypto.GenerateKeyPairWithReader(p.random)
	if err != nil {
		p.log.Error("密钥对生成失败", "err", err)
		if p.failFast {
			panic(fmt.Sprintf("identity: private key generation failed: %v", err))
		}
		return nil, nil, err
	}

	if p.log.Enabled(context.Background(), slog.LevelDebug) {
		id, _ := crypto.KeyIDFromPublicKey(pub)
		p.log.Debug("密钥对已生成", "key", id.ShortString(), "bits", crypto.KeyBits)
	}
	return pub, priv, nil
}

// SignDigest 对摘要签名
func (p *RSA2048Provider) SignDigest(priv *crypto.RSAPrivateKey, digest crypto.Digest) (crypto.Signature, error) {
	sig, err := crypto.SignDigest(priv, digest)
	if err != nil {
		p.log.Error("签名失败", "digest", digest.String(), "err", err)
		if p.failFast {
			panic(fmt.Sprintf("identity: signature generation failed: %v", err))
		}
		return crypto.Signature{}, err
	}

	if p.log.Enabled(context.Background(), slog.LevelDebug) {
		id, _ := crypto.KeyIDFromPrivateKey(priv)
		p.log.Debug("摘要已签名", "key", id.ShortString(), "digest", digest.String())
	}
	return sig, nil
}

// PublicKey 从私钥派生公钥
func (p *RSA2048Provider) PublicKey(priv *crypto.RSAPrivateKey) (*crypto.RSAPublicKey, error) {
	return crypto.PublicKeyFromPrivate(priv)
}

// Verify 验证签名
//
// 失败原因不对外区分，只在 Debug 日志中记录一次拒绝。
func (p *RSA2048Provider) Verify(data []byte, sig crypto.Signature, pub *crypto.RSAPublicKey) bool {
	ok := crypto.Verify(data, sig, pub)
	if !ok && p.log.Enabled(context.Background(), slog.LevelDebug) {
		id, _ := crypto.KeyIDFromPublicKey(pub)
		p.log.Debug("签名验证未通过", "key", id.ShortString(), "size", len(data))
	}
	return ok
}
