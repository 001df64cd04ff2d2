package blockchain

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/fx"

	identityif "github.com/adampuchala/simple-blockchain/pkg/interfaces/identity"
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
	"github.com/adampuchala/simple-blockchain/pkg/lib/log"
)

var signerLog = log.Logger("blockchain/signer")

// Signer 节点签名身份
//
// Signer 持有一把 RSA-2048 私钥，对区块和交易数据签名。
// 所有方法可并发调用。
type Signer struct {
	app      *fx.App
	identity identityif.Identity
	provider identityif.Provider
	closed   atomic.Bool
}

// New 创建并启动 Signer
func New(ctx context.Context, opts ...Option) (*Signer, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	s := &Signer{}
	app, err := buildFxApp(cfg, s)
	if err != nil {
		return nil, err
	}
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("build signer: %w", err)
	}

	if err := app.Start(ctx); err != nil {
		return nil, fmt.Errorf("start signer: %w", err)
	}
	s.app = app

	signerLog.Info("signer started", "key", s.identity.ID().ShortString())
	return s, nil
}

// ID 返回节点公钥的 KeyID
func (s *Signer) ID() crypto.KeyID {
	return s.identity.ID()
}

// PublicKey 返回节点公钥
func (s *Signer) PublicKey() *crypto.RSAPublicKey {
	return s.identity.PublicKey()
}

// Provider 返回底层签名能力
func (s *Signer) Provider() identityif.Provider {
	return s.provider
}

// Sign 对数据的 SHA-256 摘要签名
func (s *Signer) Sign(data []byte) (crypto.Signature, error) {
	if s.closed.Load() {
		return crypto.Signature{}, ErrSignerClosed
	}
	return s.identity.Sign(data)
}

// SignDigest 对调用方计算好的摘要签名
func (s *Signer) SignDigest(digest crypto.Digest) (crypto.Signature, error) {
	if s.closed.Load() {
		return crypto.Signature{}, ErrSignerClosed
	}
	return s.identity.SignDigest(digest)
}

// Verify 验证指定公钥对数据的签名
//
// 验签不依赖节点私钥，关闭后仍可使用。
func (s *Signer) Verify(data []byte, sig crypto.Signature, pub *crypto.RSAPublicKey) bool {
	return s.provider.Verify(data, sig, pub)
}

// Close 停止 Signer
//
// 重复调用返回 nil。
func (s *Signer) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := s.app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop signer: %w", err)
	}
	signerLog.Info("signer stopped")
	return nil
}
