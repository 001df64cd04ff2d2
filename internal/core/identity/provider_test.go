package identity

import (
	"errors"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identityif "github.com/adampuchala/simple-blockchain/pkg/interfaces/identity"
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
)

var (
	sharedOnce sync.Once
	sharedPub  *crypto.RSAPublicKey
	sharedPriv *crypto.RSAPrivateKey
	sharedErr  error
)

// sharedKeyPair 返回包内测试共享的密钥对
func sharedKeyPair(t *testing.T) (*crypto.RSAPublicKey, *crypto.RSAPrivateKey) {
	t.Helper()
	sharedOnce.Do(func() {
		sharedPub, sharedPriv, sharedErr = NewProvider(identityif.DefaultConfig()).GenerateKeyPair()
	})
	require.NoError(t, sharedErr)
	return sharedPub, sharedPriv
}

// ============================================================================
// Provider 契约测试
// ============================================================================

func TestProvider_GenerateKeyPair(t *testing.T) {
	p := NewProvider(identityif.DefaultConfig())

	pub1, priv1, err := p.GenerateKeyPair()
	require.NoError(t, err)
	pub2, priv2, err := p.GenerateKeyPair()
	require.NoError(t, err)

	assert.Equal(t, crypto.KeyBits, pub1.Std().N.BitLen())
	assert.False(t, pub1.Equals(pub2), "repeated generation returned the same public key")
	assert.False(t, priv1.Equals(priv2), "repeated generation returned the same private key")
}

func TestProvider_PublicKeyMatchesGenerated(t *testing.T) {
	p := NewProvider(identityif.DefaultConfig())
	pub, priv := sharedKeyPair(t)

	derived, err := p.PublicKey(priv)
	require.NoError(t, err)
	assert.True(t, pub.Equals(derived))

	again, err := p.PublicKey(priv)
	require.NoError(t, err)
	assert.True(t, derived.Equals(again))
}

func TestProvider_SignVerify(t *testing.T) {
	p := NewProvider(identityif.DefaultConfig())
	pub, priv := sharedKeyPair(t)
	msg := []byte("block 7 payload")

	sig, err := p.SignDigest(priv, crypto.Sum(msg))
	require.NoError(t, err)

	assert.True(t, p.Verify(msg, sig, pub))
	assert.False(t, p.Verify([]byte("block 7 payloaD"), sig, pub))

	tampered := sig
	tampered[0] ^= 0x80
	assert.False(t, p.Verify(msg, tampered, pub))
}

func TestProvider_VerifyWithOtherKey(t *testing.T) {
	p := NewProvider(identityif.DefaultConfig())
	_, priv := sharedKeyPair(t)
	otherPub, _, err := p.GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("block 8 payload")
	sig, err := p.SignDigest(priv, crypto.Sum(msg))
	require.NoError(t, err)

	assert.False(t, p.Verify(msg, sig, otherPub))
	assert.False(t, p.Verify(msg, sig, nil))
}

func TestProvider_SignNilKey(t *testing.T) {
	p := NewProvider(identityif.DefaultConfig())

	_, err := p.SignDigest(nil, crypto.Digest{})
	assert.ErrorIs(t, err, crypto.ErrNilPrivateKey)

	_, err = p.PublicKey(nil)
	assert.ErrorIs(t, err, crypto.ErrNilPrivateKey)
}

func TestProvider_FailFast(t *testing.T) {
	cfg := identityif.DefaultConfig()
	cfg.FailFast = true
	p := NewProvider(cfg)

	assert.Panics(t, func() {
		_, _ = p.SignDigest(nil, crypto.Digest{})
	})

	_, priv := sharedKeyPair(t)
	assert.NotPanics(t, func() {
		_, _ = p.SignDigest(priv, crypto.Sum([]byte("ok")))
	})

	broken := NewProviderWithReader(cfg, iotest.ErrReader(errors.New("no entropy")))
	assert.Panics(t, func() {
		_, _, _ = broken.GenerateKeyPair()
	})
}

func TestProvider_GenerateKeyPair_ReaderError(t *testing.T) {
	p := NewProviderWithReader(identityif.DefaultConfig(), iotest.ErrReader(errors.New("no entropy")))

	pub, priv, err := p.GenerateKeyPair()
	assert.ErrorIs(t, err, crypto.ErrKeyGenerationFailed)
	assert.Nil(t, pub)
	assert.Nil(t, priv)
}
