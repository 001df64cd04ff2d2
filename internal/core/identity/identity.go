package identity

import (
	identityif "github.com/adampuchala/simple-blockchain/pkg/interfaces/identity"
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
)

// ============================================================================
//                              Identity 实现
// ============================================================================

// identity Identity 接口的实现
type identity struct {
	provider   identityif.Provider
	privateKey *crypto.RSAPrivateKey
	publicKey  *crypto.RSAPublicKey
	id         crypto.KeyID
}

// 确保实现接口
var _ identityif.Identity = (*identity)(nil)

// NewIdentity 从私钥创建身份
//
// 公钥和 KeyID 在创建时派生一次。
func NewIdentity(provider identityif.Provider, priv *crypto.RSAPrivateKey) (*identity, error) {
	pub, err := provider.PublicKey(priv)
	if err != nil {
		return nil, err
	}
	id, err := crypto.KeyIDFromPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &identity{
		provider:   provider,
		privateKey: priv,
		publicKey:  pub,
		id:         id,
	}, nil
}

// ID 返回 KeyID
func (i *identity) ID() crypto.KeyID {
	return i.id
}

// PublicKey 返回公钥
func (i *identity) PublicKey() *crypto.RSAPublicKey {
	return i.publicKey
}

// PrivateKey 返回私钥
func (i *identity) PrivateKey() *crypto.RSAPrivateKey {
	return i.privateKey
}

// Sign 对数据摘要签名
func (i *identity) Sign(data []byte) (crypto.Signature, error) {
	return i.SignDigest(crypto.Sum(data))
}

// SignDigest 对摘要签名
func (i *identity) SignDigest(digest crypto.Digest) (crypto.Signature, error) {
	return i.provider.SignDigest(i.privateKey, digest)
}

// Verify 验证签名
func (i *identity) Verify(data []byte, sig crypto.Signature, pub *crypto.RSAPublicKey) bool {
	return i.provider.Verify(data, sig, pub)
}
