package crypto

import (
	"sync"
	"testing"
)

// 生成 2048 位密钥较慢，同一包内的测试共享两对密钥
var (
	testKeysOnce sync.Once
	testPriv     [2]*RSAPrivateKey
	testPub      [2]*RSAPublicKey
	testKeysErr  error
)

func testKeys(t *testing.T) (*RSAPrivateKey, *RSAPublicKey, *RSAPrivateKey, *RSAPublicKey) {
	t.Helper()

	testKeysOnce.Do(func() {
		for i := range testPriv {
			testPriv[i], testPub[i], testKeysErr = GenerateKeyPair()
			if testKeysErr != nil {
				return
			}
		}
	})
	if testKeysErr != nil {
		t.Fatalf("GenerateKeyPair() error = %v", testKeysErr)
	}
	return testPriv[0], testPub[0], testPriv[1], testPub[1]
}
