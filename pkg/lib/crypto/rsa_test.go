package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"testing/iotest"
)

func TestRSA_Generate(t *testing.T) {
	priv, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	if got := priv.Std().N.BitLen(); got != KeyBits {
		t.Errorf("private modulus = %d bits, want %d", got, KeyBits)
	}
	if got := pub.Std().N.BitLen(); got != KeyBits {
		t.Errorf("public modulus = %d bits, want %d", got, KeyBits)
	}

	pubRaw, err := pub.Raw()
	if err != nil {
		t.Fatalf("PublicKey.Raw() error = %v", err)
	}
	if len(pubRaw) == 0 {
		t.Error("PublicKey.Raw() returned empty")
	}
}

func TestRSA_Generate_Distinct(t *testing.T) {
	priv1, pub1, priv2, pub2 := testKeys(t)

	if priv1.Equals(priv2) {
		t.Error("two generated private keys are equal")
	}
	if pub1.Equals(pub2) {
		t.Error("two generated public keys are equal")
	}
}

func TestRSA_Generate_NilReader(t *testing.T) {
	_, _, err := GenerateKeyPairWithReader(nil)
	if !errors.Is(err, ErrKeyGenerationFailed) {
		t.Errorf("GenerateKeyPairWithReader(nil) error = %v, want ErrKeyGenerationFailed", err)
	}
}

func TestRSA_Generate_ReaderError(t *testing.T) {
	src := iotest.ErrReader(errors.New("entropy exhausted"))

	priv, pub, err := GenerateKeyPairWithReader(src)
	if !errors.Is(err, ErrKeyGenerationFailed) {
		t.Errorf("GenerateKeyPairWithReader(errReader) error = %v, want ErrKeyGenerationFailed", err)
	}
	if priv != nil || pub != nil {
		t.Error("GenerateKeyPairWithReader(errReader) returned keys alongside an error")
	}
}

func TestRSA_MustGenerateKeyPair(t *testing.T) {
	var (
		priv *RSAPrivateKey
		pub  *RSAPublicKey
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("MustGenerateKeyPair() panicked: %v", r)
			}
		}()
		priv, pub = MustGenerateKeyPair()
	}()

	if !priv.GetPublic().Equals(pub) {
		t.Error("MustGenerateKeyPair() public key does not match private key")
	}
}

func TestRSA_SignVerify(t *testing.T) {
	priv, pub, _, _ := testKeys(t)
	data := []byte("block #1: alice -> bob 10")

	sig, err := priv.SignDigest(Sum(data))
	if err != nil {
		t.Fatalf("SignDigest() error = %v", err)
	}

	if !pub.Verify(data, sig) {
		t.Error("Verify() = false, want true")
	}

	// 验证错误数据
	if pub.Verify([]byte("block #1: alice -> bob 11"), sig) {
		t.Error("Verify(badData) = true, want false")
	}
}

func TestRSA_SignIsDeterministic(t *testing.T) {
	priv, _, _, _ := testKeys(t)
	digest := Sum([]byte("deterministic"))

	sig1, err := priv.SignDigest(digest)
	if err != nil {
		t.Fatalf("SignDigest() error = %v", err)
	}
	sig2, err := priv.SignDigest(digest)
	if err != nil {
		t.Fatalf("SignDigest() error = %v", err)
	}

	// PKCS#1 v1.5 签名不含随机数
	if sig1 != sig2 {
		t.Error("PKCS#1 v1.5 signatures over the same digest differ")
	}
}

func TestRSA_Equals(t *testing.T) {
	priv1, pub1, priv2, pub2 := testKeys(t)

	if !priv1.Equals(priv1) {
		t.Error("priv1.Equals(priv1) = false")
	}
	if !pub1.Equals(pub1) {
		t.Error("pub1.Equals(pub1) = false")
	}
	if priv1.Equals(priv2) {
		t.Error("priv1.Equals(priv2) = true")
	}
	if pub1.Equals(pub2) {
		t.Error("pub1.Equals(pub2) = true")
	}
	if pub1.Equals(nil) {
		t.Error("pub1.Equals(nil) = true")
	}
}

func TestRSA_GetPublic(t *testing.T) {
	priv, pub, _, _ := testKeys(t)

	derived := priv.GetPublic()
	if !pub.Equals(derived) {
		t.Error("GetPublic() returned different key")
	}
	if !KeyEqual(pub, derived) {
		t.Error("KeyEqual(pub, GetPublic()) = false")
	}

	again, err := PublicKeyFromPrivate(priv)
	if err != nil {
		t.Fatalf("PublicKeyFromPrivate() error = %v", err)
	}
	if !again.Equals(derived) {
		t.Error("PublicKeyFromPrivate() is not deterministic")
	}
}

func TestRSA_NewRSAPrivateKey(t *testing.T) {
	t.Run("Wrap", func(t *testing.T) {
		priv, _, _, _ := testKeys(t)

		wrapped, err := NewRSAPrivateKey(priv.Std())
		if err != nil {
			t.Fatalf("NewRSAPrivateKey() error = %v", err)
		}
		if !wrapped.Equals(priv) {
			t.Error("wrapped key differs from original")
		}
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := NewRSAPrivateKey(nil)
		if !errors.Is(err, ErrNilPrivateKey) {
			t.Errorf("NewRSAPrivateKey(nil) error = %v, want ErrNilPrivateKey", err)
		}
	})

	t.Run("WrongSize", func(t *testing.T) {
		small, err := rsa.GenerateKey(rand.Reader, 1024)
		if err != nil {
			t.Skipf("cannot generate 1024-bit key: %v", err)
		}
		_, err = NewRSAPrivateKey(small)
		if !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("NewRSAPrivateKey(1024) error = %v, want ErrInvalidKeySize", err)
		}
		_, err = NewRSAPublicKey(&small.PublicKey)
		if !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("NewRSAPublicKey(1024) error = %v, want ErrInvalidKeySize", err)
		}
	})
}

func TestRSA_NewRSAPublicKey(t *testing.T) {
	_, pub, _, _ := testKeys(t)

	wrapped, err := NewRSAPublicKey(pub.Std())
	if err != nil {
		t.Fatalf("NewRSAPublicKey() error = %v", err)
	}
	if !wrapped.Equals(pub) {
		t.Error("wrapped key differs from original")
	}

	bad := *pub.Std()
	bad.E = 4
	if _, err := NewRSAPublicKey(&bad); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("NewRSAPublicKey(E=4) error = %v, want ErrInvalidPublicKey", err)
	}

	if _, err := NewRSAPublicKey(nil); !errors.Is(err, ErrNilPublicKey) {
		t.Errorf("NewRSAPublicKey(nil) error = %v, want ErrNilPublicKey", err)
	}
}

func TestRSA_ZeroValues(t *testing.T) {
	var priv RSAPrivateKey
	var pub RSAPublicKey

	if _, err := priv.SignDigest(Digest{}); !errors.Is(err, ErrNilPrivateKey) {
		t.Errorf("zero key SignDigest() error = %v, want ErrNilPrivateKey", err)
	}
	if priv.GetPublic() != nil {
		t.Error("zero key GetPublic() != nil")
	}
	if pub.Verify([]byte("x"), Signature{}) {
		t.Error("zero key Verify() = true")
	}
	if _, err := pub.Raw(); !errors.Is(err, ErrNilPublicKey) {
		t.Errorf("zero key Raw() error = %v, want ErrNilPublicKey", err)
	}
}
