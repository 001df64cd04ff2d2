// Package blockchain 提供区块链节点的签名身份入口
//
// Signer 通过 Fx 组装配置模块与身份模块，对外暴露 RSA-2048 /
// PKCS#1 v1.5 / SHA-256 的签名与验签能力。
//
// # 快速开始
//
//	s, err := blockchain.New(ctx)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	sig, err := s.Sign(blockBytes)
//	ok := s.Verify(blockBytes, sig, s.PublicKey())
//
// 使用已有私钥：
//
//	s, err := blockchain.New(ctx, blockchain.WithPrivateKey(priv))
//
// 底层原语位于 pkg/lib/crypto，可脱离 Signer 直接使用。
package blockchain
