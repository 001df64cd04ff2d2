// Package crypto 提供区块链节点使用的 RSA-2048 签名原语
//
// 本包只支持一种方案：RSA-2048 + PKCS#1 v1.5 填充 + SHA-256 摘要。
// 所有大数运算、填充与随机密钥生成都委托给 crypto/rsa，
// 本包只负责约束密钥长度、固定摘要/签名尺寸并提供统一的调用契约。
//
// # 四个基本操作
//
// 生成密钥对：
//
//	priv, pub, err := crypto.GenerateKeyPair()
//
// 对摘要签名（调用方先计算 SHA-256 摘要）：
//
//	digest := crypto.Sum(block)
//	sig, err := crypto.SignDigest(priv, digest)
//
// 从私钥派生公钥：
//
//	pub, err := crypto.PublicKeyFromPrivate(priv)
//
// 验证签名（传入原始消息，内部计算摘要）：
//
//	ok := crypto.Verify(block, sig, pub)
//
// # 错误语义
//
//   - 生成与签名失败以 error 返回；需要“失败即中止”语义的调用方使用 Must* 变体
//   - 验证失败只返回 false，不区分签名畸形、公钥错误或消息被篡改
//
// # 并发
//
// 所有函数均无共享可变状态，可在多个 goroutine 中并发调用。
//
// # 尺寸
//
//   - 密钥：2048 位
//   - 摘要：32 字节
//   - 签名：256 字节
package crypto
