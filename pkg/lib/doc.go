// Package lib 包含基础设施工具库
//
// 本目录包含与节点组装无关的通用工具库：
//
//   - crypto: RSA-2048 / PKCS#1 v1.5 / SHA-256 签名原语、摘要、KeyID
//   - log: 面向公共包与命令行的日志封装
//
// # 使用示例
//
//	import (
//	    "github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
//	    "github.com/adampuchala/simple-blockchain/pkg/lib/log"
//	)
package lib
