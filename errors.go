package blockchain

import "errors"

// 公共错误定义
var (
	// ErrSignerClosed Signer 已关闭
	ErrSignerClosed = errors.New("signer closed")

	// ErrNilOption 传入了 nil 选项
	ErrNilOption = errors.New("nil option")
)
