package blockchain

// 版本信息，发布构建时通过 -ldflags "-X" 注入
var (
	// Version 版本号
	Version = "v0.1.0"
	// GitCommit 提交哈希
	GitCommit = ""
	// BuildDate 构建时间
	BuildDate = ""
)
