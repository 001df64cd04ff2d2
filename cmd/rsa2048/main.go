// Package main 提供 RSA-2048 签名演示命令
//
// 命令在进程内生成一次性密钥对，对消息签名并验签，不向磁盘写入任何密钥。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	blockchain "github.com/adampuchala/simple-blockchain"
	"github.com/adampuchala/simple-blockchain/internal/util/logger"
	"github.com/adampuchala/simple-blockchain/pkg/lib/crypto"
	"github.com/adampuchala/simple-blockchain/pkg/lib/log"
)

var cliLog = log.Logger("cmd/rsa2048")

var (
	message  = flag.String("message", "", "待签名消息（未指定时读取标准输入，可为空串）")
	tamper   = flag.Bool("tamper", false, "验签前翻转消息第一个比特，演示验签失败")
	logLevel = flag.String("log-level", "", "所有子系统的日志级别 (debug/info/warn/error)，默认沿用 SBC_LOG_LEVEL")
	jsonLog  = flag.Bool("json", false, "使用 JSON 日志格式")
	fxEvents = flag.Bool("fx-events", false, "输出 Fx 容器事件")
	failFast = flag.Bool("fail-fast", false, "生成或签名失败时直接中止")
	showVer  = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *showVer {
		printVersion(os.Stdout)
		return nil
	}

	opts := []blockchain.Option{
		blockchain.WithFxLogging(*fxEvents),
		blockchain.WithFailFast(*failFast),
	}

	cliLevel := "warn"
	if *logLevel != "" {
		level, ok := logger.ParseLevel(*logLevel)
		if !ok {
			return fmt.Errorf("未知日志级别 %q", *logLevel)
		}
		logger.SetGlobalLevel(level)
		opts = append(opts, blockchain.WithLogLevel(*logLevel))
		cliLevel = *logLevel
	}
	log.SetOutputWithLevel(os.Stderr, log.ParseLevel(cliLevel), *jsonLog)

	data, err := readMessage(flagSet("message"), *message, os.Stdin)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	signer, err := blockchain.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("创建签名身份失败: %w", err)
	}
	defer func() { _ = signer.Close() }()

	res, err := signAndVerify(signer, data, *tamper)
	if err != nil {
		return err
	}
	res.print(os.Stdout)

	if !res.valid {
		cliLog.Warn("signature rejected", "key", signer.ID().ShortString(), "tampered", *tamper)
	}
	return nil
}

// flagSet 报告命令行是否显式给出了指定 flag
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// readMessage 显式给出 -message 时使用其值（包括空串），否则读取 stdin
func readMessage(set bool, msg string, stdin io.Reader) ([]byte, error) {
	if set {
		return []byte(msg), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("读取标准输入失败: %w", err)
	}
	return data, nil
}

// result 一次签名-验签的结果
type result struct {
	keyID     crypto.KeyID
	digest    crypto.Digest
	signature crypto.Signature
	valid     bool
}

// signAndVerify 对 data 签名，再按需篡改后验签
func signAndVerify(signer *blockchain.Signer, data []byte, tamper bool) (result, error) {
	digest := crypto.Sum(data)

	sig, err := signer.SignDigest(digest)
	if err != nil {
		return result{}, fmt.Errorf("签名失败: %w", err)
	}

	checked := data
	if tamper {
		checked = append([]byte(nil), data...)
		if len(checked) == 0 {
			checked = []byte{0}
		}
		checked[0] ^= 0x01
	}

	return result{
		keyID:     signer.ID(),
		digest:    digest,
		signature: sig,
		valid:     signer.Verify(checked, sig, signer.PublicKey()),
	}, nil
}

func (r result) print(w io.Writer) {
	fmt.Fprintf(w, "key:       %s\n", r.keyID)
	fmt.Fprintf(w, "digest:    %s\n", r.digest)
	fmt.Fprintf(w, "signature: %s\n", r.signature)
	fmt.Fprintf(w, "valid:     %t\n", r.valid)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "rsa2048 %s\n", blockchain.Version)
	if blockchain.GitCommit != "" {
		fmt.Fprintf(w, "  commit: %s\n", blockchain.GitCommit)
	}
	if blockchain.BuildDate != "" {
		fmt.Fprintf(w, "  built:  %s\n", blockchain.BuildDate)
	}
}
