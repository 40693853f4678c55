package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wangdayong228/flowable-admin-client/internal/config"
	"github.com/wangdayong228/flowable-admin-client/internal/output"
	"github.com/wangdayong228/flowable-admin-client/internal/utils/commonutil"
	flowableadminsdk "github.com/wangdayong228/flowable-admin-client/pkg/flowable-admin-sdk"
)

var (
	configPath string
	overrides  config.Overrides

	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:           "flowable-admin-client",
	Short:         "Flowable 流程管理后台的命令行客户端",
	Long:          "flowable-admin-client 是一款用 Go 编写的 CLI 工具，用于调用流程管理后台接口：查询/部署流程模型、查看当前登录用户与系统通知。",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	logger.SetOutput(os.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "f", "", "配置文件路径（YAML，可选）")
	flags.StringVar(&overrides.BaseURL, "base-url", "", "覆盖配置文件中的后台服务地址")
	flags.StringVar(&overrides.Token, "token", "", "覆盖配置文件中的 Bearer Token")
	flags.DurationVar(&overrides.Timeout, "timeout", 0, "请求超时时间（例如 10s），为 0 时使用配置或默认值")
	flags.StringVarP(&overrides.Output, "output", "o", "", "输出格式：json | table")
	flags.BoolVar(&overrides.Debug, "debug", false, "打印请求/响应调试日志")
}

// Execute 入口
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.WithError(err).Error("命令执行失败")
		cancel()
		os.Exit(1)
	}
}

// loadConfig 读取配置文件（若指定）并应用命令行覆盖。
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		path, err := commonutil.ExpandHome(configPath)
		if err != nil {
			return nil, err
		}
		cfg = config.LoadConfigFromFile(path)
	}

	if err := cfg.ApplyOverrides(overrides); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *flowableadminsdk.Client {
	logger.WithFields(logrus.Fields{
		"baseUrl": cfg.BaseURL,
		"timeout": cfg.Timeout.String(),
	}).Debug("创建 flowable admin client")
	return flowableadminsdk.New(cfg.BaseURL, cfg.ClientOptions(logger)...)
}

// runWithClient 封装各子命令共用的流程：加载配置 → 调用接口 → 渲染输出。
func runWithClient(cmd *cobra.Command, call func(c *flowableadminsdk.Client) (flowableadminsdk.Payload, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	start := time.Now()
	payload, err := call(newClient(cfg))
	if err != nil {
		return err
	}
	logger.WithField("cost", time.Since(start).String()).Debugf("%s 完成", cmd.CommandPath())

	return output.Render(cmd.OutOrStdout(), cfg.Output, payload)
}
