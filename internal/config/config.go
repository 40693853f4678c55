package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/nft-rainbow/rainbow-goutils/utils/configutils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wangdayong228/flowable-admin-client/internal/constants/enums"
	flowableadminsdk "github.com/wangdayong228/flowable-admin-client/pkg/flowable-admin-sdk"
)

// Config 描述一次命令执行所需的连接与输出参数
type Config struct {
	// 后台服务地址，例如 http://localhost:8080
	BaseURL string        `yaml:"baseUrl"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"` // 为 0 时使用 SDK 默认超时

	// 额外请求头与 cookie（例如 remember-me cookie），对所有请求生效。
	// 使用列表而不是 map：viper 会把 map 的 key 转成小写，而 cookie 名区分大小写。
	Headers []NameValue `yaml:"headers"`
	Cookies []NameValue `yaml:"cookies"`

	Output enums.OutputFormat `yaml:"output"`
	Debug  bool               `yaml:"debug"`
}

// NameValue 是一个 header 或 cookie，name 与 value 均需填写
type NameValue struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Overrides 为命令行参数对配置文件的覆盖，零值表示未设置。
type Overrides struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Output  string
	Debug   bool
}

// LoadConfigFromFile 从 YAML 文件加载配置。
// configutils 解码时要求所有字段都有值，这里先为可选字段注册默认值。
func LoadConfigFromFile(path string) *Config {
	registerDefaults()
	return configutils.MustLoadByFile[Config](path)
}

func registerDefaults() {
	viper.SetDefault("baseUrl", "")
	viper.SetDefault("token", "")
	viper.SetDefault("timeout", "0s")
	viper.SetDefault("output", enums.OutputFormatJSON.String())
	viper.SetDefault("debug", false)
	viper.SetDefault("headers", []any{})
	viper.SetDefault("cookies", []any{})
}

// ApplyOverrides 将命令行参数覆盖到配置上，并补齐默认值。
func (c *Config) ApplyOverrides(o Overrides) error {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.Token != "" {
		c.Token = o.Token
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Output != "" {
		f, err := enums.ParseOutputFormat(o.Output)
		if err != nil {
			return fmt.Errorf("解析 output 失败: %w", err)
		}
		c.Output = f
	}
	if o.Debug {
		c.Debug = true
	}
	if c.Output == 0 {
		c.Output = enums.OutputFormatJSON
	}
	return nil
}

// Validate 对关键字段做校验，避免在真正发请求时才失败。
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("baseUrl 不可为空")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("baseUrl 解析失败: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("baseUrl 必须是 http(s) 地址: %s", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout 不能为负数")
	}
	return nil
}

// ClientOptions 将配置转换为 SDK 选项。
func (c *Config) ClientOptions(logger *logrus.Logger) []flowableadminsdk.Option {
	opts := []flowableadminsdk.Option{
		flowableadminsdk.WithBearerToken(c.Token),
		flowableadminsdk.WithTimeout(c.Timeout),
		flowableadminsdk.WithLogger(logger),
		flowableadminsdk.WithDebug(c.Debug),
	}
	for _, h := range c.Headers {
		opts = append(opts, flowableadminsdk.WithHeader(h.Name, h.Value))
	}
	for _, ck := range c.Cookies {
		opts = append(opts, flowableadminsdk.WithCookie(ck.Name, ck.Value))
	}
	return opts
}
