package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderArk    = "ark"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server     ServerConfig
	Generation GenerationConfig
	Gemini     GeminiConfig
	AI         AIConfig
	Log        LogConfig
}

// Load 从环境变量（以及可选的 CONFIG_FILE 指定的 YAML 文件）加载配置。
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	server, err := loadServerConfig(v)
	if err != nil {
		return nil, err
	}

	generation, err := loadGenerationConfig(v)
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:     server,
		Generation: generation,
		Gemini:     loadGeminiConfig(v),
		AI:         ai,
		Log:        loadLogConfig(v),
	}, nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("GENERATION_PROVIDER", ProviderGemini)
	v.SetDefault("GENERATION_TIMEOUT", "30s")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3")
	v.SetDefault("ARK_REGION", "cn-beijing")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	// Ark 模型名沿用历史上的 "Model" 环境变量。
	_ = v.BindEnv("ARK_MODEL", "ARK_MODEL", "Model")

	if path := strings.TrimSpace(v.GetString("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}
	return v, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig(v *viper.Viper) (ServerConfig, error) {
	port := strings.TrimSpace(v.GetString("PORT"))
	if port == "" {
		port = "3000"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":3000" 或 "127.0.0.1:3000"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// GenerationConfig 选择生成网关并限定单次调用耗时。
type GenerationConfig struct {
	Provider string
	Timeout  time.Duration
}

func loadGenerationConfig(v *viper.Viper) (GenerationConfig, error) {
	provider := strings.ToLower(strings.TrimSpace(v.GetString("GENERATION_PROVIDER")))
	switch provider {
	case ProviderGemini, ProviderArk:
	default:
		return GenerationConfig{}, fmt.Errorf("invalid GENERATION_PROVIDER value: %q", provider)
	}

	raw := strings.TrimSpace(v.GetString("GENERATION_TIMEOUT"))
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return GenerationConfig{}, fmt.Errorf("invalid GENERATION_TIMEOUT value %q: %w", raw, err)
	}
	if timeout <= 0 {
		return GenerationConfig{}, fmt.Errorf("GENERATION_TIMEOUT must be positive, got %s", timeout)
	}

	return GenerationConfig{Provider: provider, Timeout: timeout}, nil
}

// GeminiConfig 描述 Gemini generateContent 接口的配置。
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Enabled 表示是否提供了 API Key。
func (c GeminiConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadGeminiConfig(v *viper.Viper) GeminiConfig {
	return GeminiConfig{
		APIKey:  strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		Model:   strings.TrimSpace(v.GetString("GEMINI_MODEL")),
		BaseURL: strings.TrimSpace(v.GetString("GEMINI_BASE_URL")),
	}
}

// AIConfig 描述 Ark 大模型相关配置。
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Enabled 表示是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel 使用配置创建一个模型实例。
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("Ark 凭证或模型配置缺失，至少提供 ARK_API_KEY + Model 或 AK/SK 组合")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig(v *viper.Viper) (AIConfig, error) {
	temperature, err := parseOptionalFloat(v, "ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloat(v, "ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalInt(v, "ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(v.GetString("ARK_API_KEY")),
		AccessKey:   strings.TrimSpace(v.GetString("ARK_ACCESS_KEY")),
		SecretKey:   strings.TrimSpace(v.GetString("ARK_SECRET_KEY")),
		Model:       strings.TrimSpace(v.GetString("ARK_MODEL")),
		BaseURL:     strings.TrimSpace(v.GetString("ARK_BASE_URL")),
		Region:      strings.TrimSpace(v.GetString("ARK_REGION")),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}, nil
}

// LogConfig 描述日志级别与输出格式。
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig(v *viper.Viper) LogConfig {
	return LogConfig{
		Level:  strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		Format: strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
	}
}

func parseOptionalFloat(v *viper.Viper, key string) (*float64, error) {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalInt(v *viper.Viper, key string) (*int, error) {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
